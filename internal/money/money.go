package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amounts are whole FCFA: the currency has no minor unit, so int64 is exact.

var fr = message.NewPrinter(language.French)

// FormatFCFA renders an amount with French digit grouping, e.g. "1 500 FCFA".
func FormatFCFA(amount int64) string {
	return fr.Sprintf("%d FCFA", amount)
}
