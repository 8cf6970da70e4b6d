package debt

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/razoraze123/flux/internal/money"
)

// ReminderLink builds a WhatsApp deep link carrying a payment reminder for
// the debtor. Phone normalization is limited to stripping non-digit
// characters; no further format validation is attempted.
func ReminderLink(d Debt) string {
	message := fmt.Sprintf(
		"Salam %s, petit rappel pour le solde de %s concernant %s. Merci !",
		d.Person, money.FormatFCFA(d.Amount), d.Reason,
	)

	return "https://wa.me/" + digitsOnly(d.Phone) + "?text=" + url.QueryEscape(message)
}

func digitsOnly(phone string) string {
	var b strings.Builder

	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
