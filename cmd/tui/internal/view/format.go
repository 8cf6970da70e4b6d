package view

import (
	"context"
	"time"

	"github.com/razoraze123/flux/internal/money"
)

const svcTimeout = 5 * time.Second

// FormatAmount renders a whole-FCFA amount with French digit grouping.
func FormatAmount(amount int64) string {
	return money.FormatFCFA(amount)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// SvcCtx returns a context with a standard timeout for service calls.
func SvcCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), svcTimeout)
}
