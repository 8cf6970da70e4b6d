package debt

import "time"

// Type tells which direction a debt runs: a receivable is owed to the user,
// a payable is owed by the user.
type Type string

const (
	TypeReceivable Type = "receivable"
	TypePayable    Type = "payable"
)

// Debt is one entry of the credit book.
type Debt struct {
	ID      string
	Type    Type
	Person  string
	Amount  int64
	DueDate time.Time
	Phone   string
	Reason  string
}
