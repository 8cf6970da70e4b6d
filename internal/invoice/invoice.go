package invoice

import "time"

// Type distinguishes quotes from final invoices.
type Type string

const (
	TypeQuote   Type = "quote"
	TypeInvoice Type = "invoice"
)

// Status represents the lifecycle state of an invoice or quote.
type Status string

const (
	StatusPaid     Status = "paid"
	StatusPending  Status = "pending"
	StatusSent     Status = "sent"
	StatusDraft    Status = "draft"
	StatusAccepted Status = "accepted"
)

// Invoice represents an issued document. Client is a display name, not a
// foreign key. The document itself lives behind an external link.
type Invoice struct {
	ID          string
	Number      string
	Type        Type
	Client      string
	Date        time.Time
	Amount      int64
	Status      Status
	DocumentURL string
}
