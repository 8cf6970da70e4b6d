package invoice

import "context"

// Invoices are read-only in this scope: there is no create or edit flow,
// only listing.

type Repository interface {
	// ListInvoices returns a copy sorted by date descending.
	ListInvoices(ctx context.Context, filter ListFilter) ([]Invoice, error)
}

type ListFilter struct {
	Type *Type
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Invoice, error) {
	return s.repo.ListInvoices(ctx, filter)
}
