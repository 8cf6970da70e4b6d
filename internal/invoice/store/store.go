package store

import (
	"context"
	"slices"

	"github.com/razoraze123/flux/internal/invoice"
	"github.com/razoraze123/flux/internal/memory"
)

type Store struct {
	db *memory.DB
}

func New(db *memory.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListInvoices(ctx context.Context, filter invoice.ListFilter) ([]invoice.Invoice, error) {
	var out []invoice.Invoice

	err := s.db.View(ctx, func(data *memory.Data) error {
		for _, inv := range data.Invoices {
			if filter.Type != nil && inv.Type != *filter.Type {
				continue
			}

			out = append(out, inv)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(out, func(a, b invoice.Invoice) int {
		return b.Date.Compare(a.Date)
	})

	return out, nil
}
