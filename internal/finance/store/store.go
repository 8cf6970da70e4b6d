package store

import (
	"context"
	"slices"

	"github.com/razoraze123/flux/internal/finance"
	"github.com/razoraze123/flux/internal/memory"
)

type Store struct {
	db *memory.DB
}

func New(db *memory.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListTransactions(ctx context.Context, filter finance.ListFilter) ([]finance.Transaction, error) {
	var out []finance.Transaction

	err := s.db.View(ctx, func(data *memory.Data) error {
		for _, tx := range data.Transactions {
			if filter.Type != nil && tx.Type != *filter.Type {
				continue
			}

			out = append(out, tx)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Most recent first.
	slices.SortStableFunc(out, func(a, b finance.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	return out, nil
}

func (s *Store) UpsertTransaction(ctx context.Context, tx finance.Transaction) error {
	return s.db.Update(ctx, func(data *memory.Data) error {
		for i := range data.Transactions {
			if data.Transactions[i].ID == tx.ID {
				data.Transactions[i] = tx
				return nil
			}
		}

		data.Transactions = append(data.Transactions, tx)

		return nil
	})
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	return s.db.Update(ctx, func(data *memory.Data) error {
		for i := range data.Transactions {
			if data.Transactions[i].ID == id {
				data.Transactions = slices.Delete(data.Transactions, i, i+1)
				return nil
			}
		}

		return nil
	})
}
