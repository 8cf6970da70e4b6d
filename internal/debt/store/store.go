package store

import (
	"context"
	"slices"

	"github.com/razoraze123/flux/internal/debt"
	"github.com/razoraze123/flux/internal/memory"
)

type Store struct {
	db *memory.DB
}

func New(db *memory.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListDebts(ctx context.Context, filter debt.ListFilter) ([]debt.Debt, error) {
	var out []debt.Debt

	err := s.db.View(ctx, func(data *memory.Data) error {
		for _, d := range data.Debts {
			if filter.Type != nil && d.Type != *filter.Type {
				continue
			}

			out = append(out, d)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Soonest due first.
	slices.SortStableFunc(out, func(a, b debt.Debt) int {
		return a.DueDate.Compare(b.DueDate)
	})

	return out, nil
}

func (s *Store) UpsertDebt(ctx context.Context, d debt.Debt) error {
	return s.db.Update(ctx, func(data *memory.Data) error {
		for i := range data.Debts {
			if data.Debts[i].ID == d.ID {
				data.Debts[i] = d
				return nil
			}
		}

		data.Debts = append(data.Debts, d)

		return nil
	})
}

func (s *Store) DeleteDebt(ctx context.Context, id string) error {
	return s.db.Update(ctx, func(data *memory.Data) error {
		for i := range data.Debts {
			if data.Debts[i].ID == id {
				data.Debts = slices.Delete(data.Debts, i, i+1)
				return nil
			}
		}

		return nil
	})
}
