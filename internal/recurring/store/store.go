package store

import (
	"context"
	"slices"

	"github.com/razoraze123/flux/internal/memory"
	"github.com/razoraze123/flux/internal/recurring"
)

type Store struct {
	db *memory.DB
}

func New(db *memory.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListCharges(ctx context.Context) ([]recurring.Charge, error) {
	var out []recurring.Charge

	err := s.db.View(ctx, func(data *memory.Data) error {
		out = slices.Clone(data.Recurring)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Next occurrence first.
	slices.SortStableFunc(out, func(a, b recurring.Charge) int {
		return a.NextDate.Compare(b.NextDate)
	})

	return out, nil
}

func (s *Store) UpsertCharge(ctx context.Context, c recurring.Charge) error {
	return s.db.Update(ctx, func(data *memory.Data) error {
		for i := range data.Recurring {
			if data.Recurring[i].ID == c.ID {
				data.Recurring[i] = c
				return nil
			}
		}

		data.Recurring = append(data.Recurring, c)

		return nil
	})
}

func (s *Store) DeleteCharge(ctx context.Context, id string) error {
	return s.db.Update(ctx, func(data *memory.Data) error {
		for i := range data.Recurring {
			if data.Recurring[i].ID == id {
				data.Recurring = slices.Delete(data.Recurring, i, i+1)
				return nil
			}
		}

		return nil
	})
}

func (s *Store) ToggleCharge(ctx context.Context, id string) error {
	return s.db.Update(ctx, func(data *memory.Data) error {
		for i := range data.Recurring {
			if data.Recurring[i].ID == id {
				data.Recurring[i].Active = !data.Recurring[i].Active
				return nil
			}
		}

		return recurring.ErrNotFound
	})
}
