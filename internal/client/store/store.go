package store

import (
	"context"
	"slices"
	"strings"

	"github.com/razoraze123/flux/internal/client"
	"github.com/razoraze123/flux/internal/memory"
)

type Store struct {
	db *memory.DB
}

func New(db *memory.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListClients(ctx context.Context) ([]client.Client, error) {
	var out []client.Client

	err := s.db.View(ctx, func(data *memory.Data) error {
		out = slices.Clone(data.Clients)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(out, func(a, b client.Client) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	return out, nil
}

func (s *Store) UpsertClient(ctx context.Context, c client.Client) error {
	return s.db.Update(ctx, func(data *memory.Data) error {
		for i := range data.Clients {
			if data.Clients[i].ID == c.ID {
				data.Clients[i] = c
				return nil
			}
		}

		data.Clients = append(data.Clients, c)

		return nil
	})
}

func (s *Store) DeleteClient(ctx context.Context, id string) error {
	return s.db.Update(ctx, func(data *memory.Data) error {
		for i := range data.Clients {
			if data.Clients[i].ID == id {
				data.Clients = slices.Delete(data.Clients, i, i+1)
				return nil
			}
		}

		// Unknown id: silent no-op.
		return nil
	})
}
