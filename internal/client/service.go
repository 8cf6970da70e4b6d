package client

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/razoraze123/flux/internal/validation"
)

var ErrNotFound = errors.New("client not found")

type Repository interface {
	ListClients(ctx context.Context) ([]Client, error)
	UpsertClient(ctx context.Context, c Client) error
	DeleteClient(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every client. Search narrowing happens in the caller via
// FilterSearch, over the list it already holds.
func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.ListClients(ctx)
}

// Upsert saves a client, replacing an existing record with the same id or
// appending a new one. An empty id gets a fresh token before the store call;
// a caller-supplied id is kept verbatim and never reassigned afterwards.
func (s *Service) Upsert(ctx context.Context, c Client) (Client, error) {
	if err := validation.Required(
		validation.Field{Name: "name", Value: c.Name},
		validation.Field{Name: "phone", Value: c.Phone},
	); err != nil {
		return Client{}, err
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	if c.Status == "" {
		c.Status = StatusActive
	}

	if err := s.repo.UpsertClient(ctx, c); err != nil {
		return Client{}, err
	}

	return c, nil
}

// Delete removes the client with the given id. An unknown id is a silent
// no-op, not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteClient(ctx, id)
}
