package finance

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/razoraze123/flux/internal/validation"
)

var ErrNotFound = errors.New("transaction not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=finance
type Repository interface {
	// ListTransactions returns a copy sorted by date descending.
	ListTransactions(ctx context.Context, filter ListFilter) ([]Transaction, error)
	UpsertTransaction(ctx context.Context, tx Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
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

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

// Upsert saves a transaction, assigning a fresh id when none is carried.
func (s *Service) Upsert(ctx context.Context, tx Transaction) (Transaction, error) {
	if err := validation.Required(
		validation.Field{Name: "description", Value: tx.Description},
		validation.Field{Name: "category", Value: tx.Category},
	); err != nil {
		return Transaction{}, err
	}

	if tx.Amount <= 0 {
		return Transaction{}, &validation.Error{Fields: []string{"amount"}}
	}

	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	if err := s.repo.UpsertTransaction(ctx, tx); err != nil {
		return Transaction{}, err
	}

	return tx, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteTransaction(ctx, id)
}
