package debt

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/razoraze123/flux/internal/validation"
)

var ErrNotFound = errors.New("debt not found")

type Repository interface {
	// ListDebts returns a copy sorted by due date ascending.
	ListDebts(ctx context.Context, filter ListFilter) ([]Debt, error)
	UpsertDebt(ctx context.Context, d Debt) error
	DeleteDebt(ctx context.Context, id string) error
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

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Debt, error) {
	return s.repo.ListDebts(ctx, filter)
}

// Upsert saves a debt, assigning a fresh id when none is carried.
func (s *Service) Upsert(ctx context.Context, d Debt) (Debt, error) {
	if err := validation.Required(
		validation.Field{Name: "person", Value: d.Person},
		validation.Field{Name: "reason", Value: d.Reason},
	); err != nil {
		return Debt{}, err
	}

	if d.Amount <= 0 {
		return Debt{}, &validation.Error{Fields: []string{"amount"}}
	}

	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	if err := s.repo.UpsertDebt(ctx, d); err != nil {
		return Debt{}, err
	}

	return d, nil
}

// Delete removes a debt; an unknown id is a silent no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteDebt(ctx, id)
}
