package recurring

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/razoraze123/flux/internal/validation"
)

var ErrNotFound = errors.New("recurring charge not found")

type Repository interface {
	// ListCharges returns a copy sorted by next date ascending.
	ListCharges(ctx context.Context) ([]Charge, error)
	UpsertCharge(ctx context.Context, c Charge) error
	DeleteCharge(ctx context.Context, id string) error
	// ToggleCharge flips Active in place and reports ErrNotFound for an
	// unknown id. NextDate is left untouched.
	ToggleCharge(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Charge, error) {
	return s.repo.ListCharges(ctx)
}

func (s *Service) Upsert(ctx context.Context, c Charge) (Charge, error) {
	if err := validation.Required(
		validation.Field{Name: "name", Value: c.Name},
		validation.Field{Name: "category", Value: c.Category},
	); err != nil {
		return Charge{}, err
	}

	if c.Amount <= 0 {
		return Charge{}, &validation.Error{Fields: []string{"amount"}}
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	if err := s.repo.UpsertCharge(ctx, c); err != nil {
		return Charge{}, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteCharge(ctx, id)
}

func (s *Service) Toggle(ctx context.Context, id string) error {
	return s.repo.ToggleCharge(ctx, id)
}
