package recurring_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razoraze123/flux/internal/memory"
	"github.com/razoraze123/flux/internal/recurring"
	"github.com/razoraze123/flux/internal/recurring/store"
	"github.com/razoraze123/flux/internal/validation"
)

func newService(seed ...recurring.Charge) *recurring.Service {
	db := memory.New(memory.WithSeed(memory.Data{Recurring: seed}))
	return recurring.NewService(store.New(db))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_List_SortedByNextDate(t *testing.T) {
	svc := newService(
		recurring.Charge{ID: "r1", Name: "Loyer", Category: "Bureau", Amount: 50000, NextDate: date(2024, 9, 1)},
		recurring.Charge{ID: "r2", Name: "Internet", Category: "Internet", Amount: 15000, NextDate: date(2024, 8, 5)},
		recurring.Charge{ID: "r3", Name: "Canva", Category: "Logiciel", Amount: 6500, NextDate: date(2024, 8, 20)},
	)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "r2", got[0].ID)
	assert.Equal(t, "r3", got[1].ID)
	assert.Equal(t, "r1", got[2].ID)
}

func TestService_Toggle(t *testing.T) {
	next := date(2024, 8, 5)

	svc := newService(
		recurring.Charge{
			ID:        "r1",
			Name:      "Internet",
			Category:  "Internet",
			Amount:    15000,
			Frequency: recurring.FrequencyMonthly,
			NextDate:  next,
			Active:    true,
		},
	)
	ctx := context.Background()

	require.NoError(t, svc.Toggle(ctx, "r1"))

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Active)
	// Pausing never reschedules.
	assert.Equal(t, next, got[0].NextDate)

	require.NoError(t, svc.Toggle(ctx, "r1"))

	got, err = svc.List(ctx)
	require.NoError(t, err)
	assert.True(t, got[0].Active)
	assert.Equal(t, next, got[0].NextDate)
}

func TestService_Toggle_Unknown(t *testing.T) {
	svc := newService()

	err := svc.Toggle(context.Background(), "missing")
	assert.ErrorIs(t, err, recurring.ErrNotFound)
}

func TestService_Upsert(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	saved, err := svc.Upsert(ctx, recurring.Charge{
		Name:      "Spotify",
		Category:  "Logiciel",
		Amount:    3500,
		Frequency: recurring.FrequencyMonthly,
		NextDate:  date(2024, 9, 12),
		Active:    true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	saved.Amount = 4000
	_, err = svc.Upsert(ctx, saved)
	require.NoError(t, err)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(4000), got[0].Amount)
}

func TestService_Upsert_Validation(t *testing.T) {
	svc := newService()

	_, err := svc.Upsert(context.Background(), recurring.Charge{Amount: 100})

	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"name", "category"}, vErr.Fields)

	_, err = svc.Upsert(context.Background(), recurring.Charge{Name: "Loyer", Category: "Bureau"})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"amount"}, vErr.Fields)
}

func TestService_Delete(t *testing.T) {
	svc := newService(
		recurring.Charge{ID: "r1", Name: "Loyer", Category: "Bureau", Amount: 50000},
	)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "r1"))
	require.NoError(t, svc.Delete(ctx, "r1"))

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
