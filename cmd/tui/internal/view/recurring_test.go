package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razoraze123/flux/internal/memory"
	"github.com/razoraze123/flux/internal/recurring"
	recurringstore "github.com/razoraze123/flux/internal/recurring/store"
	"github.com/razoraze123/flux/internal/uistate"
)

func newRecurringFixture(seed ...recurring.Charge) RecurringModel {
	db := memory.New(memory.WithSeed(memory.Data{Recurring: seed}))
	svc := recurring.NewService(recurringstore.New(db))

	return NewRecurringModel(svc, uistate.NewToasts(time.Minute))
}

func loadedRecurring(t *testing.T, m RecurringModel) RecurringModel {
	t.Helper()

	cmd := m.Init()
	require.NotNil(t, cmd)

	updated, _ := m.Update(cmd())
	m = updated.(RecurringModel)
	require.False(t, m.loading)

	return m
}

func TestRecurringModel_InitialLoadReachesReady(t *testing.T) {
	m := newRecurringFixture(recurring.Charge{
		ID:        "r1",
		Name:      "Internet Bureau",
		Amount:    15000,
		Frequency: recurring.FrequencyMonthly,
		NextDate:  time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Category:  "Internet",
		Active:    true,
	})

	m = loadedRecurring(t, m)

	assert.NotContains(t, m.View(), "Loading")
	assert.Contains(t, m.View(), "Internet Bureau")
}

func TestRecurringModel_HeaderTotalsAllActiveCharges(t *testing.T) {
	m := newRecurringFixture(
		recurring.Charge{
			ID:        "r1",
			Name:      "Internet Bureau",
			Amount:    15000,
			Frequency: recurring.FrequencyMonthly,
			NextDate:  time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			Category:  "Internet",
			Active:    true,
		},
		recurring.Charge{
			ID:        "r2",
			Name:      "Assurance boutique",
			Amount:    60000,
			Frequency: recurring.FrequencyYearly,
			NextDate:  time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
			Category:  "Assurance",
			Active:    true,
		},
		recurring.Charge{
			ID:        "r3",
			Name:      "Abonnement suspendu",
			Amount:    5000,
			Frequency: recurring.FrequencyMonthly,
			NextDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			Category:  "Logiciel",
			Active:    false,
		},
	)

	m = loadedRecurring(t, m)

	// The active yearly charge counts too; the inactive one never does.
	view := m.View()
	assert.Contains(t, view, FormatAmount(75000))
	assert.NotContains(t, view, FormatAmount(80000))
}
