package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razoraze123/flux/internal/finance"
	"github.com/razoraze123/flux/internal/finance/store"
	"github.com/razoraze123/flux/internal/memory"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seeded(txs ...finance.Transaction) *store.Store {
	return store.New(memory.New(memory.WithSeed(memory.Data{Transactions: txs})))
}

func TestStore_List_SortedByDateDesc(t *testing.T) {
	s := seeded(
		finance.Transaction{ID: "1", Type: finance.TypeExpense, Date: date(2024, 7, 1)},
		finance.Transaction{ID: "2", Type: finance.TypeIncome, Date: date(2024, 8, 15)},
		finance.Transaction{ID: "3", Type: finance.TypeExpense, Date: date(2024, 8, 1)},
	)

	got, err := s.ListTransactions(context.Background(), finance.ListFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i := 1; i < len(got); i++ {
		assert.False(t, got[i-1].Date.Before(got[i].Date))
	}

	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "1", got[2].ID)
}

func TestStore_List_TypeFilterNeverLeaks(t *testing.T) {
	s := seeded(
		finance.Transaction{ID: "1", Type: finance.TypeExpense, Date: date(2024, 7, 1)},
		finance.Transaction{ID: "2", Type: finance.TypeIncome, Date: date(2024, 8, 15)},
		finance.Transaction{ID: "3", Type: finance.TypeExpense, Date: date(2024, 8, 1)},
	)

	expense := finance.TypeExpense
	got, err := s.ListTransactions(context.Background(), finance.ListFilter{Type: &expense})
	require.NoError(t, err)
	require.Len(t, got, 2)

	for _, tx := range got {
		assert.Equal(t, finance.TypeExpense, tx.Type)
	}
}

func TestStore_Upsert_ReplacesById(t *testing.T) {
	s := seeded(
		finance.Transaction{ID: "1", Type: finance.TypeExpense, Amount: 500, Date: date(2024, 7, 1)},
	)
	ctx := context.Background()

	err := s.UpsertTransaction(ctx, finance.Transaction{
		ID: "1", Type: finance.TypeExpense, Amount: 750, Date: date(2024, 7, 1),
	})
	require.NoError(t, err)

	got, err := s.ListTransactions(ctx, finance.ListFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(750), got[0].Amount)
}

func TestStore_Delete_UnknownIsNoOp(t *testing.T) {
	s := seeded(
		finance.Transaction{ID: "1", Type: finance.TypeExpense, Date: date(2024, 7, 1)},
	)
	ctx := context.Background()

	require.NoError(t, s.DeleteTransaction(ctx, "missing"))

	got, err := s.ListTransactions(ctx, finance.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
