package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razoraze123/flux/internal/client"
	"github.com/razoraze123/flux/internal/memory"
)

func TestDB_UpdateThenView(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	err := db.Update(ctx, func(data *memory.Data) error {
		data.Clients = append(data.Clients, client.Client{ID: "1", Name: "Awa"})
		return nil
	})
	require.NoError(t, err)

	var got []client.Client

	err = db.View(ctx, func(data *memory.Data) error {
		got = append(got, data.Clients...)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "Awa", got[0].Name)
}

func TestDB_Isolation(t *testing.T) {
	// Two DBs never share state; there is no package-level singleton.
	a := memory.New(memory.WithSeed(memory.Data{
		Clients: []client.Client{{ID: "1"}},
	}))
	b := memory.New()

	ctx := context.Background()

	err := a.View(ctx, func(data *memory.Data) error {
		assert.Len(t, data.Clients, 1)
		return nil
	})
	require.NoError(t, err)

	err = b.View(ctx, func(data *memory.Data) error {
		assert.Empty(t, data.Clients)
		return nil
	})
	require.NoError(t, err)
}

func TestDB_LatencyHonorsCancellation(t *testing.T) {
	db := memory.New(memory.WithLatency(time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := db.View(ctx, func(*memory.Data) error { return nil })

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDB_LatencyDelaysAccess(t *testing.T) {
	db := memory.New(memory.WithLatency(30 * time.Millisecond))

	start := time.Now()
	err := db.View(context.Background(), func(*memory.Data) error { return nil })
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestDefaultSeed(t *testing.T) {
	seed := memory.DefaultSeed()

	assert.Len(t, seed.Clients, 5)
	assert.Len(t, seed.Transactions, 10)
	assert.NotEmpty(t, seed.Invoices)
	assert.NotEmpty(t, seed.Debts)
	assert.NotEmpty(t, seed.Recurring)
}
