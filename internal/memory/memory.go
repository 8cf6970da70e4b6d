// Package memory holds the canonical in-process dataset the services read
// and mutate. It stands in for a real backend: every access pays a
// configurable simulated network delay, and nothing survives a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/razoraze123/flux/internal/client"
	"github.com/razoraze123/flux/internal/debt"
	"github.com/razoraze123/flux/internal/finance"
	"github.com/razoraze123/flux/internal/invoice"
	"github.com/razoraze123/flux/internal/recurring"
)

// Data is the canonical slice per entity type. Stores receive it under the
// DB lock and may read and splice it freely within the callback.
type Data struct {
	Clients      []client.Client
	Transactions []finance.Transaction
	Invoices     []invoice.Invoice
	Debts        []debt.Debt
	Recurring    []recurring.Charge
}

// DB is an owned, injected store. It is created per process (or per test
// case), never a package-level singleton, so tests can run isolated copies.
type DB struct {
	mu      sync.Mutex
	latency time.Duration
	data    Data
}

type Option func(*DB)

// WithLatency sets the simulated network delay paid by every access. The
// delay exists purely to exercise loading-state UI; it carries no retry or
// backoff semantics because the store never fails on its own.
func WithLatency(d time.Duration) Option {
	return func(db *DB) { db.latency = d }
}

// WithSeed replaces the initial dataset. Without it the DB starts empty;
// the binaries pass DefaultSeed().
func WithSeed(data Data) Option {
	return func(db *DB) { db.data = data }
}

func New(opts ...Option) *DB {
	db := &DB{}
	for _, opt := range opts {
		opt(db)
	}

	return db
}

// View runs fn with read access to the dataset after the simulated delay.
// The only failure paths are context cancellation and whatever fn returns.
func (db *DB) View(ctx context.Context, fn func(*Data) error) error {
	return db.access(ctx, fn)
}

// Update runs fn with write access to the dataset after the simulated
// delay. Mutations fn makes to the slices are the new canonical state.
func (db *DB) Update(ctx context.Context, fn func(*Data) error) error {
	return db.access(ctx, fn)
}

func (db *DB) access(ctx context.Context, fn func(*Data) error) error {
	if err := db.simulate(ctx); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	return fn(&db.data)
}

// simulate sleeps the configured latency, waking early when the context is
// cancelled. This is the cancellation-safe handle a real backend would need
// even though the mock itself never times out.
func (db *DB) simulate(ctx context.Context) error {
	if db.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(db.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
