package invoice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razoraze123/flux/internal/invoice"
	"github.com/razoraze123/flux/internal/invoice/store"
	"github.com/razoraze123/flux/internal/memory"
)

func newService(seed ...invoice.Invoice) *invoice.Service {
	db := memory.New(memory.WithSeed(memory.Data{Invoices: seed}))
	return invoice.NewService(store.New(db))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_List_SortedByDateDesc(t *testing.T) {
	svc := newService(
		invoice.Invoice{ID: "i1", Number: "FAC-001", Type: invoice.TypeInvoice, Date: date(2024, 6, 1)},
		invoice.Invoice{ID: "i2", Number: "FAC-002", Type: invoice.TypeInvoice, Date: date(2024, 8, 1)},
		invoice.Invoice{ID: "i3", Number: "DEV-001", Type: invoice.TypeQuote, Date: date(2024, 7, 1)},
	)

	got, err := svc.List(context.Background(), invoice.ListFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "i2", got[0].ID)
	assert.Equal(t, "i3", got[1].ID)
	assert.Equal(t, "i1", got[2].ID)
}

func TestService_List_FilterByType(t *testing.T) {
	svc := newService(
		invoice.Invoice{ID: "i1", Number: "FAC-001", Type: invoice.TypeInvoice, Date: date(2024, 6, 1)},
		invoice.Invoice{ID: "i2", Number: "DEV-001", Type: invoice.TypeQuote, Date: date(2024, 7, 1)},
	)

	quote := invoice.TypeQuote
	got, err := svc.List(context.Background(), invoice.ListFilter{Type: &quote})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "DEV-001", got[0].Number)
}

func TestService_List_Empty(t *testing.T) {
	svc := newService()

	got, err := svc.List(context.Background(), invoice.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
}
