package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razoraze123/flux/internal/finance"
	financestore "github.com/razoraze123/flux/internal/finance/store"
	"github.com/razoraze123/flux/internal/memory"
)

func TestDashboardModel_InitialLoadReachesReady(t *testing.T) {
	db := memory.New(memory.WithSeed(memory.DefaultSeed()))
	m := NewDashboardModel(finance.NewService(financestore.New(db)))

	cmd := m.Init()
	require.NotNil(t, cmd)

	updated, _ := m.Update(cmd())
	m = updated.(DashboardModel)

	require.False(t, m.loading)
	require.NoError(t, m.err)

	view := m.View()
	assert.NotContains(t, view, "Loading")
	assert.Contains(t, view, "Solde Total")
	assert.Contains(t, view, "Transactions récentes")
}

func TestDashboardModel_StaleFetchDropped(t *testing.T) {
	db := memory.New(memory.WithSeed(memory.DefaultSeed()))
	m := NewDashboardModel(finance.NewService(financestore.New(db)))

	updated, _ := m.Update(statsLoadedMsg{seq: m.fetchSeq - 1})
	m = updated.(DashboardModel)

	assert.True(t, m.loading)
}
