package view

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razoraze123/flux/internal/settings"
	"github.com/razoraze123/flux/internal/uistate"
)

func TestSettingsModel_SaveWritesTypedURL(t *testing.T) {
	store := settings.NewStore(filepath.Join(t.TempDir(), "settings.json"))
	m := NewSettingsModel(store, uistate.NewToasts(time.Minute))

	p := tea.NewProgram(m, tea.WithoutRenderer(), tea.WithInput(nil))

	go func() {
		time.Sleep(100 * time.Millisecond)
		typeKeys(p, "https://example.com/hook")
		pressEnter(p)

		time.Sleep(300 * time.Millisecond)
		p.Quit()
	}()

	_, err := p.Run()
	require.NoError(t, err)

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/hook", saved.WebhookURL)
}
