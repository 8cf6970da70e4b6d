package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/razoraze123/flux/internal/settings"
	"github.com/razoraze123/flux/internal/uistate"
)

type SettingsModel struct {
	CommonModel
	store  *settings.Store
	toasts *uistate.Toasts

	form       *huh.Form
	webhookURL string
	err        error
}

func NewSettingsModel(store *settings.Store, toasts *uistate.Toasts) SettingsModel {
	m := SettingsModel{store: store, toasts: toasts}

	current, err := store.Load()
	if err != nil {
		m.err = err
		return m
	}

	m.webhookURL = current.WebhookURL
	m.form = m.newForm()

	return m
}

func (m SettingsModel) Title() string     { return "Réglages" }
func (m SettingsModel) ShortHelp() string { return "Enter: save | Esc: back" }

func (m *SettingsModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("webhook").
				Title("Webhook URL").
				Description("Appelé par vos automatisations externes").
				Placeholder("https://example.com/hook").
				Value(&m.webhookURL),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m SettingsModel) Init() tea.Cmd {
	if m.form == nil {
		return nil
	}

	return m.form.Init()
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsSavedMsg:
		if msg.err != nil {
			m.toasts.Add(fmt.Sprintf("Erreur: %v", msg.err), uistate.KindError)
		} else {
			m.webhookURL = msg.url
			m.toasts.Add("Réglages enregistrés", uistate.KindSuccess)
		}

		// Rebuild so the form can be submitted again.
		m.form = m.newForm()

		return m, m.form.Init()

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m SettingsModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(64).
		Render("Réglages\n\n" + m.form.View())

	return lipgloss.NewStyle().Padding(1).Render(panel)
}

type settingsSavedMsg struct {
	url string
	err error
}

func (m SettingsModel) saveCmd() tea.Cmd {
	// The submitted value lives in the form, keyed; the Value binding only
	// prefills a model copy bubbletea no longer holds.
	cfg := settings.Settings{WebhookURL: m.form.GetString("webhook")}

	return func() tea.Msg {
		return settingsSavedMsg{url: cfg.WebhookURL, err: m.store.Save(cfg)}
	}
}
