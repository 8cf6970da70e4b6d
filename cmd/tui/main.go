package main

import (
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/razoraze123/flux/cmd/tui/internal/view"
	"github.com/razoraze123/flux/internal/agent"
	"github.com/razoraze123/flux/internal/client"
	clientStore "github.com/razoraze123/flux/internal/client/store"
	"github.com/razoraze123/flux/internal/config"
	"github.com/razoraze123/flux/internal/debt"
	debtStore "github.com/razoraze123/flux/internal/debt/store"
	"github.com/razoraze123/flux/internal/finance"
	financeStore "github.com/razoraze123/flux/internal/finance/store"
	"github.com/razoraze123/flux/internal/invoice"
	invoiceStore "github.com/razoraze123/flux/internal/invoice/store"
	"github.com/razoraze123/flux/internal/memory"
	"github.com/razoraze123/flux/internal/recurring"
	recurringStore "github.com/razoraze123/flux/internal/recurring/store"
	"github.com/razoraze123/flux/internal/settings"
	"github.com/razoraze123/flux/internal/uistate"
)

type model struct {
	clientService    *client.Service
	financeService   *finance.Service
	invoiceService   *invoice.Service
	debtService      *debt.Service
	recurringService *recurring.Service
	chatSession      *agent.Session
	settingsStore    *settings.Store

	actions *uistate.Actions
	toasts  *uistate.Toasts

	// events carries primary-action triggers from the broadcaster back into
	// the bubbletea loop.
	events chan tea.Msg

	// releaseAction tears down the current screen's registration; nil when
	// the screen has no primary action.
	releaseAction func()

	currentView View

	dashboardView view.DashboardModel
	clientsView   view.ClientsModel
	financeView   view.FinanceModel
	invoicesView  view.InvoicesModel
	creditView    view.CreditBookModel
	recurringView view.RecurringModel
	chatView      view.ChatModel
	settingsView  view.SettingsModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewClients   View = 2
	ViewFinance   View = 3
	ViewInvoices  View = 4
	ViewCredit    View = 5
	ViewRecurring View = 6
	ViewChat      View = 7
	ViewSettings  View = 8
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db := memory.New(
		memory.WithSeed(memory.DefaultSeed()),
		memory.WithLatency(cfg.Mock.Latency),
	)

	clientSvc := client.NewService(clientStore.New(db))
	financeSvc := finance.NewService(financeStore.New(db))
	invoiceSvc := invoice.NewService(invoiceStore.New(db))
	debtSvc := debt.NewService(debtStore.New(db))
	recurringSvc := recurring.NewService(recurringStore.New(db))

	gemini := agent.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model, "")
	session := agent.NewSession(gemini, agent.SystemPrompt)

	settingsStore := settings.NewStore(cfg.Settings.Path)

	actions := uistate.NewActions()
	toasts := uistate.NewToasts(cfg.UI.ToastTTL)

	return model{
		clientService:    clientSvc,
		financeService:   financeSvc,
		invoiceService:   invoiceSvc,
		debtService:      debtSvc,
		recurringService: recurringSvc,
		chatSession:      session,
		settingsStore:    settingsStore,
		actions:          actions,
		toasts:           toasts,
		events:           make(chan tea.Msg, 8),
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(financeSvc),
		clientsView:      view.NewClientsModel(clientSvc, toasts),
		financeView:      view.NewFinanceModel(financeSvc, toasts),
		invoicesView:     view.NewInvoicesModel(invoiceSvc),
		creditView:       view.NewCreditBookModel(debtSvc, toasts),
		recurringView:    view.NewRecurringModel(recurringSvc, toasts),
		chatView:         view.NewChatModel(session),
		settingsView:     view.NewSettingsModel(settingsStore, toasts),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.waitForEvent(), tickCmd())
}

// waitForEvent blocks on the broadcaster channel and feeds triggers back
// into the update loop. It must be re-issued after every receive.
func (m model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

type tickMsg time.Time

// tickCmd drives toast expiry redraws.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// hasPrimaryAction reports whether a screen offers the global add action.
func hasPrimaryAction(v View) bool {
	switch v {
	case ViewClients, ViewFinance, ViewCredit, ViewRecurring:
		return true
	}

	return false
}

// switchTo moves to a screen, wiring the primary action for screens that
// have one and releasing the previous screen's registration.
func (m *model) switchTo(v View) {
	if m.releaseAction != nil {
		m.releaseAction()
		m.releaseAction = nil
	}

	m.currentView = v

	if hasPrimaryAction(v) {
		events := m.events
		m.releaseAction = m.actions.Register(func() {
			events <- view.PrimaryActionMsg{}
		})
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		return m, tickCmd()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// ctrl+n fires the shared add action regardless of where focus is;
		// text inputs never see it.
		if msg.String() == "ctrl+n" && m.actions.HasAction() {
			m.actions.Trigger()
			return m, nil
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.switchTo(ViewDashboard)
				m.dashboardView = view.NewDashboardModel(m.financeService)

				return m, m.dashboardView.Init()
			case "2":
				m.switchTo(ViewClients)
				m.clientsView = view.NewClientsModel(m.clientService, m.toasts)

				return m, m.clientsView.Init()
			case "3":
				m.switchTo(ViewFinance)
				m.financeView = view.NewFinanceModel(m.financeService, m.toasts)

				return m, m.financeView.Init()
			case "4":
				m.switchTo(ViewInvoices)
				m.invoicesView = view.NewInvoicesModel(m.invoiceService)

				return m, m.invoicesView.Init()
			case "5":
				m.switchTo(ViewCredit)
				m.creditView = view.NewCreditBookModel(m.debtService, m.toasts)

				return m, m.creditView.Init()
			case "6":
				m.switchTo(ViewRecurring)
				m.recurringView = view.NewRecurringModel(m.recurringService, m.toasts)

				return m, m.recurringView.Init()
			case "7":
				m.switchTo(ViewChat)
				m.chatView = view.NewChatModel(m.chatSession)

				return m, m.chatView.Init()
			case "8":
				m.switchTo(ViewSettings)
				m.settingsView = view.NewSettingsModel(m.settingsStore, m.toasts)

				return m, m.settingsView.Init()
			}
		}

	case view.BackMsg:
		m.switchTo(ViewMenu)
		return m, nil
	}

	var rearm tea.Cmd
	if _, ok := msg.(view.PrimaryActionMsg); ok {
		rearm = m.waitForEvent()
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewClients:
		var newModel tea.Model
		newModel, cmd = m.clientsView.Update(msg)
		m.clientsView = newModel.(view.ClientsModel)
	case ViewFinance:
		var newModel tea.Model
		newModel, cmd = m.financeView.Update(msg)
		m.financeView = newModel.(view.FinanceModel)
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoicesView.Update(msg)
		m.invoicesView = newModel.(view.InvoicesModel)
	case ViewCredit:
		var newModel tea.Model
		newModel, cmd = m.creditView.Update(msg)
		m.creditView = newModel.(view.CreditBookModel)
	case ViewRecurring:
		var newModel tea.Model
		newModel, cmd = m.recurringView.Update(msg)
		m.recurringView = newModel.(view.RecurringModel)
	case ViewChat:
		var newModel tea.Model
		newModel, cmd = m.chatView.Update(msg)
		m.chatView = newModel.(view.ChatModel)
	case ViewSettings:
		var newModel tea.Model
		newModel, cmd = m.settingsView.Update(msg)
		m.settingsView = newModel.(view.SettingsModel)
	}

	return m, tea.Batch(cmd, rearm)
}

var (
	toastSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	toastErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	toastInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
)

func (m model) toastsView() string {
	items := m.toasts.Items()
	if len(items) == 0 {
		return ""
	}

	out := ""

	for _, t := range items {
		style := toastInfoStyle

		switch t.Kind {
		case uistate.KindSuccess:
			style = toastSuccessStyle
		case uistate.KindError:
			style = toastErrorStyle
		}

		out += style.Render("• "+t.Message) + "\n"
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(out)
}

func (m model) View() string {
	var body string

	switch m.currentView {
	case ViewMenu:
		body = lipgloss.NewStyle().Padding(2).Render(
			"Flux\n\n" +
				"1. Dashboard\n" +
				"2. Clients\n" +
				"3. Finances\n" +
				"4. Factures & Devis\n" +
				"5. Carnet de Crédit\n" +
				"6. Charges Récurrentes\n" +
				"7. Agent Moussa\n" +
				"8. Réglages\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		body = m.dashboardView.View()
	case ViewClients:
		body = m.clientsView.View()
	case ViewFinance:
		body = m.financeView.View()
	case ViewInvoices:
		body = m.invoicesView.View()
	case ViewCredit:
		body = m.creditView.View()
	case ViewRecurring:
		body = m.recurringView.View()
	case ViewChat:
		body = m.chatView.View()
	case ViewSettings:
		body = m.settingsView.View()
	default:
		body = "Unknown View"
	}

	if toasts := m.toastsView(); toasts != "" {
		return lipgloss.JoinVertical(lipgloss.Left, toasts, body)
	}

	return body
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
