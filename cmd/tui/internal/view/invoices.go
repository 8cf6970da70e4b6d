package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/razoraze123/flux/internal/invoice"
)

// Invoices are read-only here: the screen lists them and surfaces the
// external document link, nothing more.
type InvoicesModel struct {
	CommonModel
	svc *invoice.Service

	table    table.Model
	invoices []invoice.Invoice

	activeType invoice.Type
	loading    bool
	err        error
	fetchSeq   int
}

func NewInvoicesModel(svc *invoice.Service) InvoicesModel {
	columns := []table.Column{
		{Title: "Number", Width: 10},
		{Title: "Client", Width: 20},
		{Title: "Date", Width: 12},
		{Title: "Amount", Width: 14},
		{Title: "Status", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return InvoicesModel{
		svc:        svc,
		table:      t,
		activeType: invoice.TypeInvoice,
		loading:    true,
		fetchSeq:   1,
	}
}

func (m InvoicesModel) Title() string { return "Factures & Devis" }
func (m InvoicesModel) ShortHelp() string {
	return "Esc: back | tab: invoices/quotes | r: refresh"
}

func (m InvoicesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case invoicesLoadedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}

		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.invoices = msg.invoices
		m.refreshTable()

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			m.fetchSeq++

			return m, m.loadCmd()
		case "tab":
			if m.activeType == invoice.TypeInvoice {
				m.activeType = invoice.TypeQuote
			} else {
				m.activeType = invoice.TypeInvoice
			}

			m.loading = true
			m.fetchSeq++

			return m, m.loadCmd()
		}

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InvoicesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading invoices...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	label := "Factures"
	if m.activeType == invoice.TypeQuote {
		label = "Devis"
	}

	header := fmt.Sprintf("[tab] Type: %s", activeStyle(label))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	link := ""
	if idx := m.table.Cursor(); idx >= 0 && idx < len(m.invoices) {
		link = lipgloss.NewStyle().Faint(true).Render("Document: " + m.invoices[idx].DocumentURL)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		link,
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *InvoicesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.invoices))
	for _, inv := range m.invoices {
		rows = append(rows, table.Row{
			inv.Number,
			inv.Client,
			FormatDate(inv.Date),
			FormatAmount(inv.Amount),
			string(inv.Status),
		})
	}

	m.table.SetRows(rows)
}

type invoicesLoadedMsg struct {
	seq      int
	invoices []invoice.Invoice
	err      error
}

func (m InvoicesModel) loadCmd() tea.Cmd {
	seq := m.fetchSeq
	t := m.activeType

	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		invoices, err := m.svc.List(ctx, invoice.ListFilter{Type: &t})

		return invoicesLoadedMsg{seq: seq, invoices: invoices, err: err}
	}
}
