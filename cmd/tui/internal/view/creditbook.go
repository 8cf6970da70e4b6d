package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/razoraze123/flux/internal/debt"
	"github.com/razoraze123/flux/internal/uistate"
)

type creditState int

const (
	creditStateBrowse creditState = iota
	creditStateEdit
)

// CreditBookModel tracks receivables ("on me doit") and payables ("je dois")
// in two tabs, with a WhatsApp reminder link for the selected entry.
type CreditBookModel struct {
	CommonModel
	svc    *debt.Service
	toasts *uistate.Toasts

	state creditState
	table table.Model
	debts []debt.Debt
	form  *huh.Form

	activeType debt.Type
	loading    bool
	err        error
	fetchSeq   int

	editingID  string
	formPerson string
	formAmount string
	formDue    string
	formPhone  string
	formReason string
}

func NewCreditBookModel(svc *debt.Service, toasts *uistate.Toasts) CreditBookModel {
	columns := []table.Column{
		{Title: "Person", Width: 20},
		{Title: "Amount", Width: 14},
		{Title: "Due", Width: 12},
		{Title: "Reason", Width: 24},
		{Title: "Phone", Width: 12},
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

	return CreditBookModel{
		svc:        svc,
		toasts:     toasts,
		table:      t,
		activeType: debt.TypeReceivable,
		loading:    true,
		fetchSeq:   1,
	}
}

func (m CreditBookModel) Title() string { return "Crédits & Dettes" }
func (m CreditBookModel) ShortHelp() string {
	if m.state == creditStateEdit {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | tab: receivable/payable | e: edit | x: delete | r: refresh"
}

func (m CreditBookModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CreditBookModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case debtsLoadedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}

		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.debts = msg.debts
		m.refreshTable()

		return m, nil

	case debtSavedMsg:
		m.state = creditStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.toasts.Add(saveErrorText(msg.err), uistate.KindError)
			return m, nil
		}

		if msg.saved.Type == m.activeType {
			m.applySaved(msg.saved)
			m.refreshTable()
		}

		m.toasts.Add(fmt.Sprintf("Dette enregistrée: %s", msg.saved.Person), uistate.KindSuccess)

		return m, nil

	case debtDeletedMsg:
		if msg.err != nil {
			m.toasts.Add(fmt.Sprintf("Erreur: %v", msg.err), uistate.KindError)
			return m, nil
		}

		m.removeByID(msg.id)
		m.refreshTable()
		m.toasts.Add("Dette supprimée", uistate.KindInfo)

		return m, nil

	case PrimaryActionMsg:
		return m.enterEditMode(nil)

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case creditStateBrowse:
		return m.updateBrowse(msg)
	case creditStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m CreditBookModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			m.fetchSeq++

			return m, m.loadCmd()
		case "tab":
			if m.activeType == debt.TypeReceivable {
				m.activeType = debt.TypePayable
			} else {
				m.activeType = debt.TypeReceivable
			}

			m.loading = true
			m.fetchSeq++

			return m, m.loadCmd()
		case "e":
			if d := m.selected(); d != nil {
				return m.enterEditMode(d)
			}
		case "x":
			if d := m.selected(); d != nil {
				return m, m.deleteCmd(d.ID)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CreditBookModel) enterEditMode(d *debt.Debt) (tea.Model, tea.Cmd) {
	if d != nil {
		m.editingID = d.ID
		m.formPerson = d.Person
		m.formAmount = strconv.FormatInt(d.Amount, 10)
		m.formDue = d.DueDate.Format(time.DateOnly)
		m.formPhone = d.Phone
		m.formReason = d.Reason
	} else {
		m.editingID = ""
		m.formPerson = ""
		m.formAmount = ""
		m.formDue = time.Now().AddDate(0, 0, 14).Format(time.DateOnly)
		m.formPhone = ""
		m.formReason = ""
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("person").
				Title("Person").
				Value(&m.formPerson).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("person cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount (FCFA)").
				Value(&m.formAmount).
				Validate(func(s string) error {
					n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
					if err != nil || n <= 0 {
						return fmt.Errorf("enter a positive whole amount")
					}
					return nil
				}),

			huh.NewInput().
				Key("due").
				Title("Due date (YYYY-MM-DD)").
				Value(&m.formDue).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}),

			huh.NewInput().Key("phone").Title("Phone").Value(&m.formPhone),

			huh.NewInput().
				Key("reason").
				Title("Reason").
				Value(&m.formReason).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("reason cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = creditStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m CreditBookModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = creditStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
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

func (m CreditBookModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading debts...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	label := "On me doit"
	if m.activeType == debt.TypePayable {
		label = "Je dois"
	}

	header := fmt.Sprintf("[tab] %s", activeStyle(label))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	reminder := ""
	if d := m.selected(); d != nil {
		reminder = lipgloss.NewStyle().Faint(true).Render("Rappel WhatsApp: " + debt.ReminderLink(*d))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		reminder,
	)

	if m.state == creditStateEdit && m.form != nil {
		title := "New Debt"
		if m.editingID != "" {
			title = "Edit Debt"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("%s (%s)\n\n%s", title, label, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *CreditBookModel) selected() *debt.Debt {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.debts) {
		return nil
	}

	return &m.debts[idx]
}

func (m *CreditBookModel) applySaved(saved debt.Debt) {
	for i := range m.debts {
		if m.debts[i].ID == saved.ID {
			m.debts[i] = saved
			return
		}
	}

	// Keep the due-date-ascending order the service guarantees.
	for i := range m.debts {
		if saved.DueDate.Before(m.debts[i].DueDate) {
			m.debts = append(m.debts[:i], append([]debt.Debt{saved}, m.debts[i:]...)...)
			return
		}
	}

	m.debts = append(m.debts, saved)
}

func (m *CreditBookModel) removeByID(id string) {
	for i := range m.debts {
		if m.debts[i].ID == id {
			m.debts = append(m.debts[:i], m.debts[i+1:]...)
			return
		}
	}
}

func (m *CreditBookModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.debts))
	for _, d := range m.debts {
		rows = append(rows, table.Row{
			d.Person,
			FormatAmount(d.Amount),
			FormatDate(d.DueDate),
			d.Reason,
			d.Phone,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type debtsLoadedMsg struct {
	seq   int
	debts []debt.Debt
	err   error
}

func (m CreditBookModel) loadCmd() tea.Cmd {
	seq := m.fetchSeq
	t := m.activeType

	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		debts, err := m.svc.List(ctx, debt.ListFilter{Type: &t})

		return debtsLoadedMsg{seq: seq, debts: debts, err: err}
	}
}

type debtSavedMsg struct {
	saved debt.Debt
	err   error
}

func (m CreditBookModel) saveCmd() tea.Cmd {
	// The submitted values live in the form, keyed; the Value bindings only
	// prefill a model copy bubbletea no longer holds.
	amount, _ := strconv.ParseInt(strings.TrimSpace(m.form.GetString("amount")), 10, 64)
	due, _ := time.Parse(time.DateOnly, m.form.GetString("due"))

	d := debt.Debt{
		ID:      m.editingID,
		Type:    m.activeType,
		Person:  m.form.GetString("person"),
		Amount:  amount,
		DueDate: due,
		Phone:   m.form.GetString("phone"),
		Reason:  m.form.GetString("reason"),
	}

	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		saved, err := m.svc.Upsert(ctx, d)

		return debtSavedMsg{saved: saved, err: err}
	}
}

type debtDeletedMsg struct {
	id  string
	err error
}

func (m CreditBookModel) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		return debtDeletedMsg{id: id, err: m.svc.Delete(ctx, id)}
	}
}
