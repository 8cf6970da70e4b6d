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

	"github.com/razoraze123/flux/internal/recurring"
	"github.com/razoraze123/flux/internal/uistate"
)

type recurringState int

const (
	recurringStateBrowse recurringState = iota
	recurringStateEdit
)

type RecurringModel struct {
	CommonModel
	svc    *recurring.Service
	toasts *uistate.Toasts

	state   recurringState
	table   table.Model
	charges []recurring.Charge
	form    *huh.Form

	loading  bool
	err      error
	fetchSeq int

	editingID     string
	formName      string
	formAmount    string
	formFrequency recurring.Frequency
	formNext      string
	formCategory  string
}

func NewRecurringModel(svc *recurring.Service, toasts *uistate.Toasts) RecurringModel {
	columns := []table.Column{
		{Title: "Name", Width: 22},
		{Title: "Amount", Width: 14},
		{Title: "Frequency", Width: 10},
		{Title: "Next", Width: 12},
		{Title: "Category", Width: 16},
		{Title: "Active", Width: 7},
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

	return RecurringModel{
		svc:      svc,
		toasts:   toasts,
		table:    t,
		loading:  true,
		fetchSeq: 1,
	}
}

func (m RecurringModel) Title() string { return "Charges Récurrentes" }
func (m RecurringModel) ShortHelp() string {
	if m.state == recurringStateEdit {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | space: toggle | e: edit | x: delete | r: refresh"
}

func (m RecurringModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m RecurringModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chargesLoadedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}

		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.charges = msg.charges
		m.refreshTable()

		return m, nil

	case chargeSavedMsg:
		m.state = recurringStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.toasts.Add(saveErrorText(msg.err), uistate.KindError)
			return m, nil
		}

		m.applySaved(msg.saved)
		m.refreshTable()
		m.toasts.Add(fmt.Sprintf("Charge enregistrée: %s", msg.saved.Name), uistate.KindSuccess)

		return m, nil

	case chargeToggledMsg:
		if msg.err != nil {
			m.toasts.Add(fmt.Sprintf("Erreur: %v", msg.err), uistate.KindError)
			return m, nil
		}

		// Mirror the flip locally; NextDate stays as it was.
		for i := range m.charges {
			if m.charges[i].ID == msg.id {
				m.charges[i].Active = !m.charges[i].Active
			}
		}

		m.refreshTable()

		return m, nil

	case chargeDeletedMsg:
		if msg.err != nil {
			m.toasts.Add(fmt.Sprintf("Erreur: %v", msg.err), uistate.KindError)
			return m, nil
		}

		m.removeByID(msg.id)
		m.refreshTable()
		m.toasts.Add("Charge supprimée", uistate.KindInfo)

		return m, nil

	case PrimaryActionMsg:
		return m.enterEditMode(nil)

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case recurringStateBrowse:
		return m.updateBrowse(msg)
	case recurringStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m RecurringModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			m.fetchSeq++

			return m, m.loadCmd()
		case " ":
			if c := m.selected(); c != nil {
				return m, m.toggleCmd(c.ID)
			}
		case "e":
			if c := m.selected(); c != nil {
				return m.enterEditMode(c)
			}
		case "x":
			if c := m.selected(); c != nil {
				return m, m.deleteCmd(c.ID)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m RecurringModel) enterEditMode(c *recurring.Charge) (tea.Model, tea.Cmd) {
	if c != nil {
		m.editingID = c.ID
		m.formName = c.Name
		m.formAmount = strconv.FormatInt(c.Amount, 10)
		m.formFrequency = c.Frequency
		m.formNext = c.NextDate.Format(time.DateOnly)
		m.formCategory = c.Category
	} else {
		m.editingID = ""
		m.formName = ""
		m.formAmount = ""
		m.formFrequency = recurring.FrequencyMonthly
		m.formNext = time.Now().AddDate(0, 1, 0).Format(time.DateOnly)
		m.formCategory = ""
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
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

			huh.NewSelect[recurring.Frequency]().
				Key("frequency").
				Title("Frequency").
				Options(
					huh.NewOption("Hebdomadaire", recurring.FrequencyWeekly),
					huh.NewOption("Mensuelle", recurring.FrequencyMonthly),
					huh.NewOption("Annuelle", recurring.FrequencyYearly),
				).
				Value(&m.formFrequency),

			huh.NewInput().
				Key("next").
				Title("Next date (YYYY-MM-DD)").
				Value(&m.formNext).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}),

			huh.NewInput().
				Key("category").
				Title("Category").
				Value(&m.formCategory).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("category cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = recurringStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m RecurringModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = recurringStateBrowse
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

func (m RecurringModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading recurring charges...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	// Total over every active charge, whatever its frequency.
	var total int64

	for _, c := range m.charges {
		if c.Active {
			total += c.Amount
		}
	}

	header := fmt.Sprintf("Total mensuel (charges actives): %s", activeStyle(FormatAmount(total)))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == recurringStateEdit && m.form != nil {
		title := "New Charge"
		if m.editingID != "" {
			title = "Edit Charge"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *RecurringModel) selected() *recurring.Charge {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.charges) {
		return nil
	}

	return &m.charges[idx]
}

func (m *RecurringModel) applySaved(saved recurring.Charge) {
	for i := range m.charges {
		if m.charges[i].ID == saved.ID {
			m.charges[i] = saved
			return
		}
	}

	// Keep the next-date-ascending order the service guarantees.
	for i := range m.charges {
		if saved.NextDate.Before(m.charges[i].NextDate) {
			m.charges = append(m.charges[:i], append([]recurring.Charge{saved}, m.charges[i:]...)...)
			return
		}
	}

	m.charges = append(m.charges, saved)
}

func (m *RecurringModel) removeByID(id string) {
	for i := range m.charges {
		if m.charges[i].ID == id {
			m.charges = append(m.charges[:i], m.charges[i+1:]...)
			return
		}
	}
}

func (m *RecurringModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.charges))
	for _, c := range m.charges {
		active := "non"
		if c.Active {
			active = "oui"
		}

		rows = append(rows, table.Row{
			c.Name,
			FormatAmount(c.Amount),
			string(c.Frequency),
			FormatDate(c.NextDate),
			c.Category,
			active,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type chargesLoadedMsg struct {
	seq     int
	charges []recurring.Charge
	err     error
}

func (m RecurringModel) loadCmd() tea.Cmd {
	seq := m.fetchSeq

	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		charges, err := m.svc.List(ctx)

		return chargesLoadedMsg{seq: seq, charges: charges, err: err}
	}
}

type chargeSavedMsg struct {
	saved recurring.Charge
	err   error
}

func (m RecurringModel) saveCmd() tea.Cmd {
	// The submitted values live in the form, keyed; the Value bindings only
	// prefill a model copy bubbletea no longer holds.
	amount, _ := strconv.ParseInt(strings.TrimSpace(m.form.GetString("amount")), 10, 64)
	next, _ := time.Parse(time.DateOnly, m.form.GetString("next"))

	c := recurring.Charge{
		ID:        m.editingID,
		Name:      m.form.GetString("name"),
		Amount:    amount,
		Frequency: m.form.Get("frequency").(recurring.Frequency),
		NextDate:  next,
		Category:  m.form.GetString("category"),
		Active:    true,
	}

	if m.editingID != "" {
		for _, existing := range m.charges {
			if existing.ID == m.editingID {
				c.Active = existing.Active
			}
		}
	}

	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		saved, err := m.svc.Upsert(ctx, c)

		return chargeSavedMsg{saved: saved, err: err}
	}
}

type chargeToggledMsg struct {
	id  string
	err error
}

func (m RecurringModel) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		return chargeToggledMsg{id: id, err: m.svc.Toggle(ctx, id)}
	}
}

type chargeDeletedMsg struct {
	id  string
	err error
}

func (m RecurringModel) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		return chargeDeletedMsg{id: id, err: m.svc.Delete(ctx, id)}
	}
}
