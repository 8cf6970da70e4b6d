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

	"github.com/razoraze123/flux/internal/finance"
	"github.com/razoraze123/flux/internal/uistate"
)

type financeState int

const (
	financeStateBrowse financeState = iota
	financeStateAdd
)

type FinanceModel struct {
	CommonModel
	svc    *finance.Service
	toasts *uistate.Toasts

	state   financeState
	table   table.Model
	txs     []finance.Transaction
	visible []finance.Transaction
	form    *huh.Form

	activeType finance.Type
	// Index into the category filter cycle; 0 means all.
	categoryIdx int

	loading  bool
	err      error
	fetchSeq int

	formAmount   string
	formDesc     string
	formCategory string
	formDate     string
}

func NewFinanceModel(svc *finance.Service, toasts *uistate.Toasts) FinanceModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Amount", Width: 14},
		{Title: "Category", Width: 14},
		{Title: "Description", Width: 36},
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

	return FinanceModel{
		svc:        svc,
		toasts:     toasts,
		table:      t,
		activeType: finance.TypeExpense,
		loading:    true,
		fetchSeq:   1,
	}
}

func (m FinanceModel) Title() string { return "Finance" }
func (m FinanceModel) ShortHelp() string {
	if m.state == financeStateAdd {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | tab: income/expense | c: category | x: delete | r: refresh"
}

func (m FinanceModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m FinanceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case financeLoadedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}

		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.txs = msg.txs
		m.categoryIdx = 0
		m.refreshTable()

		return m, nil

	case financeSavedMsg:
		m.state = financeStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.toasts.Add(saveErrorText(msg.err), uistate.KindError)
			return m, nil
		}

		if msg.saved.Type == m.activeType {
			m.insertSorted(msg.saved)
			m.refreshTable()
		}

		m.toasts.Add(fmt.Sprintf("%s enregistrée: %s", entryLabel(msg.saved.Type), FormatAmount(msg.saved.Amount)), uistate.KindSuccess)

		return m, nil

	case financeDeletedMsg:
		if msg.err != nil {
			m.toasts.Add(fmt.Sprintf("Erreur: %v", msg.err), uistate.KindError)
			return m, nil
		}

		m.removeByID(msg.id)
		m.refreshTable()
		m.toasts.Add("Entrée supprimée", uistate.KindInfo)

		return m, nil

	case PrimaryActionMsg:
		return m.enterAddMode()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case financeStateBrowse:
		return m.updateBrowse(msg)
	case financeStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m FinanceModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			m.fetchSeq++

			return m, m.loadCmd()
		case "tab":
			if m.activeType == finance.TypeExpense {
				m.activeType = finance.TypeIncome
			} else {
				m.activeType = finance.TypeExpense
			}

			m.loading = true
			m.fetchSeq++

			return m, m.loadCmd()
		case "c":
			// Cycle through the categories present in the loaded list.
			m.categoryIdx = (m.categoryIdx + 1) % (len(m.loadedCategories()) + 1)
			m.refreshTable()

			return m, nil
		case "x":
			if tx := m.selected(); tx != nil {
				return m, m.deleteCmd(tx.ID)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m FinanceModel) enterAddMode() (tea.Model, tea.Cmd) {
	categories := finance.Categories(m.activeType)

	m.formAmount = ""
	m.formDesc = ""
	m.formCategory = categories[0]
	m.formDate = time.Now().Format(time.DateOnly)

	options := make([]huh.Option[string], len(categories))
	for i, cat := range categories {
		options[i] = huh.NewOption(cat, cat)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
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
				Key("description").
				Title("Description").
				Value(&m.formDesc).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(options...).
				Value(&m.formCategory),

			huh.NewInput().
				Key("date").
				Title("Date (YYYY-MM-DD)").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = financeStateAdd
	m.table.Blur()

	return m, m.form.Init()
}

func (m FinanceModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = financeStateBrowse
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

func (m FinanceModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf(
		"[tab] Type: %s | [c] Category: %s",
		activeStyle(entryLabel(m.activeType)),
		activeStyle(m.categoryLabel()),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == financeStateAdd && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("New %s\n\n%s", entryLabel(m.activeType), m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *FinanceModel) loadedCategories() []string {
	seen := make(map[string]bool)

	var out []string

	for _, tx := range m.txs {
		if !seen[tx.Category] {
			seen[tx.Category] = true
			out = append(out, tx.Category)
		}
	}

	return out
}

func (m *FinanceModel) categoryLabel() string {
	if m.categoryIdx == 0 {
		return "Tout"
	}

	categories := m.loadedCategories()
	if m.categoryIdx-1 < len(categories) {
		return categories[m.categoryIdx-1]
	}

	return "Tout"
}

func (m *FinanceModel) selected() *finance.Transaction {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return nil
	}

	return &m.visible[idx]
}

func (m *FinanceModel) insertSorted(tx finance.Transaction) {
	for i := range m.txs {
		if m.txs[i].ID == tx.ID {
			m.txs[i] = tx
			return
		}
	}

	// Keep the date-descending order the service guarantees.
	for i := range m.txs {
		if !tx.Date.Before(m.txs[i].Date) {
			m.txs = append(m.txs[:i], append([]finance.Transaction{tx}, m.txs[i:]...)...)
			return
		}
	}

	m.txs = append(m.txs, tx)
}

func (m *FinanceModel) removeByID(id string) {
	for i := range m.txs {
		if m.txs[i].ID == id {
			m.txs = append(m.txs[:i], m.txs[i+1:]...)
			return
		}
	}
}

func (m *FinanceModel) refreshTable() {
	category := ""
	if m.categoryIdx > 0 {
		category = m.categoryLabel()
	}

	m.visible = finance.FilterCategory(m.txs, category)

	rows := make([]table.Row, 0, len(m.visible))
	for _, tx := range m.visible {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			FormatAmount(tx.Amount),
			tx.Category,
			tx.Description,
		})
	}

	m.table.SetRows(rows)
}

func entryLabel(t finance.Type) string {
	if t == finance.TypeIncome {
		return "Recette"
	}

	return "Dépense"
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

// Messages

type financeLoadedMsg struct {
	seq int
	txs []finance.Transaction
	err error
}

func (m FinanceModel) loadCmd() tea.Cmd {
	seq := m.fetchSeq
	t := m.activeType

	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		txs, err := m.svc.List(ctx, finance.ListFilter{Type: &t})

		return financeLoadedMsg{seq: seq, txs: txs, err: err}
	}
}

type financeSavedMsg struct {
	saved finance.Transaction
	err   error
}

func (m FinanceModel) saveCmd() tea.Cmd {
	// The submitted values live in the form, keyed; the Value bindings only
	// prefill a model copy bubbletea no longer holds.
	amount, _ := strconv.ParseInt(strings.TrimSpace(m.form.GetString("amount")), 10, 64)
	date, _ := time.Parse(time.DateOnly, m.form.GetString("date"))

	tx := finance.Transaction{
		Type:        m.activeType,
		Amount:      amount,
		Description: m.form.GetString("description"),
		Category:    m.form.GetString("category"),
		Date:        date,
	}

	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		saved, err := m.svc.Upsert(ctx, tx)

		return financeSavedMsg{saved: saved, err: err}
	}
}

type financeDeletedMsg struct {
	id  string
	err error
}

func (m FinanceModel) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		return financeDeletedMsg{id: id, err: m.svc.Delete(ctx, id)}
	}
}
