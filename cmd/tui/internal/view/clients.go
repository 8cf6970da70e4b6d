package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/razoraze123/flux/internal/client"
	"github.com/razoraze123/flux/internal/uistate"
	"github.com/razoraze123/flux/internal/validation"
)

type clientsState int

const (
	clientsStateBrowse clientsState = iota
	clientsStateEdit
)

type ClientsModel struct {
	CommonModel
	svc    *client.Service
	toasts *uistate.Toasts

	state   clientsState
	table   table.Model
	clients []client.Client
	visible []client.Client
	search  textinput.Model
	form    *huh.Form

	loading bool
	err     error

	// Guards against a stale fetch resolving after a newer one was issued
	// for this mount instance.
	fetchSeq int

	editingID   string
	formName    string
	formEmail   string
	formPhone   string
	formCompany string
	formAddress string
	formCity    string
	formZip     string
	formStatus  client.Status
}

func NewClientsModel(svc *client.Service, toasts *uistate.Toasts) ClientsModel {
	columns := []table.Column{
		{Title: "Name", Width: 22},
		{Title: "Company", Width: 22},
		{Title: "Phone", Width: 14},
		{Title: "City", Width: 12},
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

	search := textinput.New()
	search.Placeholder = "Search name or company"
	search.Width = 30

	return ClientsModel{
		svc:      svc,
		toasts:   toasts,
		table:    t,
		search:   search,
		loading:  true,
		fetchSeq: 1,
	}
}

func (m ClientsModel) Title() string { return "Clients" }
func (m ClientsModel) ShortHelp() string {
	if m.state == clientsStateEdit {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | e: edit | x: delete | /: search | r: refresh"
}

func (m ClientsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ClientsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clientsLoadedMsg:
		if msg.seq != m.fetchSeq {
			// A newer fetch is in flight for this mount; drop the stale one.
			return m, nil
		}

		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.clients = msg.clients
		m.refreshTable()

		return m, nil

	case clientSavedMsg:
		m.state = clientsStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.toasts.Add(saveErrorText(msg.err), uistate.KindError)
			return m, nil
		}

		// The service's returned value is the source of truth.
		m.applySaved(msg.saved)
		m.refreshTable()
		m.toasts.Add(fmt.Sprintf("Client %s enregistré", msg.saved.Name), uistate.KindSuccess)

		return m, nil

	case clientDeletedMsg:
		if msg.err != nil {
			m.toasts.Add(fmt.Sprintf("Erreur: %v", msg.err), uistate.KindError)
			return m, nil
		}

		m.removeByID(msg.id)
		m.refreshTable()
		m.toasts.Add("Client supprimé", uistate.KindInfo)

		return m, nil

	case PrimaryActionMsg:
		return m.enterEditMode(nil)

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case clientsStateBrowse:
		return m.updateBrowse(msg)
	case clientsStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m ClientsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.search.Focused() {
			switch keyMsg.String() {
			case "esc":
				m.search.Blur()
				m.search.SetValue("")
				m.refreshTable()

				return m, nil
			case "enter":
				m.search.Blur()
				return m, nil
			}

			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.refreshTable()

			return m, cmd
		}

		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			m.fetchSeq++

			return m, m.loadCmd()
		case "/":
			m.search.Focus()
			return m, textinput.Blink
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

func (m ClientsModel) enterEditMode(c *client.Client) (tea.Model, tea.Cmd) {
	if c != nil {
		m.editingID = c.ID
		m.formName = c.Name
		m.formEmail = c.Email
		m.formPhone = c.Phone
		m.formCompany = c.Company
		m.formAddress = c.Address
		m.formCity = c.City
		m.formZip = c.Zip
		m.formStatus = c.Status
	} else {
		m.editingID = ""
		m.formName = ""
		m.formEmail = ""
		m.formPhone = ""
		m.formCompany = ""
		m.formAddress = ""
		m.formCity = ""
		m.formZip = ""
		m.formStatus = client.StatusActive
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
				Key("phone").
				Title("Phone").
				Value(&m.formPhone).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("phone cannot be empty")
					}
					return nil
				}),

			huh.NewInput().Key("email").Title("Email").Value(&m.formEmail),
			huh.NewInput().Key("company").Title("Company").Value(&m.formCompany),
			huh.NewInput().Key("address").Title("Address").Value(&m.formAddress),
			huh.NewInput().Key("city").Title("City").Value(&m.formCity),
			huh.NewInput().Key("zip").Title("Zip").Value(&m.formZip),

			huh.NewSelect[client.Status]().
				Key("status").
				Title("Status").
				Options(
					huh.NewOption("Active", client.StatusActive),
					huh.NewOption("Pending", client.StatusPending),
					huh.NewOption("Inactive", client.StatusInactive),
				).
				Value(&m.formStatus),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = clientsStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m ClientsModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = clientsStateBrowse
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

func (m ClientsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading clients...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("%d clients", len(m.visible))
	if m.search.Focused() || m.search.Value() != "" {
		header = header + "  " + m.search.View()
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == clientsStateEdit && m.form != nil {
		title := "New Client"
		if m.editingID != "" {
			title = "Edit Client"
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

func (m *ClientsModel) selected() *client.Client {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return nil
	}

	return &m.visible[idx]
}

func (m *ClientsModel) applySaved(saved client.Client) {
	for i := range m.clients {
		if m.clients[i].ID == saved.ID {
			m.clients[i] = saved
			return
		}
	}

	m.clients = append([]client.Client{saved}, m.clients...)
}

func (m *ClientsModel) removeByID(id string) {
	for i := range m.clients {
		if m.clients[i].ID == id {
			m.clients = append(m.clients[:i], m.clients[i+1:]...)
			return
		}
	}
}

func (m *ClientsModel) refreshTable() {
	m.visible = client.FilterSearch(m.clients, m.search.Value())

	rows := make([]table.Row, 0, len(m.visible))
	for _, c := range m.visible {
		rows = append(rows, table.Row{c.Name, c.Company, c.Phone, c.City, string(c.Status)})
	}

	m.table.SetRows(rows)
}

// Messages

type clientsLoadedMsg struct {
	seq     int
	clients []client.Client
	err     error
}

// loadCmd captures the current fetch sequence; bump fetchSeq before calling
// it when issuing a refresh so older in-flight results get dropped.
func (m ClientsModel) loadCmd() tea.Cmd {
	seq := m.fetchSeq

	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		clients, err := m.svc.List(ctx)

		return clientsLoadedMsg{seq: seq, clients: clients, err: err}
	}
}

type clientSavedMsg struct {
	saved client.Client
	err   error
}

func (m ClientsModel) saveCmd() tea.Cmd {
	// Read the submitted values back from the form by key. The Value
	// bindings only prefill; they point into a copy of the model that
	// bubbletea has long since discarded.
	c := client.Client{
		ID:      m.editingID,
		Name:    m.form.GetString("name"),
		Email:   m.form.GetString("email"),
		Phone:   m.form.GetString("phone"),
		Company: m.form.GetString("company"),
		Address: m.form.GetString("address"),
		City:    m.form.GetString("city"),
		Zip:     m.form.GetString("zip"),
		Status:  m.form.Get("status").(client.Status),
	}

	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		saved, err := m.svc.Upsert(ctx, c)

		return clientSavedMsg{saved: saved, err: err}
	}
}

type clientDeletedMsg struct {
	id  string
	err error
}

func (m ClientsModel) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		return clientDeletedMsg{id: id, err: m.svc.Delete(ctx, id)}
	}
}

func saveErrorText(err error) string {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		return "Champs requis manquants: " + strings.Join(vErr.Fields, ", ")
	}

	return fmt.Sprintf("Erreur d'enregistrement: %v", err)
}
