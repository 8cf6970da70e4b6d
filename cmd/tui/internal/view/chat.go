package view

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/razoraze123/flux/internal/agent"
)

type ChatModel struct {
	CommonModel
	session *agent.Session

	viewport viewport.Model
	input    textinput.Model
	typing   bool
}

func NewChatModel(session *agent.Session) ChatModel {
	input := textinput.New()
	input.Placeholder = "Pose ta question à Moussa..."
	input.Focus()
	input.CharLimit = 500
	input.Width = 60

	vp := viewport.New(70, 18)

	m := ChatModel{
		session:  session,
		viewport: vp,
		input:    input,
	}
	m.renderHistory()

	return m
}

func (m ChatModel) Title() string     { return "Agent Moussa" }
func (m ChatModel) ShortHelp() string { return "Enter: send | Esc: back" }

func (m ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		m.typing = false
		m.renderHistory()
		m.viewport.GotoBottom()

		return m, nil

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width - 6
		m.viewport.Height = msg.Height - 8
		m.renderHistory()

		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.typing {
				return m, nil
			}

			m.input.SetValue("")
			m.typing = true

			// Echo the question immediately; the session appends it again
			// internally, so render from a local copy until the reply lands.
			m.renderHistoryWith(agent.Message{Role: agent.RoleUser, Content: text})
			m.viewport.GotoBottom()

			return m, m.sendCmd(text)
		}
	}

	var cmds []tea.Cmd

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

var (
	userBubble = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	agentBubble = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	typingStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

func (m ChatModel) View() string {
	chat := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(m.viewport.View())

	status := ""
	if m.typing {
		status = typingStyle.Render("Moussa écrit...")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		chat,
		status,
		m.input.View(),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ChatModel) renderHistory() {
	m.renderHistoryWith()
}

func (m *ChatModel) renderHistoryWith(extra ...agent.Message) {
	history := append(m.session.History(), extra...)

	width := m.viewport.Width - 4
	if width < 20 {
		width = 20
	}

	var b strings.Builder

	for i, msg := range history {
		if i > 0 {
			b.WriteString("\n\n")
		}

		if msg.Role == agent.RoleUser {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right,
				userBubble.MaxWidth(width*3/4).Render(msg.Content)))
		} else {
			b.WriteString(agentBubble.MaxWidth(width * 3 / 4).Render(msg.Content))
		}
	}

	m.viewport.SetContent(b.String())
}

type chatReplyMsg struct {
	reply string
}

func (m ChatModel) sendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		return chatReplyMsg{reply: m.session.Send(ctx, text)}
	}
}
