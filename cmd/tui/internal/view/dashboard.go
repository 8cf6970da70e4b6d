package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/razoraze123/flux/internal/finance"
)

type DashboardModel struct {
	CommonModel
	svc *finance.Service

	stats    finance.Stats
	loading  bool
	err      error
	fetchSeq int
}

func NewDashboardModel(svc *finance.Service) DashboardModel {
	return DashboardModel{svc: svc, loading: true, fetchSeq: 1}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}

		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.stats = msg.stats

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			m.fetchSeq++

			return m, m.loadCmd()
		}
	}

	return m, nil
}

var (
	cardStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(28)

	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render(fmt.Sprintf("Solde Total\n%s", FormatAmount(m.stats.TotalBalance))),
		cardStyle.Render(incomeStyle.Render(fmt.Sprintf("Recettes\n%s", FormatAmount(m.stats.MonthlyIncome)))),
		cardStyle.Render(expenseStyle.Render(fmt.Sprintf("Dépenses\n%s", FormatAmount(m.stats.MonthlyExpense)))),
	)

	var distribution strings.Builder

	distribution.WriteString("Répartition des dépenses\n")

	for _, seg := range m.stats.Distribution {
		bar := strings.Repeat("█", seg.Percentage/4)
		line := fmt.Sprintf("%-10s %s %d%%\n", seg.Category,
			lipgloss.NewStyle().Foreground(lipgloss.Color(seg.Color)).Render(bar),
			seg.Percentage,
		)
		distribution.WriteString(line)
	}

	var recent strings.Builder

	recent.WriteString("Transactions récentes\n")

	for _, tx := range m.stats.Recent {
		sign := "-"
		style := expenseStyle

		if tx.Type == finance.TypeIncome {
			sign = "+"
			style = incomeStyle
		}

		recent.WriteString(fmt.Sprintf("%s  %-26s %s\n",
			FormatDate(tx.Date),
			tx.Description,
			style.Render(sign+FormatAmount(tx.Amount)),
		))
	}

	trend := faintStyle.Render("Tendance: " + sparkline(m.stats.Trend))

	content := lipgloss.JoinVertical(lipgloss.Left,
		cards,
		"",
		distribution.String(),
		recent.String(),
		trend,
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

var sparks = []rune("▁▂▃▄▅▆▇█")

func sparkline(points []int) string {
	if len(points) == 0 {
		return ""
	}

	minV, maxV := points[0], points[0]

	for _, p := range points[1:] {
		if p < minV {
			minV = p
		}

		if p > maxV {
			maxV = p
		}
	}

	span := maxV - minV
	if span == 0 {
		span = 1
	}

	var b strings.Builder

	for _, p := range points {
		idx := (p - minV) * (len(sparks) - 1) / span
		b.WriteRune(sparks[idx])
	}

	return b.String()
}

type statsLoadedMsg struct {
	seq   int
	stats finance.Stats
	err   error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	seq := m.fetchSeq

	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		stats, err := m.svc.Stats(ctx)

		return statsLoadedMsg{seq: seq, stats: stats, err: err}
	}
}
