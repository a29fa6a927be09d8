package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/primezone/internal/dashboard"
	"github.com/dmitrijs2005/primezone/internal/habits"
	"github.com/dmitrijs2005/primezone/internal/roster"
	"github.com/dmitrijs2005/primezone/internal/stats"
)

// Palette
var (
	Purple  = lipgloss.Color("#9333EA")
	Amber   = lipgloss.Color("#F59E0B")
	Rose    = lipgloss.Color("#F43F5E")
	Emerald = lipgloss.Color("#10B981")
	Slate   = lipgloss.Color("#64748B")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(Purple)
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(Slate)
	adminStyle   = lipgloss.NewStyle().Bold(true).Foreground(Amber)
	noticeStyle  = lipgloss.NewStyle().Bold(true).Foreground(Rose)
	doneStyle    = lipgloss.NewStyle().Foreground(Emerald)
	barStyle     = lipgloss.NewStyle().Foreground(Purple)
	spinnerStyle = lipgloss.NewStyle().Bold(true).Foreground(Purple)
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Purple).
			Padding(0, 1)
)

const (
	barWidth     = 20
	shortIDWidth = 8
)

// bar draws value/top as a horizontal bar of width cells.
func bar(value, top, width int) string {
	filled := 0
	if top > 0 && value > 0 {
		filled = (value*width + top - 1) / top
		if filled > width {
			filled = width
		}
	}
	return barStyle.Render(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}

func shortID(id string) string {
	if len(id) > shortIDWidth {
		return id[:shortIDWidth]
	}
	return id
}

func renderHeader(v dashboard.View) string {
	who := v.Member.Name
	if v.Session.IsAdmin {
		who += " " + adminStyle.Render("[ADMIN]")
	}
	return fmt.Sprintf("%s  %s\n%s  %s",
		titleStyle.Render("PRIMEZONE"), who,
		labelStyle.Render(strings.ToUpper(v.Member.Role)), v.SelectedDate)
}

func renderHabits(v dashboard.View) string {
	var b strings.Builder
	b.WriteString(renderHeader(v))
	b.WriteString("\n")

	if len(v.Habits) == 0 {
		b.WriteString(labelStyle.Render("Nenhuma meta definida. Use: add <nome>"))
		return b.String()
	}

	for _, h := range v.Habits {
		mark := "[ ]"
		name := h.Name
		if h.CompletedOn(v.SelectedDate) {
			mark = doneStyle.Render("[x]")
			name = doneStyle.Render(name)
		}
		card := fmt.Sprintf("%s %s  %s\n%s PTS %d  %s",
			mark, name, labelStyle.Render(shortID(h.ID)),
			bar(habits.ProgressWidth(h), 100, barWidth), habits.Streak(h), labelStyle.Render("STREAK"))
		b.WriteString(cardStyle.Render(card))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderStats(v dashboard.View) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("MÉTRICA DE PERFORMANCE"))
	b.WriteString("\n")
	b.WriteString(renderTrend(v.Trend))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d%% (%d/%d)",
		labelStyle.Render("CONCLUSÃO"), v.Progress.Percent, v.Progress.Done, v.Progress.Total)

	if !v.Session.AdminView() {
		return b.String()
	}

	b.WriteString("\n\n")
	b.WriteString(adminStyle.Render("BENCHMARK EQUIPE"))
	b.WriteString("\n")
	b.WriteString(renderBenchmark(v.Benchmark))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("LIDERANÇA"))
	b.WriteString("\n")
	if v.HasLeader {
		fmt.Fprintf(&b, "%s  %d PTS", adminStyle.Render(v.Leader.Member.Name), v.Leader.Points)
	} else {
		b.WriteString(labelStyle.Render("Monitorando Rede Ativa..."))
	}
	return b.String()
}

func renderTrend(points []stats.Point) string {
	top := 0
	for _, p := range points {
		if p.Value > top {
			top = p.Value
		}
	}
	lines := make([]string, 0, len(points))
	for _, p := range points {
		lines = append(lines, fmt.Sprintf("%-4s %s %d", p.Label, bar(p.Value, top, barWidth), p.Value))
	}
	return strings.Join(lines, "\n")
}

func renderBenchmark(entries []stats.BenchmarkEntry) string {
	top := 0
	for _, e := range entries {
		if e.Score > top {
			top = e.Score
		}
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%-10s %s %d", e.ShortName(), bar(e.Score, top, barWidth), e.Score))
	}
	return strings.Join(lines, "\n")
}

func renderMembers(members []roster.Member, activeID string) string {
	lines := make([]string, 0, len(members))
	for _, m := range members {
		marker := " "
		if m.ID == activeID {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("%s %-3s %-18s %s", marker, m.ID, m.Name, labelStyle.Render(m.Role)))
	}
	return strings.Join(lines, "\n")
}
