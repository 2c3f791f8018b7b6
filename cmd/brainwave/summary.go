package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/brainwave/driver"
)

var (
	summaryStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("39")).Padding(0, 1)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// renderSummary formats the end-of-run counters printed after the screen is released
func renderSummary(s driver.Summary, elapsed time.Duration, session string) string {
	rows := [][2]string{
		{"frames", humanize.Comma(int64(s.Frames))},
		{"cycles", humanize.Comma(int64(s.Cycles))},
		{"phase", s.Phase.String()},
		{"runtime", elapsed.Round(time.Second).String()},
		{"session", shortSession(session)},
	}
	if s.Fallbacks > 0 {
		rows = append(rows, [2]string{"fallbacks", humanize.Comma(int64(s.Fallbacks))})
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, headerStyle.Render("brainwave"))
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r[0]), valueStyle.Render(r[1])))
	}
	return summaryStyle.Render(strings.Join(lines, "\n"))
}
