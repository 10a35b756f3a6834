package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rxtech-lab/argo-indicators/internal/pipeline"
)

// Style definitions.
var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// LabelStyle for summary labels.
	LabelStyle = lipgloss.NewStyle().Faint(true).Width(10)

	// BoxStyle frames the run summary.
	BoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// renderSummary formats the result of a run for the terminal.
func renderSummary(stats pipeline.Stats, columns []string) string {
	line := func(label string, value any) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), fmt.Sprint(value))
	}

	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Indicator run complete"),
		line("run", stats.RunID),
		line("bars", stats.Bars),
		line("skipped", stats.Skipped),
		line("pivots", stats.Pivots),
		line("columns", strings.Join(columns, ", ")),
		line("took", stats.Duration.Round(time.Millisecond)),
	))
}
