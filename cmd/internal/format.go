// Package internal provides shared helpers for the task-cli commands:
// prompts, terminal detection and small output formatters.
package internal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	introStyle    = lipgloss.NewStyle().Reverse(true).Bold(true)
	questionStyle = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failureStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Success formats a message reporting a completed change.
func Success(msg string) string {
	return successStyle.Render(msg)
}

// Warn formats a message reporting that nothing was done.
func Warn(msg string) string {
	return warnStyle.Render(msg)
}

// Failure formats a message reporting a failed step.
func Failure(msg string) string {
	return failureStyle.Render(msg)
}

// ProgressBar returns an ASCII progress bar string for the given percentage.
// The width parameter specifies the inner width of the bar (excluding brackets).
// Percentage values are clamped to 0-100.
//
// Example: ProgressBar(50, 20) returns "[==========          ]"
func ProgressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := (percent * width) / 100

	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(strings.Repeat("=", filled))
	sb.WriteString(strings.Repeat(" ", width-filled))
	sb.WriteString("]")

	return sb.String()
}

// Percent returns part as a whole percentage of total, or 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return part * 100 / total
}
