package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/yarlson/go-taskcli/internal/config"
	"github.com/yarlson/go-taskcli/internal/deadline"
	"github.com/yarlson/go-taskcli/internal/i18n"
	"github.com/yarlson/go-taskcli/internal/taskstore"
)

const (
	tasksPerDay   = 3
	minCellWidth  = 8
	minCellHeight = 5
)

// Calendar draws the month containing month as a Sunday-first grid. Days
// from the neighbouring months fill the first and last week and are
// dimmed. Each day lists up to three tasks from buckets, keyed by
// YYYY-MM-DD, with a dot in the task's priority colour.
func (r *Renderer) Calendar(month time.Time, buckets map[string][]*taskstore.Record, priorities []config.Option) string {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	last := first.AddDate(0, 1, -1)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	cellWidth := r.cellWidth()

	var b strings.Builder
	b.WriteString(headerStyle.Render(r.t.T(i18n.CalHeader)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(cellWidth*7, lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", int(first.Month()), first.Year()))))
	b.WriteString("\n")

	headers := make([]string, 0, 7)
	for _, day := range r.t.Weekdays() {
		headers = append(headers, headerStyle.Width(cellWidth).Align(lipgloss.Center).Render(day))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headers...))
	b.WriteString("\n")

	for day := start; !day.After(last); {
		week := make([]string, 0, 7)
		for i := 0; i < 7; i++ {
			inMonth := day.Month() == first.Month()
			week = append(week, r.dayCell(day, inMonth, buckets[day.Format(deadline.Layout)], priorities, cellWidth))
			day = day.AddDate(0, 0, 1)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, week...))
		b.WriteString("\n")
	}

	return b.String()
}

func (r *Renderer) cellWidth() int {
	w := r.width / 7
	if w < minCellWidth {
		return minCellWidth
	}
	return w
}

func (r *Renderer) dayCell(day time.Time, inMonth bool, tasks []*taskstore.Record, priorities []config.Option, width int) string {
	// Border takes two columns, padding another two.
	inner := width - 4

	number := fmt.Sprintf("%02d", day.Day())
	switch {
	case r.isToday(day):
		number = lipgloss.NewStyle().
			Bold(true).
			Background(Color("white")).
			Foreground(ContrastText("white")).
			Render(number)
	case !inMonth:
		number = mutedStyle.Render(number)
	}

	lines := []string{number}
	for i, rec := range tasks {
		if i == tasksPerDay {
			lines = append(lines, emptyStyle.Render(truncate(r.t.T(i18n.CalMore, len(tasks)-tasksPerDay), inner)))
			break
		}

		dot := lipgloss.NewStyle().Foreground(priorityColor(priorities, rec.Priority)).Render("•")
		title := truncate(rec.Title, inner-2)
		if !inMonth {
			title = mutedStyle.Render(title)
		}
		lines = append(lines, dot+" "+title)
	}

	border := lipgloss.Color("7")
	if !inMonth {
		border = mutedColor
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2).
		Height(minCellHeight).
		Render(strings.Join(lines, "\n"))
}

func (r *Renderer) isToday(day time.Time) bool {
	y, m, d := r.now.Date()
	return day.Year() == y && day.Month() == m && day.Day() == d
}

func priorityColor(priorities []config.Option, id string) lipgloss.TerminalColor {
	for _, p := range priorities {
		if p.ID == id {
			return Color(p.Color)
		}
	}
	return Color("gray")
}

// truncate shortens s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
