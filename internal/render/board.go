package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yarlson/go-taskcli/internal/config"
	"github.com/yarlson/go-taskcli/internal/deadline"
	"github.com/yarlson/go-taskcli/internal/i18n"
	"github.com/yarlson/go-taskcli/internal/query"
	"github.com/yarlson/go-taskcli/internal/taskstore"
)

const (
	columnGap      = 2
	minColumnWidth = 18
)

// Board draws one column per board status, restricted to statusFilter
// when it is set. Records whose status has no column are not shown.
func (r *Renderer) Board(board *config.Board, records []*taskstore.Record, statusFilter string) string {
	statuses := board.Statuses
	if statusFilter != "" {
		statuses = nil
		if s, ok := board.Status(statusFilter); ok {
			statuses = []config.Option{s}
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(r.t.T(i18n.BoardTitle)))
	b.WriteString("\n")

	if len(statuses) == 0 {
		b.WriteString(emptyStyle.Render(r.t.T(i18n.BoardNoColumns)))
		b.WriteString("\n")
		return b.String()
	}

	width := r.columnWidth(len(statuses))
	groups := query.GroupByStatus(records)

	columns := make([]string, 0, len(statuses)*2)
	for i, status := range statuses {
		if i > 0 {
			columns = append(columns, strings.Repeat(" ", columnGap))
		}
		columns = append(columns, r.column(board, status, groups[status.ID], width))
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) columnWidth(n int) int {
	w := (r.width - columnGap*(n-1)) / n
	if w < minColumnWidth {
		return minColumnWidth
	}
	return w
}

func (r *Renderer) column(board *config.Board, status config.Option, records []*taskstore.Record, width int) string {
	header := lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(Color(status.Color)).
		Render(fmt.Sprintf("%s (%d)", status.Label, len(records)))

	parts := []string{header, ""}
	if len(records) == 0 {
		parts = append(parts, emptyStyle.Render(r.t.T(i18n.BoardEmpty)))
	}
	for _, rec := range records {
		parts = append(parts, r.card(board, rec, width))
	}

	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// card draws a single task: title, category, priority, deadline and id.
func (r *Renderer) card(board *config.Board, rec *taskstore.Record, width int) string {
	inner := width - 4
	lines := []string{cardTitleStyle.Render(truncate(rec.Title, inner))}

	if rec.Category != "" {
		label, color := rec.Category, ""
		if opt, ok := board.Category(rec.Category); ok {
			label, color = opt.Label, opt.Color
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(Color(color)).Render(truncate(label, inner)))
	}

	if rec.Priority != "" {
		label, color := rec.Priority, ""
		if opt, ok := board.Priority(rec.Priority); ok {
			label, color = opt.Label, opt.Color
		}
		dot := lipgloss.NewStyle().Foreground(Color(color)).Render("●")
		lines = append(lines, dot+" "+truncate(label, inner-2))
	}

	if rec.Deadline != "" {
		lines = append(lines, r.deadlineLine(rec.Deadline, inner))
	}

	if rec.ID != "" {
		lines = append(lines, mutedStyle.Render(truncate("#"+rec.ID, inner)))
	}

	return cardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) deadlineLine(stored string, width int) string {
	line := deadline.Format(stored, r.t.DateOrder())

	switch deadline.Classify(stored, r.now) {
	case deadline.Overdue:
		return overdueStyle.Render(truncate(line+" "+r.t.T(i18n.BoardOverdue), width))
	case deadline.DueToday:
		return todayStyle.Render(truncate(line+" "+r.t.T(i18n.BoardToday), width))
	default:
		return truncate(line, width)
	}
}
