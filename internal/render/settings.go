package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yarlson/go-taskcli/internal/config"
	"github.com/yarlson/go-taskcli/internal/i18n"
)

// Settings lists the board's statuses, categories and priorities, each
// drawn in its colour, under the board language.
func (r *Renderer) Settings(board *config.Board) string {
	var b strings.Builder

	lang := board.Lang()
	b.WriteString(titleStyle.Render(r.t.T(i18n.ConfigHeader)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s (%s)", i18n.DisplayName(lang), lang)))
	b.WriteString("\n")

	sections := []struct {
		key  string
		opts []config.Option
	}{
		{i18n.ConfigStatuses, board.Statuses},
		{i18n.ConfigCategories, board.Categories},
		{i18n.ConfigPriorities, board.Priorities},
	}

	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render(r.t.T(sec.key)))
		b.WriteString("\n")
		if len(sec.opts) == 0 {
			b.WriteString("  " + emptyStyle.Render("-") + "\n")
			continue
		}
		for _, o := range sec.opts {
			swatch := lipgloss.NewStyle().Foreground(Color(o.Color)).Render("●")
			fmt.Fprintf(&b, "  %s %s %s\n", swatch, o.Label, mutedStyle.Render(fmt.Sprintf("(%s, %s)", o.ID, o.Color)))
		}
	}

	return b.String()
}
