package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/yarlson/go-taskcli/internal/config"
	"github.com/yarlson/go-taskcli/internal/deadline"
	"github.com/yarlson/go-taskcli/internal/i18n"
	"github.com/yarlson/go-taskcli/internal/taskstore"
)

const ruleWidth = 50

// Task draws a record: a summary line built from its metadata, then its
// body rendered as markdown between two rules. An empty body is replaced
// by a placeholder.
func (r *Renderer) Task(board *config.Board, rec *taskstore.Record) (string, error) {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(cardTitleStyle.Render(rec.Title))
	b.WriteString("\n")
	if summary := r.summary(board, rec); summary != "" {
		b.WriteString(mutedStyle.Render(summary))
		b.WriteString("\n")
	}

	if strings.TrimSpace(rec.Body) == "" {
		b.WriteString("\n   ")
		b.WriteString(emptyStyle.Render(r.t.T(i18n.ViewNoDescription)))
		b.WriteString("\n\n")
		return b.String(), nil
	}

	md, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.theme),
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	body, err := md.Render(rec.Body)
	if err != nil {
		return "", fmt.Errorf("failed to render task body: %w", err)
	}

	rule := ruleStyle.Render(strings.Repeat("─", ruleWidth))
	b.WriteString("\n" + rule + "\n")
	b.WriteString(body)
	b.WriteString(rule + "\n")
	return b.String(), nil
}

func (r *Renderer) summary(board *config.Board, rec *taskstore.Record) string {
	var parts []string
	if rec.Status != "" {
		parts = append(parts, label(board.Status, rec.Status))
	}
	if rec.Category != "" {
		parts = append(parts, label(board.Category, rec.Category))
	}
	if rec.Priority != "" {
		parts = append(parts, label(board.Priority, rec.Priority))
	}
	if rec.Deadline != "" {
		parts = append(parts, deadline.Format(rec.Deadline, r.t.DateOrder()))
	}
	return strings.Join(parts, " · ")
}

func label(lookup func(string) (config.Option, bool), id string) string {
	if opt, ok := lookup(id); ok && opt.Label != "" {
		return opt.Label
	}
	return id
}
