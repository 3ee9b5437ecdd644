package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yarlson/go-taskcli/cmd/internal"
	"github.com/yarlson/go-taskcli/internal/config"
	"github.com/yarlson/go-taskcli/internal/i18n"
	"github.com/yarlson/go-taskcli/internal/query"
	"github.com/yarlson/go-taskcli/internal/taskstore"
)

const progressWidth = 20

func newListCmd() *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:     "list [term]",
		Aliases: []string{"ls", "board"},
		Short:   "Show tasks as a Kanban board",
		Long: `Show the tasks as a Kanban board with one column per status. The
optional term keeps only tasks whose file text contains it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, &filters, firstArg(args))
		},
	}

	filters.bind(cmd)

	return cmd
}

func runList(cmd *cobra.Command, filters *filterFlags, term string) error {
	s, err := newSession(cmd, true)
	if err != nil {
		return err
	}

	_, matched, err := s.records(filters, term)
	if err != nil {
		return err
	}

	s.println(s.view.Board(s.board, matched, filters.status))
	if len(s.board.Statuses) > 0 {
		s.println(s.progress(matched))
	}
	return nil
}

// progress reports the share of non-archived tasks that are done.
func (s *session) progress(records []*taskstore.Record) string {
	var total, done int
	for _, r := range records {
		if query.IsArchived(r) {
			continue
		}
		total++
		if r.Status == config.DoneStatus {
			done++
		}
	}

	pct := internal.Percent(done, total)
	return s.t.T(i18n.BoardProgress, internal.ProgressBar(pct, progressWidth), pct)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
