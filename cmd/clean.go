package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-taskcli/cmd/internal"
	"github.com/yarlson/go-taskcli/internal/config"
	"github.com/yarlson/go-taskcli/internal/i18n"
	"github.com/yarlson/go-taskcli/internal/query"
	"github.com/yarlson/go-taskcli/internal/taskstore"
)

const (
	cleanArchive = "archive"
	cleanDelete  = "delete"
	cleanCancel  = "cancel"
)

type cleanOptions struct {
	archive bool
	delete  bool
	yes     bool
}

func newCleanCmd() *cobra.Command {
	var opts cleanOptions

	cmd := &cobra.Command{
		Use:     "clean",
		Aliases: []string{"clean-done"},
		Short:   "Archive or delete finished tasks",
		Long: `Archive or delete every task whose status is done. Archived tasks keep
their files but are hidden from the board, the calendar and searches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.archive, "archive", false, "archive without asking which action to take")
	cmd.Flags().BoolVar(&opts.delete, "delete", false, "delete without asking which action to take")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "skip the confirmation")
	cmd.MarkFlagsMutuallyExclusive("archive", "delete")

	return cmd
}

func runClean(cmd *cobra.Command, opts cleanOptions) error {
	s, err := newSession(cmd, true)
	if err != nil {
		return err
	}

	s.prompt.Intro(s.t.T(i18n.CleanHeader))

	all, err := s.store.List()
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}
	done := query.Filter(all, query.Criteria{Status: config.DoneStatus})
	if len(done) == 0 {
		s.println(internal.Warn(s.t.T(i18n.CleanNone)))
		return nil
	}

	s.println(s.t.T(i18n.CleanFound, len(done)))

	action, err := s.cleanAction(opts)
	if err != nil {
		return s.finish(err)
	}
	if action == cleanCancel {
		s.println(internal.Warn(s.t.T(i18n.Cancelled)))
		return nil
	}

	if !opts.yes {
		question := i18n.CleanConfirmArchive
		if action == cleanDelete {
			question = i18n.CleanConfirmDelete
		}
		ok, err := s.prompt.Confirm(s.t.T(question, len(done)), false)
		if err != nil {
			return s.finish(err)
		}
		if !ok {
			s.println(internal.Warn(s.t.T(i18n.Cancelled)))
			return nil
		}
	}

	n, err := s.cleanRecords(done, action)
	if n > 0 {
		result := i18n.CleanArchived
		if action == cleanDelete {
			result = i18n.CleanDeleted
		}
		s.println(internal.Success(s.t.T(result, n)))
	}
	return err
}

func (s *session) cleanAction(opts cleanOptions) (string, error) {
	switch {
	case opts.archive:
		return cleanArchive, nil
	case opts.delete:
		return cleanDelete, nil
	}

	choice, err := s.prompt.Select(s.t.T(i18n.CleanAction), []internal.Choice{
		{Value: cleanArchive, Label: s.t.T(i18n.CleanActionArchive)},
		{Value: cleanDelete, Label: s.t.T(i18n.CleanActionDelete)},
		{Value: cleanCancel, Label: s.t.T(i18n.CleanActionCancel)},
	}, cleanArchive)
	if err != nil {
		return "", err
	}
	return choice.Value, nil
}

// cleanRecords applies action to each record and returns how many were
// changed. Records that disappeared in the meantime are skipped; the first
// storage failure stops the batch.
func (s *session) cleanRecords(records []*taskstore.Record, action string) (int, error) {
	apply := s.store.Archive
	if action == cleanDelete {
		apply = s.store.Delete
	}

	var n int
	for _, rec := range records {
		if err := apply(rec.Filename); err != nil {
			if errors.Is(err, taskstore.ErrNotFound) {
				s.logger.Warn("task vanished before clean", "file", rec.Filename)
				continue
			}
			return n, fmt.Errorf("failed to %s %s: %w", action, rec.Filename, err)
		}
		n++
	}
	return n, nil
}
