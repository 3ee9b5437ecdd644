package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-taskcli/cmd/internal"
	"github.com/yarlson/go-taskcli/internal/i18n"
	"github.com/yarlson/go-taskcli/internal/taskstore"
)

func newMoveCmd() *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "move [term]",
		Short: "Move a task to another status",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(cmd, &filters, firstArg(args))
		},
	}

	filters.bind(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, filters *filterFlags, term string) error {
	s, err := newSession(cmd, true)
	if err != nil {
		return err
	}

	rec, err := s.selectTask(filters, term, i18n.MoveHeader, i18n.MoveSelect, false)
	if err != nil || rec == nil {
		return s.finish(err)
	}

	status, err := s.prompt.Select(s.t.T(i18n.MoveStatus), s.statusChoices(), rec.Status)
	if err != nil {
		return s.finish(err)
	}

	if err := s.store.UpdateStatus(rec.Filename, status.Value); err != nil {
		if errors.Is(err, taskstore.ErrNotFound) {
			s.println(internal.Warn(s.t.T(i18n.TaskNotFound, rec.Filename)))
			return nil
		}
		return fmt.Errorf("failed to move task: %w", err)
	}

	s.logger.Debug("moved task", "file", rec.Filename, "from", rec.Status, "to", status.Value)
	s.println(internal.Success(s.t.T(i18n.MoveDone, status.Label)))
	return nil
}
