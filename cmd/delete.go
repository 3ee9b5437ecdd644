package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-taskcli/cmd/internal"
	"github.com/yarlson/go-taskcli/internal/i18n"
	"github.com/yarlson/go-taskcli/internal/taskstore"
)

func newDeleteCmd() *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:     "delete [term]",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, &filters, firstArg(args))
		},
	}

	filters.bind(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, filters *filterFlags, term string) error {
	s, err := newSession(cmd, true)
	if err != nil {
		return err
	}

	rec, err := s.selectTask(filters, term, i18n.DeleteHeader, i18n.DeleteSelect, false)
	if err != nil || rec == nil {
		return s.finish(err)
	}

	ok, err := s.prompt.Confirm(s.t.T(i18n.DeleteConfirm), false)
	if err != nil {
		return s.finish(err)
	}
	if !ok {
		s.println(internal.Warn(s.t.T(i18n.Cancelled)))
		return nil
	}

	if err := s.store.Delete(rec.Filename); err != nil {
		if errors.Is(err, taskstore.ErrNotFound) {
			s.println(internal.Warn(s.t.T(i18n.TaskNotFound, rec.Filename)))
			return nil
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Debug("deleted task", "file", rec.Filename)
	s.println(internal.Success(s.t.T(i18n.DeleteDone)))
	return nil
}
