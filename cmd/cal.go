package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-taskcli/internal/query"
)

const monthLayout = "2006-01"

func newCalCmd() *cobra.Command {
	var filters filterFlags
	var month string

	cmd := &cobra.Command{
		Use:     "cal",
		Aliases: []string{"calendar"},
		Short:   "Show deadlines on a monthly calendar",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCal(cmd, &filters, month)
		},
	}

	filters.bind(cmd)
	cmd.Flags().StringVarP(&month, "month", "m", "", "month to show as YYYY-MM (default: current month)")

	return cmd
}

func runCal(cmd *cobra.Command, filters *filterFlags, month string) error {
	shown := now()
	if month != "" {
		m, err := time.ParseInLocation(monthLayout, month, shown.Location())
		if err != nil {
			return fmt.Errorf("invalid --month %q, expected YYYY-MM", month)
		}
		shown = m
	}

	s, err := newSession(cmd, true)
	if err != nil {
		return err
	}

	_, matched, err := s.records(filters, "")
	if err != nil {
		return err
	}

	s.println(s.view.Calendar(shown, query.BucketByDeadline(matched), s.board.Priorities))
	return nil
}
