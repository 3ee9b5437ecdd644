package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yarlson/go-taskcli/internal/i18n"
)

func newViewCmd() *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "view [term]",
		Short: "Pick a task and show its document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, &filters, firstArg(args), false)
		},
	}

	filters.bind(cmd)

	return cmd
}

func newSearchCmd() *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search task text and show the chosen task",
		Long:  "Search the full text of every task. The term is asked for when not given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, &filters, firstArg(args), true)
		},
	}

	filters.bind(cmd)

	return cmd
}

func runView(cmd *cobra.Command, filters *filterFlags, term string, askTerm bool) error {
	s, err := newSession(cmd, true)
	if err != nil {
		return err
	}

	if askTerm && term == "" {
		term, err = s.prompt.Text(s.t.T(i18n.SearchPrompt), "", s.t.T(i18n.SearchRequired))
		if err != nil {
			return s.finish(err)
		}
	}

	rec, err := s.selectTask(filters, term, i18n.ViewHeader, i18n.ViewSelect, true)
	if err != nil || rec == nil {
		return s.finish(err)
	}

	out, err := s.view.Task(s.board, rec)
	if err != nil {
		return err
	}
	s.println(out)
	return nil
}
