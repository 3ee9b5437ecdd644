package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-taskcli/cmd/internal"
	"github.com/yarlson/go-taskcli/internal/i18n"
)

const (
	configAddCategory = "add-category"
	configLanguage    = "language"
	configShow        = "show"
	configExit        = "exit"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Change board categories and language",
		Long: `Change the board document. Without a subcommand an interactive menu
is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigMenu(cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add-category <name>",
		Short: "Add a task category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, true)
			if err != nil {
				return err
			}
			return s.addCategory(args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "language <code>",
		Short: "Set the board language (en-US, pt-BR)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !i18n.Supported(args[0]) {
				return fmt.Errorf("unsupported language %q, expected one of %v", args[0], i18n.Languages())
			}
			s, err := newSession(cmd, true)
			if err != nil {
				return err
			}
			return s.setLanguage(i18n.Normalize(args[0]))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the board settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, true)
			if err != nil {
				return err
			}
			s.println(s.view.Settings(s.board))
			return nil
		},
	})

	return cmd
}

func runConfigMenu(cmd *cobra.Command) error {
	s, err := newSession(cmd, true)
	if err != nil {
		return err
	}

	for {
		s.prompt.Intro(s.t.T(i18n.ConfigHeader))

		choice, err := s.prompt.Select(s.t.T(i18n.ConfigMenu), []internal.Choice{
			{Value: configAddCategory, Label: s.t.T(i18n.ConfigAddCategory)},
			{Value: configLanguage, Label: s.t.T(i18n.ConfigChangeLanguage)},
			{Value: configShow, Label: s.t.T(i18n.ConfigShow)},
			{Value: configExit, Label: s.t.T(i18n.ConfigExit)},
		}, configExit)
		if err != nil {
			return s.finish(err)
		}

		switch choice.Value {
		case configAddCategory:
			name, err := s.prompt.Text(s.t.T(i18n.ConfigCategoryName), "", s.t.T(i18n.ConfigCategoryRequired))
			if err != nil {
				return s.finish(err)
			}
			if err := s.addCategory(name); err != nil {
				return err
			}
		case configLanguage:
			lang, err := s.chooseLanguage(s.t.T(i18n.ConfigLanguagePrompt), s.board.Lang())
			if err != nil {
				return s.finish(err)
			}
			if err := s.setLanguage(lang); err != nil {
				return err
			}
		case configShow:
			s.println(s.view.Settings(s.board))
		default:
			s.println(s.t.T(i18n.ConfigExiting))
			return nil
		}
	}
}

// addCategory appends a category to the board and saves it. A duplicate
// is reported and leaves the board unchanged.
func (s *session) addCategory(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New(s.t.T(i18n.ConfigCategoryRequired))
	}

	opt, added := s.board.AddCategory(name)
	if !added {
		s.println(internal.Warn(s.t.T(i18n.ConfigCategoryExists, opt.ID)))
		return nil
	}

	if err := s.boards.Save(s.board); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	s.println(internal.Success(s.t.T(i18n.ConfigCategoryAdded, opt.Label)))
	return nil
}

// setLanguage saves lang as the board language and switches the session
// to it.
func (s *session) setLanguage(lang string) error {
	s.board.Language = lang
	if err := s.boards.Save(s.board); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	s.load()
	s.println(internal.Success(s.t.T(i18n.ConfigLanguageSet, i18n.DisplayName(lang))))
	return nil
}
