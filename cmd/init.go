package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-taskcli/cmd/internal"
	"github.com/yarlson/go-taskcli/internal/i18n"
)

type initOptions struct {
	lang  string
	yes   bool
	force bool
}

func newInitCmd() *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default board",
		Long: `Create the board document with the default columns, categories and
priorities in the chosen language. Other commands run this setup on their
own the first time they need a board.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.lang, "lang", "", "board language (en-US, pt-BR); asked for when not given")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "skip the confirmation")
	cmd.Flags().BoolVar(&opts.force, "force", false, "replace an existing board")

	return cmd
}

func runInit(cmd *cobra.Command, opts initOptions) error {
	if opts.lang != "" && !i18n.Supported(opts.lang) {
		return fmt.Errorf("unsupported language %q, expected one of %v", opts.lang, i18n.Languages())
	}

	s, err := newSession(cmd, false)
	if err != nil {
		return err
	}

	if s.boards.Exists() && !opts.force {
		s.println(internal.Warn(s.t.T(i18n.InitExists, s.boards.Path())))
		return nil
	}

	lang := i18n.Normalize(opts.lang)
	if opts.lang == "" {
		lang, err = s.chooseLanguage(languageQuestion, "")
		if err != nil {
			return s.finish(err)
		}
	}

	t := i18n.New(lang)
	if !opts.yes {
		s.prompt.Intro(t.T(i18n.SetupWelcome))
		ok, err := s.prompt.Confirm(t.T(i18n.SetupConfirm), true)
		if err != nil || !ok {
			return s.declineSetup(t)
		}
	}

	return s.bootstrap(t)
}
