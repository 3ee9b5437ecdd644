package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yarlson/go-taskcli/cmd/internal"
	"github.com/yarlson/go-taskcli/internal/config"
	"github.com/yarlson/go-taskcli/internal/i18n"
	"github.com/yarlson/go-taskcli/internal/logging"
	"github.com/yarlson/go-taskcli/internal/query"
	"github.com/yarlson/go-taskcli/internal/render"
	"github.com/yarlson/go-taskcli/internal/taskstore"
)

// languageQuestion is asked before any language is known.
const languageQuestion = "Choose a language / Escolha um idioma:"

// errSetupRequired ends a command whose user declined the first-run setup.
var errSetupRequired = errors.New("initialization is required")

// session is everything one command invocation works with. It is built
// once per command from settings and the board document and passed
// explicitly; nothing here outlives the command.
type session struct {
	cfg    *config.Config
	boards *config.BoardStore
	board  *config.Board
	store  *taskstore.LocalStore
	t      *i18n.Translator
	view   *render.Renderer
	prompt *internal.Prompter
	logger *log.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// newSession loads settings and, when needBoard is set, the board
// document, running the first-run setup if the document is missing.
func newSession(cmd *cobra.Command, needBoard bool) (*session, error) {
	cfg, err := config.LoadConfigWithFile(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if tasksDir != "" {
		cfg.Tasks.Dir = tasksDir
	}
	if boardFile != "" {
		cfg.Board.File = boardFile
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)

	s := &session{
		cfg:    cfg,
		boards: config.NewBoardStore(cfg.Board.File, logger),
		prompt: internal.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		logger: logger,
		in:     cmd.InOrStdin(),
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}

	if needBoard && !s.boards.Exists() {
		if err := s.firstRunSetup(); err != nil {
			return nil, err
		}
	}

	s.load()
	return s, nil
}

// load reads the board document and builds the pieces that depend on its
// language.
func (s *session) load() {
	s.board = s.boards.Load()
	s.t = i18n.New(s.board.Lang())

	width := s.cfg.View.Width
	if width <= 0 {
		width, _ = internal.TerminalWidth(s.out)
	}

	s.view = render.New(s.t,
		render.WithWidth(width),
		render.WithTheme(s.cfg.View.Theme),
		render.WithNow(now()),
	)
	s.store = taskstore.NewLocalStore(s.cfg.Tasks.Dir,
		taskstore.WithClock(now),
		taskstore.WithLogger(s.logger),
	)
}

// firstRunSetup asks for a language and confirmation, then writes the
// default board.
func (s *session) firstRunSetup() error {
	lang, err := s.chooseLanguage(languageQuestion, "")
	if err != nil {
		return s.declineSetup(i18n.New(""))
	}

	t := i18n.New(lang)
	s.prompt.Intro(t.T(i18n.SetupWelcome))
	s.println(t.T(i18n.SetupFirstRun))

	ok, err := s.prompt.Confirm(t.T(i18n.SetupConfirm), true)
	if err != nil || !ok {
		return s.declineSetup(t)
	}

	return s.bootstrap(t)
}

func (s *session) declineSetup(t *i18n.Translator) error {
	s.println(internal.Failure(t.T(i18n.SetupRequired)))
	return errSetupRequired
}

func (s *session) bootstrap(t *i18n.Translator) error {
	if _, err := s.boards.Bootstrap(t.Language()); err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}
	s.logger.Info("created board", "path", s.boards.Path(), "language", t.Language())
	s.println(internal.Success(t.T(i18n.SetupDone)))
	return nil
}

// chooseLanguage offers every supported language, each in its own name.
func (s *session) chooseLanguage(message, current string) (string, error) {
	langs := i18n.Languages()
	choices := make([]internal.Choice, len(langs))
	for i, lang := range langs {
		choices[i] = internal.Choice{Value: lang, Label: fmt.Sprintf("%s (%s)", i18n.DisplayName(lang), lang)}
	}

	choice, err := s.prompt.Select(message, choices, current)
	if err != nil {
		return "", err
	}
	return choice.Value, nil
}

// finish turns a prompt cancellation into a clean exit.
func (s *session) finish(err error) error {
	if errors.Is(err, internal.ErrCancelled) {
		s.println(internal.Warn(s.t.T(i18n.Cancelled)))
		return nil
	}
	return err
}

func (s *session) println(msg string) {
	_, _ = fmt.Fprintln(s.out, msg)
}

// filterFlags are the record filters shared by the listing commands.
type filterFlags struct {
	status   string
	category string
	all      bool
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.status, "status", "s", "", "only tasks with this status id")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "only tasks whose category contains this text")
	cmd.Flags().BoolVarP(&f.all, "all", "a", false, "include archived tasks")
}

func (f *filterFlags) criteria(text string) query.Criteria {
	return query.Criteria{
		Status:          f.status,
		Category:        f.category,
		Text:            text,
		IncludeArchived: f.all,
	}
}

// records lists the store and applies the filters.
func (s *session) records(f *filterFlags, text string) (all, matched []*taskstore.Record, err error) {
	all, err = s.store.List()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return all, query.Filter(all, f.criteria(text)), nil
}

// reportNoMatch explains why a selection came up empty.
func (s *session) reportNoMatch(all []*taskstore.Record, text string) {
	switch {
	case len(all) == 0:
		s.println(internal.Warn(s.t.T(i18n.NoTasksYet)))
	case text != "":
		s.println(internal.Warn(s.t.T(i18n.NoMatchQuery, text)))
	default:
		s.println(internal.Warn(s.t.T(i18n.NoMatch)))
	}
}

// selectTask shows header, filters the store and asks the user to pick one
// record. It returns nil with no error when nothing matched.
func (s *session) selectTask(f *filterFlags, text, header, question string, showCategory bool) (*taskstore.Record, error) {
	s.prompt.Intro(s.t.T(header))

	all, matched, err := s.records(f, text)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		s.reportNoMatch(all, text)
		return nil, nil
	}

	choices := make([]internal.Choice, len(matched))
	for i, rec := range matched {
		label := rec.Title
		if showCategory && rec.Category != "" {
			label = fmt.Sprintf("[%s] %s", rec.Category, label)
		}
		choices[i] = internal.Choice{Value: rec.Filename, Label: label}
	}

	choice, err := s.prompt.Select(s.t.T(question), choices, "")
	if err != nil {
		return nil, err
	}

	rec, err := s.store.Get(choice.Value)
	if errors.Is(err, taskstore.ErrNotFound) {
		s.println(internal.Warn(s.t.T(i18n.TaskNotFound, choice.Value)))
		return nil, nil
	}
	return rec, err
}

// statusChoices lists the board columns, or the default columns when the
// board has none.
func (s *session) statusChoices() []internal.Choice {
	return optionChoices(s.board.Statuses, config.DefaultBoard(s.t.Language()).Statuses)
}

func optionChoices(opts, fallback []config.Option) []internal.Choice {
	if len(opts) == 0 {
		opts = fallback
	}
	choices := make([]internal.Choice, len(opts))
	for i, o := range opts {
		label := o.Label
		if label == "" {
			label = o.ID
		}
		choices[i] = internal.Choice{Value: o.ID, Label: label}
	}
	return choices
}
