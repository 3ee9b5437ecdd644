package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-taskcli/cmd/internal"
	"github.com/yarlson/go-taskcli/internal/config"
	"github.com/yarlson/go-taskcli/internal/deadline"
	"github.com/yarlson/go-taskcli/internal/editor"
	"github.com/yarlson/go-taskcli/internal/frontmatter"
	"github.com/yarlson/go-taskcli/internal/i18n"
	"github.com/yarlson/go-taskcli/internal/slug"
	"github.com/yarlson/go-taskcli/internal/taskstore"
)

type newOptions struct {
	title       string
	category    string
	priority    string
	deadline    string
	status      string
	description string
	noEdit      bool
}

func newNewCmd() *cobra.Command {
	var opts newOptions

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a task",
		Long: `Create a task. Without --title every field is asked for interactively.
The new document is then opened in the configured editor when stdin is a
terminal, unless --no-edit is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "task title (skips the prompts)")
	cmd.Flags().StringVar(&opts.category, "category", "", "category id")
	cmd.Flags().StringVar(&opts.priority, "priority", "", "priority id (default medium)")
	cmd.Flags().StringVar(&opts.deadline, "deadline", "", "deadline in the board language's date order")
	cmd.Flags().StringVar(&opts.status, "status", "", "status id (default: first board column)")
	cmd.Flags().StringVar(&opts.description, "description", "", "short description")
	cmd.Flags().BoolVar(&opts.noEdit, "no-edit", false, "do not open the editor")

	return cmd
}

func runNew(cmd *cobra.Command, opts newOptions) error {
	s, err := newSession(cmd, true)
	if err != nil {
		return err
	}

	s.prompt.Intro(s.t.T(i18n.NewHeader))

	task, err := s.newTask(opts)
	if err != nil {
		return s.finish(err)
	}

	content, err := taskstore.BuildDocument(task, s.t.T(i18n.NewHeading))
	if err != nil {
		return fmt.Errorf("failed to build task: %w", err)
	}

	if !opts.noEdit && internal.IsTerminal(s.in) {
		var ok bool
		content, ok, err = s.editDraft(cmd, content)
		if err != nil || !ok {
			return err
		}
	}

	filename, err := s.store.Create(content)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	s.logger.Debug("created task", "file", filename)

	if task.Deadline != "" {
		s.println(s.t.T(i18n.NewDeadlineReadBack, deadline.Format(task.Deadline, s.t.DateOrder())))
	}
	s.println(internal.Success(s.t.T(i18n.NewCreated, filename)))
	return nil
}

// newTask collects the fields of the task, from flags when a title was
// given and from prompts otherwise.
func (s *session) newTask(opts newOptions) (taskstore.NewTask, error) {
	order := s.t.DateOrder()
	task := taskstore.NewTask{ID: slug.NewID(now())}

	if opts.title != "" {
		task.Title = opts.title
		task.Category = opts.category
		task.Priority = opts.priority
		task.Deadline = deadline.Parse(opts.deadline, order)
		task.Status = opts.status
		task.Description = opts.description
		if task.Status == "" {
			task.Status = s.statusChoices()[0].Value
		}
		return task, nil
	}

	var err error
	if task.Title, err = s.prompt.Text(s.t.T(i18n.NewTitle), "", s.t.T(i18n.NewTitleRequired)); err != nil {
		return task, err
	}

	if len(s.board.Categories) > 0 {
		c, err := s.prompt.Select(s.t.T(i18n.NewCategory), optionChoices(s.board.Categories, nil), "")
		if err != nil {
			return task, err
		}
		task.Category = c.Value
	} else if task.Category, err = s.prompt.Text(s.t.T(i18n.NewCategory), "", ""); err != nil {
		return task, err
	}

	p, err := s.prompt.Select(s.t.T(i18n.NewPriority),
		optionChoices(s.board.Priorities, config.DefaultPriorities(s.t.Language())), taskstore.DefaultPriority)
	if err != nil {
		return task, err
	}
	task.Priority = p.Value

	if task.Description, err = s.prompt.Text(s.t.T(i18n.NewDescription), "", ""); err != nil {
		return task, err
	}

	due, err := s.prompt.Text(s.t.T(i18n.NewDeadline, order.Hint()), "", "")
	if err != nil {
		return task, err
	}
	task.Deadline = deadline.Parse(due, order)

	statuses := s.statusChoices()
	st, err := s.prompt.Select(s.t.T(i18n.NewStatus), statuses, statuses[0].Value)
	if err != nil {
		return task, err
	}
	task.Status = st.Value

	return task, nil
}

// editDraft opens content in the external editor and returns the edited
// text. ok is false when the editor failed and the draft was discarded.
func (s *session) editDraft(cmd *cobra.Command, content string) (string, bool, error) {
	draft, err := editor.NewDraft("", content)
	if err != nil {
		return "", false, err
	}

	ed := editor.New(s.cfg.Editor.Command, s.cfg.Editor.Args)
	ed.Stdin = s.in
	ed.Stdout = s.out
	ed.Stderr = s.errOut

	if err := ed.Edit(cmd.Context(), draft.Path); err != nil {
		_ = draft.Remove()

		var exitErr *editor.ExitError
		if errors.As(err, &exitErr) {
			s.println(internal.Failure(s.t.T(i18n.NewEditorFailed, exitErr.Err)))
			return "", false, nil
		}
		return "", false, err
	}

	edited, err := draft.Read()
	if err != nil {
		return "", false, err
	}

	if _, _, err := frontmatter.Decode(edited); err != nil {
		s.println(internal.Failure(s.t.T(i18n.NewDraftKept, err, draft.Path)))
		return "", false, fmt.Errorf("edited task is malformed: %w", err)
	}

	if err := draft.Remove(); err != nil {
		s.logger.Warn("could not remove draft", "path", draft.Path, "err", err)
	}
	return edited, true, nil
}
