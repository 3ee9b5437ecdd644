// Package editor runs the user's text editor on a draft file.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNoCommand is returned when no editor command is configured.
var ErrNoCommand = errors.New("no editor configured")

// ExitError reports an editor that ran but did not exit cleanly.
type ExitError struct {
	Command string
	Err     error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("editor %s: %v", e.Command, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// jumpToEnd is passed to vi-like editors so the cursor starts below the
// generated metadata block.
const jumpToEnd = "+normal G"

// Editor launches an external editor attached to the terminal.
type Editor struct {
	// command is the program to run. It may carry its own arguments,
	// e.g. "code --wait".
	command string
	args    []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New creates an Editor for command. args are passed before the file path;
// when empty, vi, vim and nvim get "+normal G".
func New(command string, args []string) *Editor {
	return &Editor{
		command: command,
		args:    args,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Edit opens path and waits for the editor to exit. A non-zero exit
// status is returned as *ExitError.
func (e *Editor) Edit(ctx context.Context, path string) error {
	name, args, err := e.argv()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, name, append(args, path)...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Command: name, Err: err}
		}
		return fmt.Errorf("failed to start editor %s: %w", name, err)
	}

	return nil
}

// argv splits the configured command and adds the default arguments.
func (e *Editor) argv() (string, []string, error) {
	fields := strings.Fields(e.command)
	if len(fields) == 0 {
		return "", nil, ErrNoCommand
	}

	name := fields[0]
	args := append([]string{}, fields[1:]...)
	args = append(args, e.args...)

	if len(e.args) == 0 && len(fields) == 1 {
		switch filepath.Base(name) {
		case "vi", "vim", "nvim":
			args = append(args, jumpToEnd)
		}
	}

	return name, args, nil
}

// Draft is a temporary file holding a document being edited.
type Draft struct {
	Path string
}

// NewDraft writes content to a uniquely named file in dir, or in the
// system temp directory when dir is empty.
func NewDraft(dir, content string) (*Draft, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	path := filepath.Join(dir, "task-"+uuid.NewString()+".md")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return nil, fmt.Errorf("failed to write draft: %w", err)
	}

	return &Draft{Path: path}, nil
}

// Read returns the current draft text.
func (d *Draft) Read() (string, error) {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read draft: %w", err)
	}
	return string(data), nil
}

// Remove deletes the draft. A draft that is already gone is not an error.
func (d *Draft) Remove() error {
	if err := os.Remove(d.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove draft: %w", err)
	}
	return nil
}
