package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yarlson/go-taskcli/internal/config"
	"github.com/yarlson/go-taskcli/internal/taskstore"
)

var testNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

// setupTestEnv points settings and data at temp dirs, freezes the clock
// and returns the data directory.
func setupTestEnv(t *testing.T) string {
	t.Helper()

	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	t.Setenv("TASKCLI_VIEW_THEME", "notty")
	t.Setenv("TASKCLI_VIEW_WIDTH", "120")
	for _, key := range []string{"TASKCLI_TASKS_DIR", "TASKCLI_BOARD_FILE", "TASKCLI_LOG_LEVEL", "TASKCLI_LOG_FORMAT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	oldNow := now
	now = func() time.Time { return testNow }
	t.Cleanup(func() { now = oldNow })

	return filepath.Join(dataHome, config.AppName)
}

// setupBoard is setupTestEnv plus a default board in lang.
func setupBoard(t *testing.T, lang string) string {
	t.Helper()

	dir := setupTestEnv(t)
	_, err := runCmd(t, "", "init", "--lang", lang, "--yes")
	require.NoError(t, err)
	return dir
}

// runCmd executes the root command with args, feeding stdin, and returns
// everything written to stdout and stderr.
func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// addTask creates a task through the new command without prompts.
func addTask(t *testing.T, title string, extra ...string) string {
	t.Helper()

	args := append([]string{"new", "--no-edit", "--title", title}, extra...)
	out, err := runCmd(t, "", args...)
	require.NoError(t, err)
	require.Contains(t, out, "Task created successfully")
	return out
}

func listTasks(t *testing.T, dir string) []*taskstore.Record {
	t.Helper()

	records, err := taskstore.NewLocalStore(filepath.Join(dir, config.DefaultTasksDirName)).List()
	require.NoError(t, err)
	return records
}

func findTask(t *testing.T, dir, title string) *taskstore.Record {
	t.Helper()

	for _, rec := range listTasks(t, dir) {
		if rec.Title == title {
			return rec
		}
	}
	t.Fatalf("task %q not found", title)
	return nil
}

func TestRootCommand(t *testing.T) {
	t.Run("help shows all subcommands", func(t *testing.T) {
		out, err := runCmd(t, "", "--help")
		require.NoError(t, err)

		for _, name := range []string{"new", "list", "view", "search", "move", "delete", "clean", "cal", "config", "init"} {
			assert.Contains(t, out, name, "expected %q in help output", name)
		}
	})

	t.Run("has persistent flags", func(t *testing.T) {
		cmd := NewRootCmd()
		for _, name := range []string{"config", "dir", "board"} {
			require.NotNil(t, cmd.PersistentFlags().Lookup(name), "expected --%s flag to exist", name)
		}
	})

	t.Run("--dir and --board override settings", func(t *testing.T) {
		setupTestEnv(t)
		tasks := filepath.Join(t.TempDir(), "elsewhere")
		board := filepath.Join(t.TempDir(), "board.json")

		_, err := runCmd(t, "", "init", "--lang", "en-US", "--yes", "--board", board)
		require.NoError(t, err)
		assert.FileExists(t, board)

		_, err = runCmd(t, "", "new", "--no-edit", "--title", "Moved", "--dir", tasks, "--board", board)
		require.NoError(t, err)

		entries, err := os.ReadDir(tasks)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("--config file is read", func(t *testing.T) {
		setupTestEnv(t)
		tasks := filepath.Join(t.TempDir(), "from-config")
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("tasks:\n  dir: "+tasks+"\n"), 0644))

		_, err := runCmd(t, "", "init", "--lang", "en-US", "--yes", "--config", cfgPath)
		require.NoError(t, err)
		_, err = runCmd(t, "", "new", "--no-edit", "--title", "Configured", "--config", cfgPath)
		require.NoError(t, err)

		entries, err := os.ReadDir(tasks)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestFirstRunSetup(t *testing.T) {
	t.Run("creates the board then runs the command", func(t *testing.T) {
		dir := setupTestEnv(t)

		out, err := runCmd(t, "2\n\n", "list")
		require.NoError(t, err)

		assert.Contains(t, out, "Bem-vindo")
		assert.Contains(t, out, "Ambiente configurado")
		assert.Contains(t, out, "Para Fazer (0)")
		assert.FileExists(t, filepath.Join(dir, config.DefaultBoardFileName))
	})

	t.Run("declining exits with an error", func(t *testing.T) {
		dir := setupTestEnv(t)

		out, err := runCmd(t, "1\nn\n", "list")
		require.ErrorIs(t, err, errSetupRequired)

		assert.Contains(t, out, "Initialization is required")
		assert.NoFileExists(t, filepath.Join(dir, config.DefaultBoardFileName))
	})

	t.Run("end of input exits with an error", func(t *testing.T) {
		dir := setupTestEnv(t)

		_, err := runCmd(t, "", "new", "--title", "never", "--no-edit")
		require.ErrorIs(t, err, errSetupRequired)

		assert.NoFileExists(t, filepath.Join(dir, config.DefaultBoardFileName))
		assert.NoDirExists(t, filepath.Join(dir, config.DefaultTasksDirName))
	})
}
