package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromPath_WithValidFile(t *testing.T) {
	isolateEnv(t)
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
tasks:
  dir: /srv/tasks
board:
  file: /srv/board.json
editor:
  command: nano
  args: ["-w"]
view:
  theme: light
  width: 100
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := LoadConfigFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/srv/tasks", cfg.Tasks.Dir)
	assert.Equal(t, "/srv/board.json", cfg.Board.File)
	assert.Equal(t, "nano", cfg.Editor.Command)
	assert.Equal(t, []string{"-w"}, cfg.Editor.Args)
	assert.Equal(t, "light", cfg.View.Theme)
	assert.Equal(t, 100, cfg.View.Width)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfigFromPath_WithDefaults(t *testing.T) {
	dataHome := isolateEnv(t)

	cfg, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dataHome, AppName, "tasks"), cfg.Tasks.Dir)
	assert.Equal(t, filepath.Join(dataHome, AppName, "task-config.json"), cfg.Board.File)
	assert.Equal(t, DefaultEditor, cfg.Editor.Command)
	assert.Empty(t, cfg.Editor.Args)
	assert.Equal(t, DefaultTheme, cfg.View.Theme)
	assert.Equal(t, DefaultWidth, cfg.View.Width)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
}

func TestLoadConfigFromPath_PartialOverride(t *testing.T) {
	dataHome := isolateEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("view:\n  width: 120\n"), 0644))

	cfg, err := LoadConfigFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.View.Width)
	assert.Equal(t, DefaultTheme, cfg.View.Theme)
	assert.Equal(t, filepath.Join(dataHome, AppName, "tasks"), cfg.Tasks.Dir)
}

func TestLoadConfigFromPath_InvalidYAML(t *testing.T) {
	isolateEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("tasks:\n  dir: [invalid\n"), 0644))

	_, err := LoadConfigFromPath(configPath)
	assert.Error(t, err)
}

func TestLoadConfigFromPath_EnvOverride(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TASKCLI_TASKS_DIR", "/env/tasks")
	t.Setenv("TASKCLI_VIEW_THEME", "notty")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("tasks:\n  dir: /file/tasks\n"), 0644))

	cfg, err := LoadConfigFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/env/tasks", cfg.Tasks.Dir)
	assert.Equal(t, "notty", cfg.View.Theme)
}

func TestLoadConfigFromPath_EditorFromEnvironment(t *testing.T) {
	t.Run("VISUAL wins over EDITOR", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("VISUAL", "code")
		t.Setenv("EDITOR", "nano")

		cfg, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "code", cfg.Editor.Command)
	})

	t.Run("EDITOR when VISUAL unset", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("EDITOR", "nano")

		cfg, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "nano", cfg.Editor.Command)
	})
}

func TestLoadConfigWithFile(t *testing.T) {
	t.Run("explicit file", func(t *testing.T) {
		isolateEnv(t)
		configPath := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("log:\n  level: error\n"), 0644))

		cfg, err := LoadConfigWithFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Log.Level)
	})

	t.Run("global file under XDG_CONFIG_HOME", func(t *testing.T) {
		isolateEnv(t)
		configHome := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", configHome)

		dir := filepath.Join(configHome, AppName)
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("view:\n  theme: light\n"), 0644))

		cfg, err := LoadConfigWithFile("")
		require.NoError(t, err)
		assert.Equal(t, "light", cfg.View.Theme)
	})
}

// isolateEnv points XDG directories at temp dirs and clears variables that
// would leak the developer's environment into settings. It returns the
// data home.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	for _, key := range []string{
		"TASKCLI_TASKS_DIR", "TASKCLI_BOARD_FILE", "TASKCLI_EDITOR_COMMAND", "TASKCLI_EDITOR_ARGS",
		"TASKCLI_VIEW_THEME", "TASKCLI_VIEW_WIDTH", "TASKCLI_LOG_LEVEL", "TASKCLI_LOG_FORMAT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return dataHome
}
