package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the tool's own settings. The kanban board itself lives in
// a separate document, see Board.
type Config struct {
	Tasks  TasksConfig  `mapstructure:"tasks"`
	Board  BoardConfig  `mapstructure:"board"`
	Editor EditorConfig `mapstructure:"editor"`
	View   ViewConfig   `mapstructure:"view"`
	Log    LogConfig    `mapstructure:"log"`
}

// TasksConfig holds task store settings
type TasksConfig struct {
	Dir string `mapstructure:"dir"`
}

// BoardConfig locates the board document
type BoardConfig struct {
	File string `mapstructure:"file"`
}

// EditorConfig holds external editor invocation settings
type EditorConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// ViewConfig holds markdown rendering settings
type ViewConfig struct {
	Theme string `mapstructure:"theme"`
	Width int    `mapstructure:"width"`
}

// LogConfig holds diagnostic logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfigWithFile loads settings from configFile if provided, otherwise
// from GlobalConfigPath.
func LoadConfigWithFile(configFile string) (*Config, error) {
	if configFile != "" {
		return LoadConfigFromPath(configFile)
	}
	return LoadConfig()
}

// LoadConfig loads settings from the global config file.
// If no config file exists, sensible defaults are returned.
func LoadConfig() (*Config, error) {
	path, err := GlobalConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFromPath(path)
}

// LoadConfigFromPath loads settings from a specific file path. A missing
// file yields defaults. Environment variables prefixed with TASKCLI_
// override both.
func LoadConfigFromPath(configPath string) (*Config, error) {
	v := viper.New()

	if err := setDefaults(v); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(configPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	} else {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults sets all default values for configuration
func setDefaults(v *viper.Viper) error {
	dataDir, err := DataDir()
	if err != nil {
		return err
	}

	// Storage defaults
	v.SetDefault("tasks.dir", filepath.Join(dataDir, DefaultTasksDirName))
	v.SetDefault("board.file", filepath.Join(dataDir, DefaultBoardFileName))

	// Editor defaults
	v.SetDefault("editor.command", defaultEditor())
	v.SetDefault("editor.args", []string{})

	// View defaults
	v.SetDefault("view.theme", DefaultTheme)
	v.SetDefault("view.width", DefaultWidth)

	// Log defaults
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	return nil
}

func defaultEditor() string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if editor := getEnv(key); editor != "" {
			return editor
		}
	}
	return DefaultEditor
}
