package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName names the per-user config and data directories.
const AppName = "task-cli"

var (
	getEnv      = os.Getenv
	userHomeDir = os.UserHomeDir
)

// GlobalConfigPath resolves the settings file path using XDG conventions.
func GlobalConfigPath() (string, error) {
	if xdgHome := getEnv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, AppName, "config.yaml"), nil
	}

	homeDir, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}

	return filepath.Join(homeDir, ".config", AppName, "config.yaml"), nil
}

// DataDir resolves the directory holding task files and the board
// document using XDG conventions.
func DataDir() (string, error) {
	if xdgData := getEnv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, AppName), nil
	}

	homeDir, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}

	return filepath.Join(homeDir, ".local", "share", AppName), nil
}
