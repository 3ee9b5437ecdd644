package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Persistent flags shared by every command.
var (
	cfgFile   string
	tasksDir  string
	boardFile string
)

// now is the clock used for new task ids, deadline states and the calendar.
var now = time.Now

// GetConfigFile returns the config file path from the flag.
func GetConfigFile() string {
	return cfgFile
}

// NewRootCmd creates the root command for the task-cli CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "task-cli",
		Short: "Personal Kanban task manager for the terminal",
		Long: `task-cli keeps each task in its own markdown file with a YAML metadata
block and shows them as a Kanban board, a monthly calendar or a rendered
document.

On first use it offers to create the default board: three status columns
(todo, in-progress, done), three categories and three priorities.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default: ~/.config/task-cli/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&tasksDir, "dir", "", "task directory (overrides tasks.dir)")
	rootCmd.PersistentFlags().StringVar(&boardFile, "board", "", "board document (overrides board.file)")

	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newMoveCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newCleanCmd())
	rootCmd.AddCommand(newCalCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
