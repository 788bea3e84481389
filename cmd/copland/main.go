// Package main implements Copland, a portfolio desktop that runs in the
// terminal: draggable windows, a taskbar, sticky notes and a few widgets.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode    bool
	themeName    string
	background   int
	notesBackend string
	taskbarOrder string
	hideClock    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "copland",
		Short: "A desktop in your terminal",
		Long: `Copland - a desktop in your terminal

Windows you can drag, focus, minimise and maximise, a taskbar with a
clock, sticky notes that persist, and a handful of portfolio widgets.`,
		Example: `  # Run Copland
  copland

  # Keep sticky notes in a local database
  copland --notes-backend local

  # Serve the desktop over SSH
  copland ssh --port 2222

  # Edit configuration
  copland config edit

  # List all keybindings
  copland keybinds list`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal(cmd.Context())
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Colour theme (bubbletint id)")
	rootCmd.PersistentFlags().IntVar(&background, "background", 0, "Starting background (1-22)")
	rootCmd.PersistentFlags().StringVar(&notesBackend, "notes-backend", "", "Sticky note storage: remote or local")
	rootCmd.PersistentFlags().StringVar(&taskbarOrder, "taskbar-order", "", "Taskbar order: insertion or kind")
	rootCmd.PersistentFlags().BoolVar(&hideClock, "hide-clock", false, "Hide the taskbar clock")

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve Copland over SSH",
		Long: `Serve Copland over SSH

Every connection gets its own desktop. The background is shared between
connections. A host key is generated automatically if none is given.`,
		Example: `  # Start SSH server on default port
  copland ssh

  # Listen on all interfaces
  copland ssh --host 0.0.0.0 --port 2222`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSHServer(cmd.Context(), sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage Copland configuration",
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd)

	rootCmd.AddCommand(sshCmd, configCmd, keybindsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
