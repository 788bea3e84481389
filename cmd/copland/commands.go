package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/14ROVI/copland/internal/app"
	"github.com/14ROVI/copland/internal/config"
	"github.com/14ROVI/copland/internal/theme"
)

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

func editConfigFile() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Config file doesn't exist, creating default at: %s\n", configPath)
		if err := config.Save(config.DefaultConfig(), configPath); err != nil {
			return fmt.Errorf("could not create config file: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "vi", "nano", "emacs"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return errors.New("no editor found, please set $EDITOR")
	}

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func resetConfigToDefaults() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
		fmt.Printf("  %s\n\n", configPath)
		fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

		var response string
		_, _ = fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))

		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := config.Save(config.DefaultConfig(), configPath); err != nil {
		return err
	}

	fmt.Printf("Configuration reset to defaults\n")
	fmt.Printf("  Location: %s\n", configPath)
	fmt.Println("\nYou can customize it with: copland config edit")
	return nil
}

func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default keybindings...")
		userConfig = config.DefaultConfig()
	}
	if err := theme.Initialize(userConfig.Appearance.Theme); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	fmt.Println()
	fmt.Println(renderKeybindings(config.NewKeybindRegistry(userConfig)))
	return nil
}

func renderKeybindings(registry *config.KeybindRegistry) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableHeader()).Render("Copland Keybindings")
	note := lipgloss.NewStyle().
		Foreground(theme.TaskbarDimmed()).
		Italic(true).
		Render("A bare q also quits when the focused window does not take text.")
	t := app.HelpTable(app.GetHelpCategories(registry))
	return lipgloss.JoinVertical(lipgloss.Left, title, "", t.Render(), "", note)
}
