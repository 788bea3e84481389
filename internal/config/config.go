// Package config provides configuration loading and defaults for Copland.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Runtime constants.
const (
	// NormalFPS is the frame rate the program renders at.
	NormalFPS = 60
	// MaxLogMessages bounds the in-app log buffer.
	MaxLogMessages = 500
	// TaskbarHeight is the number of rows reserved at the bottom of the screen.
	TaskbarHeight = 1
	// ClockInterval is how often the taskbar clock refreshes.
	ClockInterval = time.Second
	// StatsInterval is how often CPU and memory usage are sampled.
	StatsInterval = 2 * time.Second
	// NotificationDuration is how long a notification stays on screen.
	NotificationDuration = 3 * time.Second
)

// Taskbar order values.
const (
	TaskbarOrderInsertion = "insertion"
	TaskbarOrderKind      = "kind"
)

// Note backends.
const (
	NotesBackendRemote = "remote"
	NotesBackendLocal  = "local"
)

// Config is the user configuration file.
type Config struct {
	Appearance  AppearanceConfig    `toml:"appearance"`
	Notes       NotesConfig         `toml:"notes"`
	NowPlaying  NowPlayingConfig    `toml:"nowplaying"`
	Films       FilmsConfig         `toml:"films"`
	Keybindings map[string][]string `toml:"keybindings"`
}

// AppearanceConfig controls how the desktop looks.
type AppearanceConfig struct {
	Theme        string `toml:"theme"`
	Background   int    `toml:"background"` // 0 picks a random background
	TaskbarOrder string `toml:"taskbar_order"`
	BorderStyle  string `toml:"border_style"`
	HideClock    bool   `toml:"hide_clock"`
	HideStats    bool   `toml:"hide_stats"`
}

// NotesConfig selects and configures the sticky note store.
type NotesConfig struct {
	Backend string `toml:"backend"`
	URL     string `toml:"url"`
	DBPath  string `toml:"db_path"`
}

// NowPlayingConfig configures the music widget's live feed.
type NowPlayingConfig struct {
	URL    string `toml:"url"`
	UserID string `toml:"user_id"`
}

// FilmsConfig configures the films window.
type FilmsConfig struct {
	URL string `toml:"url"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Appearance: AppearanceConfig{
			Background:   0,
			TaskbarOrder: TaskbarOrderInsertion,
			BorderStyle:  "rounded",
		},
		Notes: NotesConfig{
			Backend: NotesBackendRemote,
			URL:     "https://api.rovi.me/notes",
		},
		NowPlaying: NowPlayingConfig{
			URL:    "wss://api.lanyard.rest/socket",
			UserID: "195512978634833920",
		},
		Films: FilmsConfig{
			URL: "https://api.rovi.me/films",
		},
		Keybindings: DefaultKeybindings(),
	}
}

// GetConfigPath returns the path of the user configuration file,
// creating its parent directory if needed.
func GetConfigPath() (string, error) {
	return xdg.ConfigFile("copland/config.toml")
}

// LogPath returns the path of the log file.
func LogPath() (string, error) {
	return xdg.StateFile("copland/copland.log")
}

// DefaultNotesDBPath returns where the local note store lives.
func DefaultNotesDBPath() (string, error) {
	return xdg.DataFile("copland/notes.db")
}

// LoadUserConfig loads the user configuration file, falling back to
// defaults when it does not exist.
func LoadUserConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	return LoadFile(path)
}

// LoadFile loads a configuration file. Fields missing from the file keep
// their default values. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch c.Appearance.TaskbarOrder {
	case "", TaskbarOrderInsertion, TaskbarOrderKind:
	default:
		return fmt.Errorf("invalid taskbar_order %q (want %q or %q)",
			c.Appearance.TaskbarOrder, TaskbarOrderInsertion, TaskbarOrderKind)
	}
	switch c.Notes.Backend {
	case "", NotesBackendRemote, NotesBackendLocal:
	default:
		return fmt.Errorf("invalid notes backend %q (want %q or %q)",
			c.Notes.Backend, NotesBackendRemote, NotesBackendLocal)
	}
	return nil
}

// Marshal encodes the configuration with a short header.
func Marshal(cfg *Config, path string) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("# Copland configuration file\n")
	buf.WriteString("# Location: " + path + "\n\n")
	buf.Write(data)
	return buf.Bytes(), nil
}

// Save writes the configuration to path.
func Save(cfg *Config, path string) error {
	data, err := Marshal(cfg, path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Overrides holds command line flags that take precedence over the file.
type Overrides struct {
	ThemeName    string
	Background   int
	TaskbarOrder string
	NotesBackend string
	HideClock    bool
}

// ApplyOverrides copies every non-zero override onto cfg.
func ApplyOverrides(o Overrides, cfg *Config) {
	if cfg == nil {
		return
	}
	if o.ThemeName != "" {
		cfg.Appearance.Theme = o.ThemeName
	}
	if o.Background != 0 {
		cfg.Appearance.Background = o.Background
	}
	if o.TaskbarOrder != "" {
		cfg.Appearance.TaskbarOrder = strings.ToLower(o.TaskbarOrder)
	}
	if o.NotesBackend != "" {
		cfg.Notes.Backend = strings.ToLower(o.NotesBackend)
	}
	if o.HideClock {
		cfg.Appearance.HideClock = true
	}
}
