package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"golang.org/x/term"

	"github.com/14ROVI/copland/internal/app"
	"github.com/14ROVI/copland/internal/config"
	"github.com/14ROVI/copland/internal/films"
	"github.com/14ROVI/copland/internal/input"
	"github.com/14ROVI/copland/internal/notes"
	"github.com/14ROVI/copland/internal/nowplaying"
	"github.com/14ROVI/copland/internal/server"
	"github.com/14ROVI/copland/internal/theme"
)

func overrides() config.Overrides {
	return config.Overrides{
		ThemeName:    themeName,
		Background:   background,
		TaskbarOrder: taskbarOrder,
		NotesBackend: notesBackend,
		HideClock:    hideClock,
	}
}

// setupLogging sends the default logger to the log file. The terminal
// belongs to the desktop, so nothing is written to stderr while it runs.
func setupLogging(w io.Writer) {
	level := log.InfoLevel
	if debugMode {
		level = log.DebugLevel
	}
	log.SetDefault(log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	}))
}

func openLogFile() (*os.File, error) {
	path, err := config.LogPath()
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func loadConfig() *config.Config {
	cfg, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}
	config.ApplyOverrides(overrides(), cfg)
	if err := cfg.Validate(); err != nil {
		log.Warn("invalid flag value, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}
	if err := theme.Initialize(cfg.Appearance.Theme); err != nil {
		log.Warn("theme", "err", err)
	}
	return cfg
}

// openNotesStore picks the sticky note backend. The returned close
// function is never nil.
func openNotesStore(ctx context.Context, cfg *config.Config) (notes.Store, func(), error) {
	if cfg.Notes.Backend != config.NotesBackendLocal {
		log.Info("using remote note store", "url", cfg.Notes.URL)
		return notes.NewClient(cfg.Notes.URL), func() {}, nil
	}

	path := cfg.Notes.DBPath
	if path == "" {
		p, err := config.DefaultNotesDBPath()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve notes db path: %w", err)
		}
		path = p
	}
	store, err := notes.OpenSQLite(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	log.Info("using local note store", "path", path)
	return store, func() {
		if err := store.Close(); err != nil {
			log.Warn("close note store", "err", err)
		}
	}, nil
}

// desktopOptions builds the services every desktop shares.
func desktopOptions(ctx context.Context, cfg *config.Config) (app.Options, func(), error) {
	store, closeStore, err := openNotesStore(ctx, cfg)
	if err != nil {
		return app.Options{}, nil, err
	}

	httpClient := &http.Client{Timeout: 15 * time.Second}
	presenceLogger := log.Default().WithPrefix("nowplaying")

	return app.Options{
		Config: cfg,
		Notes:  store,
		Films:  films.NewClient(cfg.Films.URL, httpClient),
		NowPlaying: func() *nowplaying.Client {
			return nowplaying.NewClient(nowplaying.Options{
				URL:    cfg.NowPlaying.URL,
				UserID: cfg.NowPlaying.UserID,
				Logger: presenceLogger,
			})
		},
	}, closeStore, nil
}

// filterMouseMotion drops pointer motion unless a window is being
// dragged, which is the only time motion matters.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	d, ok := model.(*app.Desktop)
	if !ok {
		return msg
	}
	if d.Drag.Session() != nil {
		return msg
	}
	return nil
}

func runLocal(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("copland needs an interactive terminal")
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close() //nolint:errcheck
	setupLogging(logFile)

	cfg := loadConfig()
	if debugMode {
		configPath, _ := config.GetConfigPath()
		log.Debug("configuration", "path", configPath)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts, closeStore, err := desktopOptions(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	app.SetInputHandler(input.HandleInput)

	opts.Context = ctx
	opts.Pointer = input.NewRouter()
	desktop := app.New(opts)

	p := tea.NewProgram(
		desktop,
		tea.WithContext(ctx),
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			p.Send(tea.QuitMsg{})
		case <-ctx.Done():
		}
	}()

	if configPath, err := config.GetConfigPath(); err == nil {
		go func() {
			err := config.Watch(ctx, configPath, func(c *config.Config, err error) {
				if c != nil {
					config.ApplyOverrides(overrides(), c)
				}
				p.Send(app.ConfigReloadedMsg{Config: c, Err: err})
			})
			if err != nil {
				log.Warn("config watcher stopped", "err", err)
			}
		}()
	}

	finalModel, err := p.Run()
	if d, ok := finalModel.(*app.Desktop); ok {
		d.Cleanup()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func runSSHServer(ctx context.Context, sshHost, sshPort, sshKeyPath string) error {
	setupLogging(os.Stderr)

	cfg := loadConfig()

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts, closeStore, err := desktopOptions(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	app.SetInputHandler(input.HandleInput)

	log.Info("starting Copland SSH server", "host", sshHost, "port", sshPort)
	if err := server.StartSSHServer(ctx, &server.SSHServerConfig{
		Host:    sshHost,
		Port:    sshPort,
		KeyPath: sshKeyPath,
		Desktop: opts,
		Logger:  log.Default().WithPrefix("ssh"),
	}); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}
