// Package app provides the Copland desktop: the bubbletea model that owns
// the window manager, renders the desktop and talks to collaborators.
package app

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"github.com/google/uuid"

	"github.com/14ROVI/copland/internal/config"
	"github.com/14ROVI/copland/internal/content"
	"github.com/14ROVI/copland/internal/films"
	"github.com/14ROVI/copland/internal/notes"
	"github.com/14ROVI/copland/internal/nowplaying"
	"github.com/14ROVI/copland/internal/theme"
	"github.com/14ROVI/copland/internal/wm"
)

// PointerRouter is a pointer source the input layer can feed.
type PointerRouter interface {
	wm.PointerSource
	Dispatch(e wm.PointerEvent)
}

// Options configures a Desktop.
type Options struct {
	Context    context.Context
	Config     *config.Config
	Notes      notes.Store
	Films      *films.Client
	Background *theme.Background
	Pointer    PointerRouter
	Logger     *log.Logger
	// NowPlaying builds the presence client the first time the music
	// widget opens. Nil disables the live feed.
	NowPlaying func() *nowplaying.Client
	// Now overrides the clock, mainly for tests.
	Now func() time.Time
	// RemoteUser is set when the desktop is served over SSH.
	RemoteUser string
}

// Notification is a temporary message shown in the corner.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// LogMessage is a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

// SystemStats is the latest CPU and memory sample.
type SystemStats struct {
	CPU   float64
	RAM   float64
	Valid bool
}

// Desktop is the application model.
type Desktop struct {
	Manager    *wm.Manager
	Drag       *wm.Controller
	Pointer    PointerRouter
	Background *theme.Background
	Config     *config.Config
	Keybinds   *config.KeybindRegistry

	Width  int
	Height int

	ShowLogs        bool
	ShowHelp        bool
	LogMessages     []LogMessage
	LogScrollOffset int
	Notifications   []Notification
	Stats           SystemStats
	Clock           time.Time
	RemoteUser      string

	ctx    context.Context
	cancel context.CancelFunc
	logger *log.Logger
	now    func() time.Time

	notes      notes.Store
	films      *films.Client
	nowPlaying func() *nowplaying.Client
	presence   *nowplaying.Client

	layout   *layout
	pending  []tea.Cmd
	saveGen  map[wm.WindowID]int
	bgUpdate <-chan int
	bgCancel func()
}

// New builds a desktop with the Home window open.
func New(opts Options) *Desktop {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default().WithPrefix("desktop")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	bg := opts.Background
	if bg == nil {
		bg = theme.NewBackground(cfg.Appearance.Background)
	}
	order := wm.TaskbarInsertion
	if cfg.Appearance.TaskbarOrder == config.TaskbarOrderKind {
		order = wm.TaskbarByKind
	}

	d := &Desktop{
		Manager:    wm.NewManager(wm.Options{TaskbarOrder: order}),
		Pointer:    opts.Pointer,
		Background: bg,
		Config:     cfg,
		Keybinds:   config.NewKeybindRegistry(cfg),
		Clock:      now(),
		RemoteUser: opts.RemoteUser,
		ctx:        ctx,
		cancel:     cancel,
		logger:     logger,
		now:        now,
		notes:      opts.Notes,
		films:      opts.Films,
		nowPlaying: opts.NowPlaying,
		layout:     newLayout(),
		saveGen:    make(map[wm.WindowID]int),
	}
	if d.Pointer == nil {
		d.Pointer = noopPointer{}
	}
	d.Manager.SetPersister(notePersister{d})
	d.Drag = wm.NewController(d.Manager, d.Pointer, d.layout)
	d.bgUpdate, d.bgCancel = bg.Subscribe()

	d.Manager.Open(content.Home())
	return d
}

// Context is cancelled when the desktop shuts down.
func (d *Desktop) Context() context.Context {
	return d.ctx
}

// Cleanup stops background work owned by the desktop.
func (d *Desktop) Cleanup() {
	d.cancel()
	if d.bgCancel != nil {
		d.bgCancel()
	}
}

// Env is the environment content factories are built with.
func (d *Desktop) Env() content.Env {
	return content.Env{Background: d.Background, Now: d.now}
}

// Log appends to the in-app log buffer and writes to the logger.
func (d *Desktop) Log(level, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	d.LogMessages = append(d.LogMessages, LogMessage{
		Time:    d.now(),
		Level:   level,
		Message: message,
	})
	if len(d.LogMessages) > config.MaxLogMessages {
		d.LogMessages = d.LogMessages[len(d.LogMessages)-config.MaxLogMessages:]
	}

	switch level {
	case "ERROR":
		d.logger.Error(message)
	case "WARN":
		d.logger.Warn(message)
	default:
		d.logger.Info(message)
	}
}

// LogInfo logs an informational message.
func (d *Desktop) LogInfo(format string, args ...any) {
	d.Log("INFO", format, args...)
}

// LogWarn logs a warning.
func (d *Desktop) LogWarn(format string, args ...any) {
	d.Log("WARN", format, args...)
}

// LogError logs an error.
func (d *Desktop) LogError(format string, args ...any) {
	d.Log("ERROR", format, args...)
}

// ShowNotification displays a temporary notification and logs it.
func (d *Desktop) ShowNotification(message, notifType string, duration time.Duration) {
	d.Notifications = append(d.Notifications, Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Type:      notifType,
		StartTime: d.now(),
		Duration:  duration,
	})

	switch notifType {
	case "error":
		d.LogError("%s", message)
	case "warning":
		d.LogWarn("%s", message)
	default:
		d.LogInfo("%s", message)
	}
}

// CleanupNotifications removes expired notifications.
func (d *Desktop) CleanupNotifications() {
	now := d.now()
	active := d.Notifications[:0]
	for _, n := range d.Notifications {
		if now.Sub(n.StartTime) < n.Duration {
			active = append(active, n)
		}
	}
	d.Notifications = active
}

// ScrollLogs moves the log viewer by delta lines.
func (d *Desktop) ScrollLogs(delta int) {
	d.LogScrollOffset = max(min(d.LogScrollOffset+delta, len(d.LogMessages)-1), 0)
}

// DesktopHeight is the number of rows windows can occupy.
func (d *Desktop) DesktopHeight() int {
	return max(d.Height-config.TaskbarHeight, 0)
}

type noopPointer struct{}

func (noopPointer) Subscribe(wm.PointerKind, func(wm.PointerEvent)) func() { return func() {} }
func (noopPointer) Dispatch(wm.PointerEvent)                              {}
