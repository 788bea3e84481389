package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/14ROVI/copland/internal/config"
	"github.com/14ROVI/copland/internal/content"
	"github.com/14ROVI/copland/internal/notes"
	"github.com/14ROVI/copland/internal/theme"
	"github.com/14ROVI/copland/internal/wm"
)

// ClockMsg drives the taskbar clock and notification expiry.
type ClockMsg time.Time

// BackgroundMsg reports a change of the shared desktop background.
type BackgroundMsg struct {
	Value int
}

// ConfigReloadedMsg carries a configuration reloaded from disk.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// NotesLoadedMsg carries the notes fetched at startup.
type NotesLoadedMsg struct {
	Notes []notes.Note
	Err   error
}

// NoteCreatedMsg carries a note the store just created.
type NoteCreatedMsg struct {
	Note notes.Note
}

// NoteErrorMsg reports a failed note operation.
type NoteErrorMsg struct {
	Op  string
	ID  int
	Err error
}

// NowPlayingMsg and FilmsLoadedMsg are routed to window content.
type (
	NowPlayingMsg  = content.NowPlayingMsg
	FilmsLoadedMsg = content.FilmsLoadedMsg
)

// saveNoteMsg fires when a sticky note has been quiet long enough to save.
type saveNoteMsg struct {
	id  wm.WindowID
	gen int
}

// InputHandler handles input messages. It is registered by the main
// package so the input package can depend on app without a cycle.
type InputHandler func(msg tea.Msg, d *Desktop) (tea.Model, tea.Cmd)

var inputHandler InputHandler

// SetInputHandler registers the input handler.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init loads the sticky notes and starts the clock, stats sampler and
// background listener.
func (d *Desktop) Init() tea.Cmd {
	cmds := []tea.Cmd{
		ClockCmd(),
		ListenForBackground(d.ctx, d.bgUpdate),
		d.loadNotesCmd(),
	}
	if !d.Config.Appearance.HideStats {
		cmds = append(cmds, SampleStatsCmd(0))
	}
	return tea.Batch(cmds...)
}

// ClockCmd ticks once a second.
func ClockCmd() tea.Cmd {
	return tea.Tick(config.ClockInterval, func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}

// ListenForBackground waits for the next background change.
func ListenForBackground(ctx context.Context, ch <-chan int) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case v, ok := <-ch:
			if !ok {
				return nil
			}
			return BackgroundMsg{Value: v}
		}
	}
}

// Update handles all incoming messages.
func (d *Desktop) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := d.update(msg)
	if pending := d.takePending(); len(pending) > 0 {
		cmd = tea.Batch(append(pending, cmd)...)
	}
	return model, cmd
}

func (d *Desktop) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ClockMsg:
		d.Clock = time.Time(msg)
		d.CleanupNotifications()
		return d, ClockCmd()

	case StatsMsg:
		if msg.Err != nil {
			d.LogWarn("system stats unavailable: %v", msg.Err)
		} else {
			d.Stats = SystemStats{CPU: msg.CPU, RAM: msg.RAM, Valid: true}
		}
		return d, SampleStatsCmd(config.StatsInterval)

	case BackgroundMsg:
		return d, ListenForBackground(d.ctx, d.bgUpdate)

	case tea.WindowSizeMsg:
		d.Width = msg.Width
		d.Height = msg.Height
		d.refreshLayout()
		d.Manager.Reconcile(d.layout, wm.SkipMissing)
		return d, nil

	case NotesLoadedMsg:
		if msg.Err != nil {
			d.ShowNotification("Couldn't load sticky notes", "error", config.NotificationDuration)
			d.LogError("load notes: %v", msg.Err)
			return d, nil
		}
		for _, n := range msg.Notes {
			d.Manager.Open(content.StickyNote(n))
		}
		d.refreshLayout()
		d.Manager.Reconcile(d.layout, wm.SkipMissing)
		d.Manager.Focus(wm.HomeID)
		d.LogInfo("loaded %d sticky notes", len(msg.Notes))
		return d, nil

	case NoteCreatedMsg:
		d.Manager.Open(content.StickyNote(msg.Note))
		d.LogInfo("created sticky note %d", msg.Note.ID)
		return d, nil

	case NoteErrorMsg:
		d.ShowNotification("Sticky note "+msg.Op+" failed", "error", config.NotificationDuration)
		d.LogError("note %s %d: %v", msg.Op, msg.ID, msg.Err)
		return d, nil

	case saveNoteMsg:
		if d.saveGen[msg.id] != msg.gen {
			return d, nil
		}
		delete(d.saveGen, msg.id)
		if w := d.Manager.Lookup(msg.id); w != nil {
			return d, d.saveNoteCmd(w)
		}
		return d, nil

	case NowPlayingMsg:
		d.routeToContent(msg)
		return d, ListenForNowPlaying(d.ctx, d.presence)

	case FilmsLoadedMsg:
		if msg.Err != nil {
			d.LogError("load films: %v", msg.Err)
		} else {
			d.LogInfo("loaded %d films", len(msg.Films))
		}
		d.routeToContent(msg)
		return d, nil

	case ConfigReloadedMsg:
		d.applyConfig(msg.Config, msg.Err)
		return d, nil

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg:
		if inputHandler != nil {
			return inputHandler(msg, d)
		}
		return d, nil
	}

	return d, nil
}

// routeToContent offers msg to every window body that accepts messages.
func (d *Desktop) routeToContent(msg any) {
	for _, w := range d.Manager.Values() {
		if h, ok := w.Body.(content.MessageHandler); ok {
			h.HandleMsg(msg)
		}
	}
}

func (d *Desktop) applyConfig(cfg *config.Config, err error) {
	if err != nil {
		d.ShowNotification("Config reload failed", "error", config.NotificationDuration)
		d.LogError("reload config: %v", err)
		return
	}
	if cfg.Appearance.Theme != d.Config.Appearance.Theme {
		if err := theme.Initialize(cfg.Appearance.Theme); err != nil {
			d.LogWarn("theme %q: %v", cfg.Appearance.Theme, err)
		}
	}
	if cfg.Appearance.TaskbarOrder != d.Config.Appearance.TaskbarOrder {
		d.LogWarn("taskbar_order change applies on next start")
	}
	d.Config = cfg
	d.Keybinds = config.NewKeybindRegistry(cfg)
	d.ShowNotification("Config reloaded", "info", config.NotificationDuration)
}
