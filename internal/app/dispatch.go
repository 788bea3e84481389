package app

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/14ROVI/copland/internal/content"
	"github.com/14ROVI/copland/internal/notes"
	"github.com/14ROVI/copland/internal/nowplaying"
	"github.com/14ROVI/copland/internal/wm"
)

const (
	// noteSaveDelay is how long a sticky note must be idle before an edit
	// is written to the store.
	noteSaveDelay = 500 * time.Millisecond
	storeTimeout  = 10 * time.Second
)

// Dispatch runs commands issued by content or input and returns the
// async work they started.
func (d *Desktop) Dispatch(cmds ...wm.Command) tea.Cmd {
	var out []tea.Cmd
	for _, cmd := range cmds {
		if _, handled := d.Manager.Apply(cmd); handled {
			continue
		}
		switch c := cmd.(type) {
		case wm.OpenCmd:
			out = append(out, d.open(c.Kind))
		case wm.NewStickyCmd:
			out = append(out, d.createNoteCmd())
		case wm.SaveNoteCmd:
			out = append(out, d.scheduleSave(c.ID))
		case wm.BackgroundCmd:
			v := d.Background.Step(c.Delta)
			d.LogInfo("background set to %d", v)
		default:
			d.LogWarn("unhandled command %T", cmd)
		}
	}
	return tea.Batch(out...)
}

// open focuses the singleton window of kind, creating it first if
// needed. Creating the films or music window starts its data feed.
func (d *Desktop) open(kind wm.Kind) tea.Cmd {
	id, ok := wm.SingletonID(kind)
	if !ok {
		return nil
	}
	if d.Manager.Lookup(id) != nil {
		d.Manager.Focus(id)
		return nil
	}
	w, ok := content.New(kind, d.Env())
	if !ok {
		return nil
	}
	d.Manager.Open(w)

	switch kind {
	case wm.KindFilms:
		return d.loadFilmsCmd()
	case wm.KindSpotify:
		return d.startNowPlaying()
	}
	return nil
}

func (d *Desktop) storeContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(d.ctx, storeTimeout)
}

func (d *Desktop) loadNotesCmd() tea.Cmd {
	if d.notes == nil {
		return nil
	}
	store := d.notes
	return func() tea.Msg {
		ctx, cancel := d.storeContext()
		defer cancel()
		list, err := store.List(ctx)
		return NotesLoadedMsg{Notes: list, Err: err}
	}
}

func (d *Desktop) createNoteCmd() tea.Cmd {
	if d.notes == nil {
		d.LogWarn("no note store configured")
		return nil
	}
	store := d.notes
	return func() tea.Msg {
		ctx, cancel := d.storeContext()
		defer cancel()
		n, err := store.Create(ctx, notes.DefaultContent, notes.DefaultX, notes.DefaultY)
		if err != nil {
			return NoteErrorMsg{Op: "create", Err: err}
		}
		return NoteCreatedMsg{Note: n}
	}
}

// scheduleSave debounces edits: only the last edit in a burst is saved.
func (d *Desktop) scheduleSave(id wm.WindowID) tea.Cmd {
	if !id.IsPersisted() {
		return nil
	}
	d.saveGen[id]++
	gen := d.saveGen[id]
	return tea.Tick(noteSaveDelay, func(time.Time) tea.Msg {
		return saveNoteMsg{id: id, gen: gen}
	})
}

// noteFor snapshots a sticky note window as a store record.
func (d *Desktop) noteFor(w *wm.Window) (notes.Note, bool) {
	noteID, ok := w.ID.Note()
	if !ok {
		return notes.Note{}, false
	}
	text, _ := content.NoteText(w)
	n := notes.Note{ID: noteID, Content: text, X: w.Left.Offset, Y: w.Top.Offset}
	if box, ok := d.layout.Box(w.ID); ok {
		if !w.Left.IsExplicit() {
			n.X = box.X
		}
		if !w.Top.IsExplicit() {
			n.Y = box.Y
		}
	}
	return n, true
}

func (d *Desktop) saveNoteCmd(w *wm.Window) tea.Cmd {
	n, ok := d.noteFor(w)
	if !ok || d.notes == nil {
		return nil
	}
	store := d.notes
	return func() tea.Msg {
		ctx, cancel := d.storeContext()
		defer cancel()
		if err := store.Update(ctx, n); err != nil {
			return NoteErrorMsg{Op: "save", ID: n.ID, Err: err}
		}
		return nil
	}
}

func (d *Desktop) deleteNoteCmd(id int) tea.Cmd {
	if d.notes == nil {
		return nil
	}
	store := d.notes
	return func() tea.Msg {
		ctx, cancel := d.storeContext()
		defer cancel()
		if err := store.Delete(ctx, id); err != nil && !notes.IsNotFound(err) {
			return NoteErrorMsg{Op: "delete", ID: id, Err: err}
		}
		return nil
	}
}

func (d *Desktop) loadFilmsCmd() tea.Cmd {
	if d.films == nil {
		return nil
	}
	client := d.films
	return func() tea.Msg {
		ctx, cancel := d.storeContext()
		defer cancel()
		list, err := client.List(ctx)
		return FilmsLoadedMsg{Films: list, Err: err}
	}
}

// startNowPlaying connects the presence feed the first time the music
// widget opens.
func (d *Desktop) startNowPlaying() tea.Cmd {
	if d.presence != nil || d.nowPlaying == nil {
		return nil
	}
	c := d.nowPlaying()
	if c == nil {
		return nil
	}
	d.presence = c
	go func() {
		if err := c.Run(d.ctx); err != nil && !errors.Is(err, context.Canceled) {
			d.logger.Error("presence feed stopped", "err", err)
		}
	}()
	return ListenForNowPlaying(d.ctx, c)
}

// ListenForNowPlaying waits for the next presence update.
func ListenForNowPlaying(ctx context.Context, c *nowplaying.Client) tea.Cmd {
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case s := <-c.Updates():
			return NowPlayingMsg{Status: s}
		}
	}
}

// takePending returns and clears work queued by the persister.
func (d *Desktop) takePending() []tea.Cmd {
	p := d.pending
	d.pending = nil
	return p
}

// notePersister queues store writes requested by the window manager.
// They run once the current update returns.
type notePersister struct {
	d *Desktop
}

func (p notePersister) SaveNote(w *wm.Window) {
	delete(p.d.saveGen, w.ID)
	if cmd := p.d.saveNoteCmd(w); cmd != nil {
		p.d.pending = append(p.d.pending, cmd)
	}
}

func (p notePersister) DeleteNote(id int) {
	delete(p.d.saveGen, wm.StickyNoteID(id))
	if cmd := p.d.deleteNoteCmd(id); cmd != nil {
		p.d.pending = append(p.d.pending, cmd)
	}
}
