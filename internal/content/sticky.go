package content

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/14ROVI/copland/internal/notes"
	"github.com/14ROVI/copland/internal/wm"
)

const (
	stickyWidth   = 24
	stickyMinRows = 3
)

// StickyNote builds the window for a stored note, placed at the note's
// saved offset.
func StickyNote(n notes.Note) *wm.Window {
	body := &stickyBody{
		id:      wm.StickyNoteID(n.ID),
		text:    n.Content,
		created: n.Created(),
	}
	return &wm.Window{
		ID:     body.id,
		State:  wm.Open,
		Close:  wm.CloseRemove,
		Top:    wm.Close(n.Y),
		Left:   wm.Close(n.X),
		Width:  stickyWidth,
		Height: body.height(stickyWidth - ChromeCols),
		Icon:   "✎",
		Title:  "Sticky Note",
		Body:   body,
	}
}

// NoteText returns the current text of a sticky note window.
func NoteText(w *wm.Window) (string, bool) {
	if w == nil {
		return "", false
	}
	b, ok := w.Body.(*stickyBody)
	if !ok {
		return "", false
	}
	return b.text, true
}

type stickyBody struct {
	id      wm.WindowID
	text    string
	created time.Time
}

func (s *stickyBody) textView(width int) string {
	text := s.text
	if rows := strings.Count(text, "\n") + 1; rows < stickyMinRows {
		text += strings.Repeat("\n", stickyMinRows-rows)
	}
	return bodyStyle(width).Render(text + "▏")
}

func (s *stickyBody) View(width int) string {
	status := dim(s.created.Format("02/01/2006, 15:04:05"))
	return s.textView(width) + "\n" + status
}

// height is the outer window height needed to show the whole note.
func (s *stickyBody) height(width int) int {
	return lipgloss.Height(s.textView(width)) + 1 + ChromeRows
}

func (s *stickyBody) HandleKey(k Key) ([]wm.Command, bool) {
	switch {
	case k.String == "backspace":
		if s.text == "" {
			return nil, true
		}
		r := []rune(s.text)
		s.text = string(r[:len(r)-1])
	case k.String == "enter":
		s.text += "\n"
	case k.Text != "":
		s.text += k.Text
	default:
		return nil, false
	}
	return []wm.Command{
		wm.SaveNoteCmd{ID: s.id},
		wm.ResizeCmd{ID: s.id, Height: s.height(stickyWidth - ChromeCols)},
	}, true
}
