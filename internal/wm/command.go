package wm

// Command is a request addressed to the desktop dispatcher. Commands
// carry the ids they refer to; the dispatcher looks windows up when it
// handles them.
type Command interface {
	isCommand()
}

type (
	// OpenCmd opens (or focuses) the singleton window of a kind.
	OpenCmd struct{ Kind Kind }
	// FocusCmd focuses a window.
	FocusCmd struct{ ID WindowID }
	// CloseCmd closes a window according to its close policy.
	CloseCmd struct{ ID WindowID }
	// MinimiseCmd minimises a window.
	MinimiseCmd struct{ ID WindowID }
	// MaximiseCmd maximises a window.
	MaximiseCmd struct{ ID WindowID }
	// RestoreCmd restores a maximised window.
	RestoreCmd struct{ ID WindowID }
	// ResizeCmd is issued by self-sizing content.
	ResizeCmd struct {
		ID     WindowID
		Height int
	}
	// NewStickyCmd asks the note store for a new sticky note.
	NewStickyCmd struct{}
	// SaveNoteCmd persists a sticky note's content and position.
	SaveNoteCmd struct{ ID WindowID }
	// BackgroundCmd steps the desktop background by Delta.
	BackgroundCmd struct{ Delta int }
)

func (OpenCmd) isCommand()       {}
func (FocusCmd) isCommand()      {}
func (CloseCmd) isCommand()      {}
func (MinimiseCmd) isCommand()   {}
func (MaximiseCmd) isCommand()   {}
func (RestoreCmd) isCommand()    {}
func (ResizeCmd) isCommand()     {}
func (NewStickyCmd) isCommand()  {}
func (SaveNoteCmd) isCommand()   {}
func (BackgroundCmd) isCommand() {}

// Apply runs the commands that only touch window state. handled is
// false for commands that need a collaborator (opening content, notes,
// background).
func (m *Manager) Apply(cmd Command) (changed, handled bool) {
	switch c := cmd.(type) {
	case FocusCmd:
		return m.Focus(c.ID), true
	case CloseCmd:
		return m.Close(c.ID), true
	case MinimiseCmd:
		return m.Minimise(c.ID), true
	case MaximiseCmd:
		return m.Maximise(c.ID), true
	case RestoreCmd:
		return m.Restore(c.ID), true
	case ResizeCmd:
		return m.Resize(c.ID, c.Height), true
	default:
		return false, false
	}
}
