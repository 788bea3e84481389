package wm

import "fmt"

// StateKind is the visibility state of a window.
type StateKind int

const (
	// StateOpen is a normal, visible window.
	StateOpen StateKind = iota
	// StateMaximised fills the desktop; position fields are ignored.
	StateMaximised
	// StateMinimised hides the window but keeps its taskbar entry.
	StateMinimised
	// StateHidden removes the window from view and from the taskbar
	// while keeping the record addressable.
	StateHidden
)

// State is a window state. WasMaximised is only meaningful for
// StateMinimised and records what focusing should restore to.
type State struct {
	Kind         StateKind
	WasMaximised bool
}

var (
	Open      = State{Kind: StateOpen}
	Maximised = State{Kind: StateMaximised}
	Hidden    = State{Kind: StateHidden}
)

// Minimised returns the minimised state remembering whether the window
// was maximised.
func Minimised(wasMaximised bool) State {
	return State{Kind: StateMinimised, WasMaximised: wasMaximised}
}

// Visible reports whether the window is drawn on the desktop.
func (s State) Visible() bool {
	return s.Kind == StateOpen || s.Kind == StateMaximised
}

// Displayed is the state a window takes when it is focused.
func (s State) Displayed() State {
	switch {
	case s.Kind == StateMaximised:
		return Maximised
	case s.Kind == StateMinimised && s.WasMaximised:
		return Maximised
	default:
		return Open
	}
}

func (s State) String() string {
	switch s.Kind {
	case StateOpen:
		return "Open"
	case StateMaximised:
		return "Maximised"
	case StateMinimised:
		return fmt.Sprintf("Minimised(%t)", s.WasMaximised)
	case StateHidden:
		return "Hidden"
	default:
		return fmt.Sprintf("State(%d)", int(s.Kind))
	}
}

// ClosePolicy governs what closing a window does.
type ClosePolicy int

const (
	// CloseInvalid windows cannot be closed.
	CloseInvalid ClosePolicy = iota
	// CloseRemove deletes the record from the registry.
	CloseRemove
	// CloseHide keeps the record and moves it to StateHidden.
	CloseHide
)

func (p ClosePolicy) String() string {
	switch p {
	case CloseInvalid:
		return "invalid"
	case CloseRemove:
		return "close"
	case CloseHide:
		return "hide"
	default:
		return fmt.Sprintf("ClosePolicy(%d)", int(p))
	}
}

// Content is the opaque body of a window. The manager never looks inside.
type Content interface {
	View(width int) string
}

// Window is a single desktop window.
type Window struct {
	ID    WindowID
	State State
	Close ClosePolicy
	Z     uint32
	Top   Position
	Left  Position
	Width int
	// Height is the fixed outer height in cells. Zero sizes the window
	// to its content.
	Height int
	Icon   string
	Title  string
	Body   Content
}
