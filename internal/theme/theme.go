// Package theme provides the colour palette and the shared desktop
// background for Copland.
package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the tint registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming is disabled and the built-in colours are used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
		return fmt.Errorf("unknown theme %q, using default", themeName)
	}

	return nil
}

// Current returns the currently active tint, or nil when theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// GetANSIPalette returns the 16 ANSI colours (0-15) from the current theme.
func GetANSIPalette() [16]color.Color {
	t := Current()
	if t == nil {
		return [16]color.Color{
			lipgloss.Color("#000000"), lipgloss.Color("#cd0000"), lipgloss.Color("#00cd00"), lipgloss.Color("#cdcd00"),
			lipgloss.Color("#0000ee"), lipgloss.Color("#cd00cd"), lipgloss.Color("#00cdcd"), lipgloss.Color("#e5e5e5"),
			lipgloss.Color("#7f7f7f"), lipgloss.Color("#ff0000"), lipgloss.Color("#00ff00"), lipgloss.Color("#ffff00"),
			lipgloss.Color("#5c5cff"), lipgloss.Color("#ff00ff"), lipgloss.Color("#00ffff"), lipgloss.Color("#ffffff"),
		}
	}
	return [16]color.Color{
		t.Black,
		t.Red,
		t.Green,
		t.Yellow,
		t.Blue,
		t.Purple,
		t.Cyan,
		t.White,
		t.BrightBlack,
		t.BrightRed,
		t.BrightGreen,
		t.BrightYellow,
		t.BrightBlue,
		t.BrightPurple,
		t.BrightCyan,
		t.BrightWhite,
	}
}

// Desktop colours
func DesktopBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#008080")
	}
	return t.Bg
}

func WindowBg() color.Color {
	return lipgloss.Color("#c0c0c0")
}

func WindowFg() color.Color {
	return lipgloss.Color("#000000")
}

// Window border colours
func BorderUnfocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#808080")
	}
	return t.BrightBlack
}

func BorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000080")
	}
	return t.Blue
}

// Title bar colours. Inactive windows get a greyed-out bar.
func TitleBarActive() (bg color.Color, fg color.Color) {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000080"), lipgloss.Color("#ffffff")
	}
	return t.Blue, t.BrightWhite
}

func TitleBarInactive() (bg color.Color, fg color.Color) {
	return lipgloss.Color("#808080"), lipgloss.Color("#c0c0c0")
}

// Taskbar colours
func TaskbarBg() color.Color {
	return lipgloss.Color("#c0c0c0")
}

func TaskbarFg() color.Color {
	return lipgloss.Color("#000000")
}

func TaskbarActive() (bg color.Color, fg color.Color) {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e0e0e0"), lipgloss.Color("#000080")
	}
	return t.BrightWhite, t.Blue
}

func TaskbarDimmed() color.Color {
	return lipgloss.Color("#606060")
}

// Log viewer colours
func LogViewerTitle() color.Color {
	return lipgloss.Color("14")
}

func LogViewerError() color.Color {
	return lipgloss.Color("9")
}

func LogViewerWarn() color.Color {
	return lipgloss.Color("11")
}

func LogViewerInfo() color.Color {
	return lipgloss.Color("10")
}

func LogViewerBg() color.Color {
	return lipgloss.Color("#1a1a2a")
}

// Notification colours
func NotificationError() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ff6b6b")
	}
	return t.BrightRed
}

func NotificationInfo() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#4dabf7")
	}
	return t.BrightBlue
}

func NotificationFg() color.Color {
	return lipgloss.Color("#ffffff")
}

// CLI table colours
func CLITableHeader() color.Color {
	return lipgloss.Color("12")
}

func CLITableBorder() color.Color {
	return lipgloss.Color("14")
}

func CLITableKey() color.Color {
	return lipgloss.Color("11")
}
