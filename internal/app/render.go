package app

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/14ROVI/copland/internal/theme"
	"github.com/14ROVI/copland/internal/wm"
)

// Z layers above every window.
const (
	zTaskbar      = 1 << 20
	zNotification = zTaskbar + 1
	zLogs         = zTaskbar + 2
	zHelp         = zTaskbar + 3
)

// TaskbarRegion is a clickable span of the taskbar.
type TaskbarRegion struct {
	x, width int
	newNote  bool
	hasID    bool
	id       wm.WindowID
}

// NewNote reports whether the region is the new-note button.
func (r TaskbarRegion) NewNote() bool { return r.newNote }

// WindowID is the window a taskbar entry stands for.
func (r TaskbarRegion) WindowID() (wm.WindowID, bool) { return r.id, r.hasID }

func getBorder(name string) lipgloss.Border {
	switch name {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "ascii":
		return lipgloss.ASCIIBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// fitLines cuts or pads s to exactly width columns and height rows.
func fitLines(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		line = ansi.Truncate(line, width, "")
		if pad := width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (d *Desktop) renderWindow(w *wm.Window, box wm.Rect, body string, focused bool) string {
	innerW := max(box.Width-2, 1)
	innerH := max(box.Height-2, 1)

	titleBg, titleFg := theme.TitleBarInactive()
	borderColor := theme.BorderUnfocused()
	if focused {
		titleBg, titleFg = theme.TitleBarActive()
		borderColor = theme.BorderFocused()
	}

	controls := controlsText(controlsFor(w))
	label := ansi.Truncate(" "+w.Icon+" "+w.Title, max(innerW-ansi.StringWidth(controls)-1, 0), "…")
	gap := max(innerW-ansi.StringWidth(label)-ansi.StringWidth(controls), 0)
	title := lipgloss.NewStyle().
		Background(titleBg).
		Foreground(titleFg).
		Bold(focused).
		Render(label + strings.Repeat(" ", gap) + controls)

	bodyStyle := lipgloss.NewStyle().Background(theme.WindowBg()).Foreground(theme.WindowFg())
	inner := title + "\n" + bodyStyle.Render(fitLines(body, innerW, innerH-1))

	return lipgloss.NewStyle().
		Border(getBorder(d.Config.Appearance.BorderStyle)).
		BorderForeground(borderColor).
		Render(inner)
}

func (d *Desktop) renderTaskbar() *lipgloss.Layer {
	bg, fg := theme.TaskbarBg(), theme.TaskbarFg()
	activeBg, activeFg := theme.TaskbarActive()
	base := lipgloss.NewStyle().Background(bg).Foreground(fg)
	active := lipgloss.NewStyle().Background(activeBg).Foreground(activeFg).Bold(true)

	var regions []TaskbarRegion
	var b strings.Builder
	x := 0
	add := func(text string, style lipgloss.Style, r TaskbarRegion) {
		r.x, r.width = x, ansi.StringWidth(text)
		regions = append(regions, r)
		b.WriteString(style.Render(text))
		x += r.width
	}

	add(" + note ", active, TaskbarRegion{newNote: true})
	b.WriteString(base.Render(" "))
	x++
	for _, e := range d.Manager.Taskbar() {
		style := base
		if e.Active {
			style = active
		}
		add(" "+e.Icon+" "+e.Title+" ", style, TaskbarRegion{id: e.ID, hasID: true})
	}

	var right []string
	if !d.Config.Appearance.HideStats && d.Stats.Valid {
		right = append(right, fmt.Sprintf("CPU %3.0f%%  RAM %3.0f%%", d.Stats.CPU, d.Stats.RAM))
	}
	if d.RemoteUser != "" {
		right = append(right, d.RemoteUser)
	}
	if !d.Config.Appearance.HideClock {
		right = append(right, d.Clock.Format("15:04"))
	}
	status := strings.Join(right, "  ") + " "
	left := b.String()
	gap := d.Width - ansi.StringWidth(left) - ansi.StringWidth(status)
	line := left
	if gap > 0 {
		line += base.Render(strings.Repeat(" ", gap) + status)
	}

	d.layout.taskbar = regions
	return lipgloss.NewLayer(ansi.Truncate(line, d.Width, "")).
		X(0).Y(d.DesktopHeight()).Z(zTaskbar).ID("taskbar")
}

func notificationColor(kind string) color.Color {
	if kind == "error" || kind == "warning" {
		return theme.NotificationError()
	}
	return theme.NotificationInfo()
}

func (d *Desktop) renderNotifications() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	y := 0
	for i, n := range d.Notifications {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(notificationColor(n.Type)).
			Foreground(theme.NotificationFg()).
			Render(ansi.Truncate(n.Message, max(d.Width/3, 10), "…"))
		x := max(d.Width-lipgloss.Width(box)-1, 0)
		layers = append(layers, lipgloss.NewLayer(box).X(x).Y(y).Z(zNotification+i).ID("notification-"+n.ID))
		y += lipgloss.Height(box)
	}
	return layers
}

func levelColor(level string) color.Color {
	switch level {
	case "ERROR":
		return theme.LogViewerError()
	case "WARN":
		return theme.LogViewerWarn()
	default:
		return theme.LogViewerInfo()
	}
}

func (d *Desktop) renderLogs() *lipgloss.Layer {
	width := max(min(100, d.Width-4), 20)
	rows := max(min(d.DesktopHeight()-6, 30), 3)

	end := max(len(d.LogMessages)-d.LogScrollOffset, 0)
	start := max(end-rows, 0)
	lines := make([]string, 0, rows+2)
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(theme.LogViewerTitle()).Render("Logs"))
	for _, m := range d.LogMessages[start:end] {
		lvl := lipgloss.NewStyle().Foreground(levelColor(m.Level)).Render(fmt.Sprintf("%-5s", m.Level))
		lines = append(lines, fmt.Sprintf("%s %s %s", m.Time.Format("15:04:05"), lvl, m.Message))
	}
	if len(d.LogMessages) == 0 {
		lines = append(lines, "No log messages yet.")
	}
	keys := d.Keybinds.GetKeysForDisplay("toggle_logs")
	lines = append(lines, "", fmt.Sprintf("%s close · ↑/↓ scroll", keys))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.LogViewerTitle()).
		Background(theme.LogViewerBg()).
		Render(fitLines(strings.Join(lines, "\n"), width-2, len(lines)))

	x := max((d.Width-lipgloss.Width(box))/2, 0)
	y := max((d.DesktopHeight()-lipgloss.Height(box))/2, 0)
	return lipgloss.NewLayer(box).X(x).Y(y).Z(zLogs).ID("logs")
}

// Render draws the whole screen and refreshes the layout table.
func (d *Desktop) Render() string {
	if d.Width <= 0 || d.Height <= 0 {
		return "Starting Copland..."
	}
	d.refreshLayout()

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(theme.Backdrop(d.Background.Value(), d.Width, d.DesktopHeight())).
			X(0).Y(0).Z(0).ID("backdrop"),
	}
	focused := d.Manager.Focused()
	// Windows are layered by paint rank; the z allocator grows without
	// bound and must never reach the overlays above.
	for rank, w := range d.Manager.Visible() {
		box, ok := d.layout.Box(w.ID)
		if !ok {
			continue
		}
		s := d.renderWindow(w, box, d.layout.bodies[w.ID], w.ID == focused)
		layers = append(layers, lipgloss.NewLayer(s).X(box.X).Y(box.Y).Z(rank+1).ID(w.ID.ElementID()))
	}
	layers = append(layers, d.renderTaskbar())
	layers = append(layers, d.renderNotifications()...)
	if d.ShowLogs {
		layers = append(layers, d.renderLogs())
	}
	if d.ShowHelp {
		layers = append(layers, d.renderHelp())
	}

	return fitLines(lipgloss.NewCompositor(layers...).Render(), d.Width, d.Height)
}

// View renders the desktop.
func (d *Desktop) View() tea.View {
	var view tea.View
	view.SetContent(d.Render())
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.ReportFocus = true
	return view
}
