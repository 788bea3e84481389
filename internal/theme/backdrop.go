package theme

import (
	"strings"

	"charm.land/lipgloss/v2"
)

var backdropGlyphs = []string{
	"░", "▒", "·", "∙", "╱", "╲", "┼", "◦", "˖", "⋅", "▚",
}

// Backdrop renders background n as a width x height block filling the
// desktop area.
func Backdrop(n, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	n = wrap(n)
	glyph := backdropGlyphs[(n-1)%len(backdropGlyphs)]
	palette := GetANSIPalette()
	// Skip black and white so the pattern stays visible on every theme.
	fg := palette[1+(n-1)%6]

	var sb strings.Builder
	row := strings.Repeat(glyph, width)
	for i := range height {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(row)
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Background(DesktopBg()).
		Render(sb.String())
}

// BackdropName is the label the background selector shows.
func BackdropName(n int) string {
	n = wrap(n)
	return "Pattern " + backdropGlyphs[(n-1)%len(backdropGlyphs)]
}
