package theme

import (
	"testing"

	"charm.land/lipgloss/v2"
)

func TestInitializeEmptyDisablesTheming(t *testing.T) {
	t.Cleanup(func() { _ = Initialize("") })

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize(\"\") = %v", err)
	}
	if Current() != nil {
		t.Error("Current should be nil with theming disabled")
	}
	if got, want := DesktopBg(), lipgloss.Color("#008080"); got != want {
		t.Errorf("DesktopBg = %v, want fallback %v", got, want)
	}
	if p := GetANSIPalette(); p[1] != lipgloss.Color("#cd0000") {
		t.Errorf("palette red = %v, want fallback", p[1])
	}
}

func TestInitializeUnknownTheme(t *testing.T) {
	t.Cleanup(func() { _ = Initialize("") })

	if err := Initialize("no-such-theme"); err == nil {
		t.Error("want an error for an unknown theme")
	}
}
