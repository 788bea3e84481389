// Package nowplaying follows a user's listening activity over the Lanyard
// presence websocket.
package nowplaying

import (
	"fmt"
	"time"
)

// IdleText is shown when nothing is playing.
const IdleText = "Not currently listening to anything :("

// Track describes the song currently playing.
type Track struct {
	Song        string
	Album       string
	Artist      string
	AlbumArtURL string
	Start       time.Time
	End         time.Time
}

// Status is a presence snapshot. Track is only meaningful when Listening
// is set.
type Status struct {
	Listening bool
	Track     Track
}

// Total is the length of the track.
func (t Track) Total() time.Duration {
	if t.End.Before(t.Start) {
		return 0
	}
	return t.End.Sub(t.Start)
}

// Elapsed is how far into the track now is, clamped to the track length.
func (t Track) Elapsed(now time.Time) time.Duration {
	d := now.Sub(t.Start)
	if d < 0 {
		return 0
	}
	return min(d, t.Total())
}

// FormatDuration renders d as m:ss, truncating to whole seconds.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
