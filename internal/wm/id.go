package wm

import (
	"cmp"
	"fmt"
)

// Kind identifies the sort of content a window hosts.
type Kind int

const (
	KindHome Kind = iota
	KindSpotify
	KindAboutMe
	KindSocialLinks
	KindBackgroundSelector
	KindProjects
	KindPhotoViewer
	KindFilms
	KindStickyNote
)

var kindNames = map[Kind]string{
	KindHome:               "Home",
	KindSpotify:            "Spotify",
	KindAboutMe:            "AboutMe",
	KindSocialLinks:        "SocialLinks",
	KindBackgroundSelector: "BackgroundSelector",
	KindProjects:           "Projects",
	KindPhotoViewer:        "PhotoViewer",
	KindFilms:              "Films",
	KindStickyNote:         "StickyNote",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// WindowID identifies a window. Singleton kinds have exactly one id;
// sticky notes carry the numeric id assigned by the note store.
// WindowID is comparable and can be used as a map key.
type WindowID struct {
	kind Kind
	note int
}

// Singleton window ids.
var (
	HomeID               = WindowID{kind: KindHome}
	SpotifyID            = WindowID{kind: KindSpotify}
	AboutMeID            = WindowID{kind: KindAboutMe}
	SocialLinksID        = WindowID{kind: KindSocialLinks}
	BackgroundSelectorID = WindowID{kind: KindBackgroundSelector}
	ProjectsID           = WindowID{kind: KindProjects}
	PhotoViewerID        = WindowID{kind: KindPhotoViewer}
	FilmsID              = WindowID{kind: KindFilms}
)

// SingletonID returns the id for a singleton kind. Sticky notes have no
// singleton id and report false.
func SingletonID(k Kind) (WindowID, bool) {
	if k == KindStickyNote {
		return WindowID{}, false
	}
	if _, ok := kindNames[k]; !ok {
		return WindowID{}, false
	}
	return WindowID{kind: k}, true
}

// StickyNoteID returns the id of the sticky note with the given store id.
func StickyNoteID(note int) WindowID {
	return WindowID{kind: KindStickyNote, note: note}
}

// Kind returns the window kind.
func (id WindowID) Kind() Kind { return id.kind }

// Note returns the store id of a sticky note window.
func (id WindowID) Note() (int, bool) {
	if id.kind != KindStickyNote {
		return 0, false
	}
	return id.note, true
}

// IsPersisted reports whether the window's content lives in the note store.
func (id WindowID) IsPersisted() bool {
	return id.kind == KindStickyNote
}

func (id WindowID) String() string {
	if id.kind == KindStickyNote {
		return fmt.Sprintf("StickyNote(%d)", id.note)
	}
	return id.kind.String()
}

// ElementID is the stable identifier used for rendered boxes.
func (id WindowID) ElementID() string {
	return "window-" + id.String()
}

// Compare orders ids by kind, then by note number.
func (id WindowID) Compare(other WindowID) int {
	if c := cmp.Compare(id.kind, other.kind); c != 0 {
		return c
	}
	return cmp.Compare(id.note, other.note)
}
