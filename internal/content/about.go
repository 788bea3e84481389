package content

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/14ROVI/copland/internal/wm"
)

// AboutMe is a short biography.
func AboutMe() *wm.Window {
	return &wm.Window{
		ID:    wm.AboutMeID,
		State: wm.Open,
		Close: wm.CloseRemove,
		Top:   wm.Half(),
		Left:  wm.Half(),
		Width: 44,
		Icon:  "ℹ",
		Title: "About Me",
		Body:  aboutBody{},
	}
}

var quickFacts = []string{
	"Favourite film: Interstellar",
	"Nationality: English",
	"Currently living in: England",
	"Favourite language: Rust",
	"Most hated field of maths: Proofs",
}

type aboutBody struct{}

func (aboutBody) View(width int) string {
	style := bodyStyle(width)
	parts := []string{
		heading("Roan Vickerman"),
		style.Render("Yes it may surprise you but my name is spelt without a w. " +
			"However, it is still pronounced like it has a w."),
		style.Render("I work as a software developer and studied Mathematics and " +
			"Computer Science at The University of Bristol."),
		style.Render("I like to code things which have real world implications or " +
			"are available to be used by others. Some of my projects can be found " +
			"on github.com/14ROVI."),
		"Here are some quick facts:",
	}
	var facts strings.Builder
	for i, f := range quickFacts {
		if i > 0 {
			facts.WriteString("\n")
		}
		facts.WriteString(style.Render(" • " + f))
	}
	parts = append(parts, facts.String())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

type social struct {
	name string
	url  string
}

var socials = []social{
	{"Instagram", "instagram.com/roanvickerman"},
	{"GitHub", "github.com/14ROVI"},
	{"Spotify", "open.spotify.com/user/roanvickerman"},
	{"Discord", "discord.com/users/195512978634833920"},
}

// SocialLinks lists where to find me elsewhere.
func SocialLinks() *wm.Window {
	return &wm.Window{
		ID:    wm.SocialLinksID,
		State: wm.Open,
		Close: wm.CloseRemove,
		Top:   wm.Half(),
		Left:  wm.Half(),
		Width: 48,
		Icon:  "@",
		Title: "Socials",
		Body:  socialsBody{},
	}
}

type socialsBody struct{}

func (socialsBody) View(width int) string {
	rows := make([]string, len(socials))
	for i, s := range socials {
		rows[i] = bodyStyle(width).Render(heading(s.name) + "  " + dim(s.url))
	}
	return strings.Join(rows, "\n")
}
