package content

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/14ROVI/copland/internal/theme"
	"github.com/14ROVI/copland/internal/wm"
)

// carousel is an index into n items that wraps at both ends.
type carousel struct {
	index int
	n     int
}

func (c *carousel) next() {
	if c.n == 0 {
		return
	}
	c.index = (c.index + 1) % c.n
}

func (c *carousel) prev() {
	if c.n == 0 {
		return
	}
	c.index = (c.index - 1 + c.n) % c.n
}

// controls renders the previous and next buttons.
func (c *carousel) controls() string {
	return button(" < ") + " " + button(" > ")
}

// handleKey steps on left/right and reports whether it did.
func (c *carousel) handleKey(k Key) bool {
	switch k.String {
	case "left", "h", "<":
		c.prev()
	case "right", "l", ">":
		c.next()
	default:
		return false
	}
	return true
}

// handleControlsClick steps when x falls on one of the buttons rendered
// by controls.
func (c *carousel) handleControlsClick(x int) {
	prevW := lipgloss.Width(button(" < "))
	switch {
	case x >= 0 && x < prevW:
		c.prev()
	case x > prevW && x <= prevW+lipgloss.Width(button(" > ")):
		c.next()
	}
}

type project struct {
	title       string
	description string
	link        string
}

var projects = []project{
	{
		title: "Luna Bot",
		description: "A Discord bot I spent multiple years developing, with its own " +
			"programming language, reminders, ranking, image generation and " +
			"YouTube and Twitch integrations. Written in Python with a hand " +
			"rolled website and a Postgres database behind an RPC layer.",
	},
	{
		title: "Boo",
		description: "A halloween themed puzzle game on a 14 by 10 tile grid. " +
			"Made for CSS GameJam 2021, where it took 2nd place.",
		link: "github.com/14ROVI/Boo",
	},
	{
		title: "Kit",
		description: "My entry to the 2022 CSS GameJam. A small platformer built " +
			"with Rust and an ECS.",
		link: "github.com/14ROVI/css-game-jam-2022",
	},
	{
		title: "VS Twitter",
		description: "A Discord app that fetches the media URL of Twitter GIFs " +
			"and videos, running on Cloudflare workers.",
		link: "github.com/14ROVI/vs-twitter",
	},
	{
		title: "LunaScript",
		description: "A small programming language so users of Luna could script " +
			"their own features safely.",
		link: "github.com/14ROVI/luna_script",
	},
	{
		title:       "Link Shortener",
		description: "A simple link shortener written in Rust.",
		link:        "github.com/14ROVI/link-shortener-rs",
	},
	{
		title: "Spotify playlist to video",
		description: "A script that generates a music video from a Spotify " +
			"playlist URL.",
		link: "github.com/14ROVI/playlist_video",
	},
	{
		title: "GIF Decoder",
		description: "Decodes GIF files into bitmap data, part of a project to " +
			"play Bad Apple on an in-game spacecraft.",
		link: "github.com/14ROVI/gif_decoder",
	},
}

// Projects is a carousel of past projects.
func Projects() *wm.Window {
	return &wm.Window{
		ID:    wm.ProjectsID,
		State: wm.Open,
		Close: wm.CloseRemove,
		Top:   wm.Half(),
		Left:  wm.Half(),
		Width: 50,
		Icon:  "◆",
		Title: "Projects",
		Body:  &projectsBody{carousel: carousel{n: len(projects)}},
	}
}

type projectsBody struct {
	carousel
	controlsRow int
}

func (p *projectsBody) View(width int) string {
	cur := projects[p.index]
	parts := []string{
		heading(cur.title) + dim(fmt.Sprintf("  %d/%d", p.index+1, p.n)),
		bodyStyle(width).Render(cur.description),
	}
	if cur.link != "" {
		parts = append(parts, dim(cur.link))
	}
	top := lipgloss.JoinVertical(lipgloss.Left, parts...)
	p.controlsRow = lipgloss.Height(top) + 1
	return top + "\n\n" + p.controls()
}

func (p *projectsBody) HandleKey(k Key) ([]wm.Command, bool) {
	return nil, p.handleKey(k)
}

func (p *projectsBody) HandleClick(x, y int) []wm.Command {
	if y == p.controlsRow {
		p.handleControlsClick(x)
	}
	return nil
}

var photos = []string{
	"000005220003.jpg",
	"000005220005.jpg",
	"000006710020.jpg",
	"000006710032.jpg",
	"000101080016.png",
	"000101080027.png",
	"000101080035.png",
	"000156840002.jpg",
	"000156840009.jpg",
	"A028792-R1-19-18A.JPG",
	"cloud.jpg",
	"PUNCH.png",
}

// PhotoViewer is a carousel of photos with a filmstrip.
func PhotoViewer() *wm.Window {
	return &wm.Window{
		ID:    wm.PhotoViewerID,
		State: wm.Open,
		Close: wm.CloseRemove,
		Top:   wm.Half(),
		Left:  wm.Half(),
		Width: 44,
		Icon:  "▣",
		Title: "Photos",
		Body:  &photoBody{carousel: carousel{n: len(photos)}},
	}
}

type photoBody struct {
	carousel
	controlsRow int
}

func (p *photoBody) View(width int) string {
	path := dim("~/photos/" + photos[p.index])

	frameW := max(width-2, 4)
	frame := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.BorderUnfocused()).
		Width(frameW).
		Height(5).
		AlignHorizontal(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(photos[p.index])

	var strip strings.Builder
	for i := range photos {
		if i == p.index {
			strip.WriteString("●")
		} else {
			strip.WriteString("○")
		}
	}

	top := lipgloss.JoinVertical(lipgloss.Left, path, frame)
	p.controlsRow = lipgloss.Height(top)
	return lipgloss.JoinVertical(lipgloss.Left, top, p.controls(), strip.String())
}

func (p *photoBody) HandleKey(k Key) ([]wm.Command, bool) {
	return nil, p.handleKey(k)
}

func (p *photoBody) HandleClick(x, y int) []wm.Command {
	switch {
	case y == p.controlsRow:
		p.handleControlsClick(x)
	case y == p.controlsRow+1 && x >= 0 && x < len(photos):
		p.index = x
	}
	return nil
}
