package app

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/14ROVI/copland/internal/config"
	"github.com/14ROVI/copland/internal/theme"
)

// HelpBinding is one row of the help panel.
type HelpBinding struct {
	Action      string
	Keys        []string
	Description string
}

// HelpCategory groups related bindings.
type HelpCategory struct {
	Name     string
	Bindings []HelpBinding
}

var helpSections = []struct {
	name    string
	actions []string
}{
	{"Windows", []string{
		"next_window", "prev_window", "minimise_window",
		"maximise_window", "close_window", "open_home",
	}},
	{"Notes", []string{"new_note"}},
	{"System", []string{"toggle_help", "toggle_logs", "quit"}},
}

// GetHelpCategories lists every bound action by category. Actions the
// registry knows about but no category names end up under "Other".
func GetHelpCategories(registry *config.KeybindRegistry) []HelpCategory {
	seen := make(map[string]bool)
	var out []HelpCategory
	add := func(name string, actions []string) {
		cat := HelpCategory{Name: name}
		for _, action := range actions {
			seen[action] = true
			keys := registry.GetKeys(action)
			if len(keys) == 0 {
				continue
			}
			desc := config.ActionDescriptions[action]
			if desc == "" {
				desc = action
			}
			cat.Bindings = append(cat.Bindings, HelpBinding{Action: action, Keys: keys, Description: desc})
		}
		if len(cat.Bindings) > 0 {
			out = append(out, cat)
		}
	}

	for _, s := range helpSections {
		add(s.name, s.actions)
	}
	var rest []string
	for _, action := range registry.Actions() {
		if !seen[action] {
			rest = append(rest, action)
		}
	}
	add("Other", rest)
	return out
}

// HelpTable renders the categories as a single table.
func HelpTable(categories []HelpCategory) *table.Table {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableHeader()).Padding(0, 1)
	categoryStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableKey()).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	var rows [][]string
	categoryRows := make(map[int]bool)
	for _, cat := range categories {
		categoryRows[len(rows)] = true
		rows = append(rows, []string{cat.Name, ""})
		for _, b := range cat.Bindings {
			rows = append(rows, []string{strings.Join(b.Keys, ", "), b.Description})
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.CLITableBorder())).
		Headers("Keys", "Action").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case categoryRows[row]:
				return categoryStyle
			}
			return cellStyle
		})
}

func (d *Desktop) renderHelp() *lipgloss.Layer {
	panel := HelpTable(GetHelpCategories(d.Keybinds)).Render()
	hint := lipgloss.NewStyle().Foreground(theme.TaskbarDimmed()).Italic(true).
		Render(d.Keybinds.GetKeysForDisplay("toggle_help") + " or esc to close")
	box := lipgloss.JoinVertical(lipgloss.Center, panel, hint)

	x := max((d.Width-lipgloss.Width(box))/2, 0)
	y := max((d.DesktopHeight()-lipgloss.Height(box))/2, 0)
	return lipgloss.NewLayer(box).X(x).Y(y).Z(zHelp).ID("help")
}
