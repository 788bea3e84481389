package config

import (
	"slices"
	"strings"
)

// ActionDescriptions describes every bindable action.
var ActionDescriptions = map[string]string{
	"new_note":        "New sticky note",
	"close_window":    "Close focused window",
	"minimise_window": "Minimise focused window",
	"maximise_window": "Maximise or restore focused window",
	"next_window":     "Focus next window",
	"prev_window":     "Focus previous window",
	"open_home":       "Focus home window",
	"toggle_logs":     "Toggle log viewer",
	"toggle_help":     "Toggle keybinding help",
	"quit":            "Quit",
}

// DefaultKeybindings returns the built-in action to keys mapping.
func DefaultKeybindings() map[string][]string {
	return map[string][]string{
		"new_note":        {"ctrl+n"},
		"close_window":    {"ctrl+w"},
		"minimise_window": {"ctrl+down"},
		"maximise_window": {"ctrl+up"},
		"next_window":     {"tab"},
		"prev_window":     {"shift+tab"},
		"open_home":       {"ctrl+h"},
		"toggle_logs":     {"ctrl+l"},
		"toggle_help":     {"f1"},
		"quit":            {"ctrl+c", "ctrl+q"},
	}
}

// KeybindRegistry resolves keys to actions and back.
type KeybindRegistry struct {
	actionToKeys map[string][]string
	keyToAction  map[string]string
}

// NewKeybindRegistry builds a registry from the configuration. Actions
// missing from the configuration keep their default keys.
func NewKeybindRegistry(cfg *Config) *KeybindRegistry {
	r := &KeybindRegistry{
		actionToKeys: make(map[string][]string),
		keyToAction:  make(map[string]string),
	}

	bindings := DefaultKeybindings()
	if cfg != nil {
		for action, keys := range cfg.Keybindings {
			bindings[action] = keys
		}
	}

	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	slices.Sort(actions)

	for _, action := range actions {
		for _, key := range bindings[action] {
			key = NormalizeKey(key)
			if key == "" {
				continue
			}
			r.actionToKeys[action] = append(r.actionToKeys[action], key)
			if _, taken := r.keyToAction[key]; !taken {
				r.keyToAction[key] = action
			}
		}
	}
	return r
}

// NormalizeKey lower-cases a key and strips whitespace.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// GetKeys returns the keys bound to action.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.actionToKeys[action]
}

// GetAction returns the action bound to key, or "".
func (r *KeybindRegistry) GetAction(key string) string {
	return r.keyToAction[NormalizeKey(key)]
}

// GetKeysForDisplay joins the keys of action for help output.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	return strings.Join(r.actionToKeys[action], ", ")
}

// Actions returns every action with at least one key, sorted.
func (r *KeybindRegistry) Actions() []string {
	out := make([]string, 0, len(r.actionToKeys))
	for action := range r.actionToKeys {
		out = append(out, action)
	}
	slices.Sort(out)
	return out
}
