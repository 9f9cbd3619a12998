package keymap

import (
	"slices"
	"strings"
)

// Resolver maps key strings to actions and back.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string // in binding order, without repeats
}

// NewResolver creates a resolver from bindings. A key bound twice resolves
// to its last binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.actions[key] = b.Action
			if !slices.Contains(r.keys[b.Action], key) {
				r.keys[b.Action] = append(r.keys[b.Action], key)
			}
		}
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to an action, first binding first.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

// Hint is one entry of the footer hint line. Actions sharing a hint are
// shown as "n/N".
type Hint struct {
	Actions []Action
	Label   string
}

// FooterHints is the hint line under the now-playing view.
var FooterHints = []Hint{
	{[]Action{ActionTogglePlaylistMenu}, "playlist"},
	{[]Action{ActionToggleSharePanel}, "share"},
	{[]Action{ActionNextTrack, ActionPrevTrack}, "next/prev"},
	{[]Action{ActionHelp}, "help"},
	{[]Action{ActionQuit}, "quit"},
}

// HintLine renders hints with each action's primary key. Hints whose
// actions are all unbound are left out.
func (r *Resolver) HintLine(hints []Hint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		var keys []string
		for _, a := range h.Actions {
			if ks := r.keys[a]; len(ks) > 0 {
				keys = append(keys, ks[0])
			}
		}
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, strings.Join(keys, "/")+" "+h.Label)
	}
	return strings.Join(parts, " · ")
}
