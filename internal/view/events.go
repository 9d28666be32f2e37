package view

import (
	"strconv"
	"strings"
)

// Action names the data-action attribute values the templates emit.
type Action string

const (
	ActionToggleLanguage Action = "toggle-language"
	ActionOpenCV         Action = "open-cv"
	ActionCloseCV        Action = "close-cv"
	ActionPrint          Action = "print"
	ActionOpenProject    Action = "open-project"
)

// Event is a user intent resolved from a DOM event.
type Event struct {
	Action Action
	Index  int
}

// Node describes one element on the path from an event target up to the root.
type Node struct {
	Tag    string
	Action string
	Index  string
}

// ResolveClick maps a click to an Event. chain starts at the click target and
// walks towards the root. An anchor found before any actionable element ends
// the search: the link handles its own navigation and the click must not reach
// the card or overlay handlers around it.
func ResolveClick(chain []Node) (Event, bool) {
	for _, n := range chain {
		if strings.EqualFold(n.Tag, "a") {
			return Event{}, false
		}
		if n.Action != "" {
			return toEvent(n)
		}
	}
	return Event{}, false
}

// ResolveKey maps a keydown to an Event. Only project cards react to keys
// (Enter and Space); buttons and links already get keyboard activation from
// the host.
func ResolveKey(key string, chain []Node) (Event, bool) {
	if key != "Enter" && key != " " && key != "Spacebar" {
		return Event{}, false
	}
	if len(chain) == 0 || Action(chain[0].Action) != ActionOpenProject {
		return Event{}, false
	}
	return toEvent(chain[0])
}

func toEvent(n Node) (Event, bool) {
	switch a := Action(n.Action); a {
	case ActionToggleLanguage, ActionOpenCV, ActionCloseCV, ActionPrint:
		return Event{Action: a}, true
	case ActionOpenProject:
		i, err := strconv.Atoi(n.Index)
		if err != nil || i < 0 {
			return Event{}, false
		}
		return Event{Action: a, Index: i}, true
	}
	return Event{}, false
}
