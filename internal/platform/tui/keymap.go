package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nbol/internal/core"
)

// DefaultHoldTicks is how long a movement key counts as held after its
// last key event. Terminals deliver no key-up events, only auto-repeat, so
// a held key is one that keeps repeating.
const DefaultHoldTicks = 8

// opposite pairs directions that cancel each other.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// KeyMapper translates Bubble Tea key messages to game actions and turns
// repeated key presses into held state.
type KeyMapper struct {
	holdTicks int
	held      map[core.Action]int // ticks left per held action
	pressed   core.InputFrame     // one-shot actions since the last frame
	castQuiet int                 // ticks left in which cast presses are repeats
}

// NewKeyMapper creates a key mapper. holdTicks <= 0 selects DefaultHoldTicks.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyMapper{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
		pressed:   core.NewInputFrame(),
	}
}

// MapKey translates a key to an action. boost is set for shifted movement
// keys; isQuit for quit keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, boost, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, false, true
	case "w", "up":
		return core.ActionUp, false, false
	case "s", "down":
		return core.ActionDown, false, false
	case "a", "left":
		return core.ActionLeft, false, false
	case "d", "right":
		return core.ActionRight, false, false
	case "W", "shift+up":
		return core.ActionUp, true, false
	case "S", "shift+down":
		return core.ActionDown, true, false
	case "A", "shift+left":
		return core.ActionLeft, true, false
	case "D", "shift+right":
		return core.ActionRight, true, false
	case " ", "space", "f":
		return core.ActionCast, false, false
	case "enter":
		return core.ActionConfirm, false, false
	case "b":
		return core.ActionBack, false, false
	case "p", "esc":
		return core.ActionPause, false, false
	case "r":
		return core.ActionRestart, false, false
	}
	return core.ActionNone, false, false
}

// Press records a key event. Returns true if the key was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg) bool {
	action, boost, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}

	switch action {
	case core.ActionNone:
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		km.held[action] = km.holdTicks
		delete(km.held, opposite[action])
		if boost {
			km.held[core.ActionBoost] = km.holdTicks
		} else {
			delete(km.held, core.ActionBoost)
		}
	case core.ActionCast:
		// A held key repeats; only the first press of a burst casts.
		if km.castQuiet == 0 {
			km.pressed.Set(action)
		}
		km.castQuiet = km.holdTicks
	default:
		km.pressed.Set(action)
	}
	return false
}

// Frame returns the input for the next tick and ages held keys.
func (km *KeyMapper) Frame() core.InputFrame {
	frame := km.pressed.Clone()
	for action, left := range km.held {
		frame.Set(action)
		if left <= 1 {
			delete(km.held, action)
		} else {
			km.held[action] = left - 1
		}
	}
	km.pressed.Clear()
	if km.castQuiet > 0 {
		km.castQuiet--
	}
	return frame
}

// Release drops all held and pressed state.
func (km *KeyMapper) Release() {
	clear(km.held)
	km.pressed.Clear()
	km.castQuiet = 0
}
