package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

// Binding is a key resolved to a seat and an action.
type Binding struct {
	Player core.PlayerID
	Action core.Action
}

// KeyMapper translates Bubble Tea key messages to game actions.
// Player 1 uses W/S/A/D and Q to fire; player 2 uses the arrows and Space.
type KeyMapper struct {
	layout map[string]Binding
}

// NewKeyMapper creates a new key mapper with the two default layouts.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		layout: map[string]Binding{
			"w": {core.Player1, core.ActionForward},
			"s": {core.Player1, core.ActionBack},
			"a": {core.Player1, core.ActionTurnLeft},
			"d": {core.Player1, core.ActionTurnRight},
			"q": {core.Player1, core.ActionFire},

			"up":    {core.Player2, core.ActionForward},
			"down":  {core.Player2, core.ActionBack},
			"left":  {core.Player2, core.ActionTurnLeft},
			"right": {core.Player2, core.ActionTurnRight},
			" ":     {core.Player2, core.ActionFire},
		},
	}
}

// MapKey translates a key message to a seat action. Shared keys (pause,
// restart, quit) are reported for Player1. ok is false for unbound keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (b Binding, ok bool) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return Binding{core.Player1, core.ActionQuit}, true
	case "p":
		return Binding{core.Player1, core.ActionPause}, true
	case "r":
		return Binding{core.Player1, core.ActionRestart}, true
	}

	b, ok = km.layout[key]
	return b, ok
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// holdTicks is how many ticks a key counts as held after its last press or
// auto-repeat. Terminals report presses, never releases.
const holdTicks = 16

// KeyLatch turns key press events into held-key state for a fixed tick loop.
type KeyLatch struct {
	held map[Binding]int
}

// NewKeyLatch creates an empty latch.
func NewKeyLatch() *KeyLatch {
	return &KeyLatch{held: make(map[Binding]int)}
}

// opposite returns the action that cancels a, if any.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionForward:
		return core.ActionBack
	case core.ActionBack:
		return core.ActionForward
	case core.ActionTurnLeft:
		return core.ActionTurnRight
	case core.ActionTurnRight:
		return core.ActionTurnLeft
	default:
		return core.ActionNone
	}
}

// Press marks b held for the next holdTicks ticks. Pressing a direction
// releases its opposite for the same seat.
func (l *KeyLatch) Press(b Binding) {
	if o := opposite(b.Action); o != core.ActionNone {
		delete(l.held, Binding{b.Player, o})
	}
	l.held[b] = holdTicks
}

// Frame returns the actions held this tick and ages every latch by one tick.
func (l *KeyLatch) Frame() core.MultiInputFrame {
	frame := core.NewMultiInputFrame()
	for b, left := range l.held {
		frame.Set(b.Player, b.Action)
		if left <= 1 {
			delete(l.held, b)
		} else {
			l.held[b] = left - 1
		}
	}
	return frame
}

// Reset releases every key.
func (l *KeyLatch) Reset() {
	clear(l.held)
}
