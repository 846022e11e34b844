package world

import "github.com/vovakirdan/tui-tanks/internal/core"

// Controller supplies a tank's intent once per tick.
type Controller interface {
	Intent() core.Intent
}

// IntentFunc adapts a function to a Controller.
type IntentFunc func() core.Intent

// Intent implements Controller.
func (f IntentFunc) Intent() core.Intent {
	return f()
}

// ApplyIntents resets every live tank's turn and move intent, then polls its
// controller and applies turn, move and fire. Runs before World.Update so all
// intents are resolved ahead of physics.
func ApplyIntents(w *World) {
	for _, t := range w.Tanks() {
		t.Omega = 0
		t.Direction = 0
		if t.controller == nil {
			continue
		}
		in := t.controller.Intent()
		t.Omega = sign(in.Turn)
		t.Direction = sign(in.Move)
		if in.Fire {
			t.Fire(w)
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
