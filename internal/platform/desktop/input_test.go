package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

func pressedSet(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestHeldFrame(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		p1   core.Intent
		p2   core.Intent
	}{
		{"nothing held", nil, core.Intent{}, core.Intent{}},
		{"p1 drives and turns", []ebiten.Key{ebiten.KeyW, ebiten.KeyA}, core.Intent{Turn: 1, Move: 1}, core.Intent{}},
		{"p2 reverses and fires", []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeySpace}, core.Intent{}, core.Intent{Move: -1, Fire: true}},
		{"forward beats back", []ebiten.Key{ebiten.KeyW, ebiten.KeyS}, core.Intent{Move: 1}, core.Intent{}},
		{"left beats right", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowRight}, core.Intent{}, core.Intent{Turn: 1}},
		{"both fire", []ebiten.Key{ebiten.KeyQ, ebiten.KeySpace}, core.Intent{Fire: true}, core.Intent{Fire: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := heldFrame(pressedSet(tt.keys...))
			if got := frame.Player(core.Player1).Intent(); got != tt.p1 {
				t.Errorf("player 1 intent = %+v, want %+v", got, tt.p1)
			}
			if got := frame.Player(core.Player2).Intent(); got != tt.p2 {
				t.Errorf("player 2 intent = %+v, want %+v", got, tt.p2)
			}
		})
	}
}

func TestRGBA(t *testing.T) {
	c := rgba(core.ColorRed)
	if c.A != 0xff {
		t.Errorf("alpha = %d, want 255", c.A)
	}
	r, g, b := core.ColorRed.RGB()
	if c.R != r || c.G != g || c.B != b {
		t.Errorf("rgba(red) = %v, want %d,%d,%d", c, r, g, b)
	}
}
