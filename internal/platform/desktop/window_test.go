package desktop

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks"
)

func newTestGame(t *testing.T) *tanks.Game {
	t.Helper()
	g := tanks.New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Tick: core.DefaultTick, Seed: 3})
	return g
}

func TestLogicalSizeIncludesHUD(t *testing.T) {
	g := newTestGame(t)
	r := g.Rules()
	aw, ah := r.ArenaSize()

	w, h := logicalSize(r)
	if w != int(aw+r.Arena.WallThickness) {
		t.Errorf("width = %d, want %d", w, int(aw+r.Arena.WallThickness))
	}
	if h != int(ah+r.Arena.WallThickness)+hudHeight {
		t.Errorf("height = %d, want arena plus %d", h, hudHeight)
	}
}

func TestHUDText(t *testing.T) {
	g := newTestGame(t)
	text := hudText(g)

	if !strings.Contains(text, "Round 1") {
		t.Errorf("hud %q missing round", text)
	}
	for _, p := range g.Players() {
		if !strings.Contains(text, strings.ToUpper(p.Name())+" 0") {
			t.Errorf("hud %q missing %s score", text, p.Name())
		}
	}
	if strings.Contains(text, "survives") {
		t.Errorf("hud %q shows a countdown with both tanks alive", text)
	}
}
