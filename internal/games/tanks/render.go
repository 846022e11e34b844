package tanks

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks/world"
)

// Visual characters for rendering
const (
	WallChar  = '█'
	ShellChar = '•'
	AmmoChar  = '●'
	EmptyChar = '○'
)

// tankGlyphs index by rotation in 45° steps, counterclockwise from up.
var tankGlyphs = [8]rune{'▲', '◤', '◀', '◣', '▼', '◢', '▶', '◥'}

// Minimum terminal size that still shows a readable maze.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// TankGlyph returns the arrow for a tank rotation in degrees.
func TankGlyph(rotation float64) rune {
	idx := int(math.Round(core.WrapDegrees(rotation)/45)) % len(tankGlyphs)
	return tankGlyphs[idx]
}

// viewport maps arena units onto screen cells below the HUD row.
type viewport struct {
	sx, sy float64
	top    int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	aw, ah := g.rules.ArenaSize()
	return viewport{
		sx:  float64(dst.Width()) / (aw + g.rules.Arena.WallThickness),
		sy:  float64(dst.Height()-1) / (ah + g.rules.Arena.WallThickness),
		top: 1,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(x * v.sx), v.top + int(y*v.sy)
}

// rect converts an arena box into cells, never narrower than one cell.
func (v viewport) rect(r core.RectF) core.Rect {
	x0, y0 := v.cell(r.X, r.Y)
	x1, y1 := v.cell(r.Right(), r.Bottom())
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the maze, tanks, shells and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	vp := g.viewport(dst)
	g.world.Each(func(e world.Entity) {
		switch v := e.(type) {
		case *world.Wall:
			dst.DrawRect(vp.rect(v.Rect()), WallChar, core.ColorGray)
		case *world.Projectile:
			x, y := vp.cell(v.X, v.Y)
			dst.SetColored(x, y, ShellChar, core.ColorWhite)
		}
	})
	// Tanks last so walls never hide them.
	for _, t := range g.world.Tanks() {
		x, y := vp.cell(t.X, t.Y)
		dst.SetColored(x, y, TankGlyph(t.Rotation), t.Color)
	}

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver && g.winner != nil {
		title := strings.ToUpper(g.winner.Name()) + " WINS THE MATCH!"
		g.drawCenteredMessage(dst, title, g.scoreLine()+"  |  Press R to restart")
	}
}

// drawHUD draws scores, ammo and the survivor countdown on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	x := 1
	for _, p := range g.players {
		label := fmt.Sprintf("%s %d ", strings.ToUpper(p.Name()), p.Score)
		dst.DrawTextColored(x, 0, label, p.Color)
		x += len(label)

		ammo := 0
		if t, ok := p.Tank(g.world); ok {
			ammo = t.Ammo
		}
		for i := 0; i < g.rules.Tank.BaseAmmo; i++ {
			pip := EmptyChar
			if i < ammo {
				pip = AmmoChar
			}
			dst.SetColored(x, 0, pip, p.Color)
			x++
		}
		x += 3
	}

	status := fmt.Sprintf("Round %d", g.level.Round())
	if survivors := g.level.Survivors(); len(survivors) == 1 {
		left := max(0, g.rules.OneLeftTimeout-g.level.Ticker())
		status += fmt.Sprintf("  %s survives in %.1fs", survivors[0].Name(), left)
	}
	dst.DrawText(dst.Width()-len(status)-1, 0, status)
}

func (g *Game) scoreLine() string {
	parts := make([]string, len(g.players))
	for i, p := range g.players {
		parts[i] = fmt.Sprintf("%d", p.Score)
	}
	return strings.Join(parts, " - ")
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
