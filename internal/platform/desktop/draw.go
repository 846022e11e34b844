package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks"
)

var (
	backgroundColor = color.RGBA{240, 240, 235, 0xff}
	wallColor       = color.RGBA{60, 60, 60, 0xff}
	shellColor      = color.RGBA{20, 20, 20, 0xff}
	overlayColor    = color.RGBA{0, 0, 0, 0x99}
)

// newTankImage draws a white hull with a barrel pointing up. Tanks are tinted
// with their color when drawn.
func newTankImage(r tanks.Rules) *ebiten.Image {
	w, h := float32(r.Tank.Width), float32(r.Tank.Height)
	img := ebiten.NewImage(int(w), int(h))
	vector.DrawFilledRect(img, 0, h*0.25, w, h*0.75, color.White, true)
	vector.DrawFilledRect(img, w*0.4, 0, w*0.2, h*0.5, color.White, true)
	return img
}

// Draw renders the arena, the HUD and any overlay.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	world := w.game.World()

	for _, wl := range world.Walls() {
		r := wl.Rect()
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y+hudHeight), float32(r.W), float32(r.H), wallColor, true)
	}

	for _, p := range world.Projectiles() {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y+hudHeight), float32(p.Spec.Radius), shellColor, true)
	}

	bounds := w.tankImg.Bounds()
	for _, t := range world.Tanks() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
		// Rotation grows counterclockwise; GeoM rotates clockwise on screen.
		op.GeoM.Rotate(-core.Radians(t.Rotation))
		op.GeoM.Translate(t.X, t.Y+hudHeight)
		op.ColorScale.ScaleWithColor(rgba(t.Color))
		screen.DrawImage(w.tankImg, op)
	}

	ebitenutil.DebugPrintAt(screen, hudText(w.game), 4, 2)

	state := w.game.State()
	switch {
	case state.GameOver:
		msg := "MATCH OVER  |  Press R to restart, Esc to quit"
		if winner, ok := w.game.Winner(); ok {
			msg = winner.Name() + " wins the match!  |  Press R to restart, Esc to quit"
		}
		w.drawOverlay(screen, msg)
	case state.Paused:
		w.drawOverlay(screen, "PAUSED  |  Press P to resume")
	}
}

// drawOverlay dims the arena and prints a message in the middle.
func (w *Window) drawOverlay(screen *ebiten.Image, msg string) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, float32(sh/2-20), float32(sw), 40, overlayColor, false)
	// DebugPrint glyphs are 6 px wide.
	ebitenutil.DebugPrintAt(screen, msg, sw/2-len(msg)*3, sh/2-8)
}
