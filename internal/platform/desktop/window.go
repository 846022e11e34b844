// Package desktop runs the tank arena in a native window using Ebitengine.
// Unlike the terminal frontend it sees real key-held state, so input needs no
// latching.
package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks"
	"github.com/vovakirdan/tui-tanks/internal/storage"
)

// hudHeight is the strip above the arena reserved for scores.
const hudHeight = 20

// Window adapts a tanks.Game to ebiten.Game.
type Window struct {
	game   *tanks.Game
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig

	tankImg *ebiten.Image

	matchID string
	started time.Time
	saved   bool
}

// New creates a window frontend and starts the first match.
func New(game *tanks.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Tick <= 0 {
		cfg.Tick = core.DefaultTick
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.SetLogger(logger)

	w := &Window{
		game:   game,
		store:  store,
		logger: logger,
		config: cfg,
	}
	w.start()
	w.tankImg = newTankImage(w.game.Rules())
	return w
}

// start resets the game for a fresh match.
func (w *Window) start() {
	w.game.Reset(w.config)
	w.matchID = storage.NewMatchID()
	w.started = time.Now()
	w.saved = false
}

// Update advances the simulation by one tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.saveMatch(storage.EndQuit)
		return ebiten.Termination
	}

	if w.game.State().GameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.config.Seed = time.Now().UnixNano()
		w.start()
		return nil
	}

	frame := heldFrame(ebiten.IsKeyPressed)
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		frame.Set(core.Player1, core.ActionPause)
	}

	result := w.game.Step(frame)
	if result.RoundEnded {
		w.logger.Debug("round over", "match", w.matchID, "winner", result.RoundWinner, "round", result.State.Round)
	}
	if result.State.GameOver {
		w.saveMatch(storage.EndTarget)
	}
	return nil
}

// Layout reports the fixed logical size of the arena plus the HUD strip.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return logicalSize(w.game.Rules())
}

// logicalSize returns the arena size in pixels including the HUD.
func logicalSize(r tanks.Rules) (int, int) {
	aw, ah := r.ArenaSize()
	t := r.Arena.WallThickness
	return int(aw + t), int(ah+t) + hudHeight
}

// saveMatch records the match summary once. Abandoned scoreless matches are
// dropped.
func (w *Window) saveMatch(reason string) {
	if w.saved || w.store == nil {
		return
	}
	standings := w.game.Standings()
	if len(standings) != 2 {
		return
	}
	if reason == storage.EndQuit && standings[0].Score+standings[1].Score == 0 {
		return
	}

	state := w.game.State()
	rounds := state.Round - 1
	if state.GameOver {
		rounds = state.Round
	}
	result := storage.MatchResult{
		MatchID:   w.matchID,
		GameID:    w.game.ID(),
		Color1:    standings[0].Name,
		Color2:    standings[1].Name,
		Score1:    standings[0].Score,
		Score2:    standings[1].Score,
		Rounds:    max(0, rounds),
		EndReason: reason,
		Duration:  int(time.Since(w.started).Seconds()),
		Seed:      w.config.Seed,
	}
	if winner, ok := w.game.Winner(); ok {
		result.Winner = winner.Name()
	}

	if _, err := w.store.SaveMatch(result); err != nil {
		w.logger.Warn("could not save match", "match", w.matchID, "err", err)
	}
	w.saved = true
}

// hudText formats the score line drawn above the arena.
func hudText(g *tanks.Game) string {
	var b strings.Builder
	for _, p := range g.Players() {
		ammo := 0
		if t, ok := p.Tank(g.World()); ok {
			ammo = t.Ammo
		}
		fmt.Fprintf(&b, "%s %d [%s%s]   ", strings.ToUpper(p.Name()), p.Score,
			strings.Repeat("o", ammo), strings.Repeat(".", max(0, g.Rules().Tank.BaseAmmo-ammo)))
	}
	if lvl := g.Level(); lvl != nil {
		fmt.Fprintf(&b, "Round %d", lvl.Round())
		if s := lvl.Survivors(); len(s) == 1 {
			fmt.Fprintf(&b, "  %s survives in %.1fs", s[0].Name(), max(0, g.Rules().OneLeftTimeout-lvl.Ticker()))
		}
	}
	return b.String()
}

// rgba converts a palette color to an opaque image color.
func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Run opens the window and blocks until it is closed.
func Run(game *tanks.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	w := New(game, store, cfg, logger)

	width, height := logicalSize(game.Rules())
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(time.Second / w.config.Tick))

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
