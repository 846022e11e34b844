// Package tanks implements a two-player tank arena: a random maze, bouncing
// shells and a round controller that scores the last tank standing.
// Player 1 drives with WASD and fires with Q; player 2 uses the arrows and Space.
package tanks

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks/world"
	"github.com/vovakirdan/tui-tanks/internal/registry"
)

// ID is the registry key of the game.
const ID = "tanks"

var (
	// configPath stores the custom config path set via CLI
	configPath string
	// preset stores the default tuning preset set via CLI
	preset config.Preset
	// defaultLogger is handed to every new game
	defaultLogger = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDefaultPreset sets the tuning preset for games created afterwards.
func SetDefaultPreset(p config.Preset) {
	preset = p
}

// SetDefaultLogger sets the logger used by games created afterwards.
func SetDefaultLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	defaultLogger = l
}

// Game implements the tank arena match.
type Game struct {
	world   *world.World
	level   *Level
	players []*Player
	intents []core.Intent // Latest intent per player, read by their controllers

	rules   Rules
	preset  config.Preset
	runtime core.RuntimeConfig
	rng     *rand.Rand
	logger  *log.Logger

	tickCount int
	paused    bool
	gameOver  bool
	winner    *Player
	last      RoundResult // Most recent finished round
}

// New creates a new game instance. Call Reset before stepping it.
func New() *Game {
	return &Game{logger: defaultLogger, preset: preset}
}

// SetLogger replaces the game's logger.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// Presets lists the tuning presets a match can use.
func (g *Game) Presets() []string {
	return []string{string(config.PresetClassic), string(config.PresetFrantic), string(config.PresetSniper)}
}

// SetPreset selects the tuning preset applied on the next Reset.
func (g *Game) SetPreset(name string) error {
	p, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	g.preset = p
	return nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tank Arena"
}

// Reset loads the configuration and starts a fresh match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadTanks(configPath)
	if err != nil {
		g.logger.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultTanksConfig()
	}
	if g.preset != "" {
		config.ApplyPreset(&cfg, g.preset)
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig starts a fresh match with explicit tuning.
// cfg is expected to have passed Validate.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.TanksConfig) {
	g.runtime = runtime
	g.rules = RulesFromConfig(cfg)
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness

	g.world = world.New()
	g.players = make([]*Player, len(cfg.Players))
	g.intents = make([]core.Intent, len(cfg.Players))
	for i, pc := range cfg.Players {
		i := i
		color, err := core.ParseColor(pc.Color)
		if err != nil {
			color = core.ColorDefault
		}
		g.players[i] = NewPlayer(color, world.IntentFunc(func() core.Intent {
			return g.intents[i]
		}))
	}

	g.tickCount = 0
	g.paused = false
	g.gameOver = false
	g.winner = nil
	g.last = RoundResult{}
	g.level = NewLevel(g.world, g.players, g.rules, g.rng, 1)

	g.logger.Info("match started", "seed", runtime.Seed, "walls", len(g.world.Walls()))
}

// Step advances the match by one tick: intents first, then the round check,
// then the world.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := g.runtime.DT()

	for i := range g.intents {
		g.intents[i] = in.Player(core.PlayerID(i + 1)).Intent()
	}
	world.ApplyIntents(g.world)

	result := core.StepResult{}
	if res, ended := g.level.Update(dt); ended {
		g.endRound(res)
		result.RoundEnded = true
		if res.Winner != nil {
			result.RoundWinner = res.Winner.Name()
		}
	}

	if !g.gameOver {
		g.world.Update(dt)
	}

	result.State = g.State()
	return result
}

// endRound records the result and either starts the next round or ends the
// match when a player reached the target score.
func (g *Game) endRound(res RoundResult) {
	g.last = res
	if res.Draw {
		g.logger.Info("no one wins", "round", res.Round)
	} else {
		g.logger.Info(res.Winner.Name()+" wins", "round", res.Round, "score", res.Winner.Score)
	}

	if g.rules.WinScore > 0 && res.Winner != nil && res.Winner.Score >= g.rules.WinScore {
		g.gameOver = true
		g.winner = res.Winner
		g.logger.Info("match over", "winner", res.Winner.Name(), "rounds", res.Round)
		return
	}
	g.level = g.level.Next()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	best := 0
	for _, p := range g.players {
		best = max(best, p.Score)
	}
	round := 0
	if g.level != nil {
		round = g.level.Round()
	}
	return core.GameState{
		Score:    best,
		Round:    round,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Standings returns every player's score in seat order.
func (g *Game) Standings() []core.Standing {
	out := make([]core.Standing, len(g.players))
	for i, p := range g.players {
		out[i] = core.Standing{Name: p.Name(), Color: p.Color, Score: p.Score}
	}
	return out
}

// Players returns the seats in order.
func (g *Game) Players() []*Player {
	return g.players
}

// World returns the live simulation for graphical frontends.
func (g *Game) World() *world.World {
	return g.world
}

// Level returns the round in progress.
func (g *Game) Level() *Level {
	return g.level
}

// Rules returns the resolved match tuning.
func (g *Game) Rules() Rules {
	return g.rules
}

// LastRound returns the most recently finished round, zero before the first.
func (g *Game) LastRound() RoundResult {
	return g.last
}

// Winner returns the match winner once a target score is reached.
func (g *Game) Winner() (*Player, bool) {
	return g.winner, g.winner != nil
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
