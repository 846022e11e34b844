package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/registry"
	"github.com/vovakirdan/tui-tanks/internal/storage"
)

// loggerSetter is implemented by games that report round events.
type loggerSetter interface {
	SetLogger(l *log.Logger)
}

// Model is the Bubble Tea model for running a match.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	latch     *KeyLatch
	gameState core.GameState

	// One-shot actions for the next tick
	pause   bool
	restart bool

	matchID    string
	started    time.Time
	matchSaved bool

	inSession  bool // Esc returns to the session menu instead of quitting
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Tick <= 0 {
		cfg.Tick = core.DefaultTick
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if lg, ok := game.(loggerSetter); ok {
		lg.SetLogger(logger)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		latch:     NewKeyLatch(),
		matchID:   storage.NewMatchID(),
		started:   time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The arena scales to the terminal, so a resize keeps the match going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.saveMatch(storage.EndQuit)
		if m.inSession {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	b, ok := m.keyMapper.MapKey(msg)
	if !ok {
		return m, nil
	}

	switch b.Action {
	case core.ActionQuit:
		m.saveMatch(storage.EndQuit)
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.pause = true
	case core.ActionRestart:
		m.restart = m.gameState.GameOver
	default:
		m.latch.Press(b)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.restart && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.latch.Reset()
		m.restart = false
		m.matchID = storage.NewMatchID()
		m.started = time.Now()
		m.matchSaved = false
		return m, tickCmd(m.config.Tick)
	}

	frame := m.latch.Frame()
	if m.pause {
		frame.Set(core.Player1, core.ActionPause)
		m.pause = false
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if result.RoundEnded {
		winner := result.RoundWinner
		if winner == "" {
			winner = "no one"
		}
		m.logger.Debug("round over", "match", m.matchID, "winner", winner, "round", m.gameState.Round)
	}

	// Save the match once it is decided
	if m.gameState.GameOver {
		m.saveMatch(storage.EndTarget)
	}

	return m, tickCmd(m.config.Tick)
}

// saveMatch records the match summary once. Matches abandoned before any
// round was scored are not recorded.
func (m *Model) saveMatch(reason string) {
	if m.matchSaved || m.store == nil {
		return
	}
	scorer, ok := m.game.(registry.Scorer)
	if !ok {
		return
	}
	standings := scorer.Standings()
	if len(standings) != 2 {
		return
	}
	if reason == storage.EndQuit && standings[0].Score+standings[1].Score == 0 {
		return
	}

	result := storage.MatchResult{
		MatchID:   m.matchID,
		GameID:    m.game.ID(),
		Color1:    standings[0].Name,
		Color2:    standings[1].Name,
		Score1:    standings[0].Score,
		Score2:    standings[1].Score,
		Rounds:    completedRounds(m.gameState),
		EndReason: reason,
		Duration:  int(time.Since(m.started).Seconds()),
		Seed:      m.config.Seed,
	}
	if m.gameState.GameOver {
		result.Winner = leader(standings)
	}

	if _, err := m.store.SaveMatch(result); err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save match", "match", m.matchID, "err", err)
	}
	m.matchSaved = true
}

// completedRounds returns how many rounds were decided. A finished match
// stays on its last round; a running match is one round ahead.
func completedRounds(s core.GameState) int {
	if s.GameOver {
		return s.Round
	}
	return max(0, s.Round-1)
}

// leader returns the name of the single highest score, empty on a tie.
func leader(standings []core.Standing) string {
	best, name := -1, ""
	for _, s := range standings {
		switch {
		case s.Score > best:
			best, name = s.Score, s.Name
		case s.Score == best:
			name = ""
		}
	}
	return name
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// BackToMenu reports whether the player left the match for the session menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
