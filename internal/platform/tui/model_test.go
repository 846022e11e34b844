package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/storage"
)

// stubGame records the frames it is stepped with.
type stubGame struct {
	frames    []core.MultiInputFrame
	state     core.GameState
	standings []core.Standing
	resets    int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Round: 1}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	return g.state
}

func (g *stubGame) Standings() []core.Standing {
	return g.standings
}

func (g *stubGame) Step(in core.MultiInputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	return core.StepResult{State: g.state}
}

func (g *stubGame) lastFrame(t *testing.T) core.MultiInputFrame {
	t.Helper()
	if len(g.frames) == 0 {
		t.Fatal("game was never stepped")
	}
	return g.frames[len(g.frames)-1]
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "matches.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(g *stubGame, store *storage.Store) Model {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Tick: core.DefaultTick, Seed: 7}
	m := NewModel(g, store, cfg, nil)
	m.Init()
	return m
}

// send feeds one message and returns the updated Model.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestModelHeldKeysReachGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	m = send(t, m, runeKey('w'))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, TickMsg{})

	frame := g.lastFrame(t)
	if !frame.Player(core.Player1).Has(core.ActionForward) {
		t.Error("player 1 forward not delivered")
	}
	if !frame.Player(core.Player2).Has(core.ActionTurnRight) {
		t.Error("player 2 turn not delivered")
	}

	// Still held on the following tick.
	send(t, m, TickMsg{})
	if !g.lastFrame(t).Player(core.Player1).Has(core.ActionForward) {
		t.Error("forward not held on the next tick")
	}
}

func TestModelPauseIsOneShot(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg{})
	if !g.lastFrame(t).Has(core.ActionPause) {
		t.Fatal("pause not delivered")
	}

	send(t, m, TickMsg{})
	if g.lastFrame(t).Has(core.ActionPause) {
		t.Error("pause delivered twice for one key press")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	m = send(t, m, runeKey('r'))
	m = send(t, m, TickMsg{})
	if g.resets != 1 {
		t.Fatalf("restart during a running match reset the game (resets = %d)", g.resets)
	}

	g.state.GameOver = true
	m = send(t, m, TickMsg{})
	m = send(t, m, runeKey('r'))
	send(t, m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
}

func TestModelSavesFinishedMatchOnce(t *testing.T) {
	store := newTestStore(t)
	g := &stubGame{standings: []core.Standing{
		{Name: "red", Color: core.ColorRed, Score: 3},
		{Name: "green", Color: core.ColorGreen, Score: 1},
	}}
	m := newTestModel(g, store)

	g.state = core.GameState{Score: 3, Round: 4, GameOver: true}
	m = send(t, m, TickMsg{})
	send(t, m, TickMsg{})

	n, err := store.MatchCount("stub")
	if err != nil {
		t.Fatalf("MatchCount() error = %v", err)
	}
	if n != 1 {
		t.Fatalf("MatchCount() = %d, want 1", n)
	}

	matches, err := store.RecentMatches("stub", 10)
	if err != nil {
		t.Fatalf("RecentMatches() error = %v", err)
	}
	got := matches[0]
	if got.Winner != "red" || got.Score1 != 3 || got.Score2 != 1 {
		t.Errorf("saved %+v", got)
	}
	if got.Rounds != 4 {
		t.Errorf("Rounds = %d, want 4", got.Rounds)
	}
	if got.EndReason != storage.EndTarget {
		t.Errorf("EndReason = %q, want %q", got.EndReason, storage.EndTarget)
	}
}

func TestModelEscInSession(t *testing.T) {
	tests := []struct {
		name      string
		scores    [2]int
		wantSaved int
	}{
		{"scoreless match is not recorded", [2]int{0, 0}, 0},
		{"partial match is recorded", [2]int{2, 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			g := &stubGame{standings: []core.Standing{
				{Name: "red", Score: tt.scores[0]},
				{Name: "green", Score: tt.scores[1]},
			}}
			m := newTestModel(g, store)
			m.inSession = true

			m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
			if !m.BackToMenu() {
				t.Error("esc in a session should return to the menu")
			}
			if m.IsQuitting() {
				t.Error("esc in a session should not quit")
			}

			n, err := store.MatchCount("stub")
			if err != nil {
				t.Fatalf("MatchCount() error = %v", err)
			}
			if n != tt.wantSaved {
				t.Errorf("MatchCount() = %d, want %d", n, tt.wantSaved)
			}
		})
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&stubGame{}, nil)
	if !strings.Contains(m.View(), "stub") {
		t.Error("View() did not render the game")
	}
}

func TestLeader(t *testing.T) {
	tests := []struct {
		name      string
		standings []core.Standing
		want      string
	}{
		{"clear leader", []core.Standing{{Name: "red", Score: 2}, {Name: "green", Score: 5}}, "green"},
		{"tie", []core.Standing{{Name: "red", Score: 3}, {Name: "green", Score: 3}}, ""},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := leader(tt.standings); got != tt.want {
				t.Errorf("leader() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompletedRounds(t *testing.T) {
	tests := []struct {
		name  string
		state core.GameState
		want  int
	}{
		{"first round running", core.GameState{Round: 1}, 0},
		{"fifth round running", core.GameState{Round: 5}, 4},
		{"match over", core.GameState{Round: 5, GameOver: true}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := completedRounds(tt.state); got != tt.want {
				t.Errorf("completedRounds() = %d, want %d", got, tt.want)
			}
		})
	}
}
