package tanks

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Tick:    core.DefaultTick,
		Seed:    seed,
	}
}

func newTestGame(seed int64, mutate func(*config.TanksConfig)) *Game {
	cfg := config.DefaultTanksConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := New()
	g.ResetWithConfig(testRuntime(seed), cfg)
	return g
}

// scriptedInput builds a busy but repeatable input sequence.
func scriptedInput(n int) []core.MultiInputFrame {
	frames := make([]core.MultiInputFrame, n)
	for i := range frames {
		in := core.NewMultiInputFrame()
		switch {
		case i%40 < 20:
			in.Set(core.Player1, core.ActionForward)
			in.Set(core.Player2, core.ActionTurnLeft)
		case i%40 < 30:
			in.Set(core.Player1, core.ActionTurnRight)
			in.Set(core.Player2, core.ActionBack)
		default:
			in.Set(core.Player2, core.ActionForward)
		}
		if i%15 == 0 {
			in.Set(core.Player1, core.ActionFire)
			in.Set(core.Player2, core.ActionFire)
		}
		frames[i] = in
	}
	return frames
}

func TestGameDeterminism(t *testing.T) {
	inputs := scriptedInput(600)

	g1 := newTestGame(12345, nil)
	for _, in := range inputs {
		g1.Step(in)
	}
	snap1 := g1.Snapshot()

	g2 := newTestGame(12345, nil)
	for _, in := range inputs {
		g2.Step(in)
	}
	snap2 := g2.Snapshot()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if snap1.Round != snap2.Round {
		t.Errorf("Determinism failed: rounds differ. Run1=%d, Run2=%d", snap1.Round, snap2.Round)
	}
	if snap1.EntityCount != snap2.EntityCount {
		t.Errorf("Determinism failed: entity counts differ. Run1=%d, Run2=%d", snap1.EntityCount, snap2.EntityCount)
	}
}

func TestSeedChangesMaze(t *testing.T) {
	g1 := newTestGame(1, nil)
	g2 := newTestGame(2, nil)

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() == s2.Hash() {
		t.Error("different seeds should produce different arenas")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(42, nil)

	state := g.State()
	if state.GameOver || state.Paused {
		t.Error("a fresh match should be running")
	}
	if state.Round != 1 {
		t.Errorf("Round = %d, expected 1", state.Round)
	}
	if len(g.Players()) != 2 {
		t.Fatalf("expected 2 players, got %d", len(g.Players()))
	}
	for _, p := range g.Players() {
		if !p.Alive(g.World()) {
			t.Errorf("%s should start with a tank", p.Name())
		}
	}
	if g.Players()[0].Color != core.ColorRed || g.Players()[1].Color != core.ColorGreen {
		t.Error("default seats should be red and green")
	}
}

func TestIntentsReachTheirTanks(t *testing.T) {
	g := newTestGame(42, func(cfg *config.TanksConfig) {
		cfg.Arena.WallChance = 0
	})
	red, _ := g.Players()[0].Tank(g.World())
	green, _ := g.Players()[1].Tank(g.World())

	in := core.NewMultiInputFrame()
	in.Set(core.Player1, core.ActionTurnLeft)
	in.Set(core.Player2, core.ActionFire)
	g.Step(in)

	if red.Rotation == 0 {
		t.Error("player 1 turn should rotate the red tank")
	}
	if green.Rotation != 0 {
		t.Error("player 1 input must not turn the green tank")
	}
	if green.Ammo != g.Rules().Tank.BaseAmmo-1 {
		t.Errorf("green ammo = %d, expected %d", green.Ammo, g.Rules().Tank.BaseAmmo-1)
	}
	if red.Ammo != g.Rules().Tank.BaseAmmo {
		t.Error("player 2 fire must not spend red ammo")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(42, nil)

	pause := core.NewMultiInputFrame()
	pause.Set(core.Player1, core.ActionPause)
	none := core.NewMultiInputFrame()

	g.Step(none)
	before := g.Snapshot()

	if res := g.Step(pause); !res.State.Paused {
		t.Fatal("game should be paused")
	}
	for i := 0; i < 10; i++ {
		g.Step(none)
	}
	during := g.Snapshot()
	if during.Tick != before.Tick {
		t.Errorf("tick advanced while paused: %d -> %d", before.Tick, during.Tick)
	}

	if res := g.Step(pause); res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestRoundEndsAndContinuesEndless(t *testing.T) {
	g := newTestGame(42, nil)
	g.World().Destroy(g.Players()[1].tank)

	var ended core.StepResult
	none := core.NewMultiInputFrame()
	for i := 0; i < 400; i++ {
		res := g.Step(none)
		if res.RoundEnded {
			ended = res
			break
		}
	}

	if !ended.RoundEnded {
		t.Fatal("round should end with a sole survivor")
	}
	if ended.RoundWinner != "red" {
		t.Errorf("RoundWinner = %q, expected red", ended.RoundWinner)
	}
	if ended.State.GameOver {
		t.Error("endless match should not be over")
	}
	if ended.State.Round != 2 {
		t.Errorf("Round = %d, expected 2", ended.State.Round)
	}
	if g.LastRound().Winner != g.Players()[0] {
		t.Error("LastRound should record red as winner")
	}
	for _, p := range g.Players() {
		if !p.Alive(g.World()) {
			t.Errorf("%s should be respawned", p.Name())
		}
	}
}

func TestWinScoreEndsMatch(t *testing.T) {
	g := newTestGame(42, func(cfg *config.TanksConfig) {
		cfg.Round.WinScore = 1
	})
	g.World().Destroy(g.Players()[1].tank)

	none := core.NewMultiInputFrame()
	for i := 0; i < 400 && !g.State().GameOver; i++ {
		g.Step(none)
	}

	if !g.State().GameOver {
		t.Fatal("match should be over once red reaches the target")
	}
	winner, ok := g.Winner()
	if !ok || winner != g.Players()[0] {
		t.Error("red should win the match")
	}

	before := g.Snapshot()
	g.Step(none)
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("a finished match must not advance")
	}
}

func TestAmmoNeverNegativeInMatch(t *testing.T) {
	g := newTestGame(7, func(cfg *config.TanksConfig) {
		cfg.Projectile.Lifespan = 1
	})
	rng := rand.New(rand.NewSource(99))
	actions := []core.Action{
		core.ActionForward, core.ActionBack, core.ActionTurnLeft, core.ActionTurnRight, core.ActionFire,
	}

	for i := 0; i < 2000; i++ {
		in := core.NewMultiInputFrame()
		for _, id := range []core.PlayerID{core.Player1, core.Player2} {
			in.Set(id, actions[rng.Intn(len(actions))])
			in.Set(id, core.ActionFire)
		}
		g.Step(in)

		for _, tank := range g.World().Tanks() {
			if tank.Ammo < 0 {
				t.Fatalf("tick %d: ammo went negative", i)
			}
		}
	}
}

func TestStandings(t *testing.T) {
	g := newTestGame(1, func(cfg *config.TanksConfig) {
		cfg.Players = []config.PlayerConfig{{Color: "blue"}, {Color: "yellow"}}
	})
	g.Players()[1].Score = 3

	standings := g.Standings()
	if len(standings) != 2 {
		t.Fatalf("expected 2 standings, got %d", len(standings))
	}
	if standings[0].Name != "blue" || standings[1].Name != "yellow" {
		t.Errorf("names = %q, %q", standings[0].Name, standings[1].Name)
	}
	if standings[1].Score != 3 || g.State().Score != 3 {
		t.Error("leading score should be 3")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(1, nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"RED 0", "GREEN 0", "Round 1"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q should contain %q", hud, want)
		}
	}

	body := screen.String()
	if !strings.ContainsRune(body, WallChar) {
		t.Error("maze walls should be drawn")
	}
	if !strings.ContainsRune(body, TankGlyph(0)) {
		t.Error("tanks should be drawn")
	}
	if screen.Get(0, 1) != WallChar {
		t.Errorf("top-left corner should be a wall, got %q", screen.Get(0, 1))
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(1, nil)
	screen := core.NewScreen(20, 6)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("small screens should show a warning")
	}
}

func TestTankGlyph(t *testing.T) {
	tests := []struct {
		rotation float64
		expected rune
	}{
		{0, '▲'},
		{22, '▲'},
		{44, '◤'},
		{90, '◀'},
		{180, '▼'},
		{270, '▶'},
		{-90, '▶'},
		{359, '▲'},
	}

	for _, tc := range tests {
		if got := TankGlyph(tc.rotation); got != tc.expected {
			t.Errorf("TankGlyph(%v) = %q, expected %q", tc.rotation, got, tc.expected)
		}
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("tanks should register itself: %v", err)
	}
	if _, ok := g.(registry.Scorer); !ok {
		t.Error("tanks should report standings")
	}
}

func TestSetPreset(t *testing.T) {
	g := New()
	if err := g.SetPreset("bogus"); err == nil {
		t.Error("SetPreset(bogus) should fail")
	}

	if err := g.SetPreset(string(config.PresetFrantic)); err != nil {
		t.Fatalf("SetPreset(frantic) error = %v", err)
	}
	g.Reset(testRuntime(1))
	if got := g.Rules().Tank.BaseAmmo; got != 8 {
		t.Errorf("frantic BaseAmmo = %d, want 8", got)
	}

	other := New()
	other.Reset(testRuntime(1))
	if other.Rules().Tank.BaseAmmo == 8 {
		t.Error("preset leaked into another game instance")
	}
}
