package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Binding
		ok   bool
	}{
		{"w forward", runeKey('w'), Binding{core.Player1, core.ActionForward}, true},
		{"d turns right", runeKey('d'), Binding{core.Player1, core.ActionTurnRight}, true},
		{"q fires", runeKey('q'), Binding{core.Player1, core.ActionFire}, true},
		{"up forward", tea.KeyMsg{Type: tea.KeyUp}, Binding{core.Player2, core.ActionForward}, true},
		{"left turns left", tea.KeyMsg{Type: tea.KeyLeft}, Binding{core.Player2, core.ActionTurnLeft}, true},
		{"space fires", runeKey(' '), Binding{core.Player2, core.ActionFire}, true},
		{"p pauses", runeKey('p'), Binding{core.Player1, core.ActionPause}, true},
		{"r restarts", runeKey('r'), Binding{core.Player1, core.ActionRestart}, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, Binding{core.Player1, core.ActionQuit}, true},
		{"unbound", runeKey('z'), Binding{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.MapKey(tt.msg)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("binding = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"enter selects", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"tab opens scoreboard", tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{"j moves down", runeKey('j'), MenuActionDown},
		{"up moves up", tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{"q quits", runeKey('q'), MenuActionQuit},
		{"x does nothing", runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
				t.Errorf("action = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyLatchHoldsThenReleases(t *testing.T) {
	l := NewKeyLatch()
	fwd := Binding{core.Player1, core.ActionForward}
	l.Press(fwd)

	for i := 0; i < holdTicks; i++ {
		frame := l.Frame()
		if !frame.Player(core.Player1).Has(core.ActionForward) {
			t.Fatalf("tick %d: forward released too early", i)
		}
	}
	if l.Frame().Player(core.Player1).Has(core.ActionForward) {
		t.Error("forward still held after the latch expired")
	}
}

func TestKeyLatchRepeatExtendsHold(t *testing.T) {
	l := NewKeyLatch()
	fire := Binding{core.Player2, core.ActionFire}
	l.Press(fire)
	for j := 0; j < holdTicks-1; j++ {
		l.Frame()
	}
	l.Press(fire)
	for i := 0; i < holdTicks; i++ {
		if !l.Frame().Player(core.Player2).Has(core.ActionFire) {
			t.Fatalf("tick %d: repeat did not extend the hold", i)
		}
	}
}

func TestKeyLatchOppositeCancels(t *testing.T) {
	tests := []struct {
		name   string
		first  core.Action
		second core.Action
	}{
		{"back cancels forward", core.ActionForward, core.ActionBack},
		{"forward cancels back", core.ActionBack, core.ActionForward},
		{"right cancels left", core.ActionTurnLeft, core.ActionTurnRight},
		{"left cancels right", core.ActionTurnRight, core.ActionTurnLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewKeyLatch()
			l.Press(Binding{core.Player1, tt.first})
			l.Press(Binding{core.Player1, tt.second})

			p1 := l.Frame().Player(core.Player1)
			if p1.Has(tt.first) {
				t.Errorf("%v still held", tt.first)
			}
			if !p1.Has(tt.second) {
				t.Errorf("%v not held", tt.second)
			}
		})
	}
}

func TestKeyLatchSeatsAreIndependent(t *testing.T) {
	l := NewKeyLatch()
	l.Press(Binding{core.Player1, core.ActionForward})
	l.Press(Binding{core.Player2, core.ActionBack})

	frame := l.Frame()
	if !frame.Player(core.Player1).Has(core.ActionForward) {
		t.Error("player 1 forward lost")
	}
	if !frame.Player(core.Player2).Has(core.ActionBack) {
		t.Error("player 2 back lost")
	}
	if frame.Player(core.Player1).Has(core.ActionBack) {
		t.Error("player 2 input leaked into player 1")
	}
}

func TestKeyLatchReset(t *testing.T) {
	l := NewKeyLatch()
	l.Press(Binding{core.Player1, core.ActionFire})
	l.Reset()
	if l.Frame().Has(core.ActionFire) {
		t.Error("fire held after reset")
	}
}
