package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

// keyBinding ties a physical key to a seat action.
type keyBinding struct {
	key    ebiten.Key
	player core.PlayerID
	action core.Action
}

// layout is the shared keyboard: W/S/A/D and Q for player 1, the arrows and
// Space for player 2.
var layout = []keyBinding{
	{ebiten.KeyW, core.Player1, core.ActionForward},
	{ebiten.KeyS, core.Player1, core.ActionBack},
	{ebiten.KeyA, core.Player1, core.ActionTurnLeft},
	{ebiten.KeyD, core.Player1, core.ActionTurnRight},
	{ebiten.KeyQ, core.Player1, core.ActionFire},

	{ebiten.KeyArrowUp, core.Player2, core.ActionForward},
	{ebiten.KeyArrowDown, core.Player2, core.ActionBack},
	{ebiten.KeyArrowLeft, core.Player2, core.ActionTurnLeft},
	{ebiten.KeyArrowRight, core.Player2, core.ActionTurnRight},
	{ebiten.KeySpace, core.Player2, core.ActionFire},
}

// heldFrame builds the input frame from the keys currently held.
func heldFrame(pressed func(ebiten.Key) bool) core.MultiInputFrame {
	frame := core.NewMultiInputFrame()
	for _, b := range layout {
		if pressed(b.key) {
			frame.Set(b.player, b.action)
		}
	}
	return frame
}
