package world

import "github.com/vovakirdan/tui-tanks/internal/core"

// Wall is a static maze segment anchored at its top-left corner.
type Wall struct {
	Body
	Width  float64
	Height float64
}

// NewWall registers a wall of the given size.
func NewWall(w *World, x, y, width, height float64) *Wall {
	wall := &Wall{
		Body:   Body{X: x, Y: y},
		Width:  width,
		Height: height,
	}
	w.Spawn(wall)
	return wall
}

// NewVWall registers a vertical segment spanning one cell.
func NewVWall(w *World, x, y, cell, thickness float64) *Wall {
	return NewWall(w, x, y, thickness, cell)
}

// NewHWall registers a horizontal segment spanning one cell.
func NewHWall(w *World, x, y, cell, thickness float64) *Wall {
	return NewWall(w, x, y, cell, thickness)
}

// Kind implements Entity.
func (wl *Wall) Kind() Kind {
	return KindWall
}

// Update implements Entity. Walls never move.
func (wl *Wall) Update(*World, float64) {}

// Rect returns the wall's box.
func (wl *Wall) Rect() core.RectF {
	return core.NewRectF(wl.X, wl.Y, wl.Width, wl.Height)
}

// BlocksTank reports whether t's body, recentered at its predicted position
// after dt, would overlap this wall.
func (wl *Wall) BlocksTank(t *Tank, dt float64) bool {
	next := core.Centered(t.X+t.VX*dt, t.Y+t.VY*dt, t.Spec.Width, t.Spec.Height)
	return next.Intersects(wl.Rect())
}
