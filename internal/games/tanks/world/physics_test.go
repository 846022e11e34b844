package world

import (
	"testing"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

func TestToLocalFrame(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float64
		rotation float64
		lx, ly   float64
	}{
		{"identity", 3, 4, 0, 3, 4},
		{"quarter turn", 20, 0, 90, 0, 20},
		{"half turn", 3, 4, 180, -3, -4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lx, ly := ToLocalFrame(tc.dx, tc.dy, tc.rotation)
			if !approx(lx, tc.lx) || !approx(ly, tc.ly) {
				t.Errorf("ToLocalFrame() = (%v, %v), expected (%v, %v)", lx, ly, tc.lx, tc.ly)
			}
		})
	}
}

func TestCircleHitsRect(t *testing.T) {
	wall := core.NewRectF(100, 0, 6, 70)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"overlapping face", 97, 35, true},
		{"touching face", 95, 35, false},
		{"inflated corner", 96, -4, true},
		{"clear", 50, 35, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleHitsRect(tc.x, tc.y, 5, wall); got != tc.expected {
				t.Errorf("CircleHitsRect(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClassifyWallHit(t *testing.T) {
	hwall := core.NewRectF(0, 100, 70, 6)
	vwall := core.NewRectF(100, 0, 6, 70)

	tests := []struct {
		name     string
		wall     core.RectF
		x, y, vy float64
		expected WallHit
	}{
		{"miss", hwall, 35, 50, 200, WallMiss},
		{"falling onto horizontal wall", hwall, 35, 97, 200, WallHitVertical},
		{"rising into horizontal wall", hwall, 35, 109, -200, WallHitVertical},
		{"level into vertical wall", vwall, 97, 35, 0, WallHitHorizontal},
		{"sliding along vertical wall", vwall, 97, 35, 200, WallHitHorizontal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyWallHit(tc.x, tc.y, tc.vy, 5, dt, tc.wall)
			if got != tc.expected {
				t.Errorf("ClassifyWallHit() = %s, expected %s", got, tc.expected)
			}
		})
	}
}
