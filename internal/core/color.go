package core

import "fmt"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorGray
)

// ParseColor maps a player color name to a Color.
func ParseColor(name string) (Color, error) {
	switch name {
	case "red":
		return ColorRed, nil
	case "green":
		return ColorGreen, nil
	case "blue":
		return ColorBlue, nil
	case "yellow":
		return ColorYellow, nil
	default:
		return ColorDefault, fmt.Errorf("unknown color %q", name)
	}
}

// String returns the color name used in logs and score tables.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}

// RGB returns the tint used by graphical frontends.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 220, 0, 0
	case ColorGreen:
		return 0, 220, 0
	case ColorBlue:
		return 0, 0, 220
	case ColorYellow:
		return 220, 200, 0
	case ColorGray:
		return 128, 128, 128
	case ColorWhite:
		return 255, 255, 255
	default:
		return 0, 0, 0
	}
}
