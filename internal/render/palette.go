// Package render draws maze grids as images. The palette is shared with the
// window shell so snapshots match what is shown on screen.
package render

import (
	"image/color"

	"github.com/Garsondee/Fog-Maze/internal/maze"
)

var (
	ColorPath   = color.RGBA{R: 0xE8, G: 0xE8, B: 0xF8, A: 0xFF}
	ColorWall   = color.RGBA{R: 0x3F, G: 0x3F, B: 0x3F, A: 0xFF}
	ColorStart  = color.RGBA{R: 0x9F, G: 0x8F, B: 0x00, A: 0xFF}
	ColorGoal   = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	ColorPlayer = color.RGBA{R: 0xFF, G: 0x7F, B: 0x00, A: 0xFF}
	ColorFog    = color.RGBA{R: 0xBE, G: 0xBE, B: 0xBE, A: 0xFF}
)

// CellColor picks the fill for one cell. Start and Goal are always drawn;
// hidden Path and Wall cells are painted as fog while fog is enabled.
func CellColor(c maze.CellState, hidden, fogEnabled bool) color.RGBA {
	if fogEnabled && hidden && (c == maze.Path || c == maze.Wall) {
		return ColorFog
	}
	switch c {
	case maze.Path:
		return ColorPath
	case maze.Start:
		return ColorStart
	case maze.Goal:
		return ColorGoal
	default:
		return ColorWall
	}
}
