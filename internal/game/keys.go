package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Fog-Maze/internal/maze"
)

type action int

const (
	actNone action = iota
	actUp
	actDown
	actLeft
	actRight
	actToggleFog
	actToggleAI
	actCopy
	actRegenerate
)

func (a action) direction() maze.Direction {
	switch a {
	case actUp:
		return maze.DirUp
	case actDown:
		return maze.DirDown
	case actLeft:
		return maze.DirLeft
	default:
		return maze.DirRight
	}
}

var keyBindings = []struct {
	key    ebiten.Key
	act    action
	repeat bool
}{
	{ebiten.KeyArrowUp, actUp, true},
	{ebiten.KeyArrowDown, actDown, true},
	{ebiten.KeyArrowLeft, actLeft, true},
	{ebiten.KeyArrowRight, actRight, true},
	{ebiten.KeyF, actToggleFog, false},
	{ebiten.KeyA, actToggleAI, false},
	{ebiten.KeyC, actCopy, false},
	{ebiten.KeyR, actRegenerate, false},
}

// Held-key repeat, in ticks.
const (
	repeatDelay    = 15
	repeatInterval = 4
)

// repeating reports whether a key held for d ticks should fire this tick:
// once on press, then every repeatInterval after repeatDelay.
func repeating(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
