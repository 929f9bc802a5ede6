package maze

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Structural violations reported by Validate.
var (
	ErrMarkers      = errors.New("start/goal marker count")
	ErrCycle        = errors.New("open cells form a loop")
	ErrDisconnected = errors.New("open cell unreachable from start")
)

// Validate checks that g is a proper maze: exactly one Start and one Goal,
// and the open cells form a single tree. A flood from Start must reach every
// open cell, and a connected graph is loop-free iff it has one edge fewer
// than it has cells.
func Validate(g *Grid) error {
	starts, goals, open, edges := 0, 0, 0, 0
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			p := Position{x, y}
			switch g.CellAt(p) {
			case Wall:
				continue
			case Start:
				starts++
			case Goal:
				goals++
			}
			open++
			// Right and down count every edge once.
			for _, n := range []Position{{x + 1, y}, {x, y + 1}} {
				if g.InBounds(n) && g.CellAt(n) != Wall {
					edges++
				}
			}
		}
	}
	if starts != 1 || goals != 1 {
		return fmt.Errorf("%w: %d start, %d goal", ErrMarkers, starts, goals)
	}

	seen := mapset.New[Position]()
	work := queue.New[Position]()
	seen.Put(g.start)
	work.Enqueue(g.start)
	for !work.Empty() {
		p := work.Dequeue()
		for _, n := range p.neighbours() {
			if g.CellAt(n) == Wall || seen.Has(n) {
				continue
			}
			seen.Put(n)
			work.Enqueue(n)
		}
	}
	if seen.Size() != open {
		for i, c := range g.cells {
			p := Position{X: i % g.size, Y: i / g.size}
			if c != Wall && !seen.Has(p) {
				return fmt.Errorf("%w: %v", ErrDisconnected, p)
			}
		}
	}
	if edges != open-1 {
		return fmt.Errorf("%w: %d cells joined by %d edges", ErrCycle, open, edges)
	}
	return nil
}
