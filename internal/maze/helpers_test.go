package maze

import (
	"strings"
	"testing"

	"github.com/Garsondee/Fog-Maze/internal/config"
)

// gridFromASCII builds a grid from rows of '#', '.', 'S', 'G' (one row per y).
func gridFromASCII(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := ParseGrid(strings.Join(rows, "\n"))
	if err != nil {
		t.Fatalf("gridFromASCII: %v", err)
	}
	return g
}

// openNeighbours counts the in-bounds non-wall neighbours of p.
func openNeighbours(g *Grid, p Position) int {
	n := 0
	for _, q := range p.neighbours() {
		if g.InBounds(q) && g.CellAt(q) != Wall {
			n++
		}
	}
	return n
}

// reachable flood-fills open cells from the start.
func reachable(g *Grid) map[Position]bool {
	seen := map[Position]bool{g.Start(): true}
	queue := []Position{g.Start()}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.neighbours() {
			if g.CellAt(n) == Wall || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seen
}

// smallGeneration is the N=10 configuration used by end-to-end tests.
func smallGeneration() config.Generation {
	cfg := config.Default(10).Generation
	cfg.MinPathLength = 5
	cfg.MaxPathLength = 20
	return cfg
}
