package maze

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func carveFrom(t *testing.T, size int, seed int64, start Position, length int) (*Grid, []Position, bool) {
	t.Helper()
	g := NewGrid(size)
	g.setCell(start, Start)
	path, ok := CarvePath(g, NewRand(seed), start, length, 0)
	return g, path, ok
}

func TestCarvePath_ExactLengthAndAdjacency(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g, path, ok := carveFrom(t, 12, seed, Position{6, 6}, 15)
		if !ok {
			t.Fatalf("seed %d: carve failed", seed)
		}
		if len(path) != 15 {
			t.Fatalf("seed %d: path has %d cells, want 15", seed, len(path))
		}
		if path[0] != (Position{6, 6}) {
			t.Fatalf("seed %d: path starts at %v", seed, path[0])
		}
		goal, ok := g.Goal()
		if !ok {
			t.Fatalf("seed %d: no goal placed", seed)
		}
		full := append(path, goal)
		for i := 1; i < len(full); i++ {
			if chebyshev(full[i-1], full[i]) != 1 || full[i-1].X != full[i].X && full[i-1].Y != full[i].Y {
				t.Fatalf("seed %d: %v and %v are not orthogonal neighbours", seed, full[i-1], full[i])
			}
		}
	}
}

func TestCarvePath_LoopFree(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g, path, ok := carveFrom(t, 10, seed, Position{0, 5}, 18)
		if !ok {
			t.Fatalf("seed %d: carve failed", seed)
		}
		goal, _ := g.Goal()
		if got := g.OpenCells(); got != len(path)+1 {
			t.Fatalf("seed %d: %d open cells, want %d", seed, got, len(path)+1)
		}
		for _, p := range append(path, goal) {
			want := 2
			if p == g.Start() || p == goal {
				want = 1
			}
			if n := openNeighbours(g, p); n != want {
				t.Fatalf("seed %d: %v has %d open neighbours, want %d\n%s", seed, p, n, want, g)
			}
		}
	}
}

func TestCarvePath_FailureLeavesGridUntouched(t *testing.T) {
	// A one-wide path of 15 cells cannot fit on a 4x4 board.
	g := NewGrid(4)
	g.setCell(Position{0, 0}, Start)
	before := g.String()
	path, ok := CarvePath(g, NewRand(1), Position{0, 0}, 15, 0)
	if ok || path != nil {
		t.Fatalf("expected failure, got path %v", path)
	}
	if diff := cmp.Diff(before, g.String()); diff != "" {
		t.Fatalf("grid changed after failed carve (-before +after):\n%s", diff)
	}
	if _, ok := g.Goal(); ok {
		t.Fatal("goal must not be placed on failure")
	}
}

func TestCarvePath_StepBudgetUnwinds(t *testing.T) {
	g := NewGrid(20)
	g.setCell(Position{10, 10}, Start)
	before := g.String()
	if _, ok := CarvePath(g, NewRand(4), Position{10, 10}, 300, 10); ok {
		t.Fatal("carve should fail when the step budget is exhausted")
	}
	if g.String() != before {
		t.Fatal("budget failure left marks on the grid")
	}
}

func TestCarvePath_RejectsBadInput(t *testing.T) {
	g := NewGrid(5)
	if _, ok := CarvePath(g, NewRand(1), Position{2, 2}, 3, 0); ok {
		t.Fatal("start cell must be marked Start")
	}
	g.setCell(Position{2, 2}, Start)
	if _, ok := CarvePath(g, NewRand(1), Position{2, 2}, 0, 0); ok {
		t.Fatal("zero length must be rejected")
	}
}

func TestCarvePath_Deterministic(t *testing.T) {
	_, a, _ := carveFrom(t, 15, 42, Position{3, 3}, 25)
	_, b, _ := carveFrom(t, 15, 42, Position{3, 3}, 25)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different paths:\n%s", diff)
	}
}
