package maze

// carveFrame is one level of the decisive-path search.
type carveFrame struct {
	pos     Position
	prev    Position
	hasPrev bool
	length  int        // remaining steps to the goal
	next    []Position // shuffled candidates still to try
	i       int
}

// CarvePath lays one decisive path of exactly length steps from start,
// ending in a Goal cell. The search is a depth-first walk with an explicit
// frame stack, so depth is bounded by length+1 rather than the goroutine
// stack. A cell is rejected outright if any neighbour other than its
// predecessor is already open, which keeps the path loop-free and one cell
// wide. Rejected and abandoned cells are reverted to Wall.
//
// The returned sequence runs from start up to, but not including, the goal.
// maxSteps bounds the number of cells entered; zero or less means no bound.
// On failure the grid is left exactly as it was on entry.
func CarvePath(g *Grid, rng *Rand, start Position, length, maxSteps int) ([]Position, bool) {
	if length < 1 || !g.InBounds(start) || g.CellAt(start) != Start {
		return nil, false
	}

	stack := make([]carveFrame, 0, min(length+1, g.size*g.size))
	steps := 0

	// enter validates pos and either pushes a frame, places the goal, or
	// rejects the cell.
	enter := func(pos, prev Position, hasPrev bool, length int) (reachedGoal, ok bool) {
		steps++
		if c := g.CellAt(pos); c != Wall && c != Start {
			return false, false
		}
		next := make([]Position, 0, 4)
		for _, n := range pos.neighbours() {
			if !g.InBounds(n) || (hasPrev && n == prev) {
				continue
			}
			if g.CellAt(n) != Wall {
				return false, false
			}
			next = append(next, n)
		}
		if length == 0 {
			g.setCell(pos, Goal)
			return true, true
		}
		Shuffle(rng, next)
		if g.CellAt(pos) != Start {
			g.setCell(pos, Path)
		}
		stack = append(stack, carveFrame{pos: pos, prev: prev, hasPrev: hasPrev, length: length, next: next})
		return false, true
	}

	unwind := func() {
		for i := len(stack) - 1; i >= 0; i-- {
			if g.CellAt(stack[i].pos) != Start {
				g.setCell(stack[i].pos, Wall)
			}
		}
		stack = stack[:0]
	}

	if _, ok := enter(start, Position{}, false, length); !ok {
		return nil, false
	}

	for len(stack) > 0 {
		if maxSteps > 0 && steps >= maxSteps {
			unwind()
			return nil, false
		}
		top := &stack[len(stack)-1]
		if top.i >= len(top.next) {
			if g.CellAt(top.pos) != Start {
				g.setCell(top.pos, Wall)
			}
			stack = stack[:len(stack)-1]
			continue
		}
		n := top.next[top.i]
		top.i++
		reachedGoal, ok := enter(n, top.pos, true, top.length-1)
		if !ok {
			continue
		}
		if reachedGoal {
			path := make([]Position, len(stack))
			for i := range stack {
				path[i] = stack[i].pos
			}
			return path, true
		}
	}
	return nil, false
}
