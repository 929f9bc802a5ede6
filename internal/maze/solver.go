package maze

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// StepResult reports what one solver tick did.
type StepResult struct {
	Moved       bool // the solver changed cell this tick
	Backtracked bool // the move was a retreat along the trail
	Won         bool // the new cell is the goal
	GaveUp      bool // every reachable cell is proven dead
}

// Solver is a blind depth-first explorer. It never reads cell states; it
// only learns walkability from Grid.MoveTo succeeding or failing. The trail
// stack holds the cells it came through, and dead cells are blacklisted
// permanently once every neighbour has been exhausted.
type Solver struct {
	grid         *Grid
	visionRadius int

	pos     Position
	trail   *stack.Stack[Position]
	onTrail mapset.Set[Position]
	dead    mapset.Set[Position]

	steps      int
	backtracks int
	won        bool
	gaveUp     bool
}

// NewSolver places a solver at pos with an empty trail and blacklist.
func NewSolver(g *Grid, pos Position, visionRadius int) *Solver {
	return &Solver{
		grid:         g,
		visionRadius: visionRadius,
		pos:          pos,
		trail:        stack.New[Position](),
		onTrail:      mapset.New[Position](),
		dead:         mapset.New[Position](),
	}
}

// Position returns the solver's current cell.
func (s *Solver) Position() Position { return s.pos }

// Depth returns the number of cells on the trail.
func (s *Solver) Depth() int { return s.trail.Size() }

// Blacklisted reports whether p has been proven dead.
func (s *Solver) Blacklisted(p Position) bool { return s.dead.Has(p) }

// OnTrail reports whether p is on the active trail.
func (s *Solver) OnTrail(p Position) bool { return s.onTrail.Has(p) }

// DeadCount returns the blacklist size.
func (s *Solver) DeadCount() int { return s.dead.Size() }

// Steps returns how many moves the solver has made, backtracks included.
func (s *Solver) Steps() int { return s.steps }

// Backtracks returns how many of those moves were retreats.
func (s *Solver) Backtracks() int { return s.backtracks }

// Won reports whether the solver has reached the goal.
func (s *Solver) Won() bool { return s.won }

// GaveUp reports whether the solver exhausted every reachable cell.
func (s *Solver) GaveUp() bool { return s.gaveUp }

// Done reports whether the solver has reached a terminal state.
func (s *Solver) Done() bool { return s.won || s.gaveUp }

// candidates lists neighbours in fixed order: west, east, north, south.
func (s *Solver) candidates() [4]Position {
	p := s.pos
	return [4]Position{
		{p.X - 1, p.Y},
		{p.X + 1, p.Y},
		{p.X, p.Y - 1},
		{p.X, p.Y + 1},
	}
}

// Step advances the solver by one move. Once the solver has won or given up
// it stops moving and Step returns a zero result; GaveUp is reported only on
// the tick it happens.
func (s *Solver) Step() StepResult {
	if s.Done() {
		return StepResult{}
	}

	for _, n := range s.candidates() {
		if s.onTrail.Has(n) || s.dead.Has(n) {
			continue
		}
		res := s.grid.MoveTo(n, s.visionRadius)
		if !res.Success {
			continue
		}
		s.trail.Push(s.pos)
		s.onTrail.Put(s.pos)
		s.pos = n
		s.steps++
		s.won = res.Won
		return StepResult{Moved: true, Won: res.Won}
	}

	if s.trail.Size() == 0 {
		s.gaveUp = true
		return StepResult{GaveUp: true}
	}

	s.dead.Put(s.pos)
	prev := s.trail.Pop()
	s.onTrail.Remove(prev)
	// The solver arrived from prev, so this cannot fail.
	res := s.grid.MoveTo(prev, s.visionRadius)
	s.pos = prev
	s.steps++
	s.backtracks++
	s.won = res.Won
	return StepResult{Moved: true, Backtracked: true, Won: res.Won}
}

// Run steps until the solver finishes or maxSteps ticks elapse (maxSteps
// <= 0 means no limit). It returns the final result that ended the run.
func (s *Solver) Run(maxSteps int) StepResult {
	var last StepResult
	for i := 0; maxSteps <= 0 || i < maxSteps; i++ {
		last = s.Step()
		if s.Done() {
			return last
		}
	}
	return last
}
