package maze

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Garsondee/Fog-Maze/internal/config"
)

// Direction is a single-cell move requested by the player.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "?"
	}
}

// Apply returns the neighbour of p in direction d.
func (d Direction) Apply(p Position) Position {
	switch d {
	case DirUp:
		p.Y--
	case DirDown:
		p.Y++
	case DirLeft:
		p.X--
	case DirRight:
		p.X++
	}
	return p
}

// PlayOptions are the runtime toggles, passed into every tick rather than
// held as ambient state.
type PlayOptions struct {
	FogEnabled bool // rendering policy only; decay runs regardless
	AIEnabled  bool // solver ticks run and player input is ignored
}

// Session is one play-through of a generated maze: the player position,
// fog decay timer and the optional autonomous solver. All methods run to
// completion on the caller's goroutine; the caller must not invoke them
// concurrently.
type Session struct {
	Maze   *GenerationResult
	Events *EventLog

	play   config.Play
	rng    *Rand
	player Position
	solver *Solver

	tick       int
	decayAccum time.Duration
	won        bool
}

// NewSession places the player on the start cell and clears fog around it.
// log may be nil.
func NewSession(res *GenerationResult, play config.Play, rng *Rand, log logrus.FieldLogger) *Session {
	s := &Session{
		Maze:   res,
		Events: NewEventLog(log),
		play:   play,
		rng:    rng,
		player: res.Grid.Start(),
	}
	res.Grid.MoveTo(s.player, play.VisionRadius)
	return s
}

// Grid returns the session's maze grid.
func (s *Session) Grid() *Grid { return s.Maze.Grid }

// Player returns the agent's current cell.
func (s *Session) Player() Position { return s.player }

// Tick returns the number of Update calls so far.
func (s *Session) Tick() int { return s.tick }

// Won reports whether the goal has been reached by either the player or the solver.
func (s *Session) Won() bool { return s.won }

// Solver returns the active solver, or nil if the AI has not been started.
func (s *Session) Solver() *Solver { return s.solver }

// HandleMove tries to step the player one cell. Input is ignored while the
// AI is enabled. It returns true if the player moved.
func (s *Session) HandleMove(d Direction, opts PlayOptions) bool {
	if opts.AIEnabled {
		return false
	}
	target := d.Apply(s.player)
	res := s.Grid().MoveTo(target, s.play.VisionRadius)
	if !res.Success {
		return false
	}
	s.player = target
	s.Events.Add(s.tick, EventMove, "player", d.String()+" "+target.String())
	if res.Won {
		s.markWon("player")
	}
	return true
}

// ResetSolver discards any previous trail and blacklist and starts a fresh
// solver from the player's current cell.
func (s *Session) ResetSolver() {
	s.solver = NewSolver(s.Grid(), s.player, s.play.VisionRadius)
	s.Events.Add(s.tick, EventSolver, "reset", s.player.String())
}

// SolverTick runs up to SolverStepsPerTick solver moves when the AI is
// enabled. A solver is created on first use. The player follows the solver.
func (s *Session) SolverTick(opts PlayOptions) StepResult {
	if !opts.AIEnabled {
		return StepResult{}
	}
	if s.solver == nil {
		s.ResetSolver()
	}
	var last StepResult
	for i := 0; i < s.play.SolverStepsPerTick && !s.solver.Done(); i++ {
		last = s.solver.Step()
		s.player = s.solver.Position()
		if last.Won {
			s.markWon("solver")
		}
		if last.GaveUp {
			s.Events.Add(s.tick, EventResult, "gave_up",
				"no solution reachable from "+s.player.String())
		}
	}
	return last
}

// Toggle records a runtime option change. Enabling the AI starts a fresh
// solver from the player's current cell.
func (s *Session) Toggle(opts PlayOptions, name string) {
	on := opts.FogEnabled
	if name == "ai" {
		on = opts.AIEnabled
	}
	state := "off"
	if on {
		state = "on"
	}
	s.Events.Add(s.tick, EventToggle, name, state)
	if name == "ai" && on {
		s.ResetSolver()
	}
}

// DecayTick re-hides a random sample of cells outside the player's vision.
func (s *Session) DecayTick() int {
	return Decay(s.Grid(), s.rng, s.player, s.play.VisionRadius, s.play.FogDecayAmount)
}

// Update advances the session clock by dt: fog decays once per elapsed
// FogDecayInterval and the solver takes its per-tick moves.
func (s *Session) Update(dt time.Duration, opts PlayOptions) {
	s.tick++
	s.decayAccum += dt
	for s.decayAccum >= s.play.FogDecayInterval {
		s.decayAccum -= s.play.FogDecayInterval
		s.DecayTick()
	}
	s.SolverTick(opts)
}

func (s *Session) markWon(by string) {
	if s.won {
		return
	}
	s.won = true
	s.Events.Add(s.tick, EventResult, "win", by+" reached goal at "+s.player.String())
}
