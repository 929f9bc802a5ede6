package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Garsondee/Fog-Maze/internal/config"
	"github.com/Garsondee/Fog-Maze/internal/logging"
	"github.com/Garsondee/Fog-Maze/internal/maze"
	"github.com/Garsondee/Fog-Maze/internal/render"
)

type runStats struct {
	runIndex int
	seed     int64
	mazeID   string

	attempts     int
	targetLength int
	pathLength   int
	branchCells  int
	openCells    int
	valid        bool

	ticks       int
	steps       int
	backtracks  int
	deadCells   int
	hiddenAtEnd int
	won         bool
	gaveUp      bool
}

type reportFlags struct {
	configPath string
	size       int
	minPath    int
	maxPath    int
	runs       int
	seedBase   int64
	seedStep   int64
	maxTicks   int
	pngDir     string
	cellPx     int
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f reportFlags
	cmd := &cobra.Command{
		Use:   "maze-report",
		Short: "Generate seeded mazes headlessly and let the solver run each one",
		Long: `Generates a series of seeded mazes, validates each, runs the
backtracking solver with fog decay until it reaches the goal or gives up,
then prints per-run and aggregate statistics.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd.OutOrStdout(), cmd.ErrOrStderr(), f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	fl.IntVarP(&f.size, "size", "n", 0, "board edge length (overrides config)")
	fl.IntVar(&f.minPath, "min-path", 0, "minimum decisive path length (overrides config)")
	fl.IntVar(&f.maxPath, "max-path", 0, "maximum decisive path length, exclusive (overrides config)")
	fl.IntVar(&f.runs, "runs", 5, "number of mazes")
	fl.Int64Var(&f.seedBase, "seed-base", 42, "seed for run 1")
	fl.Int64Var(&f.seedStep, "seed-step", 1, "seed increment between runs")
	fl.IntVar(&f.maxTicks, "max-ticks", 100_000, "session ticks per run before the run is cut off")
	fl.StringVar(&f.pngDir, "png-dir", "", "write a PNG snapshot of each finished run here")
	fl.IntVar(&f.cellPx, "cell-px", 6, "pixels per cell in PNG snapshots")
	fl.StringVar(&f.logLevel, "log-level", "warn", "log level")
	return cmd
}

func runReport(out, errOut io.Writer, f reportFlags) error {
	if f.runs <= 0 {
		return errors.New("--runs must be > 0")
	}
	if f.maxTicks <= 0 {
		return errors.New("--max-ticks must be > 0")
	}
	log, err := logging.New(f.logLevel, errOut)
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(f.configPath, f.size)
	if err != nil {
		return err
	}
	if f.minPath > 0 {
		cfg.Generation.MinPathLength = f.minPath
	}
	if f.maxPath > 0 {
		cfg.Generation.MaxPathLength = f.maxPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if f.pngDir != "" {
		if err := os.MkdirAll(f.pngDir, 0o755); err != nil {
			return fmt.Errorf("create png dir: %w", err)
		}
	}

	g := cfg.Generation
	fmt.Fprintf(out, "=== Fog Maze Report ===\n")
	fmt.Fprintf(out, "size=%d path=[%d,%d) runs=%d seed_base=%d seed_step=%d\n\n",
		g.Size, g.MinPathLength, g.MaxPathLength, f.runs, f.seedBase, f.seedStep)

	all := make([]runStats, 0, f.runs)
	for i := 0; i < f.runs; i++ {
		seed := f.seedBase + int64(i)*f.seedStep
		rs, s, err := runMaze(cfg, i+1, seed, f.maxTicks, log)
		if err != nil {
			// A run that cannot place a goal is reported, not fatal.
			log.WithError(err).WithField("seed", seed).Error("generation failed")
			fmt.Fprintf(out, "--- Run %d (seed=%d) ---\ngeneration failed: %v\n\n", i+1, seed, err)
			continue
		}
		all = append(all, rs)
		printRun(out, rs)
		if f.pngDir != "" {
			if err := snapshot(f.pngDir, f.cellPx, rs, s); err != nil {
				return err
			}
		}
	}
	printAggregate(out, f.runs, all)
	return nil
}

// runMaze generates one maze and drives a session with the AI enabled until
// the solver finishes or maxTicks elapse. Fog decays on its normal schedule.
func runMaze(cfg config.Config, runIndex int, seed int64, maxTicks int, log logrus.FieldLogger) (runStats, *maze.Session, error) {
	rng := maze.NewRand(seed)
	res, err := maze.Generate(cfg.Generation, rng, log)
	if err != nil {
		return runStats{}, nil, err
	}
	rs := runStats{
		runIndex:     runIndex,
		seed:         seed,
		mazeID:       res.ID,
		attempts:     res.Attempts,
		targetLength: res.TargetLength,
		pathLength:   len(res.DecisivePath),
		branchCells:  res.BranchCells,
		openCells:    res.Grid.OpenCells(),
		valid:        maze.Validate(res.Grid) == nil,
	}

	s := maze.NewSession(res, cfg.Play, rng, log.WithField("maze_id", res.ID))
	opts := maze.PlayOptions{FogEnabled: true, AIEnabled: true}
	// One solver batch per fog interval.
	for s.Tick() < maxTicks {
		s.Update(cfg.Play.FogDecayInterval, opts)
		if s.Solver().Done() {
			break
		}
	}

	sv := s.Solver()
	rs.ticks = s.Tick()
	rs.steps = sv.Steps()
	rs.backtracks = sv.Backtracks()
	rs.deadCells = sv.DeadCount()
	rs.hiddenAtEnd = res.Grid.HiddenCells()
	rs.won = sv.Won()
	rs.gaveUp = sv.GaveUp()
	return rs, s, nil
}

func snapshot(dir string, cellPx int, rs runStats, s *maze.Session) error {
	path := filepath.Join(dir, fmt.Sprintf("run-%03d-seed-%d.png", rs.runIndex, rs.seed))
	return render.SavePNG(path, s.Grid(), render.Options{
		CellSize:   cellPx,
		Fog:        true,
		ShowPlayer: true,
		Player:     s.Player(),
		Caption:    fmt.Sprintf("seed %d  %s  steps %d", rs.seed, outcome(rs), rs.steps),
	})
}

func outcome(rs runStats) string {
	switch {
	case rs.won:
		return "won"
	case rs.gaveUp:
		return "gave_up"
	default:
		return "cut_off"
	}
}

// efficiency is the optimal move count over the moves actually taken. The
// decisive path excludes the goal, so the shortest walk is its length.
func efficiency(rs runStats) float64 {
	if rs.steps == 0 {
		return 0
	}
	return float64(rs.pathLength) / float64(rs.steps)
}

func printRun(out io.Writer, rs runStats) {
	fmt.Fprintf(out, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Fprintf(out, "maze: id=%s attempts=%d target_len=%d path_len=%d branch_cells=%d open_cells=%d valid=%v\n",
		rs.mazeID, rs.attempts, rs.targetLength, rs.pathLength, rs.branchCells, rs.openCells, rs.valid)
	fmt.Fprintf(out, "solver: outcome=%s ticks=%d steps=%d backtracks=%d dead_cells=%d efficiency=%.2f\n",
		outcome(rs), rs.ticks, rs.steps, rs.backtracks, rs.deadCells, efficiency(rs))
	fmt.Fprintf(out, "fog: hidden_at_end=%d\n\n", rs.hiddenAtEnd)
}

func printAggregate(out io.Writer, requested int, all []runStats) {
	totalAttempts := 0
	totalPath := 0
	totalOpen := 0
	totalSteps := 0
	totalBacktracks := 0
	won, gaveUp, cutOff, invalid := 0, 0, 0, 0
	effs := make([]float64, 0, len(all))
	steps := make([]int, 0, len(all))

	for _, rs := range all {
		totalAttempts += rs.attempts
		totalPath += rs.pathLength
		totalOpen += rs.openCells
		totalSteps += rs.steps
		totalBacktracks += rs.backtracks
		switch outcome(rs) {
		case "won":
			won++
		case "gave_up":
			gaveUp++
		default:
			cutOff++
		}
		if !rs.valid {
			invalid++
		}
		if rs.won {
			effs = append(effs, efficiency(rs))
		}
		steps = append(steps, rs.steps)
	}

	n := len(all)
	fmt.Fprintln(out, "=== Aggregate ===")
	fmt.Fprintf(out, "runs=%d generated=%d failed=%d invalid=%d\n", requested, n, requested-n, invalid)
	fmt.Fprintf(out, "outcomes: won=%d gave_up=%d cut_off=%d\n", won, gaveUp, cutOff)
	fmt.Fprintf(out, "avg_per_run: attempts=%.1f path_len=%.1f open_cells=%.1f steps=%.1f backtracks=%.1f\n",
		avg(totalAttempts, n), avg(totalPath, n), avg(totalOpen, n), avg(totalSteps, n), avg(totalBacktracks, n))
	fmt.Fprintf(out, "steps: median=%s  avg_efficiency_when_won=%s\n", medianString(steps), avgFloatString(effs))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgFloatString(vals []float64) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.2f", sum/float64(len(vals)))
}

func medianString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sorted := append([]int(nil), vals...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return fmt.Sprintf("%d", sorted[mid])
	}
	return fmt.Sprintf("%.1f", float64(sorted[mid-1]+sorted[mid])/2)
}
