package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/Garsondee/Fog-Maze/internal/config"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(&bytes.Buffer{})
	return l
}

func TestRunMaze_SolverReachesGoal(t *testing.T) {
	cfg := config.Default(30)
	for seed := int64(1); seed <= 5; seed++ {
		rs, s, err := runMaze(cfg, 1, seed, 100_000, quietLogger())
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if !rs.valid {
			t.Fatalf("seed %d: generated maze failed validation", seed)
		}
		if !rs.won || rs.gaveUp {
			t.Fatalf("seed %d: expected a win, got outcome=%s", seed, outcome(rs))
		}
		if rs.steps < rs.pathLength {
			t.Fatalf("seed %d: %d steps cannot beat the %d-cell decisive path", seed, rs.steps, rs.pathLength)
		}
		if goal, _ := s.Grid().Goal(); s.Player() != goal {
			t.Fatalf("seed %d: player at %v, goal at %v", seed, s.Player(), goal)
		}
	}
}

func TestRunMaze_CutOffAfterMaxTicks(t *testing.T) {
	rs, _, err := runMaze(config.Default(30), 1, 3, 1, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if rs.ticks != 1 {
		t.Fatalf("expected 1 tick, got %d", rs.ticks)
	}
	if outcome(rs) != "cut_off" {
		t.Fatalf("expected cut_off after one tick, got %s", outcome(rs))
	}
}

func TestReportCommand_PrintsRunsAndWritesPNGs(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--runs", "2", "--size", "30", "--seed-base", "10", "--png-dir", dir, "--cell-px", "2"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	report := out.String()
	for _, want := range []string{"--- Run 1 (seed=10) ---", "--- Run 2 (seed=11) ---", "=== Aggregate ===", "outcomes: won=2"} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
	pngs, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(pngs) != 2 {
		t.Fatalf("expected 2 snapshots, got %v", pngs)
	}
	if info, err := os.Stat(pngs[0]); err != nil || info.Size() == 0 {
		t.Fatalf("empty snapshot %s: %v", pngs[0], err)
	}
}

func TestReportCommand_RejectsBadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"--runs", "0"},
		{"--size", "10"},
		{"--size", "30", "--min-path", "200", "--max-path", "100"},
		{"--log-level", "loud"},
	} {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		if err := cmd.Execute(); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestMedianString(t *testing.T) {
	if got := medianString([]int{5, 1, 3}); got != "3" {
		t.Fatalf("odd median: got %s", got)
	}
	if got := medianString([]int{4, 1, 2, 3}); got != "2.5" {
		t.Fatalf("even median: got %s", got)
	}
	if got := medianString(nil); got != "n/a" {
		t.Fatalf("empty median: got %s", got)
	}
}

func TestPrintAggregate_CountsFailures(t *testing.T) {
	var out bytes.Buffer
	printAggregate(&out, 3, []runStats{
		{pathLength: 10, steps: 20, won: true, valid: true},
		{pathLength: 10, steps: 40, gaveUp: true, valid: true},
	})
	got := out.String()
	for _, want := range []string{"generated=2 failed=1", "won=1 gave_up=1 cut_off=0", "median=30.0", "avg_efficiency_when_won=0.50"} {
		if !strings.Contains(got, want) {
			t.Fatalf("aggregate missing %q:\n%s", want, got)
		}
	}
}
