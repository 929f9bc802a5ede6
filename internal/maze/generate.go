package maze

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/Fog-Maze/internal/config"
)

// ErrNoGoal is returned when no attempt managed to place a goal cell.
var ErrNoGoal = errors.New("maze generation placed no goal")

// GenerationResult is a finished maze plus how it was made.
type GenerationResult struct {
	ID           string     // unique per generated maze, for log correlation
	Grid         *Grid      // Start, Goal, decisive path and branches
	DecisivePath []Position // start .. cell before the goal
	TargetLength int        // drawn length of the successful attempt
	Attempts     int        // 1 on first-try success
	BranchCells  int        // cells carved by branch growth
}

// Generate builds a maze according to cfg. Each attempt picks a random
// start and a target length in [MinPathLength, MaxPathLength), carves the
// decisive path and, if a goal was placed, grows dead-end branches. A failed
// attempt wipes the board and retries with fresh draws, up to MaxAttempts.
// log may be nil.
func Generate(cfg config.Generation, rng *Rand, log logrus.FieldLogger) (*GenerationResult, error) {
	if log == nil {
		log = discardLogger()
	}
	g := NewGrid(cfg.Size)
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		g.reset()
		start := Position{X: rng.Intn(0, cfg.Size), Y: rng.Intn(0, cfg.Size)}
		g.setCell(start, Start)
		length := rng.Intn(cfg.MinPathLength, cfg.MaxPathLength)

		path, ok := CarvePath(g, rng, start, length, cfg.MaxCarveSteps)
		if !ok {
			log.WithFields(logrus.Fields{
				"attempt": attempt,
				"start":   start.String(),
				"length":  length,
			}).Debug("decisive path failed, retrying")
			continue
		}

		branches := GrowBranches(g, rng, path, BranchConfig{
			SubsequentBranchChance: cfg.SubsequentBranchChance,
			BranchDeathChance:      cfg.BranchDeathChance,
		})
		res := &GenerationResult{
			ID:           uuid.NewString(),
			Grid:         g,
			DecisivePath: path,
			TargetLength: length,
			Attempts:     attempt,
			BranchCells:  branches,
		}
		log.WithFields(logrus.Fields{
			"maze_id":    res.ID,
			"attempts":   attempt,
			"path_len":   len(path),
			"open_cells": g.OpenCells(),
		}).Info("maze generated")
		return res, nil
	}
	return nil, fmt.Errorf("after %d attempts: %w", cfg.MaxAttempts, ErrNoGoal)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
