// Package config holds the tunable parameters for maze generation and play.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSize is the board edge length used when nothing else is configured.
const DefaultSize = 110

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the top-level configuration loaded from YAML.
type Config struct {
	Generation Generation `yaml:"generation"`
	Play       Play       `yaml:"play"`
	Display    Display    `yaml:"display"`
}

// Generation controls the maze generator.
type Generation struct {
	Size                   int     `yaml:"size"`
	MinPathLength          int     `yaml:"min_path_length"` // inclusive
	MaxPathLength          int     `yaml:"max_path_length"` // exclusive
	InitialBranchChance    float64 `yaml:"initial_branch_chance"`
	SubsequentBranchChance float64 `yaml:"subsequent_branch_chance"`
	BranchDeathChance      float64 `yaml:"branch_death_chance"`
	MaxAttempts            int     `yaml:"max_attempts"`    // fresh starts before giving up
	MaxCarveSteps          int     `yaml:"max_carve_steps"` // per attempt; 0 = unbounded
}

// Play controls fog and the autonomous solver at runtime.
type Play struct {
	VisionRadius       int           `yaml:"vision_radius"`
	FogDecayInterval   time.Duration `yaml:"fog_decay_interval"`
	FogDecayAmount     int           `yaml:"fog_decay_amount"`
	SolverStepsPerTick int           `yaml:"solver_steps_per_tick"`
	FogEnabled         bool          `yaml:"fog_enabled"`
	AIEnabled          bool          `yaml:"ai_enabled"`
}

// Display controls the window shell.
type Display struct {
	WindowSize int    `yaml:"window_size"` // pixels, square
	Title      string `yaml:"title"`
}

func base() Config {
	return Config{
		Generation: Generation{
			Size:                   DefaultSize,
			InitialBranchChance:    0.3,
			SubsequentBranchChance: 0.4,
			BranchDeathChance:      0,
			MaxAttempts:            25,
			MaxCarveSteps:          2_000_000,
		},
		Play: Play{
			VisionRadius:       1,
			FogDecayInterval:   200 * time.Millisecond,
			SolverStepsPerTick: 16,
			FogEnabled:         true,
			AIEnabled:          false,
		},
		Display: Display{
			WindowSize: 900,
			Title:      "Fog Maze",
		},
	}
}

// Default returns the stock configuration for a size×size board.
func Default(size int) Config {
	c := base()
	c.Generation.Size = size
	c.fillDerived()
	return c
}

// fillDerived sets size-dependent values that were left at zero:
// path lengths in [3N, 0.15·N²) and a decay of 10% of the board per tick.
func (c *Config) fillDerived() {
	n := c.Generation.Size
	if c.Generation.MinPathLength == 0 {
		c.Generation.MinPathLength = n * 3
	}
	if c.Generation.MaxPathLength == 0 {
		c.Generation.MaxPathLength = n * n * 15 / 100
	}
	if c.Play.FogDecayAmount == 0 {
		c.Play.FogDecayAmount = n * n / 10
	}
}

// WithSize returns a copy resized to n with the size-dependent values
// recomputed from scratch.
func (c Config) WithSize(n int) Config {
	c.Generation.Size = n
	c.Generation.MinPathLength = 0
	c.Generation.MaxPathLength = 0
	c.Play.FogDecayAmount = 0
	c.fillDerived()
	return c
}

// Load reads a YAML file. Fields missing from the file keep their defaults;
// size-dependent fields are derived from the file's size when omitted.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	c := base()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	c.fillDerived()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges and cross-field constraints.
func (c Config) Validate() error {
	g := c.Generation
	switch {
	case g.Size < 4:
		return fmt.Errorf("%w: size %d must be at least 4", ErrInvalidConfig, g.Size)
	case g.MinPathLength < 1:
		return fmt.Errorf("%w: min_path_length %d must be positive", ErrInvalidConfig, g.MinPathLength)
	case g.MaxPathLength <= g.MinPathLength:
		return fmt.Errorf("%w: max_path_length %d must exceed min_path_length %d",
			ErrInvalidConfig, g.MaxPathLength, g.MinPathLength)
	case g.MaxPathLength > g.Size*g.Size:
		return fmt.Errorf("%w: max_path_length %d exceeds board area %d",
			ErrInvalidConfig, g.MaxPathLength, g.Size*g.Size)
	case g.MaxAttempts < 1:
		return fmt.Errorf("%w: max_attempts %d must be positive", ErrInvalidConfig, g.MaxAttempts)
	case g.MaxCarveSteps < 0:
		return fmt.Errorf("%w: max_carve_steps %d must not be negative", ErrInvalidConfig, g.MaxCarveSteps)
	}
	for name, p := range map[string]float64{
		"initial_branch_chance":    g.InitialBranchChance,
		"subsequent_branch_chance": g.SubsequentBranchChance,
		"branch_death_chance":      g.BranchDeathChance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %s %.3f outside [0,1]", ErrInvalidConfig, name, p)
		}
	}

	p := c.Play
	switch {
	case p.VisionRadius < 0:
		return fmt.Errorf("%w: vision_radius %d must not be negative", ErrInvalidConfig, p.VisionRadius)
	case p.FogDecayInterval <= 0:
		return fmt.Errorf("%w: fog_decay_interval must be positive", ErrInvalidConfig)
	case p.FogDecayAmount < 0:
		return fmt.Errorf("%w: fog_decay_amount %d must not be negative", ErrInvalidConfig, p.FogDecayAmount)
	case p.SolverStepsPerTick < 1:
		return fmt.Errorf("%w: solver_steps_per_tick %d must be positive", ErrInvalidConfig, p.SolverStepsPerTick)
	}
	if c.Display.WindowSize < c.Generation.Size {
		return fmt.Errorf("%w: window_size %d smaller than board size %d",
			ErrInvalidConfig, c.Display.WindowSize, c.Generation.Size)
	}
	return nil
}

// Resolve builds the configuration for a command line run: the file at path
// when path is non-empty, otherwise the defaults, then resized when size is
// positive. The result is validated.
func Resolve(path string, size int) (Config, error) {
	c := Default(DefaultSize)
	if path != "" {
		var err error
		if c, err = Load(path); err != nil {
			return Config{}, err
		}
	}
	if size > 0 && size != c.Generation.Size {
		c = c.WithSize(size)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
