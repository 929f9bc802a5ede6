package maze

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadGrid is returned by ParseGrid for malformed dumps.
var ErrBadGrid = errors.New("malformed grid dump")

// CellState identifies what occupies one maze cell.
type CellState uint8

const (
	Path  CellState = iota // Open corridor
	Wall                   // Solid rock (initial state)
	Start                  // Agent spawn
	Goal                   // End of the decisive path
)

// String returns a short human-readable name.
func (c CellState) String() string {
	switch c {
	case Path:
		return "path"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// glyph is the ASCII dump character for a cell.
func (c CellState) glyph() byte {
	switch c {
	case Path:
		return '.'
	case Start:
		return 'S'
	case Goal:
		return 'G'
	default:
		return '#'
	}
}

// Position is a cell coordinate. It is comparable and used directly as a set key.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// neighbours returns the four axis-aligned neighbours in carving order
// (east, west, south, north). Some may be out of bounds.
func (p Position) neighbours() [4]Position {
	return [4]Position{
		{p.X + 1, p.Y},
		{p.X - 1, p.Y},
		{p.X, p.Y + 1},
		{p.X, p.Y - 1},
	}
}

// chebyshev returns the Chebyshev (king-move) distance between a and b.
func chebyshev(a, b Position) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// MoveResult reports the outcome of Grid.MoveTo.
type MoveResult struct {
	Success bool // the target was in bounds and not a wall
	Won     bool // the target is the goal cell
}

// Grid is the authoritative N×N cell-state grid plus its fog layer.
type Grid struct {
	size  int
	cells []CellState // row-major: index = y*size + x
	fog   []bool      // true = hidden

	start   Position
	goal    Position
	hasGoal bool
}

// NewGrid creates a size×size grid that is all wall and fully fogged.
func NewGrid(size int) *Grid {
	g := &Grid{
		size:  size,
		cells: make([]CellState, size*size),
		fog:   make([]bool, size*size),
	}
	g.reset()
	return g
}

// reset returns every cell to Wall and hides the whole fog layer.
func (g *Grid) reset() {
	for i := range g.cells {
		g.cells[i] = Wall
		g.fog[i] = true
	}
	g.start = Position{}
	g.goal = Position{}
	g.hasGoal = false
}

// Size returns the grid edge length N.
func (g *Grid) Size() int { return g.size }

// InBounds returns true if p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.size && p.Y < g.size
}

func (g *Grid) index(p Position) int {
	return p.Y*g.size + p.X
}

// CellAt returns the state of p. Out-of-bounds cells read as Wall.
func (g *Grid) CellAt(p Position) CellState {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[g.index(p)]
}

// FogAt returns true if p is hidden. Out-of-bounds cells read as hidden.
func (g *Grid) FogAt(p Position) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.fog[g.index(p)]
}

// setCell writes a cell state, tracking the Start and Goal markers.
func (g *Grid) setCell(p Position, c CellState) {
	g.cells[g.index(p)] = c
	switch c {
	case Start:
		g.start = p
	case Goal:
		g.goal = p
		g.hasGoal = true
	}
}

func (g *Grid) setFog(p Position, hidden bool) {
	g.fog[g.index(p)] = hidden
}

// Start returns the start position.
func (g *Grid) Start() Position { return g.start }

// Goal returns the goal position and whether one has been placed.
func (g *Grid) Goal() (Position, bool) { return g.goal, g.hasGoal }

// OpenCells counts every non-wall cell.
func (g *Grid) OpenCells() int {
	n := 0
	for _, c := range g.cells {
		if c != Wall {
			n++
		}
	}
	return n
}

// HiddenCells counts cells currently under fog.
func (g *Grid) HiddenCells() int {
	n := 0
	for _, h := range g.fog {
		if h {
			n++
		}
	}
	return n
}

// MoveTo is the single gate for agent movement. It fails without mutation
// when p is out of bounds or a wall. Otherwise it reveals fog within
// visionRadius of p and reports whether p is the goal. Cell states are
// never changed by movement.
func (g *Grid) MoveTo(p Position, visionRadius int) MoveResult {
	if g.CellAt(p) == Wall {
		return MoveResult{}
	}
	won := g.cells[g.index(p)] == Goal
	Reveal(g, p, visionRadius)
	return MoveResult{Success: true, Won: won}
}

// String dumps the grid as ASCII, one row per y: '#' wall, '.' path,
// 'S' start, 'G' goal.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			b.WriteByte(g.cells[y*g.size+x].glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseGrid reads a dump in the String format back into a fully fogged grid.
// The dump must be square. Blank lines are ignored.
func ParseGrid(dump string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(dump, "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadGrid)
	}
	g := NewGrid(len(rows))
	for y, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadGrid, y, len(row), len(rows))
		}
		for x := 0; x < len(row); x++ {
			p := Position{x, y}
			switch row[x] {
			case '#':
			case '.':
				g.setCell(p, Path)
			case 'S':
				g.setCell(p, Start)
			case 'G':
				g.setCell(p, Goal)
			default:
				return nil, fmt.Errorf("%w: unknown glyph %q at %v", ErrBadGrid, row[x], p)
			}
		}
	}
	return g, nil
}
