package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/Fog-Maze/internal/maze"
)

func writeClipboard(s string) error {
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// clipboardText is a plain-text snapshot of the session: a short header
// followed by the grid dump in the format maze.ParseGrid accepts.
func clipboardText(s *maze.Session, seed int64) string {
	var b strings.Builder
	res := s.Maze
	fmt.Fprintf(&b, "maze %s  seed %d  size %d\n", res.ID, seed, res.Grid.Size())
	fmt.Fprintf(&b, "path %d  attempts %d  branch cells %d\n", len(res.DecisivePath), res.Attempts, res.BranchCells)
	fmt.Fprintf(&b, "player %v  tick %d  won %v\n", s.Player(), s.Tick(), s.Won())
	if sv := s.Solver(); sv != nil {
		fmt.Fprintf(&b, "solver steps %d  backtracks %d  gave up %v\n", sv.Steps(), sv.Backtracks(), sv.GaveUp())
	}
	b.WriteByte('\n')
	b.WriteString(res.Grid.String())
	return b.String()
}
