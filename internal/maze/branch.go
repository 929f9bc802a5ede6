package maze

import "github.com/zyedidia/generic/queue"

// BranchConfig holds the dead-end growth probabilities.
type BranchConfig struct {
	SubsequentBranchChance float64 // leaf selection and re-branch chance
	BranchDeathChance      float64 // chance a popped leaf is abandoned
}

// isCarveable reports whether p can be opened as a continuation of from
// without creating a loop: p must be in bounds, still a wall, and have no
// open neighbour other than from.
func (g *Grid) isCarveable(p, from Position) bool {
	if !g.InBounds(p) || g.CellAt(p) != Wall {
		return false
	}
	for _, n := range p.neighbours() {
		if n == from || !g.InBounds(n) {
			continue
		}
		if g.CellAt(n) != Wall {
			return false
		}
	}
	return true
}

// GrowBranches hangs one-cell-wide dead-end corridors off the decisive path.
// Leaves are picked from path with SubsequentBranchChance, then processed
// FIFO: each live leaf opens one random carveable neighbour, which becomes
// the next leaf of that branch. A leaf with several options may be queued
// again to fork later. Branches stop when they run out of carveable cells.
// It returns the number of cells carved.
func GrowBranches(g *Grid, rng *Rand, path []Position, cfg BranchConfig) int {
	leaves := make([]Position, 0, len(path)/2)
	for _, p := range path {
		if rng.Roll(cfg.SubsequentBranchChance) {
			leaves = append(leaves, p)
		}
	}
	Shuffle(rng, leaves)

	work := queue.New[Position]()
	for _, p := range leaves {
		work.Enqueue(p)
	}

	carved := 0
	for !work.Empty() {
		leaf := work.Dequeue()
		if rng.Roll(cfg.BranchDeathChance) {
			continue
		}

		options := make([]Position, 0, 4)
		for _, n := range leaf.neighbours() {
			if g.isCarveable(n, leaf) {
				options = append(options, n)
			}
		}
		if len(options) == 0 {
			continue
		}
		if len(options) > 1 && rng.Roll(cfg.SubsequentBranchChance) {
			work.Enqueue(leaf)
		}

		Shuffle(rng, options)
		g.setCell(options[0], Path)
		work.Enqueue(options[0])
		carved++
	}
	return carved
}
