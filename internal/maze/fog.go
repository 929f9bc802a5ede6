package maze

// Reveal clears fog for every in-bounds cell within Chebyshev distance
// radius of center.
func Reveal(g *Grid, center Position, radius int) {
	if radius < 0 {
		return
	}
	for x := max(0, center.X-radius); x <= min(g.size-1, center.X+radius); x++ {
		for y := max(0, center.Y-radius); y <= min(g.size-1, center.Y+radius); y++ {
			g.fog[y*g.size+x] = false
		}
	}
}

// Decay draws samples random cells and re-hides each one that lies outside
// the exclusion square of the given radius around center. Samples may
// repeat or land on already hidden cells; full re-coverage is not
// guaranteed. It returns how many samples fell outside the exclusion zone.
func Decay(g *Grid, rng *Rand, center Position, radius, samples int) int {
	hidden := 0
	for i := 0; i < samples; i++ {
		p := Position{X: rng.Intn(0, g.size), Y: rng.Intn(0, g.size)}
		if chebyshev(p, center) > radius {
			g.setFog(p, true)
			hidden++
		}
	}
	return hidden
}
