package maze

import "math/rand"

// Rand is the single source of randomness for generation and fog decay.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a deterministic generator for the given seed.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))} // #nosec G404 -- maze layout only
}

// Intn returns a uniform integer in [min, max). When max <= min it returns min.
func (r *Rand) Intn(min, max int) int {
	if max <= min {
		return min
	}
	return r.r.Intn(max-min) + min
}

// Roll returns true with probability chance.
func (r *Rand) Roll(chance float64) bool {
	return r.r.Float64() < chance
}

// Shuffle permutes s in place (Fisher-Yates).
func Shuffle[T any](r *Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
