package core

import "math/rand/v2"

// Source is the random-number contract used to pick panels. *rand.Rand
// satisfies it, as does RNG; tests supply scripted sources.
type Source interface {
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Panel draws a panel uniformly at random.
func (r *RNG) Panel() Panel { return RandomPanel(r) }

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// RandomPanel draws one of the four panels uniformly, with replacement.
func RandomPanel(src Source) Panel {
	return Panels[src.IntN(PanelCount)]
}
