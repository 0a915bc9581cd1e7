package rng

import "math/rand/v2"

// Roller is the dice capability used by combat resolution.
// All randomness in blow resolution flows through a Roller so that
// scenarios are reproducible under a fixed seed or a scripted source.
type Roller interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
	// RollN1 returns a uniform value in [1, n].
	RollN1(n int) int
	// Damroll rolls num dice with the given number of sides and sums them.
	Damroll(num, sides int) int
}

type source struct {
	r *rand.Rand
}

// New returns a Roller seeded from the given value.
func New(seed uint64) Roller {
	return &source{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

func (s *source) RollN1(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n) + 1
}

func (s *source) Damroll(num, sides int) int {
	sum := 0
	for range num {
		sum += s.RollN1(sides)
	}
	return sum
}
