package core

import exprand "golang.org/x/exp/rand"

// RandomSource yields uniformly distributed 32-bit values. Callers reduce
// with modulo for bounded ranges and accept the slight bias.
type RandomSource interface {
	Uint32() uint32
}

// Random is a seeded PCG generator. Two instances with the same seed yield
// the same sequence, which replays rely on.
type Random struct {
	r *exprand.Rand
}

// NewRandom creates a deterministic source for seed.
func NewRandom(seed int64) *Random {
	return &Random{r: exprand.New(exprand.NewSource(uint64(seed)))}
}

// Uint32 returns the next value in the sequence.
func (r *Random) Uint32() uint32 {
	return r.r.Uint32()
}

// Intn returns a value in [0, n) by modulo reduction, as games do.
// It returns 0 when n is not positive.
func Intn(rng RandomSource, n int) int {
	if n <= 0 {
		return 0
	}
	return int(rng.Uint32() % uint32(n))
}
