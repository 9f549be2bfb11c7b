package maze

import (
	"math/rand"
	"time"
)

// RandomSource yields floats in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewSource returns a RandomSource seeded with seed. A zero seed picks one from the clock.
func NewSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// shuffledSteps returns the carve directions in a random order (Fisher-Yates).
func shuffledSteps(rng RandomSource) [4]step {
	dirs := carveSteps
	for i := len(dirs) - 1; i > 0; i-- {
		j := int(rng.Float64() * float64(i+1))
		if j > i {
			j = i
		}
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}
