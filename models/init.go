package models

import (
	"fmt"
)

// RandSource is the part of *math/rand/v2.Rand the initializer draws from.
type RandSource interface {
	IntN(n int) int
	Float64() float64
}

// InitialTheta draws count weights from (-factor, factor). Each weight takes a fair coin flip for
// its sign followed by a uniform magnitude in [0, factor), in that order, so a seeded source
// reproduces the same vector.
func InitialTheta(rng RandSource, count int, factor float64) ([]float64, error) {
	if rng == nil {
		return nil, ErrNoRandSource
	}
	if count < 0 {
		return nil, fmt.Errorf("got count %d, %w", count, ErrNegativeCount)
	}
	if factor <= 0 {
		return nil, fmt.Errorf("got scale %f, %w", factor, ErrNonPositiveScale)
	}

	theta := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		negative := rng.IntN(2) == 1
		val := rng.Float64() * factor
		if negative {
			val = -val
		}
		theta = append(theta, val)
	}
	return theta, nil
}
