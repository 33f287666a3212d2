package models

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Step applies one batch gradient descent update to theta in place. The full gradient is
// computed by the caller beforehand so every weight moves against the same snapshot.
func Step(theta, grad []float64, learningRate float64) error {
	if len(theta) != len(grad) {
		return fmt.Errorf("got %d weights and %d partials, %w", len(theta), len(grad), ErrStepLenMismatch)
	}
	floats.AddScaled(theta, -learningRate, grad)
	return nil
}
