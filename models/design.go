package models

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LagDesign builds the design matrix and targets for a lag regression over data. Row i holds
// the lags most recent observations before data[i+lags], newest first, followed by a constant
// 1.0 for the bias. The returned targets are data[lags:].
func LagDesign(data []float64, lags int) (*mat.Dense, []float64, error) {
	if lags < 1 || len(data) <= lags {
		return nil, nil, fmt.Errorf("got %d samples for %d lags, %w", len(data), lags, ErrInsufficientSamples)
	}

	m := len(data) - lags
	n := lags + 1
	obs := make([]float64, m*n)
	for i := 0; i < m; i++ {
		row := obs[i*n : (i+1)*n]
		for j := 0; j < lags; j++ {
			row[j] = data[i+lags-1-j]
		}
		row[lags] = 1.0
	}

	y := make([]float64, m)
	copy(y, data[lags:])
	return mat.NewDense(m, n, obs), y, nil
}
