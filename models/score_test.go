package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScores(t *testing.T) {
	testData := map[string]struct {
		predicted []float64
		actual    []float64
		expected  *Scores
		err       error
	}{
		"length mismatch": {
			predicted: []float64{1},
			actual:    []float64{1, 2},
			err:       ErrResLenMismatch,
		},
		"perfect": {
			predicted: []float64{1, 2, 3},
			actual:    []float64{1, 2, 3},
			expected:  &Scores{MSE: 0, MAPE: 0, R2: 1},
		},
		"constant perfect": {
			predicted: []float64{2, 2},
			actual:    []float64{2, 2},
			expected:  &Scores{MSE: 0, MAPE: 0, R2: 1},
		},
		"off by one": {
			predicted: []float64{2, 3, 4, 5},
			actual:    []float64{1, 2, 4, 5},
			expected:  &Scores{MSE: 0.5, MAPE: 0.375, R2: 0.8},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			scores, err := NewScores(td.predicted, td.actual)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.InDelta(t, td.expected.MSE, scores.MSE, 1e-9, "mse")
			assert.InDelta(t, td.expected.MAPE, scores.MAPE, 1e-9, "mape")
			assert.InDelta(t, td.expected.R2, scores.R2, 1e-9, "r2")
		})
	}
}

func TestScoreSeriesMatchesRisk(t *testing.T) {
	theta := []float64{0.45, 0.4, 0.3}
	scores, err := ScoreSeries(normTraining, theta)
	require.Nil(t, err)

	risk, err := EmpiricalRisk(normTraining, theta)
	require.Nil(t, err)
	assert.InDelta(t, risk, scores.MSE, 1e-12)
}
