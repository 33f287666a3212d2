package models

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Scores tracks how well a set of predictions matches the observations they were made for
type Scores struct {
	MSE  float64 `json:"mean_squared_error"`
	MAPE float64 `json:"mean_average_percent_error"`
	R2   float64 `json:"r_squared"`
}

// NewScores calculates the fit scores given the predicted and actual input slice values
func NewScores(predicted, actual []float64) (*Scores, error) {
	mse, err := MSE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean squared error, %w", err)
	}
	mape, err := MAPE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean average percent error, %w", err)
	}
	rs, err := RSquared(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute r-squared, %w", err)
	}
	return &Scores{
		MSE:  mse,
		MAPE: mape,
		R2:   rs,
	}, nil
}

// ScoreSeries predicts every triple of data with theta and scores the predictions against
// data[2:]. The MSE matches EmpiricalRisk.
func ScoreSeries(data, theta []float64) (*Scores, error) {
	predicted, err := Predict(data, theta)
	if err != nil {
		return nil, err
	}
	return NewScores(predicted, data[Lags:])
}

// MSE computes the mean squared error, sum((y-yhat)^2)/n.
func MSE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	if len(actual) == 0 {
		return 0, nil
	}

	mse := 0.0
	for i := range actual {
		d := actual[i] - predicted[i]
		mse += d * d
	}
	return mse / float64(len(actual)), nil
}

// MAPE calculates the mean average percent error, sum(abs((y-yhat)/y))/n. Observations of zero
// are skipped but still counted in n.
func MAPE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	if len(actual) == 0 {
		return 0, nil
	}

	mape := 0.0
	for i := range actual {
		if actual[i] == 0 {
			continue
		}
		mape += math.Abs((actual[i] - predicted[i]) / actual[i])
	}
	return mape / float64(len(actual)), nil
}

// RSquared computes the coefficient of determination where 1.0 is a perfect fit. A constant
// series that is predicted exactly also scores 1.0.
func RSquared(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	r2 := stat.RSquaredFrom(predicted, actual, nil)
	if math.IsNaN(r2) {
		return 1.0, nil
	}
	return r2, nil
}
