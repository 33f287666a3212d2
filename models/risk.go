package models

import (
	"fmt"

	"github.com/aouyang1/go-lagfit/timeseries"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func validate(data, theta []float64) error {
	if len(theta) != NumParams {
		return fmt.Errorf("got %d weights, %w", len(theta), ErrThetaLen)
	}
	if len(data) < timeseries.MinSamples {
		return fmt.Errorf("got %d samples, %w", len(data), ErrInsufficientSamples)
	}
	return nil
}

func predict(x mat.Matrix, theta []float64) []float64 {
	m, _ := x.Dims()
	yhat := mat.NewVecDense(m, nil)
	yhat.MulVec(x, mat.NewVecDense(len(theta), theta))
	return yhat.RawVector().Data
}

// residuals returns observed minus predicted for every triple in data along with the design
// matrix that produced the predictions.
func residuals(data, theta []float64) ([]float64, *mat.Dense, error) {
	if err := validate(data, theta); err != nil {
		return nil, nil, err
	}
	x, y, err := LagDesign(data, Lags)
	if err != nil {
		return nil, nil, err
	}
	res := make([]float64, len(y))
	floats.SubTo(res, y, predict(x, theta))
	return res, x, nil
}

// Predict returns the in-sample prediction for data[2:] given theta.
func Predict(data, theta []float64) ([]float64, error) {
	if err := validate(data, theta); err != nil {
		return nil, err
	}
	x, _, err := LagDesign(data, Lags)
	if err != nil {
		return nil, err
	}
	return predict(x, theta), nil
}

// PredictNext forecasts the observation that follows the last two values of data.
func PredictNext(data, theta []float64) (float64, error) {
	if len(theta) != NumParams {
		return 0, fmt.Errorf("got %d weights, %w", len(theta), ErrThetaLen)
	}
	n := len(data)
	if n < Lags {
		return 0, fmt.Errorf("got %d samples, %w", n, ErrInsufficientLags)
	}
	return theta[0]*data[n-1] + theta[1]*data[n-2] + theta[2], nil
}

// EmpiricalRisk is the mean squared prediction error over the len(data)-2 triples of data.
func EmpiricalRisk(data, theta []float64) (float64, error) {
	res, _, err := residuals(data, theta)
	if err != nil {
		return 0, err
	}
	return floats.Dot(res, res) / float64(len(data)-Lags), nil
}

// Gradient returns the partial derivatives of the squared error with respect to each weight,
// summed over the len(data)-2 triples and averaged over len(data). The divisor intentionally
// differs from EmpiricalRisk.
func Gradient(data, theta []float64) ([]float64, error) {
	res, x, err := residuals(data, theta)
	if err != nil {
		return nil, err
	}

	// d/dtheta (y - x.theta)^2 = -2 * (y - x.theta) * x
	g := mat.NewVecDense(NumParams, nil)
	g.MulVec(x.T(), mat.NewVecDense(len(res), res))

	grad := g.RawVector().Data
	floats.Scale(-2.0, grad)
	n := float64(len(data))
	for j := range grad {
		grad[j] /= n
	}
	return grad, nil
}
