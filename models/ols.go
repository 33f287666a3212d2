package models

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LeastSquares returns the weights that minimize EmpiricalRisk over data, solved directly with a
// QR factorization of the lag design matrix. Gradient descent can only approach this risk from
// above.
func LeastSquares(data []float64) ([]float64, error) {
	x, y, err := LagDesign(data, Lags)
	if err != nil {
		return nil, err
	}
	m, n := x.Dims()
	if m < n {
		return nil, fmt.Errorf("got %d triples for %d weights, %w", m, n, ErrInsufficientSamples)
	}

	qr := new(mat.QR)
	qr.Factorize(x)

	theta := mat.NewDense(n, 1, nil)
	if err := qr.SolveTo(theta, false, mat.NewDense(m, 1, y)); err != nil {
		return nil, fmt.Errorf("unable to solve least squares, %w", err)
	}
	return mat.Col(nil, 0, theta), nil
}
