// Package timeseries holds the univariate series the lag regression is trained on along with
// helpers to scale and simulate them.
package timeseries

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// MinSamples is the smallest series that still contains one (x_i, x_i+1, y) triple.
const MinSamples = 3

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInsufficientSamples  = fmt.Errorf("series needs at least %d samples, %w", MinSamples, ErrInvalidConfiguration)
	ErrNonPositiveFactor    = fmt.Errorf("normalization factor must be positive, %w", ErrInvalidConfiguration)
)

// Series is an ordered sequence of observations. Components never modify a Series they are
// handed, they return new ones instead.
type Series []float64

// New returns a copy of y as a Series after checking it is long enough to train on.
func New(y []float64) (Series, error) {
	if len(y) < MinSamples {
		return nil, fmt.Errorf("got %d samples, %w", len(y), ErrInsufficientSamples)
	}
	s := make(Series, len(y))
	copy(s, y)
	return s, nil
}

// Normalize returns a new series with every element divided by factor.
func Normalize(s Series, factor float64) Series {
	res := make(Series, len(s))
	for i, v := range s {
		res[i] = v / factor
	}
	return res
}

// NormalizeChecked validates the series length and factor before normalizing.
func NormalizeChecked(y []float64, factor float64) (Series, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("got factor %f, %w", factor, ErrNonPositiveFactor)
	}
	s, err := New(y)
	if err != nil {
		return nil, err
	}
	return Normalize(s, factor), nil
}

func (s Series) Copy() Series {
	if s == nil {
		return nil
	}
	res := make(Series, len(s))
	copy(res, s)
	return res
}

// Last returns the final n observations. If the series is shorter the whole series is returned.
func (s Series) Last(n int) Series {
	if n >= len(s) {
		return s.Copy()
	}
	return s[len(s)-n:].Copy()
}

// MeanStdDev summarizes the series, useful to sanity check a normalization factor.
func (s Series) MeanStdDev() (float64, float64) {
	return stat.MeanStdDev(s, nil)
}
