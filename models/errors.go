package models

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-lagfit/timeseries"
)

var (
	ErrInvalidConfiguration = timeseries.ErrInvalidConfiguration
	ErrInsufficientSamples  = timeseries.ErrInsufficientSamples

	ErrThetaLen         = fmt.Errorf("parameter vector must have %d weights, %w", NumParams, ErrInvalidConfiguration)
	ErrNegativeCount    = fmt.Errorf("negative parameter count, %w", ErrInvalidConfiguration)
	ErrNonPositiveScale = fmt.Errorf("initial parameter scale must be positive, %w", ErrInvalidConfiguration)
	ErrNoRandSource     = fmt.Errorf("no random source, %w", ErrInvalidConfiguration)
	ErrInsufficientLags = fmt.Errorf("need at least %d observations to forecast, %w", Lags, ErrInvalidConfiguration)

	ErrStepLenMismatch = errors.New("gradient length does not match parameter vector")
	ErrResLenMismatch  = errors.New("predicted and actual have different lengths")
)
