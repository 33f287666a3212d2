package lagfit

import (
	"fmt"

	"github.com/aouyang1/go-lagfit/models"
)

const (
	DefaultNormalizationFactor = 10000.0
	DefaultLearningRate        = 0.08
	DefaultTrials              = 120
	DefaultInitialThetaScale   = 0.01
)

var (
	ErrNonPositiveNormalization = fmt.Errorf("normalization factor must be positive, %w", models.ErrInvalidConfiguration)
	ErrNonPositiveLearningRate  = fmt.Errorf("learning rate must be positive, %w", models.ErrInvalidConfiguration)
	ErrNonPositiveTrials        = fmt.Errorf("trials must be positive, %w", models.ErrInvalidConfiguration)
	ErrThetaCount               = fmt.Errorf("initial theta count must be %d, %w", models.NumParams, models.ErrInvalidConfiguration)
	ErrNonPositiveThetaScale    = fmt.Errorf("initial theta scale must be positive, %w", models.ErrInvalidConfiguration)
	ErrWarmStartThetaLen        = fmt.Errorf("warm start theta must have %d weights, %w", models.NumParams, models.ErrInvalidConfiguration)
)

// Options configures a Trainer. Every field is required, use NewDefaultOptions for the values the
// lagfit command runs with.
type Options struct {
	// NormalizationFactor divides both the training and test series before training.
	NormalizationFactor float64 `json:"normalization_factor"`

	// LearningRate is the gradient descent step size.
	LearningRate float64 `json:"learning_rate"`

	// Trials is the exact number of gradient descent iterations. There is no early stopping.
	Trials int `json:"trials"`

	// InitialThetaCount is the number of weights drawn at initialization. Only the lag-2 model
	// is supported so this must equal models.NumParams.
	InitialThetaCount int `json:"initial_theta_count"`

	// InitialThetaScale bounds the initial weights to (-scale, scale).
	InitialThetaScale float64 `json:"initial_theta_scale"`

	// InitialTheta skips the random initialization and starts descent from these weights if set.
	InitialTheta []float64 `json:"initial_theta,omitempty"`
}

// NewDefaultOptions returns the fixed configuration of the lagfit experiment
func NewDefaultOptions() *Options {
	return &Options{
		NormalizationFactor: DefaultNormalizationFactor,
		LearningRate:        DefaultLearningRate,
		Trials:              DefaultTrials,
		InitialThetaCount:   models.NumParams,
		InitialThetaScale:   DefaultInitialThetaScale,
	}
}

// Validate checks the options and returns them, or the defaults if o is nil
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		o = NewDefaultOptions()
	}

	if o.NormalizationFactor <= 0 {
		return nil, fmt.Errorf("got %f, %w", o.NormalizationFactor, ErrNonPositiveNormalization)
	}
	if o.LearningRate <= 0 {
		return nil, fmt.Errorf("got %f, %w", o.LearningRate, ErrNonPositiveLearningRate)
	}
	if o.Trials <= 0 {
		return nil, fmt.Errorf("got %d, %w", o.Trials, ErrNonPositiveTrials)
	}
	if o.InitialThetaCount != models.NumParams {
		return nil, fmt.Errorf("got %d, %w", o.InitialThetaCount, ErrThetaCount)
	}
	if o.InitialThetaScale <= 0 {
		return nil, fmt.Errorf("got %f, %w", o.InitialThetaScale, ErrNonPositiveThetaScale)
	}
	if o.InitialTheta != nil && len(o.InitialTheta) != models.NumParams {
		return nil, fmt.Errorf("got %d, %w", len(o.InitialTheta), ErrWarmStartThetaLen)
	}
	return o, nil
}
