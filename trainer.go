// Package lagfit trains a linear predictor of the next value of a time series from its two
// preceding values using batch gradient descent, tracking the training and held out error of
// every trial.
package lagfit

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/aouyang1/go-lagfit/models"
	"github.com/aouyang1/go-lagfit/timeseries"
)

var (
	ErrInvalidConfiguration = models.ErrInvalidConfiguration
	ErrUntrainedTrainer     = errors.New("trainer has not been fit yet")
	ErrUninitializedTrainer = errors.New("uninitialized trainer")
)

// State is the stage of a Trainer's fit
type State int

const (
	StateInitializing State = iota
	StateIterating
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateIterating:
		return "iterating"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// NewTimeSeededRand returns a random source seeded from the wall clock. The lagfit command creates
// exactly one per run.
func NewTimeSeededRand() *rand.Rand {
	now := time.Now()
	return rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix())))
}

// Trainer owns the parameter vector while fitting it to a training series and records the
// training and test error after every update.
type Trainer struct {
	opt *Options
	rng models.RandSource

	state   State
	theta   []float64
	results *Results
}

// New creates a Trainer with the provided options and random source. Nil options use the
// defaults and a nil source is replaced with a time seeded one.
func New(opt *Options, rng models.RandSource) (*Trainer, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, fmt.Errorf("unable to validate options, %w", err)
	}
	if rng == nil {
		rng = NewTimeSeededRand()
	}
	return &Trainer{
		opt:   opt,
		rng:   rng,
		state: StateInitializing,
	}, nil
}

func (t *Trainer) initialTheta() ([]float64, error) {
	if t.opt.InitialTheta != nil {
		theta := make([]float64, len(t.opt.InitialTheta))
		copy(theta, t.opt.InitialTheta)
		return theta, nil
	}
	return models.InitialTheta(t.rng, t.opt.InitialThetaCount, t.opt.InitialThetaScale)
}

// Fit normalizes the raw training and test series, draws the initial weights and runs the
// configured number of gradient descent trials. Neither input is modified.
func (t *Trainer) Fit(train, test []float64) (*Results, error) {
	if t == nil || t.opt == nil {
		return nil, ErrUninitializedTrainer
	}
	t.state = StateInitializing
	t.results = nil

	trainSeries, err := timeseries.NormalizeChecked(train, t.opt.NormalizationFactor)
	if err != nil {
		return nil, fmt.Errorf("unable to prepare training series, %w", err)
	}
	testSeries, err := timeseries.NormalizeChecked(test, t.opt.NormalizationFactor)
	if err != nil {
		return nil, fmt.Errorf("unable to prepare test series, %w", err)
	}

	theta, err := t.initialTheta()
	if err != nil {
		return nil, fmt.Errorf("unable to initialize weights, %w", err)
	}
	slog.Debug("initialized weights", "theta", theta)

	t.state = StateIterating
	trainError := make([]float64, 0, t.opt.Trials)
	testError := make([]float64, 0, t.opt.Trials)
	for trial := 0; trial < t.opt.Trials; trial++ {
		grad, err := models.Gradient(trainSeries, theta)
		if err != nil {
			return nil, fmt.Errorf("unable to compute gradient at trial %d, %w", trial, err)
		}
		if err := models.Step(theta, grad, t.opt.LearningRate); err != nil {
			return nil, fmt.Errorf("unable to update weights at trial %d, %w", trial, err)
		}

		trainRisk, err := models.EmpiricalRisk(trainSeries, theta)
		if err != nil {
			return nil, fmt.Errorf("unable to compute training error at trial %d, %w", trial, err)
		}
		testRisk, err := models.EmpiricalRisk(testSeries, theta)
		if err != nil {
			return nil, fmt.Errorf("unable to compute test error at trial %d, %w", trial, err)
		}
		trainError = append(trainError, trainRisk)
		testError = append(testError, testRisk)

		slog.Debug("completed trial", "trial", trial, "train_error", trainRisk, "test_error", testRisk)
	}

	trainScores, err := models.ScoreSeries(trainSeries, theta)
	if err != nil {
		return nil, fmt.Errorf("unable to score training series, %w", err)
	}
	testScores, err := models.ScoreSeries(testSeries, theta)
	if err != nil {
		return nil, fmt.Errorf("unable to score test series, %w", err)
	}

	t.theta = theta
	t.results = &Results{
		Options:     t.opt,
		Theta:       append([]float64(nil), theta...),
		TrainError:  trainError,
		TestError:   testError,
		TrainScores: trainScores,
		TestScores:  testScores,
	}
	t.state = StateDone
	slog.Debug("finished training",
		"trials", t.opt.Trials,
		"train_error", trainError[len(trainError)-1],
		"test_error", testError[len(testError)-1],
	)
	return t.results, nil
}

// State returns the current stage of the trainer
func (t *Trainer) State() State {
	if t == nil {
		return StateInitializing
	}
	return t.state
}

// Theta returns a copy of the trained weights
func (t *Trainer) Theta() []float64 {
	if t == nil || t.theta == nil {
		return nil
	}
	theta := make([]float64, len(t.theta))
	copy(theta, t.theta)
	return theta
}

// Results returns the results of the last successful fit
func (t *Trainer) Results() *Results {
	if t == nil {
		return nil
	}
	return t.results
}

// PredictNext forecasts the value following the raw series y in the same units as y.
func (t *Trainer) PredictNext(y []float64) (float64, error) {
	if t == nil || t.opt == nil {
		return 0, ErrUninitializedTrainer
	}
	if t.state != StateDone {
		return 0, ErrUntrainedTrainer
	}
	last := timeseries.Normalize(timeseries.Series(y).Last(models.Lags), t.opt.NormalizationFactor)
	next, err := models.PredictNext(last, t.theta)
	if err != nil {
		return 0, err
	}
	return next * t.opt.NormalizationFactor, nil
}
