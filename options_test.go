package lagfit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidate(t *testing.T) {
	valid := func() *Options { return NewDefaultOptions() }

	testData := map[string]struct {
		opt      *Options
		err      error
		expected *Options
	}{
		"nil":      {nil, nil, NewDefaultOptions()},
		"defaults": {valid(), nil, NewDefaultOptions()},
		"warm start": {
			&Options{
				NormalizationFactor: 1,
				LearningRate:        0.1,
				Trials:              3,
				InitialThetaCount:   3,
				InitialThetaScale:   0.5,
				InitialTheta:        []float64{0, 0, 0},
			}, nil,
			&Options{
				NormalizationFactor: 1,
				LearningRate:        0.1,
				Trials:              3,
				InitialThetaCount:   3,
				InitialThetaScale:   0.5,
				InitialTheta:        []float64{0, 0, 0},
			},
		},
		"zero normalization": {
			func() *Options { o := valid(); o.NormalizationFactor = 0; return o }(),
			ErrNonPositiveNormalization, nil,
		},
		"negative learning rate": {
			func() *Options { o := valid(); o.LearningRate = -0.1; return o }(),
			ErrNonPositiveLearningRate, nil,
		},
		"zero trials": {
			func() *Options { o := valid(); o.Trials = 0; return o }(),
			ErrNonPositiveTrials, nil,
		},
		"wrong theta count": {
			func() *Options { o := valid(); o.InitialThetaCount = 4; return o }(),
			ErrThetaCount, nil,
		},
		"zero theta scale": {
			func() *Options { o := valid(); o.InitialThetaScale = 0; return o }(),
			ErrNonPositiveThetaScale, nil,
		},
		"short warm start": {
			func() *Options { o := valid(); o.InitialTheta = []float64{1, 2}; return o }(),
			ErrWarmStartThetaLen, nil,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			opt, err := td.opt.Validate()
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, opt)
		})
	}
}

func TestDefaultSeriesAreCopies(t *testing.T) {
	train := DefaultTrainingSeries()
	require.Len(t, train, 12)
	train[0] = 0
	assert.Equal(t, 25733.0, DefaultTrainingSeries()[0])

	test := DefaultTestSeries()
	require.Len(t, test, 12)
	test[0] = 0
	assert.Equal(t, 25916.0, DefaultTestSeries()[0])
}
