package lagfit

import (
	"bytes"
	"testing"

	"github.com/aouyang1/go-lagfit/models"
	"github.com/goccy/go-json"
	"github.com/sbinet/npyio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func sampleResults() *Results {
	return &Results{
		Options: &Options{
			NormalizationFactor: 10000,
			LearningRate:        0.08,
			Trials:              2,
			InitialThetaCount:   3,
			InitialThetaScale:   0.01,
		},
		Theta:       []float64{0.1, 0.2, 0.3},
		TrainError:  []float64{0.5, 0.25},
		TestError:   []float64{0.6, 0.125},
		TrainScores: &models.Scores{MSE: 0.25, MAPE: 0.1, R2: 0.9},
	}
}

func TestResultsReport(t *testing.T) {
	testData := map[string]struct {
		res      *Results
		expected string
		err      error
	}{
		"nil results": {
			err: ErrNoResults,
		},
		"empty history": {
			res: &Results{},
			err: ErrNoResults,
		},
		"missing test history": {
			res: &Results{TrainError: []float64{1}},
			err: ErrNoResults,
		},
		"sample": {
			res:      sampleResults(),
			expected: "Final training error: 0.250000 - Final testing error: 0.125000\n",
		},
		"rounds to six digits": {
			res: &Results{
				TrainError: []float64{0.010137794385901282},
				TestError:  []float64{0.007198251241544762},
			},
			expected: "Final training error: 0.010138 - Final testing error: 0.007198\n",
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := td.res.Report(&buf)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				assert.Empty(t, buf.String())
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, buf.String())
		})
	}
}

func TestResultsTablePrint(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, sampleResults().TablePrint(&buf, "", "  "))

	expected := `Results:
  Trials: 2    Learning Rate: 0.080    Normalization: 10000.0
  Final Training Error: 0.250000    Final Testing Error: 0.125000
Scores:
  Training MAPE: 0.100    MSE: 0.250    R2: 0.900
Weights:
   Weight  Label    Value
   theta0 x[i+1] 0.100000
   theta1   x[i] 0.200000
   theta2   bias 0.300000
`
	assert.Equal(t, expected, buf.String())

	buf.Reset()
	assert.ErrorIs(t, (&Results{}).TablePrint(&buf, "", "  "), ErrNoResults)
}

func TestResultsWriteJSON(t *testing.T) {
	res := sampleResults()

	var buf bytes.Buffer
	require.Nil(t, res.WriteJSON(&buf))
	assert.Contains(t, buf.String(), `"training_error"`)
	assert.Contains(t, buf.String(), `"learning_rate": 0.08`)
	assert.NotContains(t, buf.String(), `"initial_theta"`)
	assert.NotContains(t, buf.String(), `"testing_scores"`)

	var decoded Results
	require.Nil(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, res, &decoded)

	var nilRes *Results
	assert.ErrorIs(t, nilRes.WriteJSON(&buf), ErrNoResults)
}

func TestResultsLearningCurve(t *testing.T) {
	curve, err := sampleResults().LearningCurve()
	require.Nil(t, err)

	r, c := curve.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, []float64{0.5, 0.25}, mat.Col(nil, 0, curve))
	assert.Equal(t, []float64{0.6, 0.125}, mat.Col(nil, 1, curve))

	_, err = (&Results{TrainError: []float64{1, 2}, TestError: []float64{1}}).LearningCurve()
	assert.ErrorIs(t, err, ErrHistoryLenMismatch)

	_, err = (&Results{}).LearningCurve()
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestResultsWriteLearningCurve(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, sampleResults().WriteLearningCurve(&buf))

	rd, err := npyio.NewReader(&buf)
	require.Nil(t, err)
	assert.Equal(t, []int{2, 2}, rd.Header.Descr.Shape)

	var curve mat.Dense
	require.Nil(t, rd.Read(&curve))
	assert.Equal(t, []float64{0.5, 0.25}, mat.Col(nil, 0, &curve))
	assert.Equal(t, []float64{0.6, 0.125}, mat.Col(nil, 1, &curve))
}
