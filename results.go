package lagfit

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/aouyang1/go-lagfit/models"
	"github.com/goccy/go-json"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoResults          = errors.New("no results recorded")
	ErrHistoryLenMismatch = errors.New("training and test error histories have different lengths")
)

// weightLabels names each weight by the term it multiplies
var weightLabels = [models.NumParams]string{"x[i+1]", "x[i]", "bias"}

// Results holds the trained weights and the per trial error history of a fit. Index k of each
// history is the empirical risk after the k-th update.
type Results struct {
	Options     *Options       `json:"options"`
	Theta       []float64      `json:"theta"`
	TrainError  []float64      `json:"training_error"`
	TestError   []float64      `json:"testing_error"`
	TrainScores *models.Scores `json:"training_scores,omitempty"`
	TestScores  *models.Scores `json:"testing_scores,omitempty"`
}

// FinalTrainError returns the training error after the last trial
func (r *Results) FinalTrainError() (float64, error) {
	if r == nil || len(r.TrainError) == 0 {
		return 0, ErrNoResults
	}
	return r.TrainError[len(r.TrainError)-1], nil
}

// FinalTestError returns the test error after the last trial
func (r *Results) FinalTestError() (float64, error) {
	if r == nil || len(r.TestError) == 0 {
		return 0, ErrNoResults
	}
	return r.TestError[len(r.TestError)-1], nil
}

// Report writes the single summary line of a fit
func (r *Results) Report(w io.Writer) error {
	trainErr, err := r.FinalTrainError()
	if err != nil {
		return err
	}
	testErr, err := r.FinalTestError()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Final training error: %.6f - Final testing error: %.6f\n", trainErr, testErr)
	return err
}

func indentExpand(indent string, growth int) string {
	return strings.Repeat(indent, growth)
}

// TablePrint writes a human readable breakdown of the configuration, scores and weights
func (r *Results) TablePrint(w io.Writer, prefix, indent string) error {
	trainErr, err := r.FinalTrainError()
	if err != nil {
		return err
	}
	testErr, err := r.FinalTestError()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%sResults:\n", prefix); err != nil {
		return err
	}
	if r.Options != nil {
		if _, err := fmt.Fprintf(w, "%s%sTrials: %d    Learning Rate: %.3f    Normalization: %.1f\n",
			prefix, indentExpand(indent, 1),
			r.Options.Trials, r.Options.LearningRate, r.Options.NormalizationFactor); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s%sFinal Training Error: %.6f    Final Testing Error: %.6f\n",
		prefix, indentExpand(indent, 1), trainErr, testErr); err != nil {
		return err
	}

	if r.TrainScores != nil || r.TestScores != nil {
		if _, err := fmt.Fprintf(w, "%sScores:\n", prefix); err != nil {
			return err
		}
		for _, s := range []struct {
			name   string
			scores *models.Scores
		}{{"Training", r.TrainScores}, {"Testing", r.TestScores}} {
			if s.scores == nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s%s%s MAPE: %.3f    MSE: %.3f    R2: %.3f\n",
				prefix, indentExpand(indent, 1), s.name,
				s.scores.MAPE, s.scores.MSE, s.scores.R2); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(w, "%sWeights:\n", prefix); err != nil {
		return err
	}
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "%s%sWeight\tLabel\tValue\t\n", prefix, indentExpand(indent, 1)); err != nil {
		return err
	}
	for i, v := range r.Theta {
		label := "..."
		if i < len(weightLabels) {
			label = weightLabels[i]
		}
		if _, err := fmt.Fprintf(tbl, "%s%stheta%d\t%s\t%.6f\t\n",
			prefix, indentExpand(indent, 1), i, label, v); err != nil {
			return err
		}
	}
	return tbl.Flush()
}

// WriteJSON encodes the results, including the full error history, as indented json
func (r *Results) WriteJSON(w io.Writer) error {
	if r == nil {
		return ErrNoResults
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// LearningCurve returns a trials x 2 matrix with the training error in the first column and the
// test error in the second.
func (r *Results) LearningCurve() (*mat.Dense, error) {
	if r == nil || len(r.TrainError) == 0 {
		return nil, ErrNoResults
	}
	if len(r.TrainError) != len(r.TestError) {
		return nil, fmt.Errorf("got %d training and %d test values, %w",
			len(r.TrainError), len(r.TestError), ErrHistoryLenMismatch)
	}
	curve := mat.NewDense(len(r.TrainError), 2, nil)
	curve.SetCol(0, r.TrainError)
	curve.SetCol(1, r.TestError)
	return curve, nil
}

// WriteLearningCurve writes LearningCurve in the numpy .npy format
func (r *Results) WriteLearningCurve(w io.Writer) error {
	curve, err := r.LearningCurve()
	if err != nil {
		return err
	}
	return npyio.Write(w, curve)
}
