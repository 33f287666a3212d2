// Command lagfit trains the lag-2 gradient descent predictor on the built in training series and
// prints the final training and test error.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aouyang1/go-lagfit"
	"github.com/aouyang1/go-lagfit/models"
)

func run(w io.Writer, rng models.RandSource) error {
	trainer, err := lagfit.New(lagfit.NewDefaultOptions(), rng)
	if err != nil {
		return fmt.Errorf("unable to create trainer, %w", err)
	}
	res, err := trainer.Fit(lagfit.DefaultTrainingSeries(), lagfit.DefaultTestSeries())
	if err != nil {
		return fmt.Errorf("unable to fit, %w", err)
	}
	return res.Report(w)
}

func main() {
	if err := run(os.Stdout, lagfit.NewTimeSeededRand()); err != nil {
		slog.Error("lagfit failed", "error", err.Error())
		os.Exit(1)
	}
}
