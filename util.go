package lagfit

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineHistory generates an echart multi-line chart of per trial values. Every slice in y is
// plotted against the trial number starting at 1, the longest slice sets the x axis.
func LineHistory(title string, seriesName []string, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	var trials int
	lineData := make([][]opts.LineData, len(y))
	for i := 0; i < len(y); i++ {
		lineData[i] = make([]opts.LineData, 0, len(y[i]))
		for j := 0; j < len(y[i]); j++ {
			lineData[i] = append(lineData[i], opts.LineData{Value: y[i][j]})
		}
		if len(y[i]) > trials {
			trials = len(y[i])
		}
	}

	x := make([]int, 0, trials)
	for i := 1; i <= trials; i++ {
		x = append(x, i)
	}

	line = line.SetXAxis(x)
	for i, series := range seriesName {
		if i >= len(lineData) {
			break
		}
		line = line.AddSeries(series, lineData[i])
	}
	return line
}

// PlotHistory uses the Apache Echarts library to render an html page of the training and test
// error after every trial
func (r *Results) PlotHistory(w io.Writer) error {
	if r == nil || len(r.TrainError) == 0 {
		return ErrNoResults
	}
	page := components.NewPage()
	page.AddCharts(
		LineHistory(
			"Empirical Risk",
			[]string{"Training", "Testing"},
			[][]float64{r.TrainError, r.TestError},
		),
	)
	return page.Render(w)
}
