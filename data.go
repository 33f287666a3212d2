package lagfit

var (
	trainingSeries = []float64{25733, 25971, 26458, 26430, 24874, 25413, 25538, 24527, 22878, 23996, 24579, 25426}
	testSeries     = []float64{25916, 25703, 25928, 26143, 26592, 25325, 24815, 26004, 26599, 27219, 27198, 26287}
)

// DefaultTrainingSeries returns a copy of the series the lagfit command trains on
func DefaultTrainingSeries() []float64 {
	return append([]float64(nil), trainingSeries...)
}

// DefaultTestSeries returns a copy of the held out series the lagfit command reports on
func DefaultTestSeries() []float64 {
	return append([]float64(nil), testSeries...)
}
