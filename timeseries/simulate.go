package timeseries

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

// GenerateLagged produces n points that follow y_i+2 = theta[0]*y_i+1 + theta[1]*y_i + theta[2]
// exactly, seeded with x0 and x1.
func GenerateLagged(n int, x0, x1 float64, theta [3]float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		switch i {
		case 0:
			y = append(y, x0)
		case 1:
			y = append(y, x1)
		default:
			y = append(y, theta[0]*y[i-1]+theta[1]*y[i-2]+theta[2])
		}
	}
	return Series(y)
}

func GenerateNoise(rng *rand.Rand, n int, noiseScale float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, rng.NormFloat64()*noiseScale)
	}
	return Series(y)
}
