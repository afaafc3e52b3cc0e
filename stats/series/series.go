// Package series computes compact per-column summaries of plotted data.
package series

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Summary holds descriptive statistics of one series.
type Summary struct {
	Length   int
	Mean     float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Range    float64 // max - min
	RMS      float64
	Variance float64 // population variance
	NaNs     int     // samples skipped as NaN
}

func emptySummary(nans int) Summary {
	return Summary{
		Mean:     math.NaN(),
		Min:      math.NaN(),
		MinPos:   -1,
		Max:      math.NaN(),
		MaxPos:   -1,
		Range:    math.NaN(),
		RMS:      math.NaN(),
		Variance: math.NaN(),
		NaNs:     nans,
	}
}

// Calculate summarizes x in a single pass using Welford's algorithm for the
// mean and variance. NaN samples are counted and skipped; positions refer to
// indices in x.
func Calculate(x []float64) Summary {
	var (
		n      int
		nans   int
		mean   float64
		m2     float64
		sumSq  float64
		minVal float64
		minPos = -1
		maxVal float64
		maxPos = -1
	)

	for i, v := range x {
		if math.IsNaN(v) {
			nans++
			continue
		}

		n++
		delta := v - mean
		mean += delta / float64(n)
		m2 += delta * (v - mean)
		sumSq += v * v

		if maxPos < 0 || v > maxVal {
			maxVal = v
			maxPos = i
		}
		if minPos < 0 || v < minVal {
			minVal = v
			minPos = i
		}
	}

	if n == 0 {
		return emptySummary(nans)
	}

	nf := float64(n)
	return Summary{
		Length:   n,
		Mean:     mean,
		Min:      minVal,
		MinPos:   minPos,
		Max:      maxVal,
		MaxPos:   maxPos,
		Range:    maxVal - minVal,
		RMS:      math.Sqrt(sumSq / nf),
		Variance: m2 / nf,
		NaNs:     nans,
	}
}

// Columns summarizes every column of m.
func Columns(m mat.Matrix) []Summary {
	_, cols := m.Dims()
	out := make([]Summary, cols)
	var col []float64
	for j := range out {
		col = mat.Col(col, j, m)
		out[j] = Calculate(col)
	}
	return out
}
