package testutil

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// Ramp returns n rows of cols columns where row i, column j holds i*(j+1).
// Column 0 is therefore the row index.
func Ramp(n, cols int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		row := make([]float64, cols)
		for j := range row {
			row[j] = float64(i * (j + 1))
		}
		rows[i] = row
	}
	return rows
}

// EnergyCurve returns n rows shaped like an energy/volume scan: column 0 is a
// volume sweep starting at v0, column 1 a parabola with deterministic noise.
func EnergyCurve(seed int64, n int, v0, noise float64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		v := v0 + 0.1*float64(i)
		d := v - v0 - 0.05*float64(n)
		e := -3.4 + 0.002*d*d + (rng.Float64()*2-1)*noise
		rows[i] = []float64{v, e}
	}
	return rows
}

// Clone deep-copies rows.
func Clone(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = append([]float64(nil), r...)
	}
	return out
}

// FormatRows renders rows the way the simulation tools write them: each field
// as "%.6f " followed by a newline.
func FormatRows(rows [][]float64) string {
	var b strings.Builder
	for _, r := range rows {
		for _, v := range r {
			b.WriteString(strconv.FormatFloat(v, 'f', 6, 64))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteDat writes content to dir/<basename>.dat and returns the path.
func WriteDat(t *testing.T, dir, basename, content string) string {
	t.Helper()
	path := filepath.Join(dir, basename+".dat")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// Finite reports whether every value is neither NaN nor Inf.
func Finite(data []float64) bool {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
