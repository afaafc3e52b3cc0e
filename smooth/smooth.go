package smooth

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// Divisor maps a row count to a window length: win = rows / Divisor.
const Divisor = 50

// WindowSize returns the averaging window for a table with the given number
// of rows.
func WindowSize(rows int) int {
	if rows <= 0 {
		return 0
	}
	return rows / Divisor
}

// ForwardMean replaces each row i in [0, rows-win) of m with the column-wise
// mean of rows i..i+win-1, in place. Rows rows-win..rows-1 are not modified.
// A window <= 0 leaves m unchanged.
//
// Window i never reaches back past row i, so every mean is taken over
// original values even though m is updated while the pass runs.
func ForwardMean(m *mat.Dense, win int) {
	rows, cols := m.Dims()
	if win <= 0 || cols == 0 || win > rows {
		return
	}

	acc := make([]float64, cols)
	scale := 1 / float64(win)

	for i := 0; i < rows-win; i++ {
		clear(acc)
		for k := i; k < i+win; k++ {
			vecmath.AddBlockInPlace(acc, m.RawRowView(k))
		}
		vecmath.ScaleBlockInPlace(acc, scale)
		copy(m.RawRowView(i), acc)
	}
}

// Apply smooths m with the window derived from its row count and returns the
// window that was used.
func Apply(m *mat.Dense) int {
	rows, _ := m.Dims()
	win := WindowSize(rows)
	ForwardMean(m, win)
	return win
}
