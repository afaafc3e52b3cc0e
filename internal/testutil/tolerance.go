package testutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireRowsNearlyEqual fails t if m does not match want row by row within eps.
func RequireRowsNearlyEqual(t *testing.T, m mat.Matrix, want [][]float64, eps float64) {
	t.Helper()
	r, c := m.Dims()
	if r != len(want) {
		t.Fatalf("row count: got %d, want %d", r, len(want))
	}
	for i, row := range want {
		if len(row) != c {
			t.Fatalf("row %d: got %d columns, want %d", i, c, len(row))
		}
		for j, w := range row {
			g := m.At(i, j)
			if diff := math.Abs(g - w); diff > eps {
				t.Fatalf("(%d,%d): got %v, want %v (diff %v > eps %v)", i, j, g, w, diff, eps)
			}
		}
	}
}
