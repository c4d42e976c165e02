package ink

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingular is returned by SolveLinear when the system has no unique solution.
var ErrSingular = errors.New("ink: matrix is singular")

// SolveLinear solves the n×n linear system given as an augmented n×(n+1)
// matrix [A | b] using Gaussian elimination with partial pivoting.
// The input is not modified.
//
// It returns ErrSingular if a pivot column is exactly zero, and an error
// for malformed input.
func SolveLinear(augmented [][]float64) ([]float64, error) {
	n := len(augmented)
	if n == 0 {
		return nil, errors.New("ink: empty linear system")
	}
	m := make([][]float64, n)
	for i, row := range augmented {
		if len(row) != n+1 {
			return nil, fmt.Errorf("ink: row %d has %d columns, want %d", i, len(row), n+1)
		}
		m[i] = append([]float64(nil), row...)
	}

	// Forward elimination
	for c := 0; c < n; c++ {
		pivot := maxAbsRow(m, c)
		if m[pivot][c] == 0 {
			return nil, ErrSingular
		}
		m[c], m[pivot] = m[pivot], m[c]
		for r := c + 1; r < n; r++ {
			f := m[r][c] / m[c][c]
			if f == 0 {
				continue
			}
			for k := c; k <= n; k++ {
				m[r][k] -= f * m[c][k]
			}
		}
	}

	// Back substitution
	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		sum := m[r][n]
		for k := r + 1; k < n; k++ {
			sum -= m[r][k] * x[k]
		}
		x[r] = sum / m[r][r]
		if !isFinite(x[r]) {
			return nil, ErrSingular
		}
	}
	return x, nil
}

// maxAbsRow returns the row index at or below c holding the largest
// magnitude in column c.
func maxAbsRow(m [][]float64, c int) int {
	best := c
	for r := c + 1; r < len(m); r++ {
		if math.Abs(m[r][c]) > math.Abs(m[best][c]) {
			best = r
		}
	}
	return best
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
