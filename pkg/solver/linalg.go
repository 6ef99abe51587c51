package solver

import "math"

// jacobiEigen computes the eigenvalues and eigenvectors of a small
// symmetric matrix by classical Jacobi rotation: repeatedly zero the largest
// off-diagonal element until all off-diagonal magnitude falls below tol
// or maxIter rotations have been applied. Operates on plain [][]float64
// (2x2 and 3x3 only); see DESIGN.md for why this isn't built on a shared
// matrix library.
func jacobiEigen(a [][]float64, tol float64, maxIter int) (eigenvalues []float64, eigenvectors [][]float64) {
	n := len(a)
	m := make([][]float64, n)
	for i := range a {
		m[i] = append([]float64(nil), a[i]...)
	}
	q := identity(n)

	for iter := 0; iter < maxIter; iter++ {
		p, qIdx, maxOff := 0, 1, 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := math.Abs(m[i][j]); off > maxOff {
					maxOff, p, qIdx = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		theta := (m[qIdx][qIdx] - m[p][p]) / (2 * m[p][qIdx])
		t := sign(theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
		if theta == 0 {
			t = 1
		}
		c := 1 / math.Sqrt(t*t+1)
		s := t * c

		mpp, mqq, mpq := m[p][p], m[qIdx][qIdx], m[p][qIdx]
		m[p][p] = c*c*mpp - 2*s*c*mpq + s*s*mqq
		m[qIdx][qIdx] = s*s*mpp + 2*s*c*mpq + c*c*mqq
		m[p][qIdx] = 0
		m[qIdx][p] = 0
		for i := 0; i < n; i++ {
			if i == p || i == qIdx {
				continue
			}
			mip, miq := m[i][p], m[i][qIdx]
			m[i][p] = c*mip - s*miq
			m[p][i] = m[i][p]
			m[i][qIdx] = s*mip + c*miq
			m[qIdx][i] = m[i][qIdx]
		}
		for i := 0; i < n; i++ {
			qip, qiq := q[i][p], q[i][qIdx]
			q[i][p] = c*qip - s*qiq
			q[i][qIdx] = s*qip + c*qiq
		}
	}

	eigenvalues = make([]float64, n)
	for i := 0; i < n; i++ {
		eigenvalues[i] = m[i][i]
	}
	return eigenvalues, q
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

func identity(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}
	return m
}

// pseudoInverseSolve solves the symmetric linear system a*x = b using a
// tolerance-truncated eigendecomposition pseudo-inverse: pinv(a) = Q *
// diag(1/lambda_i if |lambda_i| > tol else 0) * Q^T. Returns ok=false if
// any resulting component is non-finite.
func pseudoInverseSolve(a [][]float64, b []float64, tol float64) (x []float64, ok bool) {
	n := len(a)
	eigenvalues, q := jacobiEigen(a, 1e-12, 100)

	// y = Q^T b
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for k := 0; k < n; k++ {
			sum += q[k][i] * b[k]
		}
		y[i] = sum
	}

	// z_i = y_i / lambda_i (or 0 if lambda_i negligible)
	for i := 0; i < n; i++ {
		if math.Abs(eigenvalues[i]) > tol {
			y[i] /= eigenvalues[i]
		} else {
			y[i] = 0
		}
	}

	// x = Q z
	x = make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for k := 0; k < n; k++ {
			sum += q[i][k] * y[k]
		}
		x[i] = sum
	}

	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
	}
	return x, true
}
