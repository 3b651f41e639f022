// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// bisect returns x in [lo, hi] such that |f(x)| <= tol, given that f
// is monotonically non-decreasing with f(lo) <= 0 <= f(hi). The
// iteration count is capped, so it terminates even on
// discontinuities; the second result reports whether the tolerance
// was reached.
func bisect(f func(float64) float64, lo, hi, tol float64) (float64, bool) {
	const maxIter = 200
	var mid float64
	for i := 0; i < maxIter; i++ {
		mid = (lo + hi) / 2
		y := f(mid)
		switch {
		case math.Abs(y) <= tol:
			return mid, true
		case y < 0:
			lo = mid
		default:
			hi = mid
		}
		if lo == mid || hi == mid {
			// Interval exhausted to float precision.
			break
		}
	}
	return mid, false
}

// series returns the sum of f(0), f(1), … until the terms become
// negligible. The term count is capped.
func series(f func(float64) float64) float64 {
	const (
		maxTerms = 1000
		eps      = 1e-12
	)
	var sum float64
	for n := 0.0; n < maxTerms; n++ {
		term := f(n)
		sum += term
		if math.Abs(term) <= eps*math.Abs(sum) {
			break
		}
	}
	return sum
}
