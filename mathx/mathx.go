// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx provides the combinatorial and special-function helpers shared
// by the distribution catalog.
package mathx // import "github.com/probkit/probdist/mathx"

import "math"

// LogFactorial returns ln(n!). n must be non-negative.
func LogFactorial(n int) float64 {
	if n < 0 {
		return math.NaN()
	}
	res, _ := math.Lgamma(float64(n) + 1)
	return res
}

// LogChoose returns ln(n choose k), or -Inf if k is outside [0, n].
func LogChoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	return LogFactorial(n) - LogFactorial(k) - LogFactorial(n-k)
}

// Choose returns the binomial coefficient (n choose k), computed in
// log space so it does not overflow until the result itself does.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	return math.Exp(LogChoose(n, k))
}

// LogSumExp returns ln(sum(exp(xs[i]))) without overflowing for
// large-magnitude xs. It returns -Inf for an empty slice.
func LogSumExp(xs []float64) float64 {
	max := math.Inf(-1)
	for _, x := range xs {
		if x > max {
			max = x
		}
	}
	if math.IsInf(max, 0) {
		// All -Inf (empty sum) or a +Inf term dominates.
		return max
	}
	var sum float64
	for _, x := range xs {
		sum += math.Exp(x - max)
	}
	return max + math.Log(sum)
}
