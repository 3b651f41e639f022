// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// A Dist is a statistical distribution with closed-form moments.
type Dist interface {
	// Mean returns the expected value of the distribution. It is
	// NaN for distributions whose mean is undefined.
	Mean() float64

	// Variance returns the variance of the distribution. It is
	// NaN for distributions whose variance is undefined.
	Variance() float64
}

// A Continuous is a continuous statistical distribution.
type Continuous interface {
	Dist

	// PDF returns the value of the probability density function
	// of this distribution at x. It is 0 (not an error) outside
	// the support.
	PDF(x float64) float64

	// LogPDF returns ln(PDF(x)). It is -Inf outside the support.
	LogPDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is the integral
	// of the PDF up to x.
	CDF(x float64) float64

	// InvCDF returns the inverse of the CDF for p. That is,
	// InvCDF(CDF(x)) = x for p in (0, 1). For p <= 0 and p >= 1
	// it returns the infimum and supremum of the support, which
	// may be infinite.
	InvCDF(p float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)

	// Rand returns a variate drawn from this distribution using
	// rnd as the source of randomness. The same seeded source
	// yields the same sequence of variates.
	Rand(rnd *rand.Rand) float64
}

// A Discrete is a discrete statistical distribution over a subset of
// the reals. Its support points are Bounds() apart by multiples of
// Step().
type Discrete interface {
	Dist

	// PMF returns the probability mass at k. It is 0 for k
	// outside the support, including fractional k when the
	// support is integral.
	PMF(k float64) float64

	// LogPMF returns ln(PMF(k)). It is -Inf outside the support.
	LogPMF(k float64) float64

	// CDF returns the probability of drawing a value less than or
	// equal to k.
	CDF(k float64) float64

	// InvCDF returns the smallest support point k such that
	// CDF(k) >= p. For p <= 0 it returns the smallest support
	// point; for p >= 1 the largest (which may be +Inf).
	InvCDF(p float64) float64

	// Bounds returns bounds on the support. For countably
	// infinite distributions the upper bound is chosen so the
	// weight beyond it is negligible.
	Bounds() (float64, float64)

	// Step returns the spacing of support points.
	Step() float64

	// Rand returns a variate drawn from this distribution using
	// rnd as the source of randomness.
	Rand(rnd *rand.Rand) float64
}

// A Rander draws variates from an injected random source.
type Rander interface {
	Rand(rnd *rand.Rand) float64
}

// Sample returns n independent variates drawn from d using rnd.
func Sample(d Rander, rnd *rand.Rand, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = d.Rand(rnd)
	}
	return xs
}

// Each returns f(xs[i]) for each i.
func Each(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}

// invCDFScan is the generic discrete quantile: the smallest support
// point k with CDF(k) >= p. Termination is bounded by the upper bound
// of d plus slack for CDF round-off near 1.
func invCDFScan(d Discrete, p float64) float64 {
	lo, hi := d.Bounds()
	if p <= 0 {
		return lo
	}
	if p >= 1 {
		return hi
	}
	step := d.Step()
	var sum float64
	for k := lo; ; k += step {
		sum += d.PMF(k)
		if sum >= p || k >= hi {
			return k
		}
	}
}

func logOf(p float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}
	return math.Log(p)
}

// isInt reports whether k is an exact integer.
func isInt(k float64) bool {
	return k == math.Trunc(k)
}
