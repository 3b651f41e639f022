// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/probkit/probdist/dist"
	"github.com/probkit/probdist/mathx"
)

// A KSTestResult is the result of a one-sample Kolmogorov-Smirnov
// goodness-of-fit test.
type KSTestResult struct {
	// N is the sample size.
	N int

	// D is the Kolmogorov-Smirnov statistic: the largest
	// distance between the empirical CDF of the sample and the
	// hypothesized CDF.
	D float64

	// P is the asymptotic p-value: the probability of a D at
	// least this large under the hypothesis that the sample is
	// drawn from the hypothesized distribution.
	P float64
}

// KSTest performs a one-sample Kolmogorov-Smirnov test of whether xs
// is drawn from the continuous distribution with the given CDF. The
// input slice is not modified.
func KSTest(xs []float64, cdf func(float64) float64) (*KSTestResult, error) {
	if len(xs) == 0 {
		return nil, errEmpty()
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	var d float64
	for i, x := range sorted {
		f := cdf(x)
		if above := float64(i+1)/n - f; above > d {
			d = above
		}
		if below := f - float64(i)/n; below > d {
			d = below
		}
	}
	return &KSTestResult{N: len(sorted), D: d, P: ksSurvival((math.Sqrt(n) + 0.12 + 0.11/math.Sqrt(n)) * d)}, nil
}

// ksSurvival is the asymptotic survival function of the Kolmogorov
// distribution,
//
//	Q(t) = 2 Σ_{k>=1} (-1)^(k-1) exp(-2k²t²)
//
// The term count is capped; the series converges extremely fast for
// the t values of interest.
func ksSurvival(t float64) float64 {
	if t <= 0 {
		return 1
	}
	var sum float64
	sign := 1.0
	for k := 1.0; k <= 100; k++ {
		term := sign * math.Exp(-2*k*k*t*t)
		sum += term
		if math.Abs(term) < 1e-12 {
			break
		}
		sign = -sign
	}
	p := 2 * sum
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// A ChiSquareResult is the result of a chi-square goodness-of-fit
// test of observed category counts against hypothesized category
// probabilities.
type ChiSquareResult struct {
	// DoF is the degrees of freedom, one less than the number of
	// categories.
	DoF int

	// X2 is the chi-square statistic, Σ (observed-expected)²/expected.
	X2 float64

	// P is the probability of an X2 at least this large under
	// the hypothesized probabilities.
	P float64
}

// ChiSquareTest tests observed category counts against the
// hypothesized category probabilities. The two slices must have the
// same non-zero length, probs must be a probability simplex with
// every category probability positive, and counts must be
// non-negative with a positive total.
func ChiSquareTest(counts, probs []float64) (*ChiSquareResult, error) {
	if len(counts) == 0 {
		return nil, errEmpty()
	}
	if len(probs) != len(counts) {
		return nil, errors.Wrapf(dist.ErrInvalidParameter, "got %d probabilities for %d categories", len(probs), len(counts))
	}
	var total float64
	for i, c := range counts {
		if math.IsNaN(c) || c < 0 {
			return nil, errors.Wrapf(dist.ErrInvalidParameter, "count %d is %v, must be non-negative", i, c)
		}
		total += c
	}
	if total == 0 {
		return nil, errors.Wrap(dist.ErrInvalidParameter, "all counts are zero")
	}
	var probSum float64
	for i, p := range probs {
		if math.IsNaN(p) || p <= 0 || p > 1 {
			return nil, errors.Wrapf(dist.ErrInvalidParameter, "probability %d is %v, must be in (0, 1]", i, p)
		}
		probSum += p
	}
	if math.Abs(probSum-1) > 1e-9 {
		return nil, errors.Wrapf(dist.ErrInvalidParameter, "probabilities sum to %v, want 1", probSum)
	}

	var x2 float64
	for i, c := range counts {
		expected := probs[i] * total
		diff := c - expected
		x2 += diff * diff / expected
	}
	dof := len(counts) - 1
	// The chi-square distribution with n degrees of freedom is
	// Gamma(n/2, rate 1/2); P is its upper tail.
	p := 1 - mathx.GammaIncP(float64(dof)/2, x2/2)
	return &ChiSquareResult{DoF: dof, X2: x2, P: p}, nil
}
