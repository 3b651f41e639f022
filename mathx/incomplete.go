// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// BetaInc returns the value of the regularized incomplete beta
// function Iₓ(a, b). This is the CDF of the beta distribution with
// parameters a and b evaluated at x.
func BetaInc(x, a, b float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	return mathext.RegIncBeta(a, b, x)
}

// BetaIncInv returns x such that BetaInc(x, a, b) == p for p in [0, 1].
func BetaIncInv(p, a, b float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	}
	return mathext.InvRegIncBeta(a, b, p)
}

// GammaIncP returns the regularized lower incomplete gamma function
// P(a, x). This is the CDF of the gamma distribution with shape a and
// rate 1 evaluated at x.
func GammaIncP(a, x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathext.GammaIncReg(a, x)
}

// GammaIncPInv returns x such that GammaIncP(a, x) == p for p in [0, 1).
func GammaIncPInv(a, p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return math.Inf(1)
	}
	return mathext.GammaIncRegInv(a, p)
}

// LogBeta returns ln(B(a, b)) for a, b > 0.
func LogBeta(a, b float64) float64 {
	la, _ := math.Lgamma(a)
	lb, _ := math.Lgamma(b)
	lab, _ := math.Lgamma(a + b)
	return la + lb - lab
}

// NormalQuantile returns the quantile of the standard normal
// distribution, Φ⁻¹(p), for p in (0, 1).
func NormalQuantile(p float64) float64 {
	switch {
	case p <= 0:
		return math.Inf(-1)
	case p >= 1:
		return math.Inf(1)
	}
	return mathext.NormalQuantile(p)
}
