// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// DirichletDist is a Dirichlet distribution over the probability
// simplex of dimension K, parameterized by concentration vector
// Alpha.
type DirichletDist struct {
	alpha []float64
	// lnorm is ln(B(alpha)), the log normalization constant.
	lnorm float64
}

// NewDirichletDist returns the Dirichlet distribution with the given
// concentration parameters. alpha must be non-empty with every entry
// positive. The slice is copied.
func NewDirichletDist(alpha []float64) (*DirichletDist, error) {
	d := &DirichletDist{}
	if err := d.SetAlpha(alpha); err != nil {
		return nil, err
	}
	return d, nil
}

// Dim returns the dimension K of the simplex.
func (d *DirichletDist) Dim() int { return len(d.alpha) }

// Alpha returns a copy of the concentration vector.
func (d *DirichletDist) Alpha() []float64 {
	return append([]float64(nil), d.alpha...)
}

// SetAlpha replaces the concentration vector. It copies alpha.
func (d *DirichletDist) SetAlpha(alpha []float64) error {
	if len(alpha) == 0 {
		return invalidf("alpha vector is empty")
	}
	if d.alpha != nil && len(alpha) != len(d.alpha) {
		return invalidf("alpha vector has length %d, want %d", len(alpha), len(d.alpha))
	}
	for i, a := range alpha {
		if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
			return invalidf("alpha %d must be positive, got %v", i, a)
		}
	}
	d.alpha = append(d.alpha[:0:0], alpha...)
	d.lnorm = logBetaFn(d.alpha)
	return nil
}

// logBetaFn returns ln of the multivariate beta function,
// Σ lnΓ(αᵢ) - lnΓ(Σ αᵢ).
func logBetaFn(alpha []float64) float64 {
	var sumLg float64
	for _, a := range alpha {
		lg, _ := math.Lgamma(a)
		sumLg += lg
	}
	lgSum, _ := math.Lgamma(floats.Sum(alpha))
	return sumLg - lgSum
}

// Clone returns an independent copy of d. The concentration vector
// is deep-copied.
func (d *DirichletDist) Clone() *DirichletDist {
	return &DirichletDist{alpha: append([]float64(nil), d.alpha...), lnorm: d.lnorm}
}

// PDF returns the density at the simplex point x. It is 0 for x
// outside the simplex (negative coordinates, wrong dimension, or
// coordinates not summing to 1).
func (d *DirichletDist) PDF(x []float64) float64 {
	return math.Exp(d.LogPDF(x))
}

func (d *DirichletDist) LogPDF(x []float64) float64 {
	if len(x) != len(d.alpha) {
		return math.Inf(-1)
	}
	var sum float64
	for _, xi := range x {
		if xi < 0 {
			return math.Inf(-1)
		}
		sum += xi
	}
	if math.Abs(sum-1) > simplexTol {
		return math.Inf(-1)
	}
	lp := -d.lnorm
	for i, xi := range x {
		if xi == 0 {
			if d.alpha[i] < 1 {
				return math.Inf(1)
			}
			if d.alpha[i] > 1 {
				return math.Inf(-1)
			}
			continue
		}
		lp += (d.alpha[i] - 1) * math.Log(xi)
	}
	return lp
}

// Mean returns the mean simplex point, αᵢ/α₀.
func (d *DirichletDist) Mean() []float64 {
	a0 := floats.Sum(d.alpha)
	mean := make([]float64, len(d.alpha))
	for i, a := range d.alpha {
		mean[i] = a / a0
	}
	return mean
}

// Variance returns the per-coordinate variances.
func (d *DirichletDist) Variance() []float64 {
	a0 := floats.Sum(d.alpha)
	vs := make([]float64, len(d.alpha))
	for i, a := range d.alpha {
		vs[i] = a * (a0 - a) / (a0 * a0 * (a0 + 1))
	}
	return vs
}

// Rand draws a simplex point by normalizing independent gamma
// variates with shapes αᵢ.
func (d *DirichletDist) Rand(rnd *rand.Rand) []float64 {
	x := make([]float64, len(d.alpha))
	var sum float64
	for i, a := range d.alpha {
		x[i] = gammaRand(rnd, a, 1)
		sum += x[i]
	}
	floats.Scale(1/sum, x)
	return x
}

// ToVector returns a copy of the concentration vector.
func (d *DirichletDist) ToVector() []float64 {
	return d.Alpha()
}

// FromVector replaces the concentration vector. The length must
// equal Dim.
func (d *DirichletDist) FromVector(v []float64) error {
	if err := checkVectorLen(v, len(d.alpha)); err != nil {
		return err
	}
	return d.SetAlpha(v)
}
