// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/probkit/probdist/mathx"
)

// TDist is a Student's t-distribution with V degrees of freedom.
type TDist struct {
	v float64
}

// NewTDist returns the Student's t-distribution with v degrees of
// freedom. v must be positive.
func NewTDist(v float64) (*TDist, error) {
	d := &TDist{}
	if err := d.SetV(v); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *TDist) V() float64 { return d.v }

func (d *TDist) SetV(v float64) error {
	if err := checkPositive("v", v); err != nil {
		return err
	}
	d.v = v
	return nil
}

// Clone returns an independent copy of d.
func (d *TDist) Clone() *TDist {
	c := *d
	return &c
}

func (d *TDist) PDF(x float64) float64 {
	return math.Exp(d.LogPDF(x))
}

func (d *TDist) LogPDF(x float64) float64 {
	lg1, _ := math.Lgamma((d.v + 1) / 2)
	lg2, _ := math.Lgamma(d.v / 2)
	return lg1 - lg2 - math.Log(d.v*math.Pi)/2 -
		(d.v+1)/2*math.Log1p(x*x/d.v)
}

func (d *TDist) CDF(x float64) float64 {
	if x == 0 {
		return 0.5
	}
	ib := mathx.BetaInc(d.v/(d.v+x*x), d.v/2, 0.5)
	if x > 0 {
		return 1 - ib/2
	}
	return ib / 2
}

func (d *TDist) InvCDF(p float64) float64 {
	switch {
	case p <= 0:
		return math.Inf(-1)
	case p >= 1:
		return inf
	case p == 0.5:
		return 0
	}
	// Invert the incomplete-beta form of the CDF for the upper
	// tail and reflect for the lower.
	q := p
	if q > 0.5 {
		q = 1 - q
	}
	w := mathx.BetaIncInv(2*q, d.v/2, 0.5)
	x := math.Sqrt(d.v * (1 - w) / w)
	if p < 0.5 {
		return -x
	}
	return x
}

func (d *TDist) Bounds() (float64, float64) {
	// The t density has nearly all its weight within a few units
	// for moderate V; widen for heavy-tailed small V.
	if d.v >= 3 {
		return -4, 4
	}
	return d.InvCDF(1e-3), d.InvCDF(1 - 1e-3)
}

// Mean returns 0 for V > 1 and NaN otherwise; the mean of a
// t-distribution with V <= 1 is undefined.
func (d *TDist) Mean() float64 {
	if d.v <= 1 {
		return nan
	}
	return 0
}

// Variance returns V/(V-2) for V > 2, +Inf for 1 < V <= 2, and NaN
// for V <= 1, where it is undefined.
func (d *TDist) Variance() float64 {
	switch {
	case d.v <= 1:
		return nan
	case d.v <= 2:
		return inf
	}
	return d.v / (d.v - 2)
}

// Rand draws a variate as Z/sqrt(X/V) for a standard normal Z and a
// chi-squared X with V degrees of freedom.
func (d *TDist) Rand(rnd *rand.Rand) float64 {
	z := rnd.NormFloat64()
	x := gammaRand(rnd, d.v/2, 0.5)
	return z / math.Sqrt(x/d.v)
}

// ToVector returns [v].
func (d *TDist) ToVector() []float64 {
	return []float64{d.v}
}

func (d *TDist) FromVector(v []float64) error {
	if err := checkVectorLen(v, 1); err != nil {
		return err
	}
	return d.SetV(v[0])
}
