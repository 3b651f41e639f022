// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/probkit/probdist/mathx"
)

// BetaDist is a beta distribution on [0, 1] with shape parameters
// Alpha and Beta.
type BetaDist struct {
	alpha, beta float64
}

// NewBetaDist returns the beta distribution with shape parameters
// alpha and beta. Both must be positive.
func NewBetaDist(alpha, beta float64) (*BetaDist, error) {
	d := &BetaDist{}
	if err := d.SetAlpha(alpha); err != nil {
		return nil, err
	}
	if err := d.SetBeta(beta); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *BetaDist) Alpha() float64 { return d.alpha }
func (d *BetaDist) Beta() float64  { return d.beta }

func (d *BetaDist) SetAlpha(alpha float64) error {
	if err := checkPositive("alpha", alpha); err != nil {
		return err
	}
	d.alpha = alpha
	return nil
}

func (d *BetaDist) SetBeta(beta float64) error {
	if err := checkPositive("beta", beta); err != nil {
		return err
	}
	d.beta = beta
	return nil
}

// Clone returns an independent copy of d.
func (d *BetaDist) Clone() *BetaDist {
	c := *d
	return &c
}

func (d *BetaDist) PDF(x float64) float64 {
	return math.Exp(d.LogPDF(x))
}

func (d *BetaDist) LogPDF(x float64) float64 {
	if x < 0 || x > 1 {
		return math.Inf(-1)
	}
	// The boundary terms 0*log(0) are indeterminate; resolve them
	// by the limit of the density.
	if x == 0 {
		switch {
		case d.alpha < 1:
			return math.Inf(1)
		case d.alpha == 1:
			return math.Log(d.beta)
		default:
			return math.Inf(-1)
		}
	}
	if x == 1 {
		switch {
		case d.beta < 1:
			return math.Inf(1)
		case d.beta == 1:
			return math.Log(d.alpha)
		default:
			return math.Inf(-1)
		}
	}
	return (d.alpha-1)*math.Log(x) + (d.beta-1)*math.Log(1-x) - mathx.LogBeta(d.alpha, d.beta)
}

func (d *BetaDist) CDF(x float64) float64 {
	return mathx.BetaInc(x, d.alpha, d.beta)
}

func (d *BetaDist) InvCDF(p float64) float64 {
	return mathx.BetaIncInv(p, d.alpha, d.beta)
}

func (d *BetaDist) Bounds() (float64, float64) {
	return 0, 1
}

func (d *BetaDist) Mean() float64 {
	return d.alpha / (d.alpha + d.beta)
}

func (d *BetaDist) Variance() float64 {
	s := d.alpha + d.beta
	return d.alpha * d.beta / (s * s * (s + 1))
}

// Rand draws a variate as X/(X+Y) for independent gamma draws X and Y
// with shapes Alpha and Beta.
func (d *BetaDist) Rand(rnd *rand.Rand) float64 {
	x := gammaRand(rnd, d.alpha, 1)
	y := gammaRand(rnd, d.beta, 1)
	return x / (x + y)
}

// ToVector returns [alpha, beta].
func (d *BetaDist) ToVector() []float64 {
	return []float64{d.alpha, d.beta}
}

func (d *BetaDist) FromVector(v []float64) error {
	if err := checkVectorLen(v, 2); err != nil {
		return err
	}
	if err := checkPositive("alpha", v[0]); err != nil {
		return err
	}
	if err := checkPositive("beta", v[1]); err != nil {
		return err
	}
	d.alpha, d.beta = v[0], v[1]
	return nil
}
