// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// ExponentialDist is an exponential distribution with rate parameter
// Rate.
type ExponentialDist struct {
	rate float64
}

// NewExponentialDist returns the exponential distribution with the
// given rate. rate must be positive.
func NewExponentialDist(rate float64) (*ExponentialDist, error) {
	d := &ExponentialDist{}
	if err := d.SetRate(rate); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *ExponentialDist) Rate() float64 { return d.rate }

func (d *ExponentialDist) SetRate(rate float64) error {
	if err := checkPositive("rate", rate); err != nil {
		return err
	}
	d.rate = rate
	return nil
}

// Clone returns an independent copy of d.
func (d *ExponentialDist) Clone() *ExponentialDist {
	c := *d
	return &c
}

func (d *ExponentialDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.rate * math.Exp(-d.rate*x)
}

func (d *ExponentialDist) LogPDF(x float64) float64 {
	if x < 0 {
		return math.Inf(-1)
	}
	return math.Log(d.rate) - d.rate*x
}

func (d *ExponentialDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-d.rate * x)
}

func (d *ExponentialDist) InvCDF(p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return inf
	}
	return -math.Log1p(-p) / d.rate
}

func (d *ExponentialDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(1 - 1e-6)
}

func (d *ExponentialDist) Mean() float64     { return 1 / d.rate }
func (d *ExponentialDist) Variance() float64 { return 1 / (d.rate * d.rate) }

func (d *ExponentialDist) Rand(rnd *rand.Rand) float64 {
	return rnd.ExpFloat64() / d.rate
}

// ToVector returns [rate].
func (d *ExponentialDist) ToVector() []float64 {
	return []float64{d.rate}
}

func (d *ExponentialDist) FromVector(v []float64) error {
	if err := checkVectorLen(v, 1); err != nil {
		return err
	}
	if err := checkPositive("rate", v[0]); err != nil {
		return err
	}
	d.rate = v[0]
	return nil
}
