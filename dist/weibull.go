// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// WeibullDist is a Weibull distribution with shape parameter K and
// scale parameter Lambda.
type WeibullDist struct {
	k, lambda float64
}

// NewWeibullDist returns the Weibull distribution with shape k and
// scale lambda. Both must be positive.
func NewWeibullDist(k, lambda float64) (*WeibullDist, error) {
	d := &WeibullDist{}
	if err := d.SetK(k); err != nil {
		return nil, err
	}
	if err := d.SetLambda(lambda); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *WeibullDist) K() float64      { return d.k }
func (d *WeibullDist) Lambda() float64 { return d.lambda }

func (d *WeibullDist) SetK(k float64) error {
	if err := checkPositive("k", k); err != nil {
		return err
	}
	d.k = k
	return nil
}

func (d *WeibullDist) SetLambda(lambda float64) error {
	if err := checkPositive("lambda", lambda); err != nil {
		return err
	}
	d.lambda = lambda
	return nil
}

// Clone returns an independent copy of d.
func (d *WeibullDist) Clone() *WeibullDist {
	c := *d
	return &c
}

func (d *WeibullDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x == 0 {
		switch {
		case d.k < 1:
			return inf
		case d.k == 1:
			return 1 / d.lambda
		default:
			return 0
		}
	}
	z := x / d.lambda
	return d.k / d.lambda * math.Pow(z, d.k-1) * math.Exp(-math.Pow(z, d.k))
}

func (d *WeibullDist) LogPDF(x float64) float64 {
	return logOf(d.PDF(x))
}

func (d *WeibullDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-math.Pow(x/d.lambda, d.k))
}

func (d *WeibullDist) InvCDF(p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return inf
	}
	return d.lambda * math.Pow(-math.Log1p(-p), 1/d.k)
}

func (d *WeibullDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(1 - 1e-6)
}

func (d *WeibullDist) Mean() float64 {
	return d.lambda * math.Gamma(1+1/d.k)
}

func (d *WeibullDist) Variance() float64 {
	g1 := math.Gamma(1 + 1/d.k)
	g2 := math.Gamma(1 + 2/d.k)
	return d.lambda * d.lambda * (g2 - g1*g1)
}

func (d *WeibullDist) Rand(rnd *rand.Rand) float64 {
	return d.lambda * math.Pow(rnd.ExpFloat64(), 1/d.k)
}

// ToVector returns [k, lambda].
func (d *WeibullDist) ToVector() []float64 {
	return []float64{d.k, d.lambda}
}

func (d *WeibullDist) FromVector(v []float64) error {
	if err := checkVectorLen(v, 2); err != nil {
		return err
	}
	if err := checkPositive("k", v[0]); err != nil {
		return err
	}
	if err := checkPositive("lambda", v[1]); err != nil {
		return err
	}
	d.k, d.lambda = v[0], v[1]
	return nil
}
