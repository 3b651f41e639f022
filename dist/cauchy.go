// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// CauchyDist is a Cauchy (Lorentz) distribution with location X0 and
// scale Gamma. Its mean and variance are undefined.
type CauchyDist struct {
	x0, gamma float64
}

// NewCauchyDist returns the Cauchy distribution with location x0 and
// scale gamma. gamma must be positive.
func NewCauchyDist(x0, gamma float64) (*CauchyDist, error) {
	d := &CauchyDist{}
	if err := d.SetX0(x0); err != nil {
		return nil, err
	}
	if err := d.SetGamma(gamma); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *CauchyDist) X0() float64    { return d.x0 }
func (d *CauchyDist) Gamma() float64 { return d.gamma }

func (d *CauchyDist) SetX0(x0 float64) error {
	if err := checkFinite("x0", x0); err != nil {
		return err
	}
	d.x0 = x0
	return nil
}

func (d *CauchyDist) SetGamma(gamma float64) error {
	if err := checkPositive("gamma", gamma); err != nil {
		return err
	}
	d.gamma = gamma
	return nil
}

// Clone returns an independent copy of d.
func (d *CauchyDist) Clone() *CauchyDist {
	c := *d
	return &c
}

func (d *CauchyDist) PDF(x float64) float64 {
	z := (x - d.x0) / d.gamma
	return 1 / (math.Pi * d.gamma * (1 + z*z))
}

func (d *CauchyDist) LogPDF(x float64) float64 {
	z := (x - d.x0) / d.gamma
	return -math.Log(math.Pi*d.gamma) - math.Log1p(z*z)
}

func (d *CauchyDist) CDF(x float64) float64 {
	return math.Atan((x-d.x0)/d.gamma)/math.Pi + 0.5
}

func (d *CauchyDist) InvCDF(p float64) float64 {
	switch {
	case p <= 0:
		return math.Inf(-1)
	case p >= 1:
		return inf
	}
	return d.x0 + d.gamma*math.Tan(math.Pi*(p-0.5))
}

func (d *CauchyDist) Bounds() (float64, float64) {
	return d.InvCDF(1e-3), d.InvCDF(1 - 1e-3)
}

// Mean returns NaN: the mean of a Cauchy distribution is undefined.
func (d *CauchyDist) Mean() float64 { return nan }

// Variance returns NaN: the variance of a Cauchy distribution is
// undefined.
func (d *CauchyDist) Variance() float64 { return nan }

func (d *CauchyDist) Rand(rnd *rand.Rand) float64 {
	return d.InvCDF(rnd.Float64())
}

// ToVector returns [x0, gamma].
func (d *CauchyDist) ToVector() []float64 {
	return []float64{d.x0, d.gamma}
}

func (d *CauchyDist) FromVector(v []float64) error {
	if err := checkVectorLen(v, 2); err != nil {
		return err
	}
	if err := checkFinite("x0", v[0]); err != nil {
		return err
	}
	if err := checkPositive("gamma", v[1]); err != nil {
		return err
	}
	d.x0, d.gamma = v[0], v[1]
	return nil
}
