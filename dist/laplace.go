// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// LaplaceDist is a Laplace (double exponential) distribution with
// location Mu and scale B.
type LaplaceDist struct {
	mu, b float64
}

// NewLaplaceDist returns the Laplace distribution with location mu
// and scale b. b must be positive.
func NewLaplaceDist(mu, b float64) (*LaplaceDist, error) {
	d := &LaplaceDist{}
	if err := d.SetMu(mu); err != nil {
		return nil, err
	}
	if err := d.SetB(b); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *LaplaceDist) Mu() float64 { return d.mu }
func (d *LaplaceDist) B() float64  { return d.b }

func (d *LaplaceDist) SetMu(mu float64) error {
	if err := checkFinite("mu", mu); err != nil {
		return err
	}
	d.mu = mu
	return nil
}

func (d *LaplaceDist) SetB(b float64) error {
	if err := checkPositive("b", b); err != nil {
		return err
	}
	d.b = b
	return nil
}

// Clone returns an independent copy of d.
func (d *LaplaceDist) Clone() *LaplaceDist {
	c := *d
	return &c
}

func (d *LaplaceDist) PDF(x float64) float64 {
	return math.Exp(-math.Abs(x-d.mu)/d.b) / (2 * d.b)
}

func (d *LaplaceDist) LogPDF(x float64) float64 {
	return -math.Abs(x-d.mu)/d.b - math.Log(2*d.b)
}

func (d *LaplaceDist) CDF(x float64) float64 {
	if x < d.mu {
		return math.Exp((x-d.mu)/d.b) / 2
	}
	return 1 - math.Exp((d.mu-x)/d.b)/2
}

func (d *LaplaceDist) InvCDF(p float64) float64 {
	switch {
	case p <= 0:
		return math.Inf(-1)
	case p >= 1:
		return inf
	case p < 0.5:
		return d.mu + d.b*math.Log(2*p)
	}
	return d.mu - d.b*math.Log(2*(1-p))
}

func (d *LaplaceDist) Bounds() (float64, float64) {
	return d.InvCDF(1e-6), d.InvCDF(1 - 1e-6)
}

func (d *LaplaceDist) Mean() float64     { return d.mu }
func (d *LaplaceDist) Variance() float64 { return 2 * d.b * d.b }

func (d *LaplaceDist) Rand(rnd *rand.Rand) float64 {
	return d.InvCDF(rnd.Float64())
}

// ToVector returns [mu, b].
func (d *LaplaceDist) ToVector() []float64 {
	return []float64{d.mu, d.b}
}

func (d *LaplaceDist) FromVector(v []float64) error {
	if err := checkVectorLen(v, 2); err != nil {
		return err
	}
	if err := checkFinite("mu", v[0]); err != nil {
		return err
	}
	if err := checkPositive("b", v[1]); err != nil {
		return err
	}
	d.mu, d.b = v[0], v[1]
	return nil
}
