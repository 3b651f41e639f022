// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/probkit/probdist/mathx"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	mu, sigma float64
}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

const logSqrt2Pi = 0.91893853320467274178032973640561763986139747363778341281715154

// NewNormalDist returns the normal distribution with mean mu and
// standard deviation sigma. sigma must be positive.
func NewNormalDist(mu, sigma float64) (*NormalDist, error) {
	d := &NormalDist{}
	if err := d.SetMu(mu); err != nil {
		return nil, err
	}
	if err := d.SetSigma(sigma); err != nil {
		return nil, err
	}
	return d, nil
}

// StdNormal returns the standard normal distribution (Mu = 0,
// Sigma = 1).
func StdNormal() *NormalDist {
	return &NormalDist{0, 1}
}

func (d *NormalDist) Mu() float64    { return d.mu }
func (d *NormalDist) Sigma() float64 { return d.sigma }

func (d *NormalDist) SetMu(mu float64) error {
	if err := checkFinite("mu", mu); err != nil {
		return err
	}
	d.mu = mu
	return nil
}

func (d *NormalDist) SetSigma(sigma float64) error {
	if err := checkPositive("sigma", sigma); err != nil {
		return err
	}
	d.sigma = sigma
	return nil
}

// Clone returns an independent copy of d.
func (d *NormalDist) Clone() *NormalDist {
	c := *d
	return &c
}

func (d *NormalDist) PDF(x float64) float64 {
	z := (x - d.mu) / d.sigma
	return math.Exp(-z*z/2) * invSqrt2Pi / d.sigma
}

func (d *NormalDist) LogPDF(x float64) float64 {
	z := (x - d.mu) / d.sigma
	return -z*z/2 - math.Log(d.sigma) - logSqrt2Pi
}

func (d *NormalDist) CDF(x float64) float64 {
	return (1 + math.Erf((x-d.mu)/(d.sigma*math.Sqrt2))) / 2
}

func (d *NormalDist) InvCDF(p float64) float64 {
	return d.mu + d.sigma*mathx.NormalQuantile(p)
}

func (d *NormalDist) Bounds() (float64, float64) {
	return d.mu - 4*d.sigma, d.mu + 4*d.sigma
}

func (d *NormalDist) Mean() float64     { return d.mu }
func (d *NormalDist) Variance() float64 { return d.sigma * d.sigma }

func (d *NormalDist) Rand(rnd *rand.Rand) float64 {
	return d.mu + d.sigma*rnd.NormFloat64()
}

// ToVector returns [mu, sigma].
func (d *NormalDist) ToVector() []float64 {
	return []float64{d.mu, d.sigma}
}

func (d *NormalDist) FromVector(v []float64) error {
	if err := checkVectorLen(v, 2); err != nil {
		return err
	}
	if err := checkFinite("mu", v[0]); err != nil {
		return err
	}
	if err := checkPositive("sigma", v[1]); err != nil {
		return err
	}
	d.mu, d.sigma = v[0], v[1]
	return nil
}
