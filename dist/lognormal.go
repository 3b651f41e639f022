// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/probkit/probdist/mathx"
)

// LogNormalDist is the distribution of exp(N) for a normal variate N
// with mean Mu and standard deviation Sigma.
type LogNormalDist struct {
	mu, sigma float64
}

// NewLogNormalDist returns the log-normal distribution whose
// logarithm has mean mu and standard deviation sigma. sigma must be
// positive.
func NewLogNormalDist(mu, sigma float64) (*LogNormalDist, error) {
	d := &LogNormalDist{}
	if err := d.SetMu(mu); err != nil {
		return nil, err
	}
	if err := d.SetSigma(sigma); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *LogNormalDist) Mu() float64    { return d.mu }
func (d *LogNormalDist) Sigma() float64 { return d.sigma }

func (d *LogNormalDist) SetMu(mu float64) error {
	if err := checkFinite("mu", mu); err != nil {
		return err
	}
	d.mu = mu
	return nil
}

func (d *LogNormalDist) SetSigma(sigma float64) error {
	if err := checkPositive("sigma", sigma); err != nil {
		return err
	}
	d.sigma = sigma
	return nil
}

// Clone returns an independent copy of d.
func (d *LogNormalDist) Clone() *LogNormalDist {
	c := *d
	return &c
}

func (d *LogNormalDist) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	z := (math.Log(x) - d.mu) / d.sigma
	return math.Exp(-z*z/2) * invSqrt2Pi / (x * d.sigma)
}

func (d *LogNormalDist) LogPDF(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	lx := math.Log(x)
	z := (lx - d.mu) / d.sigma
	return -z*z/2 - lx - math.Log(d.sigma) - logSqrt2Pi
}

func (d *LogNormalDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return (1 + math.Erf((math.Log(x)-d.mu)/(d.sigma*math.Sqrt2))) / 2
}

func (d *LogNormalDist) InvCDF(p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return inf
	}
	return math.Exp(d.mu + d.sigma*mathx.NormalQuantile(p))
}

func (d *LogNormalDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(1 - 1e-6)
}

func (d *LogNormalDist) Mean() float64 {
	return math.Exp(d.mu + d.sigma*d.sigma/2)
}

func (d *LogNormalDist) Variance() float64 {
	s2 := d.sigma * d.sigma
	return math.Expm1(s2) * math.Exp(2*d.mu+s2)
}

func (d *LogNormalDist) Rand(rnd *rand.Rand) float64 {
	return math.Exp(d.mu + d.sigma*rnd.NormFloat64())
}

// ToVector returns [mu, sigma].
func (d *LogNormalDist) ToVector() []float64 {
	return []float64{d.mu, d.sigma}
}

func (d *LogNormalDist) FromVector(v []float64) error {
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
