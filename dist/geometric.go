// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// GeometricDist is a geometric distribution: the number of failures
// before the first success in a sequence of Bernoulli trials with
// success probability P. Its support is 0, 1, 2, ….
type GeometricDist struct {
	p float64
}

// NewGeometricDist returns the geometric distribution with success
// probability p in (0, 1].
func NewGeometricDist(p float64) (*GeometricDist, error) {
	d := &GeometricDist{}
	if err := d.SetP(p); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *GeometricDist) P() float64 { return d.p }

func (d *GeometricDist) SetP(p float64) error {
	if math.IsNaN(p) || p <= 0 || p > 1 {
		return invalidf("p must be in (0, 1], got %v", p)
	}
	d.p = p
	return nil
}

// Clone returns an independent copy of d.
func (d *GeometricDist) Clone() *GeometricDist {
	c := *d
	return &c
}

func (d *GeometricDist) PMF(k float64) float64 {
	if !isInt(k) || k < 0 {
		return 0
	}
	return d.p * math.Pow(1-d.p, k)
}

func (d *GeometricDist) LogPMF(k float64) float64 {
	if !isInt(k) || k < 0 {
		return math.Inf(-1)
	}
	return math.Log(d.p) + k*math.Log1p(-d.p)
}

func (d *GeometricDist) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	return -math.Expm1((k + 1) * math.Log1p(-d.p))
}

func (d *GeometricDist) InvCDF(p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		if d.p == 1 {
			return 0
		}
		return inf
	}
	if d.p == 1 {
		return 0
	}
	k := math.Ceil(math.Log1p(-p)/math.Log1p(-d.p)) - 1
	if k < 0 {
		return 0
	}
	return k
}

func (d *GeometricDist) Bounds() (float64, float64) {
	if d.p == 1 {
		return 0, 0
	}
	return 0, d.InvCDF(1 - 1e-9)
}

func (d *GeometricDist) Step() float64 {
	return 1
}

func (d *GeometricDist) Mean() float64 {
	return (1 - d.p) / d.p
}

func (d *GeometricDist) Variance() float64 {
	return (1 - d.p) / (d.p * d.p)
}

// Rand draws a variate by inverting the CDF at a uniform draw.
func (d *GeometricDist) Rand(rnd *rand.Rand) float64 {
	if d.p == 1 {
		return 0
	}
	return math.Floor(math.Log(1-rnd.Float64()) / math.Log1p(-d.p))
}

// ToVector returns [p].
func (d *GeometricDist) ToVector() []float64 {
	return []float64{d.p}
}

func (d *GeometricDist) FromVector(v []float64) error {
	if err := checkVectorLen(v, 1); err != nil {
		return err
	}
	return d.SetP(v[0])
}
