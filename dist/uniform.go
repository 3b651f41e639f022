// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// UniformDist is a continuous uniform distribution on [Min, Max].
type UniformDist struct {
	min, max float64
}

// NewUniformDist returns the uniform distribution on [min, max].
// min must be strictly less than max.
func NewUniformDist(min, max float64) (*UniformDist, error) {
	if err := checkFinite("min", min); err != nil {
		return nil, err
	}
	if err := checkFinite("max", max); err != nil {
		return nil, err
	}
	if min >= max {
		return nil, invalidf("min %v must be less than max %v", min, max)
	}
	return &UniformDist{min, max}, nil
}

func (d *UniformDist) Min() float64 { return d.min }
func (d *UniformDist) Max() float64 { return d.max }

// SetBounds replaces both interval endpoints. min must be strictly
// less than max. The endpoints are set together because each is only
// valid relative to the other.
func (d *UniformDist) SetBounds(min, max float64) error {
	nd, err := NewUniformDist(min, max)
	if err != nil {
		return err
	}
	*d = *nd
	return nil
}

// Clone returns an independent copy of d.
func (d *UniformDist) Clone() *UniformDist {
	c := *d
	return &c
}

func (d *UniformDist) PDF(x float64) float64 {
	if x < d.min || x > d.max {
		return 0
	}
	return 1 / (d.max - d.min)
}

func (d *UniformDist) LogPDF(x float64) float64 {
	if x < d.min || x > d.max {
		return math.Inf(-1)
	}
	return -math.Log(d.max - d.min)
}

func (d *UniformDist) CDF(x float64) float64 {
	switch {
	case x <= d.min:
		return 0
	case x >= d.max:
		return 1
	}
	return (x - d.min) / (d.max - d.min)
}

func (d *UniformDist) InvCDF(p float64) float64 {
	switch {
	case p <= 0:
		return d.min
	case p >= 1:
		return d.max
	}
	return d.min + p*(d.max-d.min)
}

func (d *UniformDist) Bounds() (float64, float64) {
	return d.min, d.max
}

func (d *UniformDist) Mean() float64 {
	return (d.min + d.max) / 2
}

func (d *UniformDist) Variance() float64 {
	w := d.max - d.min
	return w * w / 12
}

func (d *UniformDist) Rand(rnd *rand.Rand) float64 {
	return d.min + (d.max-d.min)*rnd.Float64()
}

// ToVector returns [min, max].
func (d *UniformDist) ToVector() []float64 {
	return []float64{d.min, d.max}
}

func (d *UniformDist) FromVector(v []float64) error {
	if err := checkVectorLen(v, 2); err != nil {
		return err
	}
	return d.SetBounds(v[0], v[1])
}
