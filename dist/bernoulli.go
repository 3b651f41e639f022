// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math/rand/v2"
)

// BernoulliDist is a Bernoulli distribution: 1 with probability P
// and 0 with probability 1-P.
type BernoulliDist struct {
	p float64
}

// NewBernoulliDist returns the Bernoulli distribution with success
// probability p in [0, 1].
func NewBernoulliDist(p float64) (*BernoulliDist, error) {
	d := &BernoulliDist{}
	if err := d.SetP(p); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *BernoulliDist) P() float64 { return d.p }

func (d *BernoulliDist) SetP(p float64) error {
	if err := checkProbability("p", p); err != nil {
		return err
	}
	d.p = p
	return nil
}

// Clone returns an independent copy of d.
func (d *BernoulliDist) Clone() *BernoulliDist {
	c := *d
	return &c
}

func (d *BernoulliDist) PMF(k float64) float64 {
	switch k {
	case 0:
		return 1 - d.p
	case 1:
		return d.p
	}
	return 0
}

func (d *BernoulliDist) LogPMF(k float64) float64 {
	return logOf(d.PMF(k))
}

func (d *BernoulliDist) CDF(k float64) float64 {
	switch {
	case k < 0:
		return 0
	case k < 1:
		return 1 - d.p
	}
	return 1
}

func (d *BernoulliDist) InvCDF(p float64) float64 {
	return invCDFScan(d, p)
}

func (d *BernoulliDist) Bounds() (float64, float64) {
	return 0, 1
}

func (d *BernoulliDist) Step() float64 {
	return 1
}

func (d *BernoulliDist) Mean() float64     { return d.p }
func (d *BernoulliDist) Variance() float64 { return d.p * (1 - d.p) }

func (d *BernoulliDist) Rand(rnd *rand.Rand) float64 {
	if rnd.Float64() < d.p {
		return 1
	}
	return 0
}

// ToVector returns [p].
func (d *BernoulliDist) ToVector() []float64 {
	return []float64{d.p}
}

func (d *BernoulliDist) FromVector(v []float64) error {
	if err := checkVectorLen(v, 1); err != nil {
		return err
	}
	return d.SetP(v[0])
}
