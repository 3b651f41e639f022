// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// CategoricalDist is a finite discrete distribution over the support
// 0, 1, …, K-1 with explicit per-point probabilities.
type CategoricalDist struct {
	probs []float64
}

// simplexTol is the tolerance when checking that probabilities sum
// to 1.
const simplexTol = 1e-9

// NewCategoricalDist returns the categorical distribution with the
// given probabilities. probs must be non-empty, each probability in
// [0, 1], summing to 1 within a small tolerance. The slice is copied.
func NewCategoricalDist(probs []float64) (*CategoricalDist, error) {
	d := &CategoricalDist{}
	if err := d.SetProbs(probs); err != nil {
		return nil, err
	}
	return d, nil
}

// K returns the number of support points.
func (d *CategoricalDist) K() int { return len(d.probs) }

// Probs returns a copy of the probability vector.
func (d *CategoricalDist) Probs() []float64 {
	return append([]float64(nil), d.probs...)
}

// SetProbs replaces the probability vector. It copies probs.
func (d *CategoricalDist) SetProbs(probs []float64) error {
	if err := checkSimplex(probs); err != nil {
		return err
	}
	d.probs = append([]float64(nil), probs...)
	return nil
}

// checkSimplex verifies that probs is a non-empty probability
// simplex: every entry in [0, 1] and the total 1 within tolerance.
func checkSimplex(probs []float64) error {
	if len(probs) == 0 {
		return invalidf("probability vector is empty")
	}
	var sum float64
	for i, p := range probs {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return invalidf("probability %d is %v, must be in [0, 1]", i, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > simplexTol {
		return invalidf("probabilities sum to %v, want 1", sum)
	}
	return nil
}

// Clone returns an independent copy of d. The probability vector is
// deep-copied.
func (d *CategoricalDist) Clone() *CategoricalDist {
	return &CategoricalDist{probs: append([]float64(nil), d.probs...)}
}

func (d *CategoricalDist) PMF(k float64) float64 {
	// Range checks stay in float space: converting an out-of-range
	// float (including +Inf) to int is implementation-dependent.
	if !isInt(k) || k < 0 || k >= float64(len(d.probs)) {
		return 0
	}
	return d.probs[int(k)]
}

func (d *CategoricalDist) LogPMF(k float64) float64 {
	return logOf(d.PMF(k))
}

func (d *CategoricalDist) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	if k >= float64(len(d.probs)-1) {
		return 1
	}
	var sum float64
	for i := 0; i <= int(k); i++ {
		sum += d.probs[i]
	}
	return sum
}

func (d *CategoricalDist) InvCDF(p float64) float64 {
	return invCDFScan(d, p)
}

func (d *CategoricalDist) Bounds() (float64, float64) {
	return 0, float64(len(d.probs) - 1)
}

func (d *CategoricalDist) Step() float64 {
	return 1
}

func (d *CategoricalDist) Mean() float64 {
	var mean float64
	for i, p := range d.probs {
		mean += float64(i) * p
	}
	return mean
}

func (d *CategoricalDist) Variance() float64 {
	mean := d.Mean()
	var m2 float64
	for i, p := range d.probs {
		m2 += float64(i) * float64(i) * p
	}
	return m2 - mean*mean
}

func (d *CategoricalDist) Rand(rnd *rand.Rand) float64 {
	u := rnd.Float64()
	var sum float64
	for i, p := range d.probs {
		sum += p
		if u < sum {
			return float64(i)
		}
	}
	return float64(len(d.probs) - 1)
}

// ToVector returns a copy of the probability vector.
func (d *CategoricalDist) ToVector() []float64 {
	return d.Probs()
}

// FromVector replaces the probabilities. The vector length must
// equal K.
func (d *CategoricalDist) FromVector(v []float64) error {
	if err := checkVectorLen(v, len(d.probs)); err != nil {
		return err
	}
	return d.SetProbs(v)
}
