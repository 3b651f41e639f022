// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/probkit/probdist/mathx"
)

// MixtureDist is a weighted mixture of continuous component
// distributions. Its density is the weighted sum of the component
// densities; the weights form a probability simplex.
type MixtureDist struct {
	components []Continuous
	weights    []float64
}

// NewMixtureDist returns the mixture of the given components with
// the given prior weights. There must be at least one component, the
// weight vector must have the same length as the component list, and
// the weights must be a probability simplex. Both slices are copied;
// the component distributions themselves are shared with the caller.
func NewMixtureDist(components []Continuous, weights []float64) (*MixtureDist, error) {
	if len(components) == 0 {
		return nil, invalidf("mixture needs at least one component")
	}
	if len(weights) != len(components) {
		return nil, invalidf("got %d weights for %d components", len(weights), len(components))
	}
	if err := checkSimplex(weights); err != nil {
		return nil, err
	}
	return &MixtureDist{
		components: append([]Continuous(nil), components...),
		weights:    append([]float64(nil), weights...),
	}, nil
}

// K returns the number of components.
func (d *MixtureDist) K() int { return len(d.components) }

// Component returns the i'th component distribution.
func (d *MixtureDist) Component(i int) Continuous { return d.components[i] }

// Weights returns a copy of the prior weight vector.
func (d *MixtureDist) Weights() []float64 {
	return append([]float64(nil), d.weights...)
}

// SetWeights replaces the prior weights. The new vector must have
// one weight per component and form a probability simplex.
func (d *MixtureDist) SetWeights(weights []float64) error {
	if len(weights) != len(d.components) {
		return invalidf("got %d weights for %d components", len(weights), len(d.components))
	}
	if err := checkSimplex(weights); err != nil {
		return err
	}
	copy(d.weights, weights)
	return nil
}

func (d *MixtureDist) PDF(x float64) float64 {
	var sum float64
	for i, c := range d.components {
		sum += d.weights[i] * c.PDF(x)
	}
	return sum
}

// LogPDF evaluates the log density as a log-sum-exp over the
// component log densities, which stays finite in tails where every
// component density underflows.
func (d *MixtureDist) LogPDF(x float64) float64 {
	terms := make([]float64, len(d.components))
	for i, c := range d.components {
		terms[i] = logOf(d.weights[i]) + c.LogPDF(x)
	}
	return mathx.LogSumExp(terms)
}

func (d *MixtureDist) CDF(x float64) float64 {
	var sum float64
	for i, c := range d.components {
		sum += d.weights[i] * c.CDF(x)
	}
	return sum
}

// InvCDF inverts the mixture CDF by bisection between the component
// bounds. The iteration count is capped.
func (d *MixtureDist) InvCDF(p float64) float64 {
	lo, hi := d.Bounds()
	switch {
	case p <= 0:
		return lo
	case p >= 1:
		return hi
	}
	// Expand until the root is bracketed; Bounds only covers
	// almost all of the weight.
	for d.CDF(lo) > p {
		lo -= hi - lo
	}
	for d.CDF(hi) < p {
		hi += hi - lo
	}
	x, _ := bisect(func(x float64) float64 { return d.CDF(x) - p }, lo, hi, 1e-10)
	return x
}

func (d *MixtureDist) Bounds() (float64, float64) {
	lo, hi := inf, -inf
	for _, c := range d.components {
		clo, chi := c.Bounds()
		lo = math.Min(lo, clo)
		hi = math.Max(hi, chi)
	}
	return lo, hi
}

func (d *MixtureDist) Mean() float64 {
	var mean float64
	for i, c := range d.components {
		mean += d.weights[i] * c.Mean()
	}
	return mean
}

// Variance is computed by the law of total variance. It is NaN if
// any component with positive weight has an undefined moment.
func (d *MixtureDist) Variance() float64 {
	mean := d.Mean()
	var m2 float64
	for i, c := range d.components {
		cm := c.Mean()
		m2 += d.weights[i] * (c.Variance() + cm*cm)
	}
	return m2 - mean*mean
}

// Rand selects a component according to the prior weights, then
// draws from it.
func (d *MixtureDist) Rand(rnd *rand.Rand) float64 {
	u := rnd.Float64()
	var sum float64
	for i, w := range d.weights {
		sum += w
		if u < sum {
			return d.components[i].Rand(rnd)
		}
	}
	return d.components[len(d.components)-1].Rand(rnd)
}

// ToVector returns the prior weights followed by each component's
// parameter vector in order. All components must be Vectorizable.
func (d *MixtureDist) ToVector() []float64 {
	v := append([]float64(nil), d.weights...)
	for _, c := range d.components {
		v = append(v, c.(Vectorizable).ToVector()...)
	}
	return v
}

// FromVector overwrites the prior weights and all component
// parameters from v, which must have the exact concatenated length
// of ToVector. On a length or domain error no state is modified.
func (d *MixtureDist) FromVector(v []float64) error {
	if v == nil {
		return invalidf("parameter vector is nil")
	}
	want := len(d.weights)
	lens := make([]int, len(d.components))
	for i, c := range d.components {
		lens[i] = len(c.(Vectorizable).ToVector())
		want += lens[i]
	}
	if len(v) != want {
		return invalidf("parameter vector has length %d, want %d", len(v), want)
	}
	if err := checkSimplex(v[:len(d.weights)]); err != nil {
		return err
	}
	// Apply component segments one at a time, rolling back the
	// already-applied ones if a later segment is rejected, so a
	// failed call leaves no partial state.
	origs := make([][]float64, len(d.components))
	off := len(d.weights)
	for i, c := range d.components {
		vc := c.(Vectorizable)
		origs[i] = vc.ToVector()
		seg := append([]float64(nil), v[off:off+lens[i]]...)
		if err := vc.FromVector(seg); err != nil {
			for j := 0; j < i; j++ {
				d.components[j].(Vectorizable).FromVector(origs[j])
			}
			return err
		}
		off += lens[i]
	}
	copy(d.weights, v[:len(d.weights)])
	return nil
}
