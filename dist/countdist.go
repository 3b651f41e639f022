// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
	"sort"
)

// CountDist is an empirical discrete distribution over observed
// values. Each distinct value carries a non-negative weight; the PMF
// is the weight normalized by the total. It is built up by
// incrementing and decrementing value weights, typically one
// observation at a time.
type CountDist struct {
	counts map[float64]float64
	total  float64
}

// NewCountDist returns an empty count distribution. An empty
// distribution evaluates to zero mass everywhere and has NaN
// moments.
func NewCountDist() *CountDist {
	return &CountDist{counts: make(map[float64]float64)}
}

// Clone returns an independent copy of d.
func (d *CountDist) Clone() *CountDist {
	c := NewCountDist()
	for x, w := range d.counts {
		c.counts[x] = w
	}
	c.total = d.total
	return c
}

// Increment adds amount to the weight of x and returns the new
// weight. A negative amount decrements; the weight never goes below
// zero, so decrementing past zero is a partial or full no-op.
func (d *CountDist) Increment(x, amount float64) float64 {
	cur := d.counts[x]
	next := cur + amount
	if next <= 0 {
		// Clamp at zero rather than failing; decrementing an
		// absent value is a no-op.
		next = 0
	}
	d.total += next - cur
	if next == 0 {
		delete(d.counts, x)
	} else {
		d.counts[x] = next
	}
	return next
}

// Add increments the weight of x by one.
func (d *CountDist) Add(x float64) {
	d.Increment(x, 1)
}

// Decrement subtracts amount from the weight of x, clamping at zero.
func (d *CountDist) Decrement(x, amount float64) float64 {
	return d.Increment(x, -amount)
}

// Count returns the weight of x.
func (d *CountDist) Count(x float64) float64 {
	return d.counts[x]
}

// Total returns the total weight.
func (d *CountDist) Total() float64 {
	return d.total
}

// Domain returns the distinct values with positive weight in
// increasing order.
func (d *CountDist) Domain() []float64 {
	xs := make([]float64, 0, len(d.counts))
	for x := range d.counts {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	return xs
}

func (d *CountDist) PMF(x float64) float64 {
	if d.total == 0 {
		return 0
	}
	return d.counts[x] / d.total
}

func (d *CountDist) LogPMF(x float64) float64 {
	return logOf(d.PMF(x))
}

func (d *CountDist) CDF(x float64) float64 {
	if d.total == 0 {
		return 0
	}
	var sum float64
	for v, w := range d.counts {
		if v <= x {
			sum += w
		}
	}
	return sum / d.total
}

func (d *CountDist) Mean() float64 {
	if d.total == 0 {
		return nan
	}
	var sum float64
	for x, w := range d.counts {
		sum += x * w
	}
	return sum / d.total
}

func (d *CountDist) Variance() float64 {
	if d.total == 0 {
		return nan
	}
	mean := d.Mean()
	var m2 float64
	for x, w := range d.counts {
		dx := x - mean
		m2 += dx * dx * w
	}
	return m2 / d.total
}

// Rand draws one of the observed values with probability
// proportional to its weight. It returns NaN for an empty
// distribution.
func (d *CountDist) Rand(rnd *rand.Rand) float64 {
	if d.total == 0 {
		return nan
	}
	u := rnd.Float64() * d.total
	var sum float64
	domain := d.Domain()
	for _, x := range domain {
		sum += d.counts[x]
		if u < sum {
			return x
		}
	}
	return domain[len(domain)-1]
}

// MaxValue returns the value with the greatest weight, breaking ties
// towards the smaller value. It returns NaN for an empty
// distribution.
func (d *CountDist) MaxValue() float64 {
	best, bestW := math.NaN(), math.Inf(-1)
	for _, x := range d.Domain() {
		if w := d.counts[x]; w > bestW {
			best, bestW = x, w
		}
	}
	return best
}
