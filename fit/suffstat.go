// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"

	"github.com/pkg/errors"

	"github.com/probkit/probdist/dist"
)

// MeanVarAcc is an incremental sufficient statistic for the mean and
// variance of a stream of possibly weighted samples. It uses
// Welford's update, so it stays numerically stable under large mean
// shifts, and two partial accumulators can be merged into one that
// is identical to having observed the union of their streams.
//
// The zero value is an empty accumulator, ready for use.
type MeanVarAcc struct {
	weight float64
	mean   float64
	m2     float64
}

// Add absorbs x with weight 1.
func (a *MeanVarAcc) Add(x float64) {
	a.addWeighted(x, 1)
}

// AddWeighted absorbs x with the given non-negative weight. A zero
// weight is a no-op.
func (a *MeanVarAcc) AddWeighted(x, w float64) error {
	if math.IsNaN(w) || w < 0 {
		return errors.Wrapf(dist.ErrInvalidParameter, "weight is %v, must be non-negative", w)
	}
	a.addWeighted(x, w)
	return nil
}

func (a *MeanVarAcc) addWeighted(x, w float64) {
	if w == 0 {
		return
	}
	a.weight += w
	delta := x - a.mean
	a.mean += delta * w / a.weight
	a.m2 += w * delta * (x - a.mean)
}

// Merge absorbs the samples accumulated by b into a, as if a had
// observed both streams. b is unchanged.
func (a *MeanVarAcc) Merge(b *MeanVarAcc) {
	if b.weight == 0 {
		return
	}
	if a.weight == 0 {
		*a = *b
		return
	}
	// Chan, T. F.; Golub, G. H.; LeVeque, R. J. (1983).
	// "Algorithms for computing the sample variance".
	total := a.weight + b.weight
	delta := b.mean - a.mean
	a.mean += delta * b.weight / total
	a.m2 += b.m2 + delta*delta*a.weight*b.weight/total
	a.weight = total
}

// Weight returns the total absorbed weight.
func (a *MeanVarAcc) Weight() float64 { return a.weight }

// Mean returns the weighted mean of the absorbed samples, or NaN if
// the accumulator is empty.
func (a *MeanVarAcc) Mean() float64 {
	if a.weight == 0 {
		return math.NaN()
	}
	return a.mean
}

// Variance returns the weighted population variance of the absorbed
// samples, or NaN if the accumulator is empty.
func (a *MeanVarAcc) Variance() float64 {
	if a.weight == 0 {
		return math.NaN()
	}
	return a.m2 / a.weight
}

// SampleVariance returns the unbiased sample variance, or NaN if the
// total weight does not exceed 1.
func (a *MeanVarAcc) SampleVariance() float64 {
	if a.weight <= 1 {
		return math.NaN()
	}
	return a.m2 / (a.weight - 1)
}

// StdDev returns the weighted population standard deviation.
func (a *MeanVarAcc) StdDev() float64 {
	return math.Sqrt(a.Variance())
}

// Normal returns the maximum-likelihood normal distribution for the
// absorbed samples. The accumulator can keep absorbing samples
// afterwards. It fails if the accumulator is empty or the samples
// are all identical, which gives a degenerate sigma.
func (a *MeanVarAcc) Normal() (*dist.NormalDist, error) {
	if a.weight == 0 {
		return nil, errEmpty()
	}
	v := a.Variance()
	if v <= 0 {
		return nil, errors.Wrap(dist.ErrInvalidParameter, "sample variance is zero")
	}
	return dist.NewNormalDist(a.mean, math.Sqrt(v))
}
