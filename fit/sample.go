// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fit provides estimators that fit catalog distributions to observed
// data: batch maximum-likelihood and moment-matching estimators, an
// incremental sufficient statistic, an EM learner for normal
// mixtures, and goodness-of-fit checks.
package fit // import "github.com/probkit/probdist/fit"

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/probkit/probdist/dist"
)

// Sample is a collection of possibly weighted data points.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Weights must have the same
	// length of Xs and all values must be non-negative.
	Weights []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

func errEmpty() error {
	return errors.Wrap(dist.ErrInvalidParameter, "empty sample")
}

// check verifies the weight invariants before an estimator consumes
// the sample.
func (s Sample) check() error {
	if len(s.Xs) == 0 {
		return errEmpty()
	}
	if s.Weights == nil {
		return nil
	}
	if len(s.Weights) != len(s.Xs) {
		return errors.Wrapf(dist.ErrInvalidParameter, "got %d weights for %d samples", len(s.Weights), len(s.Xs))
	}
	var total float64
	for i, w := range s.Weights {
		if math.IsNaN(w) || w < 0 {
			return errors.Wrapf(dist.ErrInvalidParameter, "weight %d is %v, must be non-negative", i, w)
		}
		total += w
	}
	if total == 0 {
		return errors.Wrap(dist.ErrInvalidParameter, "all sample weights are zero")
	}
	return nil
}

// Weight returns the total weight of the sample, or the number of
// samples if it is unweighted.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	var total float64
	for _, w := range s.Weights {
		total += w
	}
	return total
}

// Sum returns the weighted sum of the sample values.
func (s Sample) Sum() float64 {
	var sum float64
	if s.Weights == nil {
		for _, x := range s.Xs {
			sum += x
		}
		return sum
	}
	for i, x := range s.Xs {
		sum += x * s.Weights[i]
	}
	return sum
}

// Mean returns the weighted mean of the sample, or NaN if the sample
// is empty.
func (s Sample) Mean() float64 {
	return s.Sum() / s.Weight()
}

// GeoMean returns the weighted geometric mean of the sample, or NaN
// if any value is non-positive.
func (s Sample) GeoMean() float64 {
	if len(s.Xs) == 0 {
		return math.NaN()
	}
	var logSum float64
	for i, x := range s.Xs {
		if x <= 0 {
			return math.NaN()
		}
		w := 1.0
		if s.Weights != nil {
			w = s.Weights[i]
		}
		logSum += w * math.Log(x)
	}
	return math.Exp(logSum / s.Weight())
}

// Variance returns the weighted population variance of the sample.
func (s Sample) Variance() float64 {
	if len(s.Xs) == 0 {
		return math.NaN()
	}
	mean := s.Mean()
	var m2 float64
	for i, x := range s.Xs {
		w := 1.0
		if s.Weights != nil {
			w = s.Weights[i]
		}
		dx := x - mean
		m2 += w * dx * dx
	}
	return m2 / s.Weight()
}

// StdDev returns the weighted population standard deviation of the
// sample.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Bounds returns the smallest and largest values in the sample with
// positive weight, or (NaN, NaN) if the sample is empty.
func (s Sample) Bounds() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for i, x := range s.Xs {
		if s.Weights != nil && s.Weights[i] == 0 {
			continue
		}
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	if min > max {
		return math.NaN(), math.NaN()
	}
	return
}

// Copy returns a copy of the Sample. The returned Sample shares no
// state with the original.
func (s Sample) Copy() *Sample {
	xs := append([]float64(nil), s.Xs...)
	var weights []float64
	if s.Weights != nil {
		weights = append([]float64(nil), s.Weights...)
	}
	return &Sample{xs, weights, s.Sorted}
}

// Sort sorts the sample in place by value and returns it.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		s.Sorted = true
		return s
	}
	if s.Weights == nil {
		sort.Float64s(s.Xs)
	} else {
		sort.Sort(&sampleSorter{s.Xs, s.Weights})
	}
	s.Sorted = true
	return s
}

type sampleSorter struct {
	xs, weights []float64
}

func (p *sampleSorter) Len() int           { return len(p.xs) }
func (p *sampleSorter) Less(i, j int) bool { return p.xs[i] < p.xs[j] }
func (p *sampleSorter) Swap(i, j int) {
	p.xs[i], p.xs[j] = p.xs[j], p.xs[i]
	p.weights[i], p.weights[j] = p.weights[j], p.weights[i]
}

// Quantile returns the sample value X at which q*weight of the
// sample is <= X. For unweighted samples it uses the quantile
// definition 8 from Hyndman and Fan, which interpolates between
// order statistics and is approximately median-unbiased regardless
// of the sample distribution. Weighted samples interpolate the
// weighted empirical CDF. q values outside [0, 1] are clamped.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return math.NaN()
	}
	sorted := s
	if !s.Sorted {
		sorted = *s.Copy().Sort()
	}

	if s.Weights == nil {
		n := float64(len(sorted.Xs))
		h := (n+1.0/3)*q + 1.0/3
		switch {
		case h <= 1:
			return sorted.Xs[0]
		case h >= n:
			return sorted.Xs[len(sorted.Xs)-1]
		}
		fl := math.Floor(h)
		i := int(fl) - 1
		return sorted.Xs[i] + (h-fl)*(sorted.Xs[i+1]-sorted.Xs[i])
	}

	target := q * sorted.Weight()
	var cum float64
	for i, x := range sorted.Xs {
		cum += sorted.Weights[i]
		if cum >= target {
			return x
		}
	}
	return sorted.Xs[len(sorted.Xs)-1]
}

// MeanCI returns the mean of xs along with the bounds of the
// confidence interval of the mean at the given confidence level,
// using the Student's t-distribution. A confidence of 0.95 gives the
// standard 95% confidence interval. The interval is (-Inf, +Inf) for
// samples of size 1 and (NaN, NaN) for empty samples.
func MeanCI(xs []float64, confidence float64) (mean, lo, hi float64) {
	if len(xs) == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}
	s := Sample{Xs: xs}
	mean = s.Mean()
	if len(xs) == 1 {
		if confidence <= 0 {
			return mean, mean, mean
		}
		return mean, math.Inf(-1), math.Inf(1)
	}
	if confidence <= 0 {
		return mean, mean, mean
	}
	n := float64(len(xs))
	// Unbiased sample variance for the standard error.
	sd := math.Sqrt(s.Variance() * n / (n - 1))
	se := sd / math.Sqrt(n)
	if confidence >= 1 {
		return mean, math.Inf(-1), math.Inf(1)
	}
	t, err := dist.NewTDist(n - 1)
	if err != nil {
		return mean, math.NaN(), math.NaN()
	}
	margin := se * t.InvCDF(1-(1-confidence)/2)
	return mean, mean - margin, mean + margin
}
