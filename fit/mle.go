// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"

	"github.com/pkg/errors"

	"github.com/probkit/probdist/dist"
)

// Batch estimators. Each consumes a sample without mutating it and
// returns a freshly fitted distribution; each fails with
// ErrInvalidParameter if the sample is empty, its weights are
// inconsistent, or its values lie outside the distribution's domain.

// Normal returns the maximum-likelihood normal fit: the weighted
// mean and population standard deviation.
func Normal(s Sample) (*dist.NormalDist, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	v := s.Variance()
	if v <= 0 {
		return nil, errors.Wrap(dist.ErrInvalidParameter, "sample variance is zero")
	}
	return dist.NewNormalDist(s.Mean(), math.Sqrt(v))
}

// LogNormal returns the maximum-likelihood log-normal fit, the
// normal fit of the log-values. All values must be positive.
func LogNormal(s Sample) (*dist.LogNormalDist, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	logs := Sample{Xs: make([]float64, len(s.Xs)), Weights: s.Weights}
	for i, x := range s.Xs {
		if x <= 0 {
			return nil, errors.Wrapf(dist.ErrInvalidParameter, "sample %d is %v, must be positive", i, x)
		}
		logs.Xs[i] = math.Log(x)
	}
	v := logs.Variance()
	if v <= 0 {
		return nil, errors.Wrap(dist.ErrInvalidParameter, "sample variance is zero")
	}
	return dist.NewLogNormalDist(logs.Mean(), math.Sqrt(v))
}

// Exponential returns the maximum-likelihood exponential fit, with
// rate the reciprocal of the weighted mean. All values must be
// non-negative.
func Exponential(s Sample) (*dist.ExponentialDist, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	for i, x := range s.Xs {
		if x < 0 {
			return nil, errors.Wrapf(dist.ErrInvalidParameter, "sample %d is %v, must be non-negative", i, x)
		}
	}
	mean := s.Mean()
	if mean <= 0 {
		return nil, errors.Wrap(dist.ErrInvalidParameter, "sample mean is zero")
	}
	return dist.NewExponentialDist(1 / mean)
}

// Poisson returns the maximum-likelihood Poisson fit, with lambda
// the weighted mean. All values must be non-negative integers.
func Poisson(s Sample) (*dist.PoissonDist, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	for i, x := range s.Xs {
		if x < 0 || x != math.Trunc(x) {
			return nil, errors.Wrapf(dist.ErrInvalidParameter, "sample %d is %v, must be a non-negative count", i, x)
		}
	}
	mean := s.Mean()
	if mean <= 0 {
		return nil, errors.Wrap(dist.ErrInvalidParameter, "sample mean is zero")
	}
	return dist.NewPoissonDist(mean)
}

// Bernoulli returns the maximum-likelihood Bernoulli fit, with p the
// weighted success fraction. All values must be 0 or 1.
func Bernoulli(s Sample) (*dist.BernoulliDist, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	for i, x := range s.Xs {
		if x != 0 && x != 1 {
			return nil, errors.Wrapf(dist.ErrInvalidParameter, "sample %d is %v, must be 0 or 1", i, x)
		}
	}
	return dist.NewBernoulliDist(s.Mean())
}

// Geometric returns the maximum-likelihood geometric fit,
// p = 1/(1+mean). All values must be non-negative integers.
func Geometric(s Sample) (*dist.GeometricDist, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	for i, x := range s.Xs {
		if x < 0 || x != math.Trunc(x) {
			return nil, errors.Wrapf(dist.ErrInvalidParameter, "sample %d is %v, must be a non-negative count", i, x)
		}
	}
	return dist.NewGeometricDist(1 / (1 + s.Mean()))
}

// Uniform returns the maximum-likelihood uniform fit, the interval
// from the smallest to the largest sample value.
func Uniform(s Sample) (*dist.UniformDist, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	min, max := s.Bounds()
	if min >= max {
		return nil, errors.Wrap(dist.ErrInvalidParameter, "all samples are identical")
	}
	return dist.NewUniformDist(min, max)
}

// Laplace returns the maximum-likelihood Laplace fit: location at
// the weighted median, scale at the weighted mean absolute deviation
// from it.
func Laplace(s Sample) (*dist.LaplaceDist, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	mu := s.Quantile(0.5)
	var sum float64
	for i, x := range s.Xs {
		w := 1.0
		if s.Weights != nil {
			w = s.Weights[i]
		}
		sum += w * math.Abs(x-mu)
	}
	b := sum / s.Weight()
	if b <= 0 {
		return nil, errors.Wrap(dist.ErrInvalidParameter, "all samples are identical")
	}
	return dist.NewLaplaceDist(mu, b)
}

// Gamma returns the moment-matching gamma fit: shape mean²/variance
// and rate mean/variance. The sample must have positive mean and
// variance.
func Gamma(s Sample) (*dist.GammaDist, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	mean, v := s.Mean(), s.Variance()
	if mean <= 0 {
		return nil, errors.Wrap(dist.ErrInvalidParameter, "sample mean is not positive")
	}
	if v <= 0 {
		return nil, errors.Wrap(dist.ErrInvalidParameter, "sample variance is zero")
	}
	return dist.NewGammaDist(mean*mean/v, mean/v)
}

// Beta returns the moment-matching beta fit. The sample must lie in
// (0, 1) with variance below mean*(1-mean).
func Beta(s Sample) (*dist.BetaDist, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	for i, x := range s.Xs {
		if x <= 0 || x >= 1 {
			return nil, errors.Wrapf(dist.ErrInvalidParameter, "sample %d is %v, must be in (0, 1)", i, x)
		}
	}
	mean, v := s.Mean(), s.Variance()
	if v <= 0 || v >= mean*(1-mean) {
		return nil, errors.Wrapf(dist.ErrInvalidParameter, "sample variance %v is outside (0, %v)", v, mean*(1-mean))
	}
	nu := mean*(1-mean)/v - 1
	return dist.NewBetaDist(mean*nu, (1-mean)*nu)
}

// Categorical returns the maximum-likelihood categorical fit over
// the support 0..k-1: normalized weighted counts. All values must be
// integers in [0, k).
func Categorical(s Sample, k int) (*dist.CategoricalDist, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, errors.Wrapf(dist.ErrInvalidParameter, "support size %d must be positive", k)
	}
	counts := make([]float64, k)
	var total float64
	for i, x := range s.Xs {
		if x != math.Trunc(x) || x < 0 || int(x) >= k {
			return nil, errors.Wrapf(dist.ErrInvalidParameter, "sample %d is %v, must be an integer in [0, %d)", i, x, k)
		}
		w := 1.0
		if s.Weights != nil {
			w = s.Weights[i]
		}
		counts[int(x)] += w
		total += w
	}
	for i := range counts {
		counts[i] /= total
	}
	return dist.NewCategoricalDist(counts)
}

// Counts returns the empirical count distribution of the sample:
// each value's weight accumulated into a CountDist.
func Counts(s Sample) (*dist.CountDist, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	d := dist.NewCountDist()
	for i, x := range s.Xs {
		w := 1.0
		if s.Weights != nil {
			w = s.Weights[i]
		}
		d.Increment(x, w)
	}
	return d, nil
}
