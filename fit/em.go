// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"

	"github.com/pkg/errors"

	"github.com/probkit/probdist/dist"
	"github.com/probkit/probdist/mathx"
)

// EMConfig controls the expectation-maximization mixture learner.
// The zero value selects reasonable defaults.
type EMConfig struct {
	// MaxIter caps the number of EM iterations. It defaults to
	// 100. The learner always terminates after this many
	// iterations, converged or not.
	MaxIter int

	// Tol is the convergence threshold on the change in
	// per-sample log-likelihood between iterations. It defaults
	// to 1e-9.
	Tol float64

	// Progress, if non-nil, is called after every iteration with
	// the iteration number and the current total log-likelihood.
	Progress func(iter int, logLik float64)
}

const (
	defaultEMMaxIter = 100
	defaultEMTol     = 1e-9
)

// NormalMixture fits a k-component normal mixture to the sample by
// expectation-maximization with soft assignment. Components are
// initialized at evenly spaced sample quantiles with the overall
// sample deviation, so the fit is deterministic. It returns the
// fitted mixture and the total log-likelihood at termination.
func NormalMixture(s Sample, k int, cfg EMConfig) (*dist.MixtureDist, float64, error) {
	if err := s.check(); err != nil {
		return nil, 0, err
	}
	if k <= 0 {
		return nil, 0, errors.Wrapf(dist.ErrInvalidParameter, "component count %d must be positive", k)
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = defaultEMMaxIter
	}
	if cfg.Tol <= 0 {
		cfg.Tol = defaultEMTol
	}

	totalW := s.Weight()
	overallVar := s.Variance()
	if overallVar <= 0 {
		return nil, 0, errors.Wrap(dist.ErrInvalidParameter, "sample variance is zero")
	}
	// Keep component variances away from the point-mass collapse
	// that makes the likelihood unbounded.
	varFloor := 1e-6 * overallVar

	mus := make([]float64, k)
	sigmas := make([]float64, k)
	weights := make([]float64, k)
	sd := math.Sqrt(overallVar)
	for i := 0; i < k; i++ {
		mus[i] = s.Quantile((float64(i) + 0.5) / float64(k))
		sigmas[i] = sd
		weights[i] = 1 / float64(k)
	}

	n := len(s.Xs)
	resp := make([]float64, k)
	sumW := make([]float64, k)
	sumWX := make([]float64, k)
	sumWXX := make([]float64, k)

	logLik := math.Inf(-1)
	for iter := 1; iter <= cfg.MaxIter; iter++ {
		for i := 0; i < k; i++ {
			sumW[i], sumWX[i], sumWXX[i] = 0, 0, 0
		}

		// E step: per-sample component responsibilities in log
		// space, accumulating the weighted moment sums for the
		// M step as we go.
		var ll float64
		for j := 0; j < n; j++ {
			x := s.Xs[j]
			w := 1.0
			if s.Weights != nil {
				w = s.Weights[j]
			}
			for i := 0; i < k; i++ {
				z := (x - mus[i]) / sigmas[i]
				resp[i] = math.Log(weights[i]) - z*z/2 - math.Log(sigmas[i]) - logSqrt2Pi
			}
			lse := mathx.LogSumExp(resp)
			ll += w * lse
			for i := 0; i < k; i++ {
				r := w * math.Exp(resp[i]-lse)
				sumW[i] += r
				sumWX[i] += r * x
				sumWXX[i] += r * x * x
			}
		}

		// M step: refit weights, means, and variances from the
		// responsibilities.
		for i := 0; i < k; i++ {
			if sumW[i] <= 0 {
				// A component lost all responsibility;
				// keep its parameters and let its weight
				// go to zero mass.
				weights[i] = 0
				continue
			}
			weights[i] = sumW[i] / totalW
			mu := sumWX[i] / sumW[i]
			v := sumWXX[i]/sumW[i] - mu*mu
			if v < varFloor {
				v = varFloor
			}
			mus[i] = mu
			sigmas[i] = math.Sqrt(v)
		}
		renormalize(weights)

		if cfg.Progress != nil {
			cfg.Progress(iter, ll)
		}
		if math.Abs(ll-logLik) <= cfg.Tol*(1+math.Abs(ll)) {
			logLik = ll
			break
		}
		logLik = ll
	}

	components := make([]dist.Continuous, k)
	for i := 0; i < k; i++ {
		c, err := dist.NewNormalDist(mus[i], sigmas[i])
		if err != nil {
			return nil, 0, err
		}
		components[i] = c
	}
	m, err := dist.NewMixtureDist(components, weights)
	if err != nil {
		return nil, 0, err
	}
	return m, logLik, nil
}

// logSqrt2Pi is ln(sqrt(2*pi)).
const logSqrt2Pi = 0.91893853320467274178032973640561763986139747363778341281715154

// renormalize rescales ws to sum to exactly 1.
func renormalize(ws []float64) {
	var sum float64
	for _, w := range ws {
		sum += w
	}
	for i := range ws {
		ws[i] /= sum
	}
}
