// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/probkit/probdist/mathx"
)

// PoissonDist is a Poisson distribution with mean Lambda.
type PoissonDist struct {
	lambda float64
}

// NewPoissonDist returns the Poisson distribution with mean lambda.
// lambda must be positive.
func NewPoissonDist(lambda float64) (*PoissonDist, error) {
	d := &PoissonDist{}
	if err := d.SetLambda(lambda); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *PoissonDist) Lambda() float64 { return d.lambda }

func (d *PoissonDist) SetLambda(lambda float64) error {
	if err := checkPositive("lambda", lambda); err != nil {
		return err
	}
	d.lambda = lambda
	return nil
}

// Clone returns an independent copy of d.
func (d *PoissonDist) Clone() *PoissonDist {
	c := *d
	return &c
}

func (d *PoissonDist) PMF(k float64) float64 {
	return math.Exp(d.LogPMF(k))
}

func (d *PoissonDist) LogPMF(k float64) float64 {
	if !isInt(k) || k < 0 || math.IsInf(k, 1) {
		return math.Inf(-1)
	}
	// Lgamma keeps k in float space; counts beyond the int range
	// still have (vanishing) mass.
	lg, _ := math.Lgamma(k + 1)
	return k*math.Log(d.lambda) - d.lambda - lg
}

// CDF is the probability of a count of floor(k) or less. It is the
// regularized upper incomplete gamma function Q(floor(k)+1, lambda).
func (d *PoissonDist) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	if math.IsInf(k, 1) {
		return 1
	}
	return 1 - mathx.GammaIncP(k+1, d.lambda)
}

func (d *PoissonDist) InvCDF(p float64) float64 {
	return invCDFScan(d, p)
}

func (d *PoissonDist) Bounds() (float64, float64) {
	// The support is countably infinite; bound it where the
	// upper tail becomes negligible.
	return 0, math.Ceil(d.lambda + 10*math.Sqrt(d.lambda) + 10)
}

func (d *PoissonDist) Step() float64 {
	return 1
}

func (d *PoissonDist) Mean() float64     { return d.lambda }
func (d *PoissonDist) Variance() float64 { return d.lambda }

// Rand draws a variate by Knuth's product method. Large means are
// split into smaller ones using the additivity of independent
// Poisson counts, keeping the uniform product away from underflow.
func (d *PoissonDist) Rand(rnd *rand.Rand) float64 {
	var count float64
	lambda := d.lambda
	for lambda > 30 {
		count += poissonKnuth(rnd, 30)
		lambda -= 30
	}
	return count + poissonKnuth(rnd, lambda)
}

func poissonKnuth(rnd *rand.Rand, lambda float64) float64 {
	limit := math.Exp(-lambda)
	k := -1.0
	for prod := 1.0; prod > limit; prod *= rnd.Float64() {
		k++
	}
	return k
}

// ToVector returns [lambda].
func (d *PoissonDist) ToVector() []float64 {
	return []float64{d.lambda}
}

func (d *PoissonDist) FromVector(v []float64) error {
	if err := checkVectorLen(v, 1); err != nil {
		return err
	}
	return d.SetLambda(v[0])
}
