// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"github.com/probkit/probdist/mathx"
)

// BinomialDist is a binomial distribution: the number of successes
// in N independent Bernoulli trials with success probability P.
//
// If N=1, this is equivalent to the Bernoulli distribution.
type BinomialDist struct {
	n int
	p float64
}

// NewBinomialDist returns the binomial distribution with n trials
// and success probability p. n must be non-negative and p in [0, 1].
func NewBinomialDist(n int, p float64) (*BinomialDist, error) {
	d := &BinomialDist{}
	if err := d.SetN(n); err != nil {
		return nil, err
	}
	if err := d.SetP(p); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *BinomialDist) N() int     { return d.n }
func (d *BinomialDist) P() float64 { return d.p }

func (d *BinomialDist) SetN(n int) error {
	if n < 0 {
		return invalidf("n must be non-negative, got %d", n)
	}
	d.n = n
	return nil
}

func (d *BinomialDist) SetP(p float64) error {
	if err := checkProbability("p", p); err != nil {
		return err
	}
	d.p = p
	return nil
}

// Clone returns an independent copy of d.
func (d *BinomialDist) Clone() *BinomialDist {
	c := *d
	return &c
}

// PMF is the probability of getting exactly k successes in d.N
// independent Bernoulli trials with probability d.P. It is 0 for
// fractional k.
func (d *BinomialDist) PMF(k float64) float64 {
	return math.Exp(d.LogPMF(k))
}

// LogPMF is computed in log space. The linear-space product of the
// binomial coefficient and the power terms overflows for n in the
// thousands even though the mass itself is representable.
func (d *BinomialDist) LogPMF(k float64) float64 {
	if !isInt(k) || k < 0 || k > float64(d.n) {
		return math.Inf(-1)
	}
	ki := int(k)
	// log(p) and log1p(-p) are not usable at the endpoints, where
	// the distribution is a point mass.
	switch d.p {
	case 0:
		if ki == 0 {
			return 0
		}
		return math.Inf(-1)
	case 1:
		if ki == d.n {
			return 0
		}
		return math.Inf(-1)
	}
	return mathx.LogChoose(d.n, ki) + k*math.Log(d.p) + float64(d.n-ki)*math.Log1p(-d.p)
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d *BinomialDist) CDF(k float64) float64 {
	k = math.Floor(k)
	// Compare in float space: converting an out-of-range float
	// (including +Inf) to int is implementation-dependent.
	if k < 0 {
		return 0
	} else if k >= float64(d.n) {
		return 1
	}

	return mathx.BetaInc(1-d.p, float64(d.n)-k, k+1)
}

func (d *BinomialDist) InvCDF(p float64) float64 {
	return invCDFScan(d, p)
}

func (d *BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.n)
}

func (d *BinomialDist) Step() float64 {
	return 1
}

func (d *BinomialDist) Mean() float64 {
	return float64(d.n) * d.p
}

func (d *BinomialDist) Variance() float64 {
	return float64(d.n) * d.p * (1 - d.p)
}

// Rand draws a variate by inversion of the CDF.
func (d *BinomialDist) Rand(rnd *rand.Rand) float64 {
	return invCDFScan(d, rnd.Float64())
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d *BinomialDist) NormalApprox() *NormalDist {
	return &NormalDist{mu: d.Mean(), sigma: math.Sqrt(d.Variance())}
}

// ToVector returns [n, p]. The trial count is carried as a float and
// must decode to an exact non-negative integer.
func (d *BinomialDist) ToVector() []float64 {
	return []float64{float64(d.n), d.p}
}

func (d *BinomialDist) FromVector(v []float64) error {
	if err := checkVectorLen(v, 2); err != nil {
		return err
	}
	if !isInt(v[0]) || v[0] < 0 {
		return invalidf("n must be a non-negative integer, got %v", v[0])
	}
	if err := checkProbability("p", v[1]); err != nil {
		return err
	}
	d.n, d.p = int(v[0]), v[1]
	return nil
}
