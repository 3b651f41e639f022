// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// MVNormalDist is a multivariate normal distribution with mean
// vector Mu and covariance matrix Sigma.
type MVNormalDist struct {
	mu    []float64
	sigma *mat.SymDense
	chol  mat.Cholesky
	lower *mat.TriDense
}

// NewMVNormalDist returns the multivariate normal distribution with
// mean mu and covariance sigma. sigma must be a symmetric
// positive-definite matrix of the same dimension as mu. Both
// arguments are copied.
func NewMVNormalDist(mu []float64, sigma *mat.SymDense) (*MVNormalDist, error) {
	if len(mu) == 0 {
		return nil, invalidf("mean vector is empty")
	}
	if sigma == nil {
		return nil, invalidf("covariance matrix is nil")
	}
	if n, _ := sigma.Dims(); n != len(mu) {
		return nil, invalidf("covariance is %dx%d for a mean of dimension %d", n, n, len(mu))
	}
	for i, m := range mu {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return nil, invalidf("mu %d must be finite, got %v", i, m)
		}
	}
	d := &MVNormalDist{
		mu:    append([]float64(nil), mu...),
		sigma: mat.NewSymDense(len(mu), nil),
	}
	d.sigma.CopySym(sigma)
	if !d.chol.Factorize(d.sigma) {
		return nil, invalidf("covariance matrix is not positive definite")
	}
	d.lower = mat.NewTriDense(len(mu), mat.Lower, nil)
	d.chol.LTo(d.lower)
	return d, nil
}

// Dim returns the dimension of the distribution.
func (d *MVNormalDist) Dim() int { return len(d.mu) }

// Mu returns a copy of the mean vector.
func (d *MVNormalDist) Mu() []float64 {
	return append([]float64(nil), d.mu...)
}

// Sigma returns a copy of the covariance matrix.
func (d *MVNormalDist) Sigma() *mat.SymDense {
	s := mat.NewSymDense(len(d.mu), nil)
	s.CopySym(d.sigma)
	return s
}

// SetMu replaces the mean vector. It copies mu.
func (d *MVNormalDist) SetMu(mu []float64) error {
	if err := checkVectorLen(mu, len(d.mu)); err != nil {
		return err
	}
	for i, m := range mu {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return invalidf("mu %d must be finite, got %v", i, m)
		}
	}
	copy(d.mu, mu)
	return nil
}

// SetSigma replaces the covariance matrix, which must be positive
// definite. It copies sigma.
func (d *MVNormalDist) SetSigma(sigma *mat.SymDense) error {
	if sigma == nil {
		return invalidf("covariance matrix is nil")
	}
	if n, _ := sigma.Dims(); n != len(d.mu) {
		return invalidf("covariance is %dx%d, want %dx%d", n, n, len(d.mu), len(d.mu))
	}
	var chol mat.Cholesky
	if !chol.Factorize(sigma) {
		return invalidf("covariance matrix is not positive definite")
	}
	d.sigma.CopySym(sigma)
	d.chol = chol
	d.chol.LTo(d.lower)
	return nil
}

// Clone returns an independent copy of d. The mean and covariance
// are deep-copied.
func (d *MVNormalDist) Clone() *MVNormalDist {
	c, err := NewMVNormalDist(d.mu, d.sigma)
	if err != nil {
		// The receiver's covariance already factorized.
		panic(err)
	}
	return c
}

func (d *MVNormalDist) PDF(x []float64) float64 {
	return math.Exp(d.LogPDF(x))
}

func (d *MVNormalDist) LogPDF(x []float64) float64 {
	if len(x) != len(d.mu) {
		return math.Inf(-1)
	}
	n := len(d.mu)
	diff := mat.NewVecDense(n, nil)
	for i := range d.mu {
		diff.SetVec(i, x[i]-d.mu[i])
	}
	var solved mat.VecDense
	if err := d.chol.SolveVecTo(&solved, diff); err != nil {
		return math.Inf(-1)
	}
	maha := mat.Dot(diff, &solved)
	return -0.5 * (float64(n)*math.Log(2*math.Pi) + d.chol.LogDet() + maha)
}

// Mean returns a copy of the mean vector.
func (d *MVNormalDist) Mean() []float64 {
	return d.Mu()
}

// Variance returns the per-coordinate marginal variances, the
// diagonal of the covariance.
func (d *MVNormalDist) Variance() []float64 {
	vs := make([]float64, len(d.mu))
	for i := range vs {
		vs[i] = d.sigma.At(i, i)
	}
	return vs
}

// Marginal returns the univariate marginal distribution of
// coordinate i.
func (d *MVNormalDist) Marginal(i int) *NormalDist {
	return &NormalDist{mu: d.mu[i], sigma: math.Sqrt(d.sigma.At(i, i))}
}

// Rand draws a variate as mu + L*z for the Cholesky factor L and a
// vector z of standard normal draws.
func (d *MVNormalDist) Rand(rnd *rand.Rand) []float64 {
	n := len(d.mu)
	z := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		z.SetVec(i, rnd.NormFloat64())
	}
	var lz mat.VecDense
	lz.MulVec(d.lower, z)
	x := make([]float64, n)
	for i := range x {
		x[i] = d.mu[i] + lz.AtVec(i)
	}
	return x
}

// ToVector returns the mean vector followed by the covariance matrix
// in row-major order.
func (d *MVNormalDist) ToVector() []float64 {
	n := len(d.mu)
	v := make([]float64, 0, n+n*n)
	v = append(v, d.mu...)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v = append(v, d.sigma.At(i, j))
		}
	}
	return v
}

// FromVector overwrites the mean and covariance from v, which must
// have length Dim + Dim². The covariance block must be symmetric
// positive definite; on failure no state is modified.
func (d *MVNormalDist) FromVector(v []float64) error {
	n := len(d.mu)
	if err := checkVectorLen(v, n+n*n); err != nil {
		return err
	}
	for i, m := range v[:n] {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return invalidf("mu %d must be finite, got %v", i, m)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v[n+i*n+j] != v[n+j*n+i] {
				return invalidf("covariance block is not symmetric at (%d, %d)", i, j)
			}
		}
	}
	sigma := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sigma.SetSym(i, j, v[n+i*n+j])
		}
	}
	if err := d.SetSigma(sigma); err != nil {
		return err
	}
	copy(d.mu, v[:n])
	return nil
}
