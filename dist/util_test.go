// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 0))
}

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func aeqTol(expect, got, tol float64) bool {
	return math.Abs(expect-got) <= tol
}

// testFunc checks f against a table of expected values.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for x, want := range vals {
		if got := f(x); !aeq(want, got) {
			t.Errorf("want %s(%v) = %v, got %v", name, x, want, got)
		}
	}
}

// testDiscreteCDF checks that d's CDF is the running sum of its PMF
// over the support, is 0 below it and 1 above it, and steps exactly
// by the PMF at each support point.
func testDiscreteCDF(t *testing.T, name string, d Discrete) {
	t.Helper()
	lo, hi := d.Bounds()
	if c := d.CDF(lo - 1); c != 0 {
		t.Errorf("%s: want CDF(%v) = 0, got %v", name, lo-1, c)
	}
	var sum float64
	for k := lo; k <= hi; k += d.Step() {
		sum += d.PMF(k)
		if got := d.CDF(k); !aeq(sum, got) {
			t.Errorf("%s: want CDF(%v) = %v, got %v", name, k, sum, got)
		}
		// Flat between support points.
		if got := d.CDF(k + d.Step()/2); !aeq(sum, got) {
			t.Errorf("%s: want CDF(%v) = %v, got %v", name, k+d.Step()/2, sum, got)
		}
	}
	if !aeqTol(1, sum, 1e-5) {
		t.Errorf("%s: PMF sums to %v over the support, want 1", name, sum)
	}
	if c := d.CDF(hi + 1); !aeq(1, c) {
		t.Errorf("%s: want CDF(%v) = 1, got %v", name, hi+1, c)
	}
	// The CDF limits must hold at the infinities themselves, not
	// just past the bounds.
	if c := d.CDF(math.Inf(-1)); c != 0 {
		t.Errorf("%s: want CDF(-Inf) = 0, got %v", name, c)
	}
	if c := d.CDF(math.Inf(1)); c != 1 {
		t.Errorf("%s: want CDF(+Inf) = 1, got %v", name, c)
	}
	if got := d.PMF(math.Inf(1)); got != 0 {
		t.Errorf("%s: want PMF(+Inf) = 0, got %v", name, got)
	}
}

// testDiscreteContract checks the generic discrete contracts:
// fractional and out-of-support inputs have zero mass, LogPMF is the
// log of PMF, and InvCDF returns the smallest support point at or
// above each probability.
func testDiscreteContract(t *testing.T, name string, d Discrete) {
	t.Helper()
	lo, hi := d.Bounds()
	for _, k := range []float64{lo - 1, lo - 0.5, lo + 0.25, hi + 1} {
		if k >= lo && k <= hi && k == math.Trunc(k) {
			continue
		}
		if got := d.PMF(k); got != 0 {
			t.Errorf("%s: want PMF(%v) = 0, got %v", name, k, got)
		}
	}
	for k := lo; k <= hi; k += d.Step() {
		pmf, lpmf := d.PMF(k), d.LogPMF(k)
		if pmf == 0 {
			if !math.IsInf(lpmf, -1) {
				t.Errorf("%s: want LogPMF(%v) = -Inf, got %v", name, k, lpmf)
			}
			continue
		}
		if got := math.Exp(lpmf); !aeqTol(pmf, got, 1e-12*pmf) {
			t.Errorf("%s: want exp(LogPMF(%v)) = %v, got %v", name, k, pmf, got)
		}
	}
	for _, p := range []float64{0.01, 0.1, 0.5, 0.9, 0.99} {
		k := d.InvCDF(p)
		if d.CDF(k) < p {
			t.Errorf("%s: CDF(InvCDF(%v)) = %v < %v", name, p, d.CDF(k), p)
		}
		if prev := k - d.Step(); prev >= lo && d.CDF(prev) >= p {
			t.Errorf("%s: InvCDF(%v) = %v is not the smallest support point", name, p, k)
		}
	}
	if got := d.InvCDF(0); got != lo {
		t.Errorf("%s: want InvCDF(0) = %v, got %v", name, lo, got)
	}
}

// testContinuousContract checks the generic continuous contracts:
// the PDF integrates to about 1, LogPDF is the log of PDF, the CDF
// is non-decreasing from about 0 to about 1, and InvCDF inverts it.
func testContinuousContract(t *testing.T, name string, d Continuous) {
	t.Helper()
	lo, hi := d.Bounds()

	// Trapezoid integral of the PDF across the bounds.
	const steps = 4000
	var integral float64
	w := (hi - lo) / steps
	for i := 0; i <= steps; i++ {
		x := lo + float64(i)*w
		y := d.PDF(x)
		if y < 0 {
			t.Fatalf("%s: PDF(%v) = %v is negative", name, x, y)
		}
		if math.IsInf(y, 1) {
			// Integrable singularity at a support edge;
			// skip the endpoint.
			continue
		}
		if i == 0 || i == steps {
			y /= 2
		}
		integral += y * w
	}
	if !aeqTol(1, integral, 0.02) {
		t.Errorf("%s: PDF integrates to %v over [%v, %v], want ≈1", name, integral, lo, hi)
	}

	prev := math.Inf(-1)
	for i := 0; i <= 50; i++ {
		x := lo + (hi-lo)*float64(i)/50
		pdf, lpdf := d.PDF(x), d.LogPDF(x)
		if pdf > 0 && !math.IsInf(pdf, 1) {
			if got := math.Exp(lpdf); !aeqTol(pdf, got, 1e-9*pdf) {
				t.Errorf("%s: want exp(LogPDF(%v)) = %v, got %v", name, x, pdf, got)
			}
		}
		cdf := d.CDF(x)
		if cdf < prev {
			t.Errorf("%s: CDF(%v) = %v < %v, not non-decreasing", name, x, cdf, prev)
		}
		prev = cdf
	}
	if c := d.CDF(lo - 100*(hi-lo)); !aeqTol(0, c, 1e-3) {
		t.Errorf("%s: want CDF far below support ≈ 0, got %v", name, c)
	}
	if c := d.CDF(hi + 100*(hi-lo)); !aeqTol(1, c, 1e-3) {
		t.Errorf("%s: want CDF far above support ≈ 1, got %v", name, c)
	}

	for _, p := range []float64{0.05, 0.25, 0.5, 0.75, 0.95} {
		x := d.InvCDF(p)
		if got := d.CDF(x); !aeqTol(p, got, 1e-6) {
			t.Errorf("%s: want CDF(InvCDF(%v)) = %v, got %v", name, p, p, got)
		}
	}
}

// testVectorRoundTrip checks the parameter vector codec contracts.
func testVectorRoundTrip(t *testing.T, name string, d Vectorizable) {
	t.Helper()
	v := d.ToVector()
	if v2 := d.ToVector(); &v[0] == &v2[0] {
		t.Errorf("%s: ToVector returns an alias of internal state", name)
	}
	if err := d.FromVector(v); err != nil {
		t.Errorf("%s: FromVector(ToVector()) failed: %v", name, err)
	}
	after := d.ToVector()
	for i := range v {
		if v[i] != after[i] {
			t.Errorf("%s: vector round trip changed parameter %d: %v != %v", name, i, v[i], after[i])
		}
	}
	if err := d.FromVector(nil); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("%s: want ErrInvalidParameter for nil vector, got %v", name, err)
	}
	if err := d.FromVector(make([]float64, len(v)+1)); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("%s: want ErrInvalidParameter for wrong length, got %v", name, err)
	}
	// The failed calls must not have modified state.
	after = d.ToVector()
	for i := range v {
		if v[i] != after[i] {
			t.Errorf("%s: failed FromVector modified parameter %d", name, i)
		}
	}
}

// testMoments draws n variates from d with a fixed seed and checks
// the sample mean and variance against the closed-form moments with
// standard-error-scaled tolerances.
func testMoments(t *testing.T, name string, d interface {
	Dist
	Rander
}, n int) {
	t.Helper()
	rnd := rand.New(rand.NewPCG(1, 2))
	mean, variance := d.Mean(), d.Variance()

	var sum float64
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = d.Rand(rnd)
		sum += xs[i]
	}
	sampleMean := sum / float64(n)
	var m2 float64
	for _, x := range xs {
		dx := x - sampleMean
		m2 += dx * dx
	}
	sampleVar := m2 / float64(n-1)

	se := math.Sqrt(variance / float64(n))
	if !aeqTol(mean, sampleMean, 6*se+1e-12) {
		t.Errorf("%s: sample mean %v, want %v ± %v", name, sampleMean, mean, 6*se)
	}
	if !aeqTol(variance, sampleVar, 0.1*variance+1e-12) {
		t.Errorf("%s: sample variance %v, want %v ± 10%%", name, sampleVar, variance)
	}
}

// testSeedReproducible checks that the same seeded source yields the
// same draw sequence.
func testSeedReproducible(t *testing.T, name string, d Rander) {
	t.Helper()
	a := Sample(d, rand.New(rand.NewPCG(7, 7)), 16)
	b := Sample(d, rand.New(rand.NewPCG(7, 7)), 16)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("%s: draw %d differs between identically seeded sources: %v != %v", name, i, a[i], b[i])
		}
	}
}
