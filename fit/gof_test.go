// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probkit/probdist/dist"
)

func TestKSTestAccepts(t *testing.T) {
	src := dist.StdNormal()
	xs := dist.Sample(src, testRand(), 2000)

	res, err := KSTest(xs, src.CDF)
	require.NoError(t, err)
	require.Equal(t, 2000, res.N)
	// The sample really is drawn from the hypothesized
	// distribution, so D stays small and P stays far from 0.
	require.Less(t, res.D, 0.05)
	require.Greater(t, res.P, 1e-4)
}

func TestKSTestRejects(t *testing.T) {
	src := dist.StdNormal()
	xs := dist.Sample(src, testRand(), 2000)

	shifted, _ := dist.NewNormalDist(1, 1)
	res, err := KSTest(xs, shifted.CDF)
	require.NoError(t, err)
	// A unit mean shift gives D around 0.38; the p-value is
	// astronomically small.
	require.Greater(t, res.D, 0.2)
	require.Less(t, res.P, 1e-10)
}

func TestKSTestSamplers(t *testing.T) {
	// End-to-end check that the samplers follow their own CDFs.
	gamma, _ := dist.NewGammaDist(2.5, 1.5)
	weibull, _ := dist.NewWeibullDist(1.5, 2)
	mix, _ := func() (*dist.MixtureDist, error) {
		c1, _ := dist.NewNormalDist(0, 1)
		c2, _ := dist.NewNormalDist(4, 2)
		return dist.NewMixtureDist([]dist.Continuous{c1, c2}, []float64{0.4, 0.6})
	}()
	cases := []struct {
		name string
		d    dist.Continuous
	}{
		{"gamma", gamma},
		{"weibull", weibull},
		{"mixture", mix},
	}
	for _, c := range cases {
		xs := dist.Sample(c.d, testRand(), 2000)
		res, err := KSTest(xs, c.d.CDF)
		require.NoError(t, err)
		require.Greaterf(t, res.P, 1e-4, "%s sampler does not match its CDF (D=%v)", c.name, res.D)
	}
}

func TestKSTestInvalid(t *testing.T) {
	_, err := KSTest(nil, dist.StdNormal().CDF)
	require.ErrorIs(t, err, dist.ErrInvalidParameter)
}

func TestKSTestDoesNotMutate(t *testing.T) {
	xs := []float64{3, 1, 2}
	_, err := KSTest(xs, dist.StdNormal().CDF)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 1, 2}, xs)
}

func TestChiSquareTest(t *testing.T) {
	// A fair six-sided die. The observed counts are mildly uneven.
	counts := []float64{105, 95, 102, 98, 100, 100}
	probs := []float64{1.0 / 6, 1.0 / 6, 1.0 / 6, 1.0 / 6, 1.0 / 6, 1.0 / 6}
	res, err := ChiSquareTest(counts, probs)
	require.NoError(t, err)
	require.Equal(t, 5, res.DoF)
	require.InDelta(t, 0.58, res.X2, 1e-9)
	require.Greater(t, res.P, 0.9)

	// Concentrating the mass in one category is decisive.
	res, err = ChiSquareTest([]float64{600, 0, 0, 0, 0, 0}, probs)
	require.NoError(t, err)
	require.Less(t, res.P, 1e-10)
}

func TestChiSquareTestCritical(t *testing.T) {
	// The textbook critical value: X2 = 3.84 at 1 degree of
	// freedom sits right at P = 0.05.
	res, err := ChiSquareTest([]float64{69.6, 30.4}, []float64{0.6, 0.4})
	require.NoError(t, err)
	require.Equal(t, 1, res.DoF)
	require.InDelta(t, 3.84, res.X2, 0.01)
	require.InDelta(t, 0.05, res.P, 0.002)
}

func TestChiSquareTestSampler(t *testing.T) {
	// The binomial sampler's category frequencies match its PMF.
	d, _ := dist.NewBinomialDist(5, 0.3)
	rnd := testRand()
	counts := make([]float64, 6)
	probs := make([]float64, 6)
	for k := 0; k <= 5; k++ {
		probs[k] = d.PMF(float64(k))
	}
	for i := 0; i < 30000; i++ {
		counts[int(d.Rand(rnd))]++
	}
	res, err := ChiSquareTest(counts, probs)
	require.NoError(t, err)
	require.Greater(t, res.P, 1e-4)
}

func TestChiSquareTestInvalid(t *testing.T) {
	_, err := ChiSquareTest(nil, nil)
	require.ErrorIs(t, err, dist.ErrInvalidParameter)
	_, err = ChiSquareTest([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, dist.ErrInvalidParameter, "length mismatch")
	_, err = ChiSquareTest([]float64{1, -2}, []float64{0.5, 0.5})
	require.ErrorIs(t, err, dist.ErrInvalidParameter, "negative count")
	_, err = ChiSquareTest([]float64{0, 0}, []float64{0.5, 0.5})
	require.ErrorIs(t, err, dist.ErrInvalidParameter, "zero total")
	_, err = ChiSquareTest([]float64{1, 2}, []float64{0.9, 0.3})
	require.ErrorIs(t, err, dist.ErrInvalidParameter, "non-simplex probabilities")
	_, err = ChiSquareTest([]float64{1, 2}, []float64{1, 0})
	require.ErrorIs(t, err, dist.ErrInvalidParameter, "zero probability")
}
