// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probkit/probdist/dist"
)

func TestNormalMixtureSeparated(t *testing.T) {
	// Two well-separated clusters of unequal size.
	c1, _ := dist.NewNormalDist(0, 1)
	c2, _ := dist.NewNormalDist(10, 1)
	rnd := testRand()
	xs := append(dist.Sample(c1, rnd, 3000), dist.Sample(c2, rnd, 7000)...)

	m, ll, err := NormalMixture(Sample{Xs: xs}, 2, EMConfig{})
	require.NoError(t, err)
	require.Equal(t, 2, m.K())
	require.False(t, ll == 0)

	// Order the components by mean before comparing.
	type comp struct{ mu, sigma, w float64 }
	comps := make([]comp, 2)
	ws := m.Weights()
	for i := range comps {
		c := m.Component(i).(*dist.NormalDist)
		comps[i] = comp{c.Mu(), c.Sigma(), ws[i]}
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i].mu < comps[j].mu })

	require.InDelta(t, 0.0, comps[0].mu, 0.15)
	require.InDelta(t, 10.0, comps[1].mu, 0.15)
	require.InDelta(t, 1.0, comps[0].sigma, 0.1)
	require.InDelta(t, 1.0, comps[1].sigma, 0.1)
	require.InDelta(t, 0.3, comps[0].w, 0.03)
	require.InDelta(t, 0.7, comps[1].w, 0.03)
}

func TestNormalMixtureSingle(t *testing.T) {
	// One component reduces to the plain normal fit.
	src, _ := dist.NewNormalDist(5, 2)
	xs := dist.Sample(src, testRand(), 10000)

	m, _, err := NormalMixture(Sample{Xs: xs}, 1, EMConfig{})
	require.NoError(t, err)
	c := m.Component(0).(*dist.NormalDist)
	require.InDelta(t, 5.0, c.Mu(), 0.1)
	require.InDelta(t, 2.0, c.Sigma(), 0.1)
	require.Equal(t, []float64{1}, m.Weights())
}

func TestNormalMixtureDeterministic(t *testing.T) {
	src, _ := dist.NewNormalDist(0, 1)
	xs := dist.Sample(src, testRand(), 500)

	a, lla, err := NormalMixture(Sample{Xs: xs}, 2, EMConfig{})
	require.NoError(t, err)
	b, llb, err := NormalMixture(Sample{Xs: xs}, 2, EMConfig{})
	require.NoError(t, err)
	require.Equal(t, lla, llb)
	require.Equal(t, a.ToVector(), b.ToVector())
}

func TestNormalMixtureProgress(t *testing.T) {
	src, _ := dist.NewNormalDist(0, 1)
	xs := dist.Sample(src, testRand(), 200)

	var iters []int
	var lls []float64
	_, ll, err := NormalMixture(Sample{Xs: xs}, 2, EMConfig{
		MaxIter: 5,
		Progress: func(iter int, logLik float64) {
			iters = append(iters, iter)
			lls = append(lls, logLik)
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, iters)
	require.LessOrEqual(t, len(iters), 5)
	require.Equal(t, 1, iters[0])
	// EM never decreases the likelihood.
	for i := 1; i < len(lls); i++ {
		require.GreaterOrEqual(t, lls[i], lls[i-1]-1e-9)
	}
	require.Equal(t, ll, lls[len(lls)-1])
}

func TestNormalMixtureInvalid(t *testing.T) {
	_, _, err := NormalMixture(Sample{}, 2, EMConfig{})
	require.ErrorIs(t, err, dist.ErrInvalidParameter)
	_, _, err = NormalMixture(Sample{Xs: []float64{1, 2, 3}}, 0, EMConfig{})
	require.ErrorIs(t, err, dist.ErrInvalidParameter)
	_, _, err = NormalMixture(Sample{Xs: []float64{4, 4, 4}}, 2, EMConfig{})
	require.ErrorIs(t, err, dist.ErrInvalidParameter, "zero variance")
}
