// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"math"
	"testing"
)

func testMixture(t *testing.T) *MixtureDist {
	t.Helper()
	c1, _ := NewNormalDist(0, 1)
	c2, _ := NewNormalDist(4, 2)
	d, err := NewMixtureDist([]Continuous{c1, c2}, []float64{0.4, 0.6})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestMixtureDist(t *testing.T) {
	d := testMixture(t)
	testFunc(t, "PDF", d.PDF, map[float64]float64{
		0: 0.17577420211452952,
		2: 0.09418760396101825,
		4: 0.11973621621073577,
	})
	testFunc(t, "CDF", d.CDF, map[float64]float64{
		0: 0.21365007916890755,
		2: 0.48609309957960256,
		4: 0.6999873315032668,
	})
	if m := d.Mean(); !aeq(2.4, m) {
		t.Errorf("want mean 2.4, got %v", m)
	}
	if v := d.Variance(); !aeq(6.64, v) {
		t.Errorf("want variance 6.64, got %v", v)
	}
	if got := d.InvCDF(0.5); !aeq(2.1480954486242156, got) {
		t.Errorf("want InvCDF(0.5) = 2.1481, got %v", got)
	}

	testContinuousContract(t, "MixtureDist", d)
	testVectorRoundTrip(t, "MixtureDist", d)
	testMoments(t, "MixtureDist", d, 200000)
	testSeedReproducible(t, "MixtureDist", d)
}

func TestMixtureDistLogPDFTail(t *testing.T) {
	d := testMixture(t)
	// Far enough out that every component density underflows to 0
	// in linear space; the log density must stay finite.
	if got := d.PDF(-80); got != 0 {
		t.Errorf("want PDF(-80) = 0, got %v", got)
	}
	if got := d.LogPDF(-80); !aeqTol(-884.1229113375306, got, 1e-8) {
		t.Errorf("want LogPDF(-80) = -884.12291, got %v", got)
	}
	// And agree with the density where it does not underflow.
	if got := d.LogPDF(2); !aeqTol(math.Log(d.PDF(2)), got, 1e-12) {
		t.Errorf("want LogPDF(2) = log(PDF(2)), got %v", got)
	}
}

func TestMixtureDistVector(t *testing.T) {
	d := testMixture(t)
	// Weights first, then each component's parameters in order.
	want := []float64{0.4, 0.6, 0, 1, 4, 2}
	got := d.ToVector()
	if len(got) != len(want) {
		t.Fatalf("want vector %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want vector %v, got %v", want, got)
		}
	}

	if err := d.FromVector([]float64{0.5, 0.5, 1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	if w := d.Weights(); w[0] != 0.5 {
		t.Errorf("want weight 0.5, got %v", w[0])
	}
	if c := d.Component(0).(*NormalDist); c.Mu() != 1 || c.Sigma() != 2 {
		t.Errorf("component 0 is (%v, %v), want (1, 2)", c.Mu(), c.Sigma())
	}
}

func TestMixtureDistVectorRollback(t *testing.T) {
	d := testMixture(t)
	before := d.ToVector()

	// The second component's sigma is invalid; the first component
	// must be rolled back.
	err := d.FromVector([]float64{0.5, 0.5, 9, 9, 0, -1})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("want ErrInvalidParameter, got %v", err)
	}
	after := d.ToVector()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("failed FromVector left partial state: %v != %v", before, after)
		}
	}
}

func TestMixtureDistInvalid(t *testing.T) {
	c, _ := NewNormalDist(0, 1)
	if _, err := NewMixtureDist(nil, nil); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("want ErrInvalidParameter for no components, got %v", err)
	}
	if _, err := NewMixtureDist([]Continuous{c}, []float64{0.5, 0.5}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("want ErrInvalidParameter for length mismatch, got %v", err)
	}
	if _, err := NewMixtureDist([]Continuous{c, c}, []float64{0.7, 0.7}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("want ErrInvalidParameter for non-simplex weights, got %v", err)
	}

	d := testMixture(t)
	if err := d.SetWeights([]float64{0.9, 0.3}); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("want ErrInvalidParameter, got %v", err)
	}
	if w := d.Weights(); w[0] != 0.4 || w[1] != 0.6 {
		t.Errorf("failed SetWeights changed weights to %v", w)
	}
}
