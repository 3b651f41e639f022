// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"testing"
)

func TestGeometricDist(t *testing.T) {
	d, err := NewGeometricDist(0.3)
	if err != nil {
		t.Fatal(err)
	}
	testFunc(t, "PMF", d.PMF, map[float64]float64{
		-1:  0,
		0:   0.3,
		1:   0.21,
		1.5: 0,
		2:   0.147,
		3:   0.1029,
		5:   0.050421,
	})
	testFunc(t, "CDF", d.CDF, map[float64]float64{
		-1:  0,
		0:   0.3,
		1:   0.51,
		2:   0.657,
		3.9: 0.7599,
		5:   0.882351,
	})
	if m, v := d.Mean(), d.Variance(); !aeq(7.0/3, m) || !aeq(70.0/9, v) {
		t.Errorf("want mean 7/3, variance 70/9; got %v, %v", m, v)
	}
	if got := d.InvCDF(0.5); got != 1 {
		t.Errorf("want InvCDF(0.5) = 1, got %v", got)
	}
	if got := d.InvCDF(0.6); got != 2 {
		t.Errorf("want InvCDF(0.6) = 2, got %v", got)
	}

	testDiscreteCDF(t, "GeometricDist", d)
	testDiscreteContract(t, "GeometricDist", d)
	testVectorRoundTrip(t, "GeometricDist", d)
	testMoments(t, "GeometricDist", d, 100000)
	testSeedReproducible(t, "GeometricDist", d)
}

func TestGeometricDistCertain(t *testing.T) {
	// p=1 always succeeds on the first trial.
	d, err := NewGeometricDist(1)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.PMF(0); got != 1 {
		t.Errorf("want PMF(0) = 1, got %v", got)
	}
	if got := d.Rand(newTestRand()); got != 0 {
		t.Errorf("want Rand() = 0, got %v", got)
	}
}

func TestGeometricDistInvalid(t *testing.T) {
	for _, p := range []float64{0, -0.5, 1.5} {
		if _, err := NewGeometricDist(p); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("want ErrInvalidParameter for p=%v, got %v", p, err)
		}
	}
}
