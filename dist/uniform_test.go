// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"testing"
)

func TestUniformDist(t *testing.T) {
	d, err := NewUniformDist(2, 5)
	if err != nil {
		t.Fatal(err)
	}
	third := 1.0 / 3
	testFunc(t, "PDF", d.PDF, map[float64]float64{
		1.9: 0,
		2:   third,
		3:   third,
		5:   third,
		5.1: 0,
	})
	testFunc(t, "CDF", d.CDF, map[float64]float64{
		1:   0,
		2:   0,
		3:   third,
		3.5: 0.5,
		5:   1,
		6:   1,
	})
	if got := d.InvCDF(0.5); !aeq(3.5, got) {
		t.Errorf("want InvCDF(0.5) = 3.5, got %v", got)
	}
	if m, v := d.Mean(), d.Variance(); !aeq(3.5, m) || !aeq(0.75, v) {
		t.Errorf("want mean 3.5, variance 0.75; got %v, %v", m, v)
	}

	testContinuousContract(t, "UniformDist", d)
	testVectorRoundTrip(t, "UniformDist", d)
	testMoments(t, "UniformDist", d, 100000)
	testSeedReproducible(t, "UniformDist", d)
}

func TestUniformDistInvalid(t *testing.T) {
	// A degenerate or reversed interval is rejected.
	if _, err := NewUniformDist(1, 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("want ErrInvalidParameter for min = max, got %v", err)
	}
	if _, err := NewUniformDist(2, 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("want ErrInvalidParameter for min > max, got %v", err)
	}

	d, _ := NewUniformDist(0, 1)
	if err := d.SetBounds(3, 2); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("want ErrInvalidParameter, got %v", err)
	}
	if d.Min() != 0 || d.Max() != 1 {
		t.Errorf("failed SetBounds changed state to (%v, %v)", d.Min(), d.Max())
	}
}
