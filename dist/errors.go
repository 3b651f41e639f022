// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	stderrors "errors"
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidParameter is reported when a constructor, setter, or
// vector decoder is given a value outside the mathematically valid
// domain of a parameter. The offending call leaves the previous
// parameter state intact. Test for it with errors.Is.
var ErrInvalidParameter = stderrors.New("invalid distribution parameter")

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}

// checkPositive reports an error unless v is finite and > 0.
func checkPositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return invalidf("%s must be positive, got %v", name, v)
	}
	return nil
}

// checkFinite reports an error unless v is a finite number.
func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidf("%s must be finite, got %v", name, v)
	}
	return nil
}

// checkProbability reports an error unless v is in [0, 1].
func checkProbability(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return invalidf("%s must be in [0, 1], got %v", name, v)
	}
	return nil
}

// checkVectorLen reports an error unless v is non-nil with exactly n
// elements.
func checkVectorLen(v []float64, n int) error {
	if v == nil {
		return invalidf("parameter vector is nil")
	}
	if len(v) != n {
		return invalidf("parameter vector has length %d, want %d", len(v), n)
	}
	return nil
}
