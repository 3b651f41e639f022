// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// A Vectorizable exposes its free parameters as a flat ordered
// vector, for use by generic vector-based optimizers.
//
// ToVector returns a fresh slice on every call; it never aliases
// internal state. FromVector rejects a nil or wrong-length vector
// with ErrInvalidParameter and otherwise overwrites the full
// parameter state, so that a following ToVector returns an equal
// vector.
type Vectorizable interface {
	ToVector() []float64
	FromVector(v []float64) error
}
