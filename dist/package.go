// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist is a catalog of closed-form probability distributions.
//
// Each distribution validates its parameters on construction and on
// every setter, evaluates its mass or density function (and the log of
// it), its cumulative distribution function and quantile, reports its
// closed-form moments, draws variates from an injected random source,
// and round-trips its parameters through a flat vector for use by
// generic optimizers.
package dist // import "github.com/probkit/probdist/dist"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
