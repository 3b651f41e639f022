// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
	"sort"
)

// KDE represents options for constructing a kernel density estimate.
//
// Kernel density estimation is a method for constructing an estimate
// ƒ̂(x) of a unknown distribution ƒ(x) given a sample from that
// distribution. Unlike the parametric estimators, it doesn't assume
// any particular true distribution (note, however, that the resulting
// distribution depends deeply on the selected bandwidth, and many
// bandwidth estimation techniques assume normal reference rules).
//
// To construct a kernel density estimate, create an instance of KDE
// and then use the From method to provide data.
//
// The default (zero) value of KDE is a reasonable default
// configuration.
type KDE struct {
	// Kernel is the kernel to use for the KDE.
	Kernel KDEKernel

	// Bandwidth is the bandwidth to use for the KDE.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data using a default bandwidth estimator
	// (currently BandwidthScott).
	Bandwidth float64

	// BoundaryMethod is the boundary correction method to use for
	// the KDE. The default value is BoundaryReflect; however, the
	// default bounds are effectively +/-inf, which is equivalent
	// to performing no boundary correction.
	BoundaryMethod KDEBoundaryMethod

	// [BoundaryMin, BoundaryMax) specify a bounded support for
	// the KDE. If both are 0 (their default values), they are
	// treated as +/-inf.
	//
	// To specify a half-bounded support, set Min to math.Inf(-1)
	// or Max to math.Inf(1).
	BoundaryMin float64
	BoundaryMax float64
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(stdDev, weight float64) float64 {
	return 1.06 * stdDev * math.Pow(weight, -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and a robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(stdDev, iqr, weight float64) float64 {
	hScale := 1.06 * math.Pow(weight, -1.0/5)
	if stdDev < iqr/1.349 {
		// Use Silverman's Rule of Thumb
		return hScale * stdDev
	}
	// Use IQR/1.349 as a robust estimator of the standard
	// deviation of a Gaussian distribution.
	return hScale * (iqr / 1.349)
}

// KDEKernel represents a kernel to use for a KDE.
type KDEKernel int

const (
	// GaussianKernel is a Gaussian kernel with standard deviation
	// equal to the bandwidth.
	GaussianKernel KDEKernel = iota

	// EpanechnikovKernel is the parabolic kernel
	// K(u) = 0.75*(1-u²) on [-1, 1], scaled by the bandwidth.
	EpanechnikovKernel
)

// KDEBoundaryMethod represents a boundary correction method for
// constructing a KDE with bounded support.
type KDEBoundaryMethod int

const (
	// BoundaryReflect reflects the density estimate at the
	// boundaries. For example, for a KDE with support [0, inf),
	// this is equivalent to ƒ̂ᵣ(x)=ƒ̂(x)+ƒ̂(-x) for x>=0. This is a
	// simple and fast technique, but enforces that ƒ̂ᵣ'(0)=0, so
	// it may not be applicable to all distributions.
	BoundaryReflect KDEBoundaryMethod = iota

	// boundaryNone represents no boundary correction.
	//
	// This is used internally when the bounds are -/+inf.
	boundaryNone
)

// From returns the kernel density estimate for the weighted data xs.
// weights may be nil, meaning all points have weight 1; otherwise it
// must have the same length as xs with non-negative entries and a
// positive total. Both slices are copied.
func (k KDE) From(xs, weights []float64) (*KDEDist, error) {
	if len(xs) == 0 {
		return nil, invalidf("kernel density estimate needs data")
	}
	if weights != nil && len(weights) != len(xs) {
		return nil, invalidf("got %d weights for %d points", len(weights), len(xs))
	}
	var totalW float64
	if weights == nil {
		totalW = float64(len(xs))
	} else {
		for i, w := range weights {
			if math.IsNaN(w) || w < 0 {
				return nil, invalidf("weight %d is %v, must be non-negative", i, w)
			}
			totalW += w
		}
		if totalW == 0 {
			return nil, invalidf("all weights are zero")
		}
	}

	// Compute bandwidth
	h := k.Bandwidth
	if h == 0 {
		_, sd := weightedMeanStdDev(xs, weights)
		iqr := weightedQuantile(xs, weights, 0.75) - weightedQuantile(xs, weights, 0.25)
		h = BandwidthScott(sd, iqr, totalW)
	}
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return nil, invalidf("bandwidth %v is not positive", h)
	}

	if k.Kernel != GaussianKernel && k.Kernel != EpanechnikovKernel {
		return nil, invalidf("unknown kernel %d", k.Kernel)
	}

	// Normalize boundaries
	bm := k.BoundaryMethod
	min, max := k.BoundaryMin, k.BoundaryMax
	if min == 0 && max == 0 {
		min, max = math.Inf(-1), math.Inf(1)
	}
	if math.IsInf(min, -1) && math.IsInf(max, 1) {
		bm = boundaryNone
	}

	return &KDEDist{
		kernel: k.Kernel,
		h:      h,
		xs:     append([]float64(nil), xs...),
		ws:     append([]float64(nil), weights...),
		totalW: totalW,
		bm:     bm,
		min:    min,
		max:    max,
	}, nil
}

// A KDEDist is the distribution of a kernel density estimate. It
// implements Continuous.
type KDEDist struct {
	kernel KDEKernel
	h      float64
	xs, ws []float64
	totalW float64
	bm     KDEBoundaryMethod
	// [min, max) is the support.
	min, max float64
}

// Bandwidth returns the bandwidth the estimate was built with.
func (kde *KDEDist) Bandwidth() float64 { return kde.h }

func (kde *KDEDist) kernelPDF(u float64) float64 {
	switch kde.kernel {
	case EpanechnikovKernel:
		z := u / kde.h
		if z < -1 || z > 1 {
			return 0
		}
		return 0.75 * (1 - z*z) / kde.h
	default:
		z := u / kde.h
		return math.Exp(-z*z/2) * invSqrt2Pi / kde.h
	}
}

func (kde *KDEDist) kernelCDF(u float64) float64 {
	switch kde.kernel {
	case EpanechnikovKernel:
		z := u / kde.h
		switch {
		case z <= -1:
			return 0
		case z >= 1:
			return 1
		}
		return 0.25 * (2 + 3*z - z*z*z)
	default:
		return (1 + math.Erf(u/(kde.h*math.Sqrt2))) / 2
	}
}

func (kde *KDEDist) weight(i int) float64 {
	if kde.ws == nil {
		return 1
	}
	return kde.ws[i]
}

// rawPDF evaluates the uncorrected estimate: each kernel shifted to
// a data point, weighted, and averaged.
func (kde *KDEDist) rawPDF(x float64) float64 {
	var sum float64
	for i, xi := range kde.xs {
		sum += kde.weight(i) * kde.kernelPDF(x-xi)
	}
	return sum / kde.totalW
}

func (kde *KDEDist) rawCDF(x float64) float64 {
	var sum float64
	for i, xi := range kde.xs {
		sum += kde.weight(i) * kde.kernelCDF(x-xi)
	}
	return sum / kde.totalW
}

func (kde *KDEDist) PDF(x float64) float64 {
	// Apply boundary
	if x < kde.min || x >= kde.max {
		return 0
	}

	switch kde.bm {
	default:
		return kde.rawPDF(x)
	case BoundaryReflect:
		if math.IsInf(kde.max, 1) {
			return kde.rawPDF(x) + kde.rawPDF(2*kde.min-x)
		} else if math.IsInf(kde.min, -1) {
			return kde.rawPDF(x) + kde.rawPDF(2*kde.max-x)
		}
		d := 2 * (kde.max - kde.min)
		w := 2 * (x - kde.min)
		return series(func(n float64) float64 {
			// Points >= x
			return kde.rawPDF(x+n*d) + kde.rawPDF(x+n*d-w)
		}) + series(func(n float64) float64 {
			// Points < x
			return kde.rawPDF(x-(n+1)*d+w) + kde.rawPDF(x-(n+1)*d)
		})
	}
}

func (kde *KDEDist) LogPDF(x float64) float64 {
	return logOf(kde.PDF(x))
}

func (kde *KDEDist) CDF(x float64) float64 {
	// Apply boundary
	if x < kde.min {
		return 0
	} else if x >= kde.max {
		return 1
	}

	switch kde.bm {
	default:
		return kde.rawCDF(x)
	case BoundaryReflect:
		if math.IsInf(kde.max, 1) {
			return kde.rawCDF(x) - kde.rawCDF(2*kde.min-x)
		} else if math.IsInf(kde.min, -1) {
			return kde.rawCDF(x) + (1 - kde.rawCDF(2*kde.max-x))
		}
		d := 2 * (kde.max - kde.min)
		w := 2 * (x - kde.min)
		return series(func(n float64) float64 {
			// Windows >= x-w
			return kde.rawCDF(x+n*d) - kde.rawCDF(x+n*d-w)
		}) + series(func(n float64) float64 {
			// Windows < x-w
			return kde.rawCDF(x-(n+1)*d) - kde.rawCDF(x-(n+1)*d-w)
		})
	}
}

// InvCDF inverts the estimated CDF by bisection.
func (kde *KDEDist) InvCDF(p float64) float64 {
	switch {
	case p <= 0:
		if math.IsInf(kde.min, -1) {
			return math.Inf(-1)
		}
		return kde.min
	case p >= 1:
		if math.IsInf(kde.max, 1) {
			return inf
		}
		return kde.max
	}
	lo, hi := kde.dataBounds()
	for kde.CDF(lo) > p {
		lo -= hi - lo
	}
	for kde.CDF(hi) < p {
		hi += hi - lo
	}
	x, _ := bisect(func(x float64) float64 { return kde.CDF(x) - p }, lo, hi, 1e-10)
	return x
}

func (kde *KDEDist) dataBounds() (float64, float64) {
	lo, hi := inf, -inf
	for i, x := range kde.xs {
		if kde.weight(i) == 0 {
			continue
		}
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

// Bounds returns the points containing 99% of the estimate's weight.
func (kde *KDEDist) Bounds() (low, high float64) {
	// Use the lowest and highest data points as starting points
	lowX, highX := kde.dataBounds()

	// Find the end points that contain 99% of the CDF's weight.
	// Since bisect requires that the root be bracketed, start by
	// expanding our range if necessary.
	const (
		lowY      = 0.005
		highY     = 0.995
		tolerance = 0.001
	)
	for kde.CDF(lowX) > lowY {
		lowX -= highX - lowX
	}
	for kde.CDF(highX) < highY {
		highX += highX - lowX
	}
	low, _ = bisect(func(x float64) float64 { return kde.CDF(x) - lowY }, lowX, highX, tolerance)
	high, _ = bisect(func(x float64) float64 { return kde.CDF(x) - highY }, lowX, highX, tolerance)

	// Expand width by 20% to give some margins
	width := high - low
	low, high = low-0.1*width, high+0.1*width

	// Limit to bounds
	low, high = math.Max(low, kde.min), math.Min(high, kde.max)

	return
}

// Mean returns the mean of the uncorrected estimate, which is the
// weighted data mean (the kernels are symmetric).
func (kde *KDEDist) Mean() float64 {
	mean, _ := weightedMeanStdDev(kde.xs, kde.ws)
	return mean
}

// Variance returns the variance of the uncorrected estimate: the
// weighted data variance plus the kernel variance.
func (kde *KDEDist) Variance() float64 {
	_, sd := weightedMeanStdDev(kde.xs, kde.ws)
	kvar := kde.h * kde.h
	if kde.kernel == EpanechnikovKernel {
		kvar /= 5
	}
	return sd*sd + kvar
}

// Rand draws a data point with probability proportional to its
// weight and perturbs it by kernel noise, reflecting at the support
// boundaries.
func (kde *KDEDist) Rand(rnd *rand.Rand) float64 {
	u := rnd.Float64() * kde.totalW
	var sum float64
	x := kde.xs[len(kde.xs)-1]
	for i, xi := range kde.xs {
		sum += kde.weight(i)
		if u < sum {
			x = xi
			break
		}
	}
	switch kde.kernel {
	case EpanechnikovKernel:
		// The median of three uniforms on [-1, 1] has the
		// Epanechnikov density.
		a, b, c := 2*rnd.Float64()-1, 2*rnd.Float64()-1, 2*rnd.Float64()-1
		x += kde.h * medianOf3(a, b, c)
	default:
		x += kde.h * rnd.NormFloat64()
	}
	if kde.bm == BoundaryReflect {
		for x < kde.min || x >= kde.max {
			if x < kde.min {
				x = 2*kde.min - x
			} else {
				x = 2*kde.max - x
			}
		}
	}
	return x
}

func medianOf3(a, b, c float64) float64 {
	vs := []float64{a, b, c}
	sort.Float64s(vs)
	return vs[1]
}

// weightedMeanStdDev returns the weighted mean and standard
// deviation of xs. weights may be nil.
func weightedMeanStdDev(xs, weights []float64) (mean, stdDev float64) {
	var sum, totalW float64
	for i, x := range xs {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		sum += w * x
		totalW += w
	}
	mean = sum / totalW
	var m2 float64
	for i, x := range xs {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		dx := x - mean
		m2 += w * dx * dx
	}
	return mean, math.Sqrt(m2 / totalW)
}

// weightedQuantile returns the q'th weighted quantile of xs by
// linear interpolation of the empirical CDF.
func weightedQuantile(xs, weights []float64, q float64) float64 {
	type wx struct{ x, w float64 }
	points := make([]wx, 0, len(xs))
	var totalW float64
	for i, x := range xs {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		if w == 0 {
			continue
		}
		points = append(points, wx{x, w})
		totalW += w
	}
	sort.Slice(points, func(i, j int) bool { return points[i].x < points[j].x })
	target := q * totalW
	var cum float64
	for i, p := range points {
		cum += p.w
		if cum >= target {
			return points[i].x
		}
	}
	return points[len(points)-1].x
}
