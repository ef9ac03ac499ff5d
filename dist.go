// Package loguniform provides closed-form log-uniform ("reciprocal",
// "Jeffreys") prior distributions: LogUniform over [a, b] with a > 0, and
// ModifiedLogUniform over [0, b], which behaves uniformly below a knee
// point and log-uniformly above it.
//
// Every operation is a pure function of the distribution's immutable
// parameters, so instances are safe for concurrent use.
package loguniform

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Dist is a continuous distribution with bounded support.
type Dist interface {
	// Bounds returns the lower and upper bounds of the support. The
	// support is closed: both bounds carry non-zero density.
	Bounds() (a, b float64)
	// PDF returns the value of the probability density function at x.
	PDF(x float64) float64
	// CDF returns the cumulative probability Pr[X <= x], in [0, 1].
	CDF(x float64) float64
	// PPF is the percent point function, the inverse of CDF. It maps a
	// probability p in [0, 1] to the corresponding quantile. No bounds
	// check is performed on p.
	PPF(p float64) float64
}

// inSupport reports whether x lies inside the closed support of d.
func inSupport(d Dist, x float64) bool {
	a, b := d.Bounds()
	return a <= x && x <= b
}

// supportMasks returns the two one-sided comparisons separately, for CDF
// implementations that clamp each side to a different constant.
func supportMasks(d Dist, x float64) (aboveLower, belowUpper bool) {
	a, b := d.Bounds()
	return a <= x, x <= b
}

// SF returns the survival function 1 - CDF(x).
func SF(d Dist, x float64) float64 {
	return 1 - d.CDF(x)
}

// Rand draws one random variate from d by inverse-transform sampling. A
// nil src uses the shared global source, which is safe for concurrent
// use; callers sampling concurrently from a non-nil src must serialize
// access themselves.
func Rand(d Dist, src rand.Source) float64 {
	var u float64
	if src == nil {
		u = rand.Float64()
	} else {
		u = rand.New(src).Float64()
	}
	return d.PPF(u)
}

// Sample draws n independent random variates from d. A non-positive n
// yields an empty slice. See Rand for the src contract.
func Sample(d Dist, n int, src rand.Source) []float64 {
	if n <= 0 {
		return nil
	}
	var u *rand.Rand
	if src != nil {
		u = rand.New(src)
	}
	s := make([]float64, n)
	for i := range s {
		var p float64
		if u == nil {
			p = rand.Float64()
		} else {
			p = u.Float64()
		}
		s[i] = d.PPF(p)
	}
	return s
}

// Interval returns the equal-tailed interval around the median containing
// probability mass alpha, as (PPF((1-alpha)/2), PPF((1+alpha)/2)). It
// fails when alpha lies outside [0, 1].
func Interval(d Dist, alpha float64) (lo, hi float64, err error) {
	if !(alpha >= 0 && alpha <= 1) {
		return 0, 0, errors.Wrapf(ErrInvalidArgument, "alpha must be between 0 and 1 inclusive, got %v", alpha)
	}
	return d.PPF((1 - alpha) / 2), d.PPF((1 + alpha) / 2), nil
}

// each applies f elementwise, returning a result of the same length as xs.
func each(f func(float64) float64, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}
