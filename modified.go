package loguniform

import (
	"math"

	"github.com/pkg/errors"
)

// ModifiedLogUniform is a log-uniform distribution extended to include
// zero, sometimes called a "modified Jeffreys prior". Its support is
// [0, b]; the density is approximately uniform below the knee point and
// log-uniform above it.
type ModifiedLogUniform struct {
	knee, b float64
	q       float64 // log((b + knee) / knee)
}

var _ Dist = &ModifiedLogUniform{}

// NewModifiedLogUniform creates a ModifiedLogUniform distribution with the
// given knee point and upper bound b. Both parameters are required; a NaN
// parameter fails with ErrMissingArgument, and the constructor fails with
// ErrInvalidArgument unless 0 < knee < b.
func NewModifiedLogUniform(knee, b float64) (*ModifiedLogUniform, error) {
	if math.IsNaN(knee) {
		return nil, errors.Wrap(ErrMissingArgument, "`knee` is required")
	}
	if math.IsNaN(b) {
		return nil, errors.Wrap(ErrMissingArgument, "upper bound `b` is required")
	}
	if b <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "upper limit `b` must be positive, got b=%v", b)
	}
	if knee <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "`knee` must be positive, got knee=%v", knee)
	}
	if b <= knee {
		return nil, errors.Wrapf(ErrInvalidArgument, "upper limit `b` must be larger than `knee`, got knee=%v b=%v", knee, b)
	}
	return &ModifiedLogUniform{
		knee: knee,
		b:    b,
		q:    math.Log((b + knee) / knee),
	}, nil
}

// Knee returns the point where the distribution changes from uniform to
// log-uniform.
func (d *ModifiedLogUniform) Knee() float64 { return d.knee }

// A returns the lower bound of the support, always 0.
func (d *ModifiedLogUniform) A() float64 { return 0 }

// B returns the upper bound of the support.
func (d *ModifiedLogUniform) B() float64 { return d.b }

// Bounds implements Dist.
func (d *ModifiedLogUniform) Bounds() (a, b float64) { return 0, d.b }

// PDF returns the probability density at x: 1/((x + knee) q) inside
// [0, b], 0 outside.
func (d *ModifiedLogUniform) PDF(x float64) float64 {
	if !inSupport(d, x) {
		return 0
	}
	return 1 / ((x + d.knee) * d.q)
}

// LogPDF returns the logarithm of the probability density at x, -Inf
// outside the support.
func (d *ModifiedLogUniform) LogPDF(x float64) float64 {
	if !inSupport(d, x) {
		return math.Inf(-1)
	}
	return -math.Log(x+d.knee) - math.Log(d.q)
}

// CDF returns the cumulative probability Pr[X <= x]: 0 below 0,
// log(x/knee + 1)/q on [0, b], 1 above b.
func (d *ModifiedLogUniform) CDF(x float64) float64 {
	aboveLower, belowUpper := supportMasks(d, x)
	if !belowUpper {
		return 1
	}
	if !aboveLower {
		return 0
	}
	return math.Log(x/d.knee+1) / d.q
}

// PPF returns the quantile for probability p, knee (e^(q p) - 1). p is
// expected in [0, 1]; no bounds check is performed.
func (d *ModifiedLogUniform) PPF(p float64) float64 {
	return d.knee * (math.Exp(d.q*p) - 1)
}

// SF returns the survival function 1 - CDF(x).
func (d *ModifiedLogUniform) SF(x float64) float64 { return SF(d, x) }

// Rand draws one random variate using the shared global source.
func (d *ModifiedLogUniform) Rand() float64 { return Rand(d, nil) }

// Sample draws n independent random variates using the shared global
// source.
func (d *ModifiedLogUniform) Sample(n int) []float64 { return Sample(d, n, nil) }

// Interval returns the equal-tailed interval containing probability mass
// alpha around the median.
func (d *ModifiedLogUniform) Interval(alpha float64) (lo, hi float64, err error) {
	return Interval(d, alpha)
}

// Mean returns the mean of the distribution.
func (d *ModifiedLogUniform) Mean() float64 {
	k, b, q := d.knee, d.b, d.q
	return (b + k*math.Log(k) - k*math.Log(k+b)) / q
}

// Mode returns the mode of the distribution, the lower bound 0.
func (d *ModifiedLogUniform) Mode() float64 { return 0 }

// Variance returns the variance of the distribution.
func (d *ModifiedLogUniform) Variance() float64 {
	k, b, q := d.knee, d.b, d.q
	mu := d.Mean()
	lnk, lnkb := math.Log(k), math.Log(k+b)
	return (b*b - 2*b*k - 2*k*k*lnk + 2*k*k*lnkb +
		(4*k*lnkb-4*k*lnk-4*b)*mu +
		(2*lnkb-2*lnk)*mu*mu) / (2 * q)
}

// StdDev returns the standard deviation of the distribution.
func (d *ModifiedLogUniform) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the third standardized moment of the distribution.
func (d *ModifiedLogUniform) Skewness() float64 {
	k, b, q := d.knee, d.b, d.q
	mu := d.Mean()
	v := d.Variance()
	lnk, lnkb := math.Log(k), math.Log(k+b)
	return -(-2*b*b*b + 3*b*b*k - 6*b*k*k - 6*k*k*k*lnk + 6*k*k*k*lnkb +
		(18*k*k*lnkb-18*k*k*lnk-18*b*k+9*b*b)*mu +
		(18*k*lnkb-18*k*lnk-18*b)*mu*mu +
		(6*lnkb-6*lnk)*mu*mu*mu) / (6 * q * math.Pow(v, 1.5))
}

// ExKurtosis returns the excess kurtosis of the distribution. The closed
// form already carries the -3 offset, so a normal distribution scores 0.
func (d *ModifiedLogUniform) ExKurtosis() float64 {
	k, b, q := d.knee, d.b, d.q
	mu := d.Mean()
	v := d.Variance()
	lnk, lnkb := math.Log(k), math.Log(k+b)
	return -(-3*b*b*b*b + 4*b*b*b*k - 6*b*b*k*k + 12*b*k*k*k +
		12*k*k*k*k*lnk - 12*k*k*k*k*lnkb +
		(-48*k*k*k*lnkb+48*k*k*k*lnk+48*b*k*k-24*b*b*k+16*b*b*b)*mu +
		(-72*k*k*lnkb+72*k*k*lnk+72*b*k-36*b*b)*mu*mu +
		(-48*k*lnkb+48*k*lnk+48*b)*mu*mu*mu +
		(12*lnk-12*lnkb)*mu*mu*mu*mu +
		36*q*v*v) / (12 * q * v * v)
}

// PDFEach returns PDF(xs[i]) for each i.
func (d *ModifiedLogUniform) PDFEach(xs []float64) []float64 { return each(d.PDF, xs) }

// LogPDFEach returns LogPDF(xs[i]) for each i.
func (d *ModifiedLogUniform) LogPDFEach(xs []float64) []float64 { return each(d.LogPDF, xs) }

// CDFEach returns CDF(xs[i]) for each i.
func (d *ModifiedLogUniform) CDFEach(xs []float64) []float64 { return each(d.CDF, xs) }

// PPFEach returns PPF(ps[i]) for each i.
func (d *ModifiedLogUniform) PPFEach(ps []float64) []float64 { return each(d.PPF, ps) }
