package loguniform

import "github.com/pkg/errors"

// ErrInvalidArgument is returned when a distribution parameter violates the
// positivity or ordering invariants, or when Interval is given an alpha
// outside [0, 1].
var ErrInvalidArgument = errors.New("invalid argument")

// ErrMissingArgument is returned when a required constructor parameter is
// NaN. NaN is the float64 "no value"; both parameters are mandatory and
// there is no default distribution.
var ErrMissingArgument = errors.New("missing argument")
