package geometry

import "errors"

var (
	// ErrInvalidArgument is returned when an Interval, Circle or slider
	// property is constructed with values that violate its invariants.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDomain is returned when a computation has no defined result,
	// for example scaling out of a zero-width interval.
	ErrDomain = errors.New("domain error")
)
