package geometry

import (
	"fmt"
	"math"
)

const (
	// CircleMinValue is the lower bound of the angle interval
	CircleMinValue = 0.0
	// CircleMaxValue is the upper bound of the angle interval (2π)
	CircleMaxValue = 2 * math.Pi
	// CircleInitialAngle rotates angle 0 to the 12 o'clock position when drawing
	CircleInitialAngle = -math.Pi / 2
)

// AngleInterval is the canonical [0, 2π) interval traversed once
var AngleInterval = Interval{Min: CircleMinValue, Max: CircleMaxValue, Rounds: 1}

// Interval is a scalar range that may be traversed Rounds times before
// it wraps. A 24 hour value on a 12 hour clock face is Interval{0, 24, 2}.
type Interval struct {
	Min    float64
	Max    float64
	Rounds int
}

// NewInterval creates an interval, rejecting min > max and rounds < 1
func NewInterval(min, max float64, rounds int) (Interval, error) {
	i := Interval{Min: min, Max: max, Rounds: rounds}
	if err := i.Validate(); err != nil {
		return Interval{}, err
	}
	return i, nil
}

// Validate checks the interval invariants
func (i Interval) Validate() error {
	if math.IsNaN(i.Min) || math.IsNaN(i.Max) {
		return fmt.Errorf("interval [%v, %v] has NaN bound: %w", i.Min, i.Max, ErrInvalidArgument)
	}
	if i.Min > i.Max {
		return fmt.Errorf("interval min %v is greater than max %v: %w", i.Min, i.Max, ErrInvalidArgument)
	}
	if i.Rounds < 1 {
		return fmt.Errorf("interval rounds %d must be >= 1: %w", i.Rounds, ErrInvalidArgument)
	}
	return nil
}

// Span returns the full width of the interval across all rounds
func (i Interval) Span() float64 {
	return i.Max - i.Min
}

// RoundSpan returns the width covered by a single round
func (i Interval) RoundSpan() float64 {
	return (i.Max - i.Min) / float64(i.Rounds)
}

// ScaleValue maps value from the source interval to the corresponding
// position in the destination interval, honoring the rounds of both.
//
// A value spanning several source rounds is first folded into a single
// round with a truncating remainder, so the sign of (value - source.Min)
// is kept: values below source.Min land below destination.Min by the
// same proportion instead of wrapping to the top of the interval.
// DeltaValue depends on that to carry the direction of a drag.
func ScaleValue(value float64, source, destination Interval) (float64, error) {
	if err := source.Validate(); err != nil {
		return 0, fmt.Errorf("source: %w", err)
	}
	if err := destination.Validate(); err != nil {
		return 0, fmt.Errorf("destination: %w", err)
	}

	sourceRange := source.RoundSpan()
	if sourceRange == 0 {
		return 0, fmt.Errorf("scale from degenerate interval [%v, %v]: %w", source.Min, source.Max, ErrDomain)
	}
	destinationRange := destination.RoundSpan()

	wrapped := source.Min + math.Mod(value-source.Min, sourceRange)
	return ((wrapped-source.Min)*destinationRange)/sourceRange + destination.Min, nil
}

// ScaleToAngle maps a value of the interval onto the [0, 2π) circle
func ScaleToAngle(value float64, interval Interval) (float64, error) {
	return ScaleValue(value, interval, AngleInterval)
}

// ValueFromAngle maps an angle of the [0, 2π) circle back onto the interval
func ValueFromAngle(angle float64, interval Interval) (float64, error) {
	return ScaleValue(angle, AngleInterval, interval)
}
