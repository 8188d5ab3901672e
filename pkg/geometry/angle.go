package geometry

import "math"

// Degrees converts radians to degrees
func Degrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// Radians converts degrees to radians
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// NormalizeAngle folds any angle into [0, 2π)
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, CircleMaxValue)
	if a < 0 {
		a += CircleMaxValue
	}
	if a >= CircleMaxValue {
		return 0
	}
	return a
}

// AngleBetween returns the angle between center->first and center->second
// in [0, 2π). On a y-down screen the angle grows clockwise, so dragging
// clockwise from first increases it.
func AngleBetween(center, first, second Point) float64 {
	dot, det := DotAndDeterminant(center, first, second)
	angle := math.Atan2(det, dot)

	switch {
	case angle < 0:
		return -angle
	case angle == 0:
		return 0
	default:
		return CircleMaxValue - angle
	}
}

// ShortestAngleDelta returns the signed length of the shortest way from
// one angle to another, in (-π, π]. Positive means clockwise.
//
// The frame is rotated so that from sits at 0 and the rotated target is
// wrapped back into (-π, π], which keeps a drag across the 0/2π seam
// from jumping a full revolution.
func ShortestAngleDelta(from, to float64) float64 {
	half := CircleMaxValue / 2

	rotated := NormalizeAngle(to) - NormalizeAngle(from)
	switch {
	case rotated > half:
		return rotated - CircleMaxValue
	case rotated <= -half:
		return rotated + CircleMaxValue
	default:
		return rotated
	}
}

// DeltaValue returns the change, in interval units, that moves oldValue
// along the shortest way to the position under angle.
//
// The result is an increment: callers add it to oldValue. One full
// revolution is worth one round of the interval.
func DeltaValue(interval Interval, angle, oldValue float64) (float64, error) {
	oldAngle, err := ScaleToAngle(oldValue, interval)
	if err != nil {
		return 0, err
	}

	deltaAngle := ShortestAngleDelta(oldAngle, angle)

	scaled, err := ScaleValue(deltaAngle, AngleInterval, interval)
	if err != nil {
		return 0, err
	}
	return scaled - interval.Min, nil
}
