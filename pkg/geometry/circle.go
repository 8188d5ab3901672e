package geometry

import (
	"fmt"
	"math"
)

// Circle is a circle in the view's local coordinate space
type Circle struct {
	Origin Point   // Circle center
	Radius float64 // Circle radius, never negative
}

// NewCircle creates a circle, rejecting a negative radius
func NewCircle(origin Point, radius float64) (Circle, error) {
	if radius < 0 || math.IsNaN(radius) {
		return Circle{}, fmt.Errorf("circle radius %v: %w", radius, ErrInvalidArgument)
	}
	return Circle{Origin: origin, Radius: radius}, nil
}

// PointAt returns the point of the circle at the given angle.
//
//	x = radius·cos(angle) + origin.x
//	y = radius·sin(angle) + origin.y
func (c Circle) PointAt(angle float64) Point {
	return Point{
		X: c.Radius*math.Cos(angle) + c.Origin.X,
		Y: c.Radius*math.Sin(angle) + c.Origin.Y,
	}
}

// Arc is a portion of a circle swept from StartAngle to EndAngle
// in the direction of increasing angle
type Arc struct {
	Circle     Circle
	StartAngle float64 // radians
	EndAngle   float64 // radians
}

// NewArc creates a new arc
func NewArc(circle Circle, startAngle, endAngle float64) Arc {
	return Arc{Circle: circle, StartAngle: startAngle, EndAngle: endAngle}
}

// Sweep returns the angular length of the arc in [0, 2π].
// An end angle before the start angle sweeps across the 0/2π seam.
func (a Arc) Sweep() float64 {
	sweep := a.EndAngle - a.StartAngle
	if sweep > CircleMaxValue {
		return CircleMaxValue
	}
	if sweep < 0 {
		sweep = NormalizeAngle(sweep)
	}
	return sweep
}

// Points approximates the arc with segments+1 points, start and end included.
func (a Arc) Points(segments int) []Point {
	if segments < 1 {
		segments = 1
	}
	sweep := a.Sweep()
	points := make([]Point, segments+1)
	for i := 0; i <= segments; i++ {
		angle := a.StartAngle + sweep*float64(i)/float64(segments)
		points[i] = a.Circle.PointAt(angle)
	}
	return points
}
