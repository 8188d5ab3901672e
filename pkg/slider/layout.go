package slider

import (
	"math"

	"github.com/philipparndt/goslider/pkg/geometry"
)

// Defaults of the visual properties the geometry depends on
const (
	DefaultLineWidth      = 5.0
	DefaultThumbRadius    = 13.0
	DefaultThumbLineWidth = 4.0

	// thumbAngleTolerance is the half-width, in degrees, of the wedge
	// around a thumb that still counts as touching it
	thumbAngleTolerance = 15.0
)

// Layout holds the view bounds and the visual sizes that decide where
// the track and thumbs sit
type Layout struct {
	Width          float64
	Height         float64
	LineWidth      float64
	ThumbRadius    float64
	ThumbLineWidth float64
	ThumbOffset    float64 // distance of thumb centers outside the track
}

// NewLayout creates a layout for the given bounds with default sizes
func NewLayout(width, height float64) Layout {
	return Layout{
		Width:          width,
		Height:         height,
		LineWidth:      DefaultLineWidth,
		ThumbRadius:    DefaultThumbRadius,
		ThumbLineWidth: DefaultThumbLineWidth,
	}
}

// Center returns the center of the bounds
func (l Layout) Center() geometry.Point {
	return geometry.NewPoint(l.Width/2, l.Height/2)
}

// Radius returns the radius of the track. Everything drawn must stay
// inside the bounds, so the largest of the line width and the thumb
// extent is subtracted from half the smaller side.
func (l Layout) Radius() float64 {
	c := l.Center()
	radius := math.Min(c.X, c.Y) - math.Max(l.LineWidth, l.ThumbRadius+l.ThumbLineWidth)
	return math.Max(radius, 0)
}

// Circle returns the track circle
func (l Layout) Circle() geometry.Circle {
	return geometry.Circle{Origin: l.Center(), Radius: l.Radius()}
}

// ThumbCircle returns the circle thumb centers travel on
func (l Layout) ThumbCircle() geometry.Circle {
	return geometry.Circle{Origin: l.Center(), Radius: math.Max(l.Radius()+l.ThumbOffset, 0)}
}

// ThumbCenter returns where a thumb at the given value angle is drawn
func (l Layout) ThumbCenter(angle float64) geometry.Point {
	return l.ThumbCircle().PointAt(angle + geometry.CircleInitialAngle)
}

// ReferencePoint returns the point straight above the center that
// marks angle 0
func (l Layout) ReferencePoint() geometry.Point {
	return geometry.NewPoint(l.Center().X, 0)
}

// TouchAngle returns the value angle under a touch position
func (l Layout) TouchAngle(touch geometry.Point) float64 {
	return geometry.AngleBetween(l.Center(), l.ReferencePoint(), touch)
}

// ThumbContains reports whether a touch affects the thumb drawn at
// thumbCenter: either it falls inside the thumb's square, or it is
// within 15° of the thumb as seen from the track center. A thumb drawn
// on the center itself has no direction, so only its square counts.
func (l Layout) ThumbContains(thumbCenter, touch geometry.Point) bool {
	r := l.ThumbRadius
	if touch.X >= thumbCenter.X-r && touch.X < thumbCenter.X+r &&
		touch.Y >= thumbCenter.Y-r && touch.Y < thumbCenter.Y+r {
		return true
	}
	if thumbCenter == l.Center() {
		return false
	}

	degrees := geometry.Degrees(geometry.AngleBetween(l.Center(), thumbCenter, touch))
	return degrees < thumbAngleTolerance || degrees > 360-thumbAngleTolerance
}
