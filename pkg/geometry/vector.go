package geometry

import "math"

// Point represents a position in the view's local coordinate space
type Point struct {
	X, Y float64
}

// NewPoint creates a new 2D point
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by a vector
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Distance returns the distance between two points
func (p Point) Distance(other Point) float64 {
	return NewVector(p, other).Length()
}

// Vector represents the displacement between two points
type Vector struct {
	DX, DY float64
}

// NewVector creates the vector going from source to end
func NewVector(source, end Point) Vector {
	return Vector{DX: end.X - source.X, DY: end.Y - source.Y}
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.DX*other.DX + v.DY*other.DY
}

// Determinant returns the 2x2 determinant of the two vectors.
// The operand order gives a positive result for a counter-clockwise
// turn on a y-down screen, which AngleBetween folds into its
// clockwise-increasing convention.
func (v Vector) Determinant(other Vector) float64 {
	return other.DX*v.DY - v.DX*other.DY
}

// Length returns the magnitude of the vector
func (v Vector) Length() float64 {
	return math.Hypot(v.DX, v.DY)
}

// DotAndDeterminant returns the dot product and determinant of the
// vectors center->first and center->second
func DotAndDeterminant(center, first, second Point) (dot, det float64) {
	u := NewVector(center, first)
	v := NewVector(center, second)
	return u.Dot(v), u.Determinant(v)
}
