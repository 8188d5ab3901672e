package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestNewCircle(t *testing.T) {
	if _, err := NewCircle(NewPoint(0, 0), -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewCircle(NewPoint(0, 0), 0); err != nil {
		t.Errorf("zero radius failed: %v", err)
	}
}

func TestCirclePointAt(t *testing.T) {
	c := Circle{Origin: NewPoint(25, 25), Radius: 10}

	p := c.PointAt(0)
	if math.Abs(p.X-35) > tolerance || math.Abs(p.Y-25) > tolerance {
		t.Errorf("PointAt(0) failed: expected (35, 25), got %v", p)
	}

	// angle 0 of the value circle is drawn at 12 o'clock
	p = c.PointAt(0 + CircleInitialAngle)
	if math.Abs(p.X-25) > tolerance || math.Abs(p.Y-15) > tolerance {
		t.Errorf("PointAt(initial) failed: expected (25, 15), got %v", p)
	}

	p = c.PointAt(math.Pi/2 + CircleInitialAngle)
	if math.Abs(p.X-35) > tolerance || math.Abs(p.Y-25) > tolerance {
		t.Errorf("PointAt(3 o'clock) failed: expected (35, 25), got %v", p)
	}
}

func TestPointOnCircleAngleRoundTrip(t *testing.T) {
	c := Circle{Origin: NewPoint(100, 80), Radius: 40}
	top := NewPoint(c.Origin.X, 0)

	for a := 0.0; a < 2*math.Pi; a += 0.1 {
		p := c.PointAt(a + CircleInitialAngle)
		got := AngleBetween(c.Origin, top, p)
		if math.Abs(got-a) > 1e-6 {
			t.Errorf("Angle round trip failed: expected %v, got %v", a, got)
		}
	}
}

func TestArcSweep(t *testing.T) {
	c := Circle{Origin: NewPoint(0, 0), Radius: 1}

	if got := NewArc(c, 0, CircleMaxValue).Sweep(); math.Abs(got-CircleMaxValue) > tolerance {
		t.Errorf("Full sweep failed: expected %v, got %v", CircleMaxValue, got)
	}
	if got := NewArc(c, 3*math.Pi/2, math.Pi/2).Sweep(); math.Abs(got-math.Pi) > tolerance {
		t.Errorf("Seam sweep failed: expected %v, got %v", math.Pi, got)
	}
}

func TestArcPoints(t *testing.T) {
	c := Circle{Origin: NewPoint(10, 10), Radius: 5}
	arc := NewArc(c, 0, math.Pi)

	points := arc.Points(4)
	if len(points) != 5 {
		t.Fatalf("Points failed: expected 5 points, got %d", len(points))
	}

	first, last := points[0], points[len(points)-1]
	if first.Distance(NewPoint(15, 10)) > tolerance {
		t.Errorf("First point failed: expected (15, 10), got %v", first)
	}
	if last.Distance(NewPoint(5, 10)) > tolerance {
		t.Errorf("Last point failed: expected (5, 10), got %v", last)
	}
	for _, p := range points {
		if math.Abs(c.Origin.Distance(p)-c.Radius) > tolerance {
			t.Errorf("Point %v is not on the circle", p)
		}
	}
}
