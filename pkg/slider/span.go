package slider

import (
	"fmt"
	"math"

	"github.com/philipparndt/goslider/pkg/geometry"
)

// Unconstrained is the distance sentinel for two freely moving values
const Unconstrained = -1.0

// span holds the two values of a range and the optional fixed distance
// linking them. "start" and "end" are orientation labels only: on a
// circle the end may sit before the start across the seam.
type span struct {
	start    float64
	end      float64
	distance float64
}

func (s *span) linked() bool {
	return s.distance > 0
}

// setStart writes the start value; a linked end follows it. When the end
// would leave the bounds it is pinned to the maximum and the start is
// moved back by the distance. NaN is ignored.
func (s *span) setStart(v, minimum, maximum float64) bool {
	if math.IsNaN(v) {
		return false
	}
	old := *s

	s.start = clamp(v, minimum, maximum)
	if s.linked() {
		s.end = s.start + s.distance
		if s.end > maximum {
			s.end = maximum
			s.start = s.end - s.distance
		}
	}
	return *s != old
}

// setEnd writes the end value; a linked start follows it. NaN is ignored.
func (s *span) setEnd(v, minimum, maximum float64) bool {
	if math.IsNaN(v) {
		return false
	}
	old := *s

	s.end = clamp(v, minimum, maximum)
	if s.linked() {
		s.start = s.end - s.distance
		if s.start < minimum {
			s.start = minimum
			s.end = s.start + s.distance
		}
	}
	return *s != old
}

func checkDistance(d, minimum, maximum float64) error {
	if math.IsNaN(d) || (d < 0 && d != Unconstrained) {
		return fmt.Errorf("distance %v must be >= 0 or %v: %w", d, Unconstrained, geometry.ErrInvalidArgument)
	}
	if d > maximum-minimum {
		return fmt.Errorf("distance %v exceeds range %v: %w", d, maximum-minimum, geometry.ErrInvalidArgument)
	}
	return nil
}

// setDistance links or unlinks the values. Linking recomputes the end
// from the start.
func (s *span) setDistance(d, minimum, maximum float64) error {
	if err := checkDistance(d, minimum, maximum); err != nil {
		return err
	}
	s.distance = d
	if s.linked() {
		s.setStart(s.start, minimum, maximum)
	}
	return nil
}

// fit re-applies the bounds after they changed
func (s *span) fit(minimum, maximum float64) {
	if s.linked() {
		s.setStart(s.start, minimum, maximum)
		return
	}
	s.start = clamp(s.start, minimum, maximum)
	s.end = clamp(s.end, minimum, maximum)
}
