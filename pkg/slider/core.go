package slider

import (
	"fmt"
	"math"

	"github.com/philipparndt/goslider/pkg/geometry"
)

// core holds what every circular control shares: the value bounds, the
// number of rounds, the range policy, the layout and the tracking flag.
type core struct {
	listeners

	minimum      float64
	maximum      float64
	rounds       int
	stopAtBounds bool
	layout       Layout
	tracking     bool
}

func newCore(layout Layout) core {
	return core{
		minimum: 0,
		maximum: 1,
		rounds:  1,
		layout:  layout,
	}
}

// Minimum returns the lower value bound
func (c *core) Minimum() float64 { return c.minimum }

// Maximum returns the upper value bound
func (c *core) Maximum() float64 { return c.maximum }

// Rounds returns how many revolutions cover the value range
func (c *core) Rounds() int { return c.rounds }

// StopAtBounds reports whether dragging past a bound clamps instead of wrapping
func (c *core) StopAtBounds() bool { return c.stopAtBounds }

// SetStopAtBounds selects the range policy for drags past a bound
func (c *core) SetStopAtBounds(stop bool) { c.stopAtBounds = stop }

// Layout returns the current layout
func (c *core) Layout() Layout { return c.layout }

// SetLayout replaces the layout, typically after the view was resized
func (c *core) SetLayout(l Layout) { c.layout = l }

// Tracking reports whether a gesture is in progress
func (c *core) Tracking() bool { return c.tracking }

// SetRounds sets the number of revolutions that cover the value range
func (c *core) SetRounds(rounds int) error {
	if rounds < 1 {
		return fmt.Errorf("rounds %d must be >= 1: %w", rounds, geometry.ErrInvalidArgument)
	}
	c.rounds = rounds
	return nil
}

// Interval returns the value interval of the control
func (c *core) Interval() (geometry.Interval, error) {
	return geometry.NewInterval(c.minimum, c.maximum, c.rounds)
}

func (c *core) checkBounds(minimum, maximum float64) error {
	if math.IsNaN(minimum) || math.IsNaN(maximum) {
		return fmt.Errorf("bounds [%v, %v]: %w", minimum, maximum, geometry.ErrInvalidArgument)
	}
	if minimum > maximum {
		return fmt.Errorf("minimum %v is greater than maximum %v: %w", minimum, maximum, geometry.ErrInvalidArgument)
	}
	return nil
}

// angle returns the value angle of v, in [0, 2π)
func (c *core) angle(v float64) (float64, error) {
	interval, err := c.Interval()
	if err != nil {
		return 0, err
	}
	a, err := geometry.ScaleToAngle(v, interval)
	if err != nil {
		return 0, err
	}
	return geometry.NormalizeAngle(a), nil
}

// newValue returns the value reached by moving old towards the touch
// position along the shortest way, with the range policy applied.
func (c *core) newValue(old float64, touch geometry.Point) (float64, error) {
	interval, err := c.Interval()
	if err != nil {
		return 0, err
	}

	angle := c.layout.TouchAngle(touch)
	delta, err := geometry.DeltaValue(interval, angle, old)
	if err != nil {
		return 0, err
	}

	return c.applyRangePolicy(old + delta), nil
}

func (c *core) applyRangePolicy(v float64) float64 {
	if c.stopAtBounds {
		return clamp(v, c.minimum, c.maximum)
	}

	span := c.maximum - c.minimum
	if v > c.maximum {
		v -= span
	} else if v < c.minimum {
		v += span
	}
	return v
}

// arc returns the track arc from one value to another, offset so that
// the minimum sits at 12 o'clock. Values a whole round or more apart
// fill the circle.
func (c *core) arc(from, to float64) (geometry.Arc, error) {
	startAngle, err := c.angle(from)
	if err != nil {
		return geometry.Arc{}, err
	}
	endAngle, err := c.angle(to)
	if err != nil {
		return geometry.Arc{}, err
	}

	startAngle += geometry.CircleInitialAngle
	endAngle += geometry.CircleInitialAngle

	roundSpan := (c.maximum - c.minimum) / float64(c.rounds)
	if to-from >= roundSpan {
		endAngle = startAngle + geometry.CircleMaxValue
	}
	return geometry.NewArc(c.layout.Circle(), startAngle, endAngle), nil
}

func (c *core) thumbCenter(v float64) (geometry.Point, error) {
	a, err := c.angle(v)
	if err != nil {
		return geometry.Point{}, err
	}
	return c.layout.ThumbCenter(a), nil
}
