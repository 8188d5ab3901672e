package slider

import (
	"math"

	"github.com/philipparndt/goslider/pkg/geometry"
)

// Track is a circular control selecting a single value
type Track struct {
	core
	value float64
}

// NewTrack creates a single value control on [0, 1] with value 0.5
func NewTrack(layout Layout) *Track {
	return &Track{
		core:  newCore(layout),
		value: 0.5,
	}
}

// Kind returns KindSingle
func (t *Track) Kind() Kind { return KindSingle }

// Value returns the current value
func (t *Track) Value() float64 { return t.value }

// Values returns a snapshot of the value
func (t *Track) Values() Values {
	return Values{Kind: KindSingle, End: t.value}
}

// SetValue sets the value, clamped to the bounds, and reports whether it
// changed. NaN is ignored.
func (t *Track) SetValue(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	v = clamp(v, t.minimum, t.maximum)
	if v == t.value {
		return false
	}
	t.value = v
	return true
}

// SetBounds sets both bounds at once and re-clamps the value
func (t *Track) SetBounds(minimum, maximum float64) error {
	if err := t.checkBounds(minimum, maximum); err != nil {
		return err
	}
	t.minimum, t.maximum = minimum, maximum
	t.SetValue(t.value)
	return nil
}

// SetMinimum sets the lower bound and re-clamps the value
func (t *Track) SetMinimum(v float64) error { return t.SetBounds(v, t.maximum) }

// SetMaximum sets the upper bound and re-clamps the value
func (t *Track) SetMaximum(v float64) error { return t.SetBounds(t.minimum, v) }

// Angle returns the value angle of the thumb, in [0, 2π)
func (t *Track) Angle() (float64, error) {
	return t.angle(t.value)
}

// FilledArc returns the arc from the minimum to the value
func (t *Track) FilledArc() (geometry.Arc, error) {
	return t.arc(t.minimum, t.value)
}

// ThumbCenters returns the center of the single thumb
func (t *Track) ThumbCenters() ([]ThumbCenter, error) {
	center, err := t.thumbCenter(t.value)
	if err != nil {
		return nil, err
	}
	return []ThumbCenter{{Thumb: ThumbEnd, Center: center, Active: t.tracking}}, nil
}

// BeginTrack starts a gesture. Any touch is accepted.
func (t *Track) BeginTrack(touch geometry.Point) bool {
	t.tracking = true
	t.emit(EditingDidBegin)
	return true
}

// ContinueTrack moves the value towards the touch position
func (t *Track) ContinueTrack(touch geometry.Point) (bool, error) {
	if !t.tracking {
		return false, nil
	}

	v, err := t.newValue(t.value, touch)
	if err != nil {
		return false, err
	}
	t.SetValue(v)
	t.emit(ValueChanged)
	return true, nil
}

// EndTrack finishes the gesture
func (t *Track) EndTrack() {
	if !t.tracking {
		return
	}
	t.tracking = false
	t.emit(EditingDidEnd)
}

// CancelTrack aborts the gesture, keeping the last committed value
func (t *Track) CancelTrack() {
	if !t.tracking {
		return
	}
	t.tracking = false
	t.emit(TrackingCancelled)
}
