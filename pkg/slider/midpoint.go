package slider

import (
	"fmt"

	"github.com/philipparndt/goslider/pkg/geometry"
)

// DefaultMidPointDistance is the initial fixed distance of a MidPointTrack
const DefaultMidPointDistance = 0.2

// MidPointTrack is a range of fixed width moved by dragging its middle
type MidPointTrack struct {
	core
	span
}

// NewMidPointTrack creates a midpoint control on [0, 1] from 0 to 0.2
func NewMidPointTrack(layout Layout) *MidPointTrack {
	m := &MidPointTrack{
		core: newCore(layout),
		span: span{start: 0, end: 0.5, distance: Unconstrained},
	}
	// cannot fail on the default bounds
	_ = m.setDistance(DefaultMidPointDistance, m.minimum, m.maximum)
	return m
}

// Kind returns KindMidPoint
func (m *MidPointTrack) Kind() Kind { return KindMidPoint }

// StartPointValue returns the start value
func (m *MidPointTrack) StartPointValue() float64 { return m.start }

// EndPointValue returns the end value
func (m *MidPointTrack) EndPointValue() float64 { return m.end }

// Distance returns the fixed distance between start and end
func (m *MidPointTrack) Distance() float64 { return m.distance }

// MidPointValue returns the value halfway between start and end
func (m *MidPointTrack) MidPointValue() float64 {
	return (m.start + m.end) / 2
}

// Values returns a snapshot of the three values
func (m *MidPointTrack) Values() Values {
	return Values{Kind: KindMidPoint, Start: m.start, End: m.end, Mid: m.MidPointValue()}
}

// SetMidPointValue moves the range so that it is centered on v, keeping
// its width
func (m *MidPointTrack) SetMidPointValue(v float64) bool {
	half := (m.end - m.start) / 2
	// the start follows through the distance link
	return m.setEnd(v+half, m.minimum, m.maximum)
}

// SetStartPointValue sets the start value; the end follows
func (m *MidPointTrack) SetStartPointValue(v float64) bool {
	return m.setStart(v, m.minimum, m.maximum)
}

// SetEndPointValue sets the end value; the start follows
func (m *MidPointTrack) SetEndPointValue(v float64) bool {
	return m.setEnd(v, m.minimum, m.maximum)
}

// SetDistance sets the fixed width. It must be positive.
func (m *MidPointTrack) SetDistance(d float64) error {
	if !(d > 0) {
		return fmt.Errorf("midpoint distance %v must be > 0: %w", d, geometry.ErrInvalidArgument)
	}
	return m.setDistance(d, m.minimum, m.maximum)
}

// SetBounds sets both bounds at once and re-clamps the values
func (m *MidPointTrack) SetBounds(minimum, maximum float64) error {
	if err := m.checkBounds(minimum, maximum); err != nil {
		return err
	}
	if err := checkDistance(m.distance, minimum, maximum); err != nil {
		return err
	}
	m.minimum, m.maximum = minimum, maximum
	m.fit(minimum, maximum)
	return nil
}

// SetMinimum sets the lower bound and re-clamps the values
func (m *MidPointTrack) SetMinimum(v float64) error { return m.SetBounds(v, m.maximum) }

// SetMaximum sets the upper bound and re-clamps the values
func (m *MidPointTrack) SetMaximum(v float64) error { return m.SetBounds(m.minimum, v) }

// FilledArc returns the arc from the start to the end value
func (m *MidPointTrack) FilledArc() (geometry.Arc, error) {
	return m.arc(m.start, m.end)
}

// ThumbCenters returns the single mid thumb
func (m *MidPointTrack) ThumbCenters() ([]ThumbCenter, error) {
	center, err := m.thumbCenter(m.MidPointValue())
	if err != nil {
		return nil, err
	}
	return []ThumbCenter{{Thumb: ThumbMid, Center: center, Active: m.tracking}}, nil
}

// BeginTrack starts a gesture. Any touch is accepted.
func (m *MidPointTrack) BeginTrack(touch geometry.Point) bool {
	m.tracking = true
	m.emit(EditingDidBegin)
	return true
}

// ContinueTrack moves the midpoint towards the touch position
func (m *MidPointTrack) ContinueTrack(touch geometry.Point) (bool, error) {
	if !m.tracking {
		return false, nil
	}

	v, err := m.newValue(m.MidPointValue(), touch)
	if err != nil {
		return false, err
	}
	m.SetMidPointValue(v)
	m.emit(ValueChanged)
	return true, nil
}

// EndTrack finishes the gesture
func (m *MidPointTrack) EndTrack() {
	if !m.tracking {
		return
	}
	m.tracking = false
	m.emit(EditingDidEnd)
}

// CancelTrack aborts the gesture, keeping the last committed values
func (m *MidPointTrack) CancelTrack() {
	if !m.tracking {
		return
	}
	m.tracking = false
	m.emit(TrackingCancelled)
}
