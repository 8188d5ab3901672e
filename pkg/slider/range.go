package slider

import (
	"math"

	"github.com/philipparndt/goslider/pkg/geometry"
)

// RangeTrack is a circular control selecting a start and an end value,
// optionally kept a fixed distance apart
type RangeTrack struct {
	core
	span
	selected Thumb
}

// NewRangeTrack creates a range control on [0, 1] from 0 to 0.5
func NewRangeTrack(layout Layout) *RangeTrack {
	return &RangeTrack{
		core: newCore(layout),
		span: span{start: 0, end: 0.5, distance: Unconstrained},
	}
}

// Kind returns KindRange
func (r *RangeTrack) Kind() Kind { return KindRange }

// StartPointValue returns the start value
func (r *RangeTrack) StartPointValue() float64 { return r.start }

// EndPointValue returns the end value
func (r *RangeTrack) EndPointValue() float64 { return r.end }

// Distance returns the fixed distance, or Unconstrained
func (r *RangeTrack) Distance() float64 { return r.distance }

// SelectedThumb returns the thumb of the current gesture
func (r *RangeTrack) SelectedThumb() Thumb { return r.selected }

// Values returns a snapshot of both values
func (r *RangeTrack) Values() Values {
	return Values{Kind: KindRange, Start: r.start, End: r.end}
}

// SetStartPointValue sets the start value; a linked end follows
func (r *RangeTrack) SetStartPointValue(v float64) bool {
	return r.setStart(v, r.minimum, r.maximum)
}

// SetEndPointValue sets the end value; a linked start follows
func (r *RangeTrack) SetEndPointValue(v float64) bool {
	return r.setEnd(v, r.minimum, r.maximum)
}

// SetDistance links the values at a fixed distance, or unlinks them with
// Unconstrained. A distance larger than the range is rejected.
func (r *RangeTrack) SetDistance(d float64) error {
	return r.setDistance(d, r.minimum, r.maximum)
}

// SetBounds sets both bounds at once and re-clamps the values
func (r *RangeTrack) SetBounds(minimum, maximum float64) error {
	if err := r.checkBounds(minimum, maximum); err != nil {
		return err
	}
	if r.linked() {
		if err := checkDistance(r.distance, minimum, maximum); err != nil {
			return err
		}
	}
	r.minimum, r.maximum = minimum, maximum
	r.fit(minimum, maximum)
	return nil
}

// SetMinimum sets the lower bound and re-clamps the values
func (r *RangeTrack) SetMinimum(v float64) error { return r.SetBounds(v, r.maximum) }

// SetMaximum sets the upper bound and re-clamps the values
func (r *RangeTrack) SetMaximum(v float64) error { return r.SetBounds(r.minimum, v) }

// FilledArc returns the arc from the start to the end value
func (r *RangeTrack) FilledArc() (geometry.Arc, error) {
	return r.arc(r.start, r.end)
}

// ThumbCenters returns the end and start thumbs, in drawing order
func (r *RangeTrack) ThumbCenters() ([]ThumbCenter, error) {
	end, err := r.thumbCenter(r.end)
	if err != nil {
		return nil, err
	}
	start, err := r.thumbCenter(r.start)
	if err != nil {
		return nil, err
	}
	return []ThumbCenter{
		{Thumb: ThumbEnd, Center: end, Active: r.selected == ThumbEnd},
		{Thumb: ThumbStart, Center: start, Active: r.selected == ThumbStart},
	}, nil
}

// ThumbFor returns the thumb a touch affects. When both thumbs are hit
// the one whose center is closer wins, start on a tie.
func (r *RangeTrack) ThumbFor(touch geometry.Point) Thumb {
	centers, err := r.ThumbCenters()
	if err != nil {
		return ThumbNone
	}

	best := ThumbNone
	bestDistance := math.Inf(1)
	// start first so it wins ties
	for i := len(centers) - 1; i >= 0; i-- {
		c := centers[i]
		if !r.layout.ThumbContains(c.Center, touch) {
			continue
		}
		if d := c.Center.Distance(touch); d < bestDistance {
			best, bestDistance = c.Thumb, d
		}
	}
	return best
}

// BeginTrack starts a gesture if the touch hits a thumb. The thumb is
// kept for the whole gesture.
func (r *RangeTrack) BeginTrack(touch geometry.Point) bool {
	r.selected = r.ThumbFor(touch)
	if r.selected == ThumbNone {
		return false
	}
	r.tracking = true
	r.emit(EditingDidBegin)
	return true
}

// ContinueTrack moves the selected thumb towards the touch position
func (r *RangeTrack) ContinueTrack(touch geometry.Point) (bool, error) {
	if !r.tracking || r.selected == ThumbNone {
		return false, nil
	}

	old := r.end
	if r.selected == ThumbStart {
		old = r.start
	}

	v, err := r.newValue(old, touch)
	if err != nil {
		return false, err
	}

	if r.selected == ThumbStart {
		r.SetStartPointValue(v)
	} else {
		r.SetEndPointValue(v)
	}
	r.emit(ValueChanged)
	return true, nil
}

// EndTrack finishes the gesture and forgets the selected thumb
func (r *RangeTrack) EndTrack() {
	if !r.tracking {
		return
	}
	r.tracking = false
	r.selected = ThumbNone
	r.emit(EditingDidEnd)
}

// CancelTrack aborts the gesture, keeping the last committed values
func (r *RangeTrack) CancelTrack() {
	if !r.tracking {
		return
	}
	r.tracking = false
	r.selected = ThumbNone
	r.emit(TrackingCancelled)
}
