package slider

import (
	"fmt"
	"strings"

	"github.com/philipparndt/goslider/pkg/geometry"
)

// Kind identifies a circular control variant
type Kind string

const (
	KindSingle   Kind = "single"
	KindRange    Kind = "range"
	KindMidPoint Kind = "midpoint"
	KindProgress Kind = "progress"
)

// ParseKind converts a string to a Kind
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case KindSingle:
		return KindSingle, nil
	case KindRange:
		return KindRange, nil
	case KindMidPoint:
		return KindMidPoint, nil
	case KindProgress:
		return KindProgress, nil
	default:
		return "", fmt.Errorf("invalid slider kind: %s (must be single, range, midpoint, or progress)", s)
	}
}

// Thumb identifies a draggable handle
type Thumb int

const (
	ThumbNone Thumb = iota
	ThumbStart
	ThumbEnd
	ThumbMid
)

func (t Thumb) String() string {
	switch t {
	case ThumbStart:
		return "start"
	case ThumbEnd:
		return "end"
	case ThumbMid:
		return "mid"
	default:
		return "none"
	}
}

// Values is a snapshot of a control's current values. Start and Mid are
// only meaningful for the kinds that have them.
type Values struct {
	Kind  Kind
	Start float64
	End   float64
	Mid   float64
}

// ThumbCenter is where a thumb is drawn
type ThumbCenter struct {
	Thumb  Thumb
	Center geometry.Point
	Active bool // the thumb is being dragged
}

// Drawable is what a rendering layer needs from a control
type Drawable interface {
	Kind() Kind
	Values() Values
	Layout() Layout
	SetLayout(Layout)
	Interval() (geometry.Interval, error)
	FilledArc() (geometry.Arc, error)
	ThumbCenters() ([]ThumbCenter, error)
}

// Tracker is a control that follows pointer gestures.
//
// A gesture is BeginTrack, any number of ContinueTrack calls, then
// EndTrack or CancelTrack. Each call runs to completion on the caller's
// goroutine; a Tracker is not safe for concurrent use.
type Tracker interface {
	Drawable

	// BeginTrack starts a gesture at touch and reports whether it was accepted
	BeginTrack(touch geometry.Point) bool
	// ContinueTrack applies a pointer move. It returns false when no
	// gesture is active. On error the committed values are unchanged.
	ContinueTrack(touch geometry.Point) (bool, error)
	EndTrack()
	CancelTrack()
	Tracking() bool
	OnEvent(Listener)
}

var (
	_ Tracker  = (*Track)(nil)
	_ Tracker  = (*RangeTrack)(nil)
	_ Tracker  = (*MidPointTrack)(nil)
	_ Drawable = (*ProgressView)(nil)
)
