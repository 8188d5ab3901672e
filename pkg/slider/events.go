package slider

// Event is a signal emitted while the user edits a control
type Event int

const (
	// EditingDidBegin is emitted when a tracking gesture is accepted
	EditingDidBegin Event = iota
	// ValueChanged is emitted after every pointer move applied to the value(s)
	ValueChanged
	// EditingDidEnd is emitted when the gesture finishes normally
	EditingDidEnd
	// TrackingCancelled is emitted when the platform aborts the gesture.
	// The last committed value is kept.
	TrackingCancelled
)

func (e Event) String() string {
	switch e {
	case EditingDidBegin:
		return "editing-did-begin"
	case ValueChanged:
		return "value-changed"
	case EditingDidEnd:
		return "editing-did-end"
	case TrackingCancelled:
		return "tracking-cancelled"
	default:
		return "unknown"
	}
}

// Listener receives control events. It carries no payload: read the
// control's current values instead.
type Listener func(Event)

// listeners is owned by a single control, so registered callbacks live
// exactly as long as the control does
type listeners struct {
	fns []Listener
}

// OnEvent registers a listener for every event of the control
func (l *listeners) OnEvent(fn Listener) {
	if fn == nil {
		return
	}
	l.fns = append(l.fns, fn)
}

func (l *listeners) emit(e Event) {
	for _, fn := range l.fns {
		fn(e)
	}
}
