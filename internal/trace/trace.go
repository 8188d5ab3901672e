package trace

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/goslider/pkg/geometry"
	"github.com/philipparndt/goslider/pkg/slider"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EventType is the kind of a recorded pointer event
type EventType string

const (
	Begin  EventType = "begin"
	Move   EventType = "move"
	End    EventType = "end"
	Cancel EventType = "cancel"
)

// Event is one recorded pointer event in view coordinates
type Event struct {
	Type EventType `yaml:"type"`
	X    float64   `yaml:"x"`
	Y    float64   `yaml:"y"`
}

// Trace is a recorded sequence of pointer events
type Trace struct {
	Events []Event `yaml:"events"`
}

// Sample is the control state after one replayed event
type Sample struct {
	Index    int
	Type     EventType
	X, Y     float64
	Accepted bool // the control acted on the event
	Values   slider.Values
}

// Load reads a trace from a YAML file
func Load(path string) (Trace, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Trace{}, fmt.Errorf("read trace file: %w", err)
	}
	return Parse(b)
}

// Parse decodes a YAML trace and checks the event types
func Parse(b []byte) (Trace, error) {
	var tr Trace
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&tr); err != nil && !errors.Is(err, io.EOF) {
		return Trace{}, fmt.Errorf("decode trace yaml: %w", err)
	}

	for i, e := range tr.Events {
		switch e.Type {
		case Begin, Move, End, Cancel:
		default:
			return Trace{}, fmt.Errorf("events[%d].type %q must be begin, move, end, or cancel", i, e.Type)
		}
	}
	return tr, nil
}

// Replay drives the tracker through the trace the way a pointer source
// would and records the values after every event. A begin during an
// active gesture ends that gesture first. Replay stops at the first
// failing move.
func Replay(t slider.Tracker, tr Trace, log logrus.FieldLogger) ([]Sample, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	samples := make([]Sample, 0, len(tr.Events))
	for i, e := range tr.Events {
		touch := geometry.NewPoint(e.X, e.Y)
		accepted := false

		switch e.Type {
		case Begin:
			if t.Tracking() {
				log.WithField("index", i).Debug("Begin during active gesture, ending it")
				t.EndTrack()
			}
			accepted = t.BeginTrack(touch)
		case Move:
			ok, err := t.ContinueTrack(touch)
			if err != nil {
				return samples, fmt.Errorf("events[%d]: %w", i, err)
			}
			accepted = ok
		case End:
			accepted = t.Tracking()
			t.EndTrack()
		case Cancel:
			accepted = t.Tracking()
			t.CancelTrack()
		default:
			return samples, fmt.Errorf("events[%d]: unknown type %q", i, e.Type)
		}

		s := Sample{Index: i, Type: e.Type, X: e.X, Y: e.Y, Accepted: accepted, Values: t.Values()}
		log.WithFields(logrus.Fields{
			"index":    i,
			"type":     e.Type,
			"accepted": accepted,
			"start":    s.Values.Start,
			"end":      s.Values.End,
		}).Trace("Replayed event")
		samples = append(samples, s)
	}

	return samples, nil
}
