package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goslider/pkg/geometry"
	"github.com/philipparndt/goslider/pkg/slider"
	"github.com/sirupsen/logrus"
)

// labeler is implemented by controls that draw a text label on the track
type labeler interface {
	LabelCenter() (geometry.Point, error)
	ProgressText(format string) string
}

// CircularSlider renders a circular control and feeds pointer gestures
// into it when the control tracks touches
type CircularSlider struct {
	widget.BaseWidget
	control   slider.Drawable
	tracker   slider.Tracker // nil for display-only controls
	log       logrus.FieldLogger
	onChanged func()
	pressed   bool // a gesture was attempted for the current press
	// LabelFormat formats the progress label
	LabelFormat string
}

// NewCircularSlider creates a widget for the given control
func NewCircularSlider(control slider.Drawable, log logrus.FieldLogger) *CircularSlider {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &CircularSlider{log: log}
	s.ExtendBaseWidget(s)
	s.SetControl(control)
	return s
}

// Control returns the rendered control
func (s *CircularSlider) Control() slider.Drawable {
	return s.control
}

// SetControl replaces the rendered control, keeping the current size
func (s *CircularSlider) SetControl(control slider.Drawable) {
	if s.control != nil {
		l := control.Layout()
		old := s.control.Layout()
		l.Width, l.Height = old.Width, old.Height
		control.SetLayout(l)
	}

	s.control = control
	s.tracker = nil
	s.pressed = false
	if t, ok := control.(slider.Tracker); ok {
		s.tracker = t
		t.OnEvent(func(e slider.Event) { s.handleEvent(t, e) })
	}
	s.Refresh()
}

// SetOnChanged sets the callback fired whenever a drag changes the values
func (s *CircularSlider) SetOnChanged(fn func()) {
	s.onChanged = fn
}

func (s *CircularSlider) handleEvent(t slider.Tracker, e slider.Event) {
	// events of a replaced control are stale
	if t != s.tracker {
		return
	}

	v := t.Values()
	s.log.WithFields(logrus.Fields{
		"kind":  v.Kind,
		"event": e,
		"start": v.Start,
		"end":   v.End,
	}).Trace("Slider event")

	if e == slider.ValueChanged {
		s.Refresh()
		if s.onChanged != nil {
			s.onChanged()
		}
	}
}

// CreateRenderer creates the renderer for the widget
func (s *CircularSlider) CreateRenderer() fyne.WidgetRenderer {
	return &circularSliderRenderer{slider: s}
}

// MouseDown starts a gesture at the pressed position
func (s *CircularSlider) MouseDown(event *desktop.MouseEvent) {
	s.begin(event.Position)
}

// MouseUp finishes the gesture
func (s *CircularSlider) MouseUp(*desktop.MouseEvent) {
	s.end()
}

// Dragged continues the gesture. Without a preceding MouseDown (touch
// devices) the first drag event starts it.
func (s *CircularSlider) Dragged(event *fyne.DragEvent) {
	if !s.pressed {
		s.begin(event.Position)
	}
	if s.tracker == nil || !s.tracker.Tracking() {
		return
	}

	if _, err := s.tracker.ContinueTrack(toPoint(event.Position)); err != nil {
		s.log.WithError(err).Warn("Failed to update slider")
	}
}

// DragEnd finishes the gesture
func (s *CircularSlider) DragEnd() {
	s.end()
}

func (s *CircularSlider) begin(pos fyne.Position) {
	s.pressed = true
	if s.tracker == nil {
		return
	}
	if !s.tracker.BeginTrack(toPoint(pos)) {
		s.log.WithField("position", pos).Debug("Touch missed all thumbs")
		return
	}
	s.Refresh()
}

func (s *CircularSlider) end() {
	if !s.pressed {
		return
	}
	s.pressed = false
	if s.tracker != nil && s.tracker.Tracking() {
		s.tracker.EndTrack()
		s.Refresh()
	}
}

func toPoint(pos fyne.Position) geometry.Point {
	return geometry.NewPoint(float64(pos.X), float64(pos.Y))
}

// circularSliderRenderer implements fyne.WidgetRenderer
type circularSliderRenderer struct {
	slider  *CircularSlider
	objects []fyne.CanvasObject
}

func (r *circularSliderRenderer) Layout(size fyne.Size) {
	control := r.slider.control
	l := control.Layout()
	l.Width, l.Height = float64(size.Width), float64(size.Height)
	control.SetLayout(l)
	r.build()
}

func (r *circularSliderRenderer) MinSize() fyne.Size {
	return fyne.NewSize(120, 120)
}

func (r *circularSliderRenderer) Refresh() {
	r.build()
	canvas.Refresh(r.slider)
}

func (r *circularSliderRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *circularSliderRenderer) Destroy() {}

// build recreates the canvas objects from the control state
func (r *circularSliderRenderer) build() {
	s := r.slider
	l := s.control.Layout()
	r.objects = r.objects[:0]

	track := geometry.NewArc(l.Circle(), 0, geometry.CircleMaxValue)
	r.objects = appendPolyline(r.objects, track, l.LineWidth, theme.Color(theme.ColorNameDisabled))

	arc, err := s.control.FilledArc()
	if err != nil {
		s.log.WithError(err).Warn("Failed to compute filled arc")
		return
	}
	r.objects = appendPolyline(r.objects, arc, l.LineWidth, theme.Color(theme.ColorNamePrimary))

	thumbs, err := s.control.ThumbCenters()
	if err != nil {
		s.log.WithError(err).Warn("Failed to compute thumb centers")
		return
	}
	for _, thumb := range thumbs {
		stroke := theme.Color(theme.ColorNamePrimary)
		if thumb.Active {
			stroke = theme.Color(theme.ColorNameFocus)
		}
		marker := canvas.NewCircle(theme.Color(theme.ColorNameBackground))
		marker.StrokeColor = stroke
		marker.StrokeWidth = float32(l.ThumbLineWidth)
		size := float32(2 * l.ThumbRadius)
		marker.Resize(fyne.NewSize(size, size))
		marker.Move(fyne.NewPos(float32(thumb.Center.X)-size/2, float32(thumb.Center.Y)-size/2))
		r.objects = append(r.objects, marker)
	}

	if lb, ok := s.control.(labeler); ok {
		center, err := lb.LabelCenter()
		if err != nil {
			return
		}
		text := canvas.NewText(lb.ProgressText(s.LabelFormat), theme.Color(theme.ColorNameForeground))
		text.Alignment = fyne.TextAlignCenter
		size := text.MinSize()
		text.Resize(size)
		text.Move(fyne.NewPos(float32(center.X)-size.Width/2, float32(center.Y)-size.Height/2))
		r.objects = append(r.objects, text)
	}
}

func appendPolyline(objects []fyne.CanvasObject, arc geometry.Arc, width float64, col color.Color) []fyne.CanvasObject {
	points := arc.Points(segmentsFor(arc.Sweep()))
	for i := 1; i < len(points); i++ {
		line := canvas.NewLine(col)
		line.StrokeWidth = float32(width)
		line.Position1 = fyne.NewPos(float32(points[i-1].X), float32(points[i-1].Y))
		line.Position2 = fyne.NewPos(float32(points[i].X), float32(points[i].Y))
		objects = append(objects, line)
	}
	return objects
}
