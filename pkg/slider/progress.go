package slider

import (
	"fmt"

	"github.com/philipparndt/goslider/pkg/geometry"
)

// ProgressView displays a range on the circle without reacting to touch.
// A label is drawn at the end of the range.
type ProgressView struct {
	core
	span
	ShowEndThumb bool
}

// NewProgressView creates a progress view on [0, 1] from 0 to 0.5
func NewProgressView(layout Layout) *ProgressView {
	return &ProgressView{
		core: newCore(layout),
		span: span{start: 0, end: 0.5, distance: Unconstrained},
	}
}

// Kind returns KindProgress
func (p *ProgressView) Kind() Kind { return KindProgress }

// StartPointValue returns the start value
func (p *ProgressView) StartPointValue() float64 { return p.start }

// EndPointValue returns the end value
func (p *ProgressView) EndPointValue() float64 { return p.end }

// Values returns a snapshot of both values
func (p *ProgressView) Values() Values {
	return Values{Kind: KindProgress, Start: p.start, End: p.end}
}

// SetStartPointValue sets the start value; a linked end follows
func (p *ProgressView) SetStartPointValue(v float64) bool {
	return p.setStart(v, p.minimum, p.maximum)
}

// SetEndPointValue sets the end value; a linked start follows
func (p *ProgressView) SetEndPointValue(v float64) bool {
	return p.setEnd(v, p.minimum, p.maximum)
}

// SetDistance links the values at a fixed distance, or unlinks them
func (p *ProgressView) SetDistance(d float64) error {
	return p.setDistance(d, p.minimum, p.maximum)
}

// SetBounds sets both bounds at once and re-clamps the values
func (p *ProgressView) SetBounds(minimum, maximum float64) error {
	if err := p.checkBounds(minimum, maximum); err != nil {
		return err
	}
	if p.linked() {
		if err := checkDistance(p.distance, minimum, maximum); err != nil {
			return err
		}
	}
	p.minimum, p.maximum = minimum, maximum
	p.fit(minimum, maximum)
	return nil
}

// FilledArc returns the arc from the start to the end value
func (p *ProgressView) FilledArc() (geometry.Arc, error) {
	return p.arc(p.start, p.end)
}

// ThumbCenters returns the end thumb when it is shown
func (p *ProgressView) ThumbCenters() ([]ThumbCenter, error) {
	if !p.ShowEndThumb {
		return nil, nil
	}
	center, err := p.thumbCenter(p.end)
	if err != nil {
		return nil, err
	}
	return []ThumbCenter{{Thumb: ThumbEnd, Center: center}}, nil
}

// LabelCenter returns where the progress label is drawn
func (p *ProgressView) LabelCenter() (geometry.Point, error) {
	return p.thumbCenter(p.end)
}

// ProgressText formats the end value for the label
func (p *ProgressView) ProgressText(format string) string {
	if format == "" {
		format = "%.0f"
	}
	return fmt.Sprintf(format, p.end)
}
