package trace

import (
	"testing"

	"github.com/philipparndt/goslider/pkg/slider"
	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	samples := []Sample{
		{Index: 0, Type: Begin, Accepted: false, Values: slider.Values{End: 10}},
		{Index: 1, Type: Begin, Accepted: true, Values: slider.Values{End: 10}},
		{Index: 2, Type: Move, Accepted: true, Values: slider.Values{End: 12}},
		{Index: 3, Type: Move, Accepted: true, Values: slider.Values{Start: 4, End: 12}},
		{Index: 4, Type: Move, Accepted: false, Values: slider.Values{Start: 4, End: 12}},
		{Index: 5, Type: Cancel, Accepted: true, Values: slider.Values{Start: 4, End: 12}},
	}

	r := Analyze(samples)
	assert.Equal(t, 6, r.EventCount)
	assert.Equal(t, 1, r.Gestures)
	assert.Equal(t, 1, r.Rejected)
	assert.Equal(t, 1, r.Cancelled)
	assert.Equal(t, 2, r.MoveCount)
	assert.Equal(t, 2.0, r.MinStep)
	assert.Equal(t, 4.0, r.MaxStep)
	assert.Equal(t, 3.0, r.AvgStep)
	assert.Contains(t, r.String(), "2 moves")
}

func TestAnalyzeEmpty(t *testing.T) {
	r := Analyze(nil)
	assert.Equal(t, 0, r.MoveCount)
	assert.Equal(t, 0.0, r.MinStep)
}
