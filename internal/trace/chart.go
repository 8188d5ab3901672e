package trace

import (
	"errors"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/philipparndt/goslider/pkg/slider"
)

// WriteChart renders the replayed values as an HTML line chart with one
// series per tracked value
func WriteChart(w io.Writer, title string, samples []Sample) error {
	if len(samples) == 0 {
		return errors.New("no samples to chart")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: string(samples[0].Values.Kind),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)

	indices := make([]int, len(samples))
	for i, s := range samples {
		indices[i] = s.Index
	}
	line.SetXAxis(indices)

	for _, series := range seriesFor(samples[0].Values.Kind) {
		data := make([]opts.LineData, len(samples))
		for i, s := range samples {
			data[i] = opts.LineData{Value: series.value(s.Values)}
		}
		line.AddSeries(series.name, data)
	}

	return line.Render(w)
}

type series struct {
	name  string
	value func(slider.Values) float64
}

func seriesFor(kind slider.Kind) []series {
	start := series{"start", func(v slider.Values) float64 { return v.Start }}
	end := series{"end", func(v slider.Values) float64 { return v.End }}

	switch kind {
	case slider.KindSingle:
		return []series{{"value", end.value}}
	case slider.KindMidPoint:
		return []series{start, end, {"mid", func(v slider.Values) float64 { return v.Mid }}}
	default:
		return []series{start, end}
	}
}
