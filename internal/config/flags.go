package config

import (
	"github.com/spf13/pflag"
)

// Flags binds the command line flags that override a slider config
type Flags struct {
	kind     string
	min      float64
	max      float64
	rounds   int
	distance float64
	width    float64
	height   float64
}

// Register adds the override flags to fs
func (f *Flags) Register(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.StringVar(&f.kind, "kind", d.Slider.Kind, "slider kind (single, range, midpoint, progress)")
	fs.Float64Var(&f.min, "min", d.Slider.Min, "minimum value")
	fs.Float64Var(&f.max, "max", d.Slider.Max, "maximum value")
	fs.IntVar(&f.rounds, "rounds", d.Slider.Rounds, "revolutions covering the value range")
	fs.Float64Var(&f.distance, "distance", d.Slider.Distance, "fixed distance between start and end (-1 for none)")
	fs.Float64Var(&f.width, "width", d.Layout.Width, "view width")
	fs.Float64Var(&f.height, "height", d.Layout.Height, "view height")
}

// Overrides returns the flags the user set explicitly on fs
func (f *Flags) Overrides(fs *pflag.FlagSet) FlagOverrides {
	var o FlagOverrides
	if fs.Changed("kind") {
		o.Kind = &f.kind
	}
	if fs.Changed("min") {
		o.Min = &f.min
	}
	if fs.Changed("max") {
		o.Max = &f.max
	}
	if fs.Changed("rounds") {
		o.Rounds = &f.rounds
	}
	if fs.Changed("distance") {
		o.Distance = &f.distance
	}
	if fs.Changed("width") {
		o.Width = &f.width
	}
	if fs.Changed("height") {
		o.Height = &f.height
	}
	return o
}

// Any reports whether any override flag was set on fs
func (f *Flags) Any(fs *pflag.FlagSet) bool {
	for _, name := range []string{"kind", "min", "max", "rounds", "distance", "width", "height"} {
		if fs.Changed(name) {
			return true
		}
	}
	return false
}
