package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/philipparndt/goslider/pkg/geometry"
	"github.com/philipparndt/goslider/pkg/slider"
)

// Palette holds the colors of an offscreen snapshot
type Palette struct {
	Background color.RGBA
	Track      color.RGBA
	Fill       color.RGBA
	ThumbFill  color.RGBA
	ThumbLine  color.RGBA
	Active     color.RGBA
}

// DefaultPalette returns a light palette
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{255, 255, 255, 255},
		Track:      color.RGBA{210, 210, 215, 255},
		Fill:       color.RGBA{0, 122, 255, 255},
		ThumbFill:  color.RGBA{255, 255, 255, 255},
		ThumbLine:  color.RGBA{0, 122, 255, 255},
		Active:     color.RGBA{255, 149, 0, 255},
	}
}

// segmentsFor returns how many line segments approximate an arc so that
// a full circle uses 128
func segmentsFor(sweep float64) int {
	n := int(math.Ceil(sweep / geometry.CircleMaxValue * 128))
	if n < 2 {
		return 2
	}
	return n
}

// Snapshot rasterizes a control into an image the size of its layout.
// It draws the background track, the filled arc and the thumbs, in that order.
func Snapshot(d slider.Drawable, p Palette) (*image.RGBA, error) {
	l := d.Layout()
	if l.Width <= 0 || l.Height <= 0 {
		return nil, fmt.Errorf("layout %vx%v: %w", l.Width, l.Height, geometry.ErrInvalidArgument)
	}

	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(l.Width)), int(math.Ceil(l.Height))))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: p.Background}, image.Point{}, draw.Src)

	track := geometry.NewArc(l.Circle(), 0, geometry.CircleMaxValue)
	strokePolyline(img, track.Points(segmentsFor(track.Sweep())), l.LineWidth, p.Track)

	arc, err := d.FilledArc()
	if err != nil {
		return nil, fmt.Errorf("filled arc: %w", err)
	}
	strokePolyline(img, arc.Points(segmentsFor(arc.Sweep())), l.LineWidth, p.Fill)

	thumbs, err := d.ThumbCenters()
	if err != nil {
		return nil, fmt.Errorf("thumb centers: %w", err)
	}
	for _, thumb := range thumbs {
		line := p.ThumbLine
		if thumb.Active {
			line = p.Active
		}
		fillDisc(img, thumb.Center.X, thumb.Center.Y, l.ThumbRadius, line)
		fillDisc(img, thumb.Center.X, thumb.Center.Y, l.ThumbRadius-l.ThumbLineWidth, p.ThumbFill)
	}

	return img, nil
}

// strokePolyline draws connected segments with the given width
func strokePolyline(img *image.RGBA, points []geometry.Point, width float64, col color.RGBA) {
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		drawLine(img, round(a.X), round(a.Y), round(b.X), round(b.Y), width, col)
	}
}

// fillDisc fills every pixel whose center lies within radius of (cx, cy)
func fillDisc(img *image.RGBA, cx, cy, radius float64, col color.RGBA) {
	if radius <= 0 {
		return
	}
	bounds := img.Bounds()
	minX := int(math.Max(float64(bounds.Min.X), math.Floor(cx-radius)))
	maxX := int(math.Min(float64(bounds.Max.X-1), math.Ceil(cx+radius)))
	minY := int(math.Max(float64(bounds.Min.Y), math.Floor(cy-radius)))
	maxY := int(math.Min(float64(bounds.Max.Y-1), math.Ceil(cy+radius)))

	r2 := radius * radius
	for y := minY; y <= maxY; y++ {
		dy := float64(y) - cy
		for x := minX; x <= maxX; x++ {
			dx := float64(x) - cx
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm, stamping
// a disc of the line width at every step
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, width float64, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy
	radius := math.Max(width/2, 0.5)

	for {
		fillDisc(img, float64(x1), float64(y1), radius, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
