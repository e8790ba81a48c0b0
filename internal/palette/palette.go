// Package palette derives the colors the timeline is drawn with. Span colors
// are generated in HSV space, one stable hue per category, so traces color
// identically across runs.
package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Chrome colors for the non-span parts of the timeline.
var (
	Background = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	RulerTick  = color.RGBA{R: 200, G: 200, B: 204, A: 255}
	RulerBand  = color.RGBA{R: 240, G: 240, B: 242, A: 255}
	TrackBand  = color.RGBA{R: 245, G: 245, B: 247, A: 255}
	EventMark  = color.RGBA{R: 66, G: 66, B: 72, A: 255}
)

// goldenAngle spaces consecutive category hues far apart on the color wheel,
// so small category counts still read as distinct.
const goldenAngle = 137.50776405003785

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func hsb(h, s, b float64) color.RGBA {
	c := colorful.Hsv(h, clamp(s, 0, 1), clamp(b, 0, 1))
	red, green, blue := c.RGB255()
	return color.RGBA{R: red, G: green, B: blue, A: 255}
}

// ForCategory returns the fill color for spans of the given category.
// Negative categories map to a neutral grey.
func ForCategory(category int) color.RGBA {
	if category < 0 {
		return color.RGBA{R: 170, G: 170, B: 175, A: 255}
	}
	hue := float64(category) * goldenAngle
	for hue >= 360 {
		hue -= 360
	}
	return hsb(hue, 0.55, 0.82)
}

// Dimmed returns a lower-saturation variant of a category color, used for
// spans too narrow to render at full weight.
func Dimmed(c color.RGBA) color.RGBA {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, v := cf.Hsv()
	red, green, blue := colorful.Hsv(h, s*0.35, clamp(v*1.08, 0, 1)).RGB255()
	return color.RGBA{R: red, G: green, B: blue, A: c.A}
}
