// Package timeline implements the views that draw a trace: a content view
// rendering a time ruler, span bars, and instant-event markers. The content
// view never handles pointer input itself; it is wrapped by the layout
// package's pan-and-zoom container, which drives its frame.
package timeline

import (
	"github.com/skimline/skimline/internal/geom"
	"github.com/skimline/skimline/internal/layout"
	"github.com/skimline/skimline/internal/palette"
	"github.com/skimline/skimline/internal/render"
	"github.com/skimline/skimline/internal/trace"
)

const (
	// basePxPerMs fixes the intrinsic (zoom level 1) horizontal scale.
	basePxPerMs = 1.0

	rulerHeight = 20.0
	rowHeight   = 28.0
	spanInsetY  = 4.0
	eventRadius = 5.0 // half-diagonal of the event diamond

	// Ruler ticks are spaced on a 1-2-5 ladder so that adjacent ticks are at
	// least this many pixels apart at the current zoom.
	minTickSpacingPx = 60.0
)

// ContentView draws a whole trace inside whatever frame its container
// assigns. Horizontal positions derive from the frame width, so panning and
// zooming fall out of frame assignment with no state of its own.
type ContentView struct {
	layout.BaseView
	trace *trace.Trace
}

// NewContentView creates a content view for the given trace.
func NewContentView(surface *layout.Surface, frame geom.Rect, tr *trace.Trace) *ContentView {
	return &ContentView{
		BaseView: layout.NewBaseView(surface, frame),
		trace:    tr,
	}
}

// Trace returns the trace being displayed.
func (v *ContentView) Trace() *trace.Trace { return v.trace }

// IntrinsicWidth returns the unzoomed content width in pixels, the reference
// the pan-and-zoom container scales against.
func (v *ContentView) IntrinsicWidth() float64 {
	return v.trace.Duration * basePxPerMs
}

// DesiredSize reports the intrinsic width and the stacked track height.
func (v *ContentView) DesiredSize() geom.Size {
	return geom.MakeSize(
		v.IntrinsicWidth(),
		rulerHeight+float64(len(v.trace.Tracks))*rowHeight,
	)
}

// Draw emits the ruler, track bands, spans, and event markers.
func (v *ContentView) Draw(c *render.Canvas) {
	frame := v.Frame()
	if frame.Empty() || v.trace.Duration <= 0 {
		v.BaseView.Draw(c)
		return
	}

	// The container sizes our frame to the zoomed content length, so the
	// effective scale is just frame width over trace duration.
	pxPerMs := frame.W / v.trace.Duration

	v.drawRuler(c, frame, pxPerMs)

	for ti, track := range v.trace.Tracks {
		rowY := frame.Y + rulerHeight + float64(ti)*rowHeight

		if ti%2 == 1 {
			c.FillRect(geom.MakeRect(frame.X, rowY, frame.W, rowHeight), palette.TrackBand)
		}

		for _, span := range track.Spans {
			x := frame.X + span.Start*pxPerMs
			w := span.Duration * pxPerMs
			color := palette.ForCategory(span.Category)
			if w < 1 {
				// Sub-pixel spans stay visible but de-emphasized, so dense
				// zoomed-out regions don't read as solid saturated blocks.
				w = 1
				color = palette.Dimmed(color)
			}
			c.FillRect(geom.MakeRect(x, rowY+spanInsetY, w, rowHeight-2*spanInsetY), color)
		}

		for _, event := range track.Events {
			cx := frame.X + event.At*pxPerMs
			cy := rowY + rowHeight/2
			c.FillPolygon([]geom.Point{
				{X: cx, Y: cy - eventRadius},
				{X: cx + eventRadius, Y: cy},
				{X: cx, Y: cy + eventRadius},
				{X: cx - eventRadius, Y: cy},
			}, palette.EventMark)
		}
	}

	v.BaseView.Draw(c)
}

func (v *ContentView) drawRuler(c *render.Canvas, frame geom.Rect, pxPerMs float64) {
	c.FillRect(geom.MakeRect(frame.X, frame.Y, frame.W, rulerHeight), palette.RulerBand)

	step := tickStepMs(pxPerMs)
	for t := 0.0; t <= v.trace.Duration; t += step {
		c.FillRect(geom.MakeRect(frame.X+t*pxPerMs, frame.Y, 1, rulerHeight), palette.RulerTick)
	}
}

// tickStepMs picks the smallest 1-2-5 ladder step (in ms) whose on-screen
// spacing meets minTickSpacingPx. pxPerMs must be positive.
func tickStepMs(pxPerMs float64) float64 {
	magnitude := 0.001 // start at 1µs; nobody zooms in further than that
	for {
		for _, m := range []float64{1, 2, 5} {
			step := magnitude * m
			if step*pxPerMs >= minTickSpacingPx {
				return step
			}
		}
		magnitude *= 10
	}
}
