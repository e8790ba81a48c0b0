package timeline

import (
	"math"
	"testing"

	"github.com/skimline/skimline/internal/geom"
	"github.com/skimline/skimline/internal/layout"
	"github.com/skimline/skimline/internal/render"
	"github.com/skimline/skimline/internal/trace"
)

func testTrace() *trace.Trace {
	return &trace.Trace{
		Name:     "test",
		Duration: 1000,
		Tracks: []trace.Track{
			{
				Label: "a",
				Spans: []trace.Span{
					{Name: "s1", Start: 0, Duration: 400, Category: 0},
					{Name: "s2", Start: 500, Duration: 300, Category: 1},
				},
				Events: []trace.Event{{Name: "e1", At: 450}},
			},
			{
				Label: "b",
				Spans: []trace.Span{{Name: "s3", Start: 100, Duration: 600, Category: 2}},
			},
		},
	}
}

func TestIntrinsicWidth(t *testing.T) {
	v := NewContentView(layout.NewSurface(), geom.Rect{}, testTrace())
	if got := v.IntrinsicWidth(); got != 1000*basePxPerMs {
		t.Errorf("intrinsic width = %v, want %v", got, 1000*basePxPerMs)
	}
}

func TestDesiredSize(t *testing.T) {
	v := NewContentView(layout.NewSurface(), geom.Rect{}, testTrace())
	size := v.DesiredSize()
	if size.W != v.IntrinsicWidth() {
		t.Errorf("desired width = %v, want intrinsic width %v", size.W, v.IntrinsicWidth())
	}
	wantH := rulerHeight + 2*rowHeight
	if size.H != wantH {
		t.Errorf("desired height = %v, want %v", size.H, wantH)
	}
}

func TestDrawOpCount(t *testing.T) {
	v := NewContentView(layout.NewSurface(), geom.Rect{}, testTrace())
	frame := geom.MakeRect(0, 0, 1000, 100)
	v.SetFrame(frame)

	c := render.NewCanvas()
	v.Draw(c)

	// Ruler band + ticks, one alternating track band, three spans, one event
	// diamond. pxPerMs is 1, so the tick step is 100ms: 11 ticks over [0, 1000].
	ticks := 11
	want := 1 + ticks + 1 + 3 + 1
	if c.Len() != want {
		t.Errorf("draw recorded %d ops, want %d", c.Len(), want)
	}
}

func TestDrawEmptyFrame(t *testing.T) {
	v := NewContentView(layout.NewSurface(), geom.Rect{}, testTrace())

	c := render.NewCanvas()
	v.Draw(c) // zero frame

	if c.Len() != 0 {
		t.Errorf("expected no ops for an empty frame, got %d", c.Len())
	}
}

func TestTickStepLadder(t *testing.T) {
	tests := []struct {
		pxPerMs float64
		want    float64
	}{
		{1, 100},     // 100ms ticks at 1px/ms
		{10, 10},     // zooming in tightens the step
		{0.1, 1000},  // zooming out widens it
		{1000, 0.1},  // deep zoom reaches sub-ms steps
		{0.01, 10000} /* far out */,
	}
	for _, tt := range tests {
		got := tickStepMs(tt.pxPerMs)
		// The ladder is built by repeated decimal multiplication, so allow
		// for float rounding.
		if math.Abs(got-tt.want)/tt.want > 1e-9 {
			t.Errorf("tickStepMs(%v) = %v, want %v", tt.pxPerMs, got, tt.want)
		}
	}
}

func TestTickSpacingAlwaysSufficient(t *testing.T) {
	for _, pxPerMs := range []float64{0.003, 0.07, 0.5, 3, 42, 900} {
		step := tickStepMs(pxPerMs)
		if spacing := step * pxPerMs; spacing < minTickSpacingPx {
			t.Errorf("pxPerMs=%v: spacing %v below minimum %v", pxPerMs, spacing, minTickSpacingPx)
		}
	}
}
