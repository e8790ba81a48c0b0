package layout

import (
	"math"

	"github.com/skimline/skimline/internal/geom"
	"github.com/skimline/skimline/internal/scrollstate"
)

// Zoom levels are multipliers over the content view's intrinsic width. The
// zoomed content length always stays within
// [intrinsic * MinZoomLevel, intrinsic * MaxZoomLevel].
const (
	MinZoomLevel     = 0.25
	MaxZoomLevel     = 1000.0
	DefaultZoomLevel = 0.25
)

// Wheel deltas with a dominant-axis magnitude below this are treated as
// trackpad jitter and ignored.
const wheelDeltaThreshold = 1.0

// zoomWheelRate converts a wheel delta unit into a relative content-length
// change: one unit of (negated) deltaY zooms by 0.5%.
const zoomWheelRate = 0.005

// StateChangeFunc observes user-gesture-driven scroll state changes. It is
// invoked synchronously from the interaction handlers; re-entrant calls into
// SetScrollState from the callback are safe.
type StateChangeFunc func(view View, state scrollstate.State)

// HorizontalPanAndZoomView wraps a single content view and translates pointer
// gestures into horizontal pan and zoom of that content. Each layout pass it
// positions the content at (frame.x + offset, frame.y) with size
// (length, frame.h); panning drags the offset, zooming rescales the length
// anchored at the pointer.
//
// The observer callback fires only for interaction-driven changes. The
// programmatic setters (SetScrollState, ZoomToRange) apply silently, so a
// caller that is itself the observer does not loop.
type HorizontalPanAndZoomView struct {
	BaseView

	contentView           View
	intrinsicContentWidth float64
	state                 scrollstate.State
	isPanning             bool
	onStateChange         StateChangeFunc
}

// NewHorizontalPanAndZoomView creates the container with contentView as its
// sole subview. The initial state is unzoomed-by-default: offset 0, length
// intrinsicContentWidth * DefaultZoomLevel. onStateChange may be nil.
func NewHorizontalPanAndZoomView(
	surface *Surface,
	frame geom.Rect,
	contentView View,
	intrinsicContentWidth float64,
	onStateChange StateChangeFunc,
) *HorizontalPanAndZoomView {
	v := &HorizontalPanAndZoomView{
		BaseView:              NewBaseView(surface, frame),
		contentView:           contentView,
		intrinsicContentWidth: intrinsicContentWidth,
		onStateChange:         onStateChange,
	}
	v.AddSubview(contentView)
	v.applyState(scrollstate.State{
		Offset: 0,
		Length: intrinsicContentWidth * DefaultZoomLevel,
	})
	return v
}

// ScrollState returns the current (clamped) scroll state.
func (v *HorizontalPanAndZoomView) ScrollState() scrollstate.State { return v.state }

// SetFrame resizes the view and re-validates the scroll state against the new
// container width, so zoom and offset bounds always track the latest size.
// A state adjusted by the re-clamp notifies the observer.
func (v *HorizontalPanAndZoomView) SetFrame(frame geom.Rect) {
	v.BaseView.SetFrame(frame)
	v.applyStateAndNotify(v.state)
}

// SetScrollState clamps and applies the proposed state without notifying the
// observer: externally-driven assignment must not echo back to the caller.
func (v *HorizontalPanAndZoomView) SetScrollState(proposed scrollstate.State) {
	v.applyState(proposed)
}

// ZoomToRange fits [rangeStart, rangeEnd] of the intrinsic content width into
// the container, bounded by the zoom limits. Applies silently, like
// SetScrollState.
func (v *HorizontalPanAndZoomView) ZoomToRange(rangeStart, rangeEnd float64) {
	v.applyState(scrollstate.FitRange(
		v.state,
		rangeStart, rangeEnd,
		v.intrinsicContentWidth,
		v.minContentLength(), v.maxContentLength(),
		v.Frame().W,
	))
}

// DesiredSize forwards to the content view.
func (v *HorizontalPanAndZoomView) DesiredSize() geom.Size {
	return v.contentView.DesiredSize()
}

// LayoutSubviews positions the content according to the scroll state.
func (v *HorizontalPanAndZoomView) LayoutSubviews() {
	frame := v.Frame()
	v.contentView.SetFrame(geom.MakeRect(
		frame.X+v.state.Offset,
		frame.Y,
		v.state.Length,
		frame.H,
	))
	v.BaseView.LayoutSubviews()
}

// HandleInteraction routes the interaction to the matching gesture handler.
// Unrecognized kinds are ignored.
func (v *HorizontalPanAndZoomView) HandleInteraction(i Interaction, refs *ViewRefs) {
	switch i.Kind {
	case KindMouseDown:
		v.onMouseDown(i, refs)
	case KindMouseMove:
		v.onMouseMove(i, refs)
	case KindMouseUp:
		v.onMouseUp(i, refs)
	case KindWheel:
		v.onWheel(i)
	}
}

func (v *HorizontalPanAndZoomView) minContentLength() float64 {
	return v.intrinsicContentWidth * MinZoomLevel
}

func (v *HorizontalPanAndZoomView) maxContentLength() float64 {
	return v.intrinsicContentWidth * MaxZoomLevel
}

// applyState clamps the proposed state and adopts it if it differs from the
// current one, scheduling a redraw. The value-equality early exit is what
// makes every mutator idempotent under repeated identical input. Reports
// whether the state actually changed.
func (v *HorizontalPanAndZoomView) applyState(proposed scrollstate.State) bool {
	clamped := scrollstate.Clamp(
		proposed,
		v.minContentLength(), v.maxContentLength(),
		v.Frame().W,
	)
	if scrollstate.Equal(clamped, v.state) {
		return false // nothing to do
	}
	v.state = clamped
	v.SetNeedsDisplay()
	return true
}

// applyStateAndNotify is the single path through which interaction-driven
// changes reach the observer. The state is installed before the callback
// runs, so re-entrant setter calls from the observer see the new state.
func (v *HorizontalPanAndZoomView) applyStateAndNotify(proposed scrollstate.State) {
	if v.applyState(proposed) && v.onStateChange != nil {
		v.onStateChange(v, v.state)
	}
}

func (v *HorizontalPanAndZoomView) onMouseDown(i Interaction, refs *ViewRefs) {
	if !v.Frame().Contains(i.Location) {
		return // another view may claim the press
	}
	v.isPanning = true
	refs.ActiveView = v
	v.SetCursor(CursorGrabbing)
}

func (v *HorizontalPanAndZoomView) onMouseMove(i Interaction, refs *ViewRefs) {
	if v.Frame().Contains(i.Location) {
		refs.HoveredView = v
	}
	switch {
	case refs.ActiveView == View(v):
		v.SetCursor(CursorGrabbing)
	case refs.HoveredView == View(v):
		v.SetCursor(CursorGrab)
	}

	if !v.isPanning {
		return
	}
	v.applyStateAndNotify(scrollstate.Translate(v.state, i.MovementX, v.Frame().W))
}

func (v *HorizontalPanAndZoomView) onMouseUp(i Interaction, refs *ViewRefs) {
	// The panning flag clears regardless of where the release lands or
	// whether another view stole activity in between.
	v.isPanning = false
	if refs.ActiveView == View(v) {
		refs.ActiveView = nil
	}
}

func (v *HorizontalPanAndZoomView) onWheel(i Interaction) {
	if !v.Frame().Contains(i.Location) {
		return // nothing to do
	}

	absDeltaX := math.Abs(i.DeltaX)
	absDeltaY := math.Abs(i.DeltaY)

	if absDeltaY > absDeltaX {
		if absDeltaY < wheelDeltaThreshold {
			return // trackpad jitter
		}
		if i.Modifiers.Contain(ModShift) {
			// Shift+vertical-wheel is reserved for vertical panning in
			// sibling views; never zoom on it.
			return
		}
		// Wheel-up (negative deltaY) zooms in, anchored so the content point
		// under the pointer stays fixed on screen.
		multiplier := 1 + zoomWheelRate*(-i.DeltaY)
		fixedPoint := i.Location.X - v.state.Offset
		v.applyStateAndNotify(scrollstate.Zoom(
			v.state,
			multiplier, fixedPoint,
			v.minContentLength(), v.maxContentLength(),
			v.Frame().W,
		))
		return
	}

	if absDeltaX < wheelDeltaThreshold {
		return // trackpad jitter
	}
	v.applyStateAndNotify(scrollstate.Translate(v.state, -i.DeltaX, v.Frame().W))
}
