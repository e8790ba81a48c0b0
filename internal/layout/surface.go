package layout

import (
	"github.com/skimline/skimline/internal/geom"
	"github.com/skimline/skimline/internal/render"
)

// ViewRefs is the cross-view coordination registry shared by every view on a
// surface. HoveredView tracks the view currently under the pointer (cursor
// feedback only); ActiveView tracks the view that owns the current drag.
// Assignment is advisory and last-writer-wins: dispatch is single-threaded
// and runs to completion, so there is never a concurrent writer.
type ViewRefs struct {
	HoveredView View
	ActiveView  View
}

// Surface hosts a view tree: it assigns the root frame, dispatches
// interactions through the tree, reconciles the effective cursor, and tracks
// a dirty bit so the renderer only re-tessellates after something changed.
type Surface struct {
	root   View
	refs   ViewRefs
	bounds geom.Rect
	dirty  bool
}

// NewSurface creates an empty surface.
func NewSurface() *Surface {
	return &Surface{dirty: true}
}

// SetRootView installs the root of the view tree and sizes it to the surface
// bounds, if known.
func (s *Surface) SetRootView(root View) {
	s.root = root
	if !s.bounds.Empty() {
		root.SetFrame(s.bounds)
	}
	s.Invalidate()
}

// RootView returns the current root view (nil before SetRootView).
func (s *Surface) RootView() View { return s.root }

// Refs returns the shared hover/active registry for this surface.
func (s *Surface) Refs() *ViewRefs { return &s.refs }

// SetBounds resizes the surface, typically from a framebuffer-size callback.
// The root view's SetFrame runs synchronously, so views that re-validate state
// against their container width (the pan-and-zoom view does) see the new
// width before the next display pass.
func (s *Surface) SetBounds(w, h float64) {
	s.bounds = geom.MakeRect(0, 0, w, h)
	if s.root != nil {
		s.root.SetFrame(s.bounds)
	}
	s.Invalidate()
}

// Bounds returns the current surface bounds.
func (s *Surface) Bounds() geom.Rect { return s.bounds }

// Invalidate marks the surface as needing a display pass.
func (s *Surface) Invalidate() { s.dirty = true }

// Dirty reports whether a display pass is pending.
func (s *Surface) Dirty() bool { return s.dirty }

// DispatchInteraction delivers the interaction to every view in tree order
// (parents before children). Each handler runs to completion before the next
// view sees the event; handlers invalidate the surface as a side effect of
// any state they change.
func (s *Surface) DispatchInteraction(i Interaction) {
	if s.root == nil {
		return // nothing to do
	}
	dispatch(s.root, i, &s.refs)
}

func dispatch(v View, i Interaction, refs *ViewRefs) {
	v.HandleInteraction(i, refs)
	for _, subview := range v.Subviews() {
		dispatch(subview, i, refs)
	}
}

// CurrentCursor returns the cursor the window should show: the drag owner's
// cursor wins over the hovered view's, and with neither set the cursor is
// CursorNone (the host falls back to the default arrow).
func (s *Surface) CurrentCursor() Cursor {
	if s.refs.ActiveView != nil {
		return s.refs.ActiveView.Cursor()
	}
	if s.refs.HoveredView != nil {
		return s.refs.HoveredView.Cursor()
	}
	return CursorNone
}

// DisplayIfNeeded runs a layout-then-draw pass into the canvas if the surface
// is dirty, clearing the dirty bit. It reports whether a pass ran, i.e.
// whether the canvas now holds fresh ops the renderer should re-upload.
func (s *Surface) DisplayIfNeeded(c *render.Canvas) bool {
	if !s.dirty || s.root == nil {
		return false
	}

	// Layout first: frame assignments made during layout re-invalidate the
	// surface, and those are consumed by the draw below, so the dirty bit is
	// cleared between the two.
	s.root.LayoutSubviews()
	s.dirty = false

	c.Reset()
	s.root.Draw(c)
	return true
}
