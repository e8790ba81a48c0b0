// Package layout implements a small retained-mode view framework: a tree of
// frame-positioned views hosted by a Surface, which routes typed pointer
// interactions through the tree and collects draw commands into a canvas each
// time some view invalidates. The package also provides the horizontal
// pan-and-zoom container built on top of that framework.
package layout

import (
	"github.com/skimline/skimline/internal/geom"
	"github.com/skimline/skimline/internal/render"
)

// Cursor is the pointer shape a view requests. The surface reconciles the
// per-view cursors after each dispatched interaction.
type Cursor int

const (
	CursorNone Cursor = iota
	CursorGrab
	CursorGrabbing
)

// View is a node in the layout tree. Implementations embed BaseView and
// override the methods they care about.
type View interface {
	Frame() geom.Rect
	SetFrame(frame geom.Rect)
	DesiredSize() geom.Size
	Subviews() []View
	LayoutSubviews()
	Draw(c *render.Canvas)
	HandleInteraction(i Interaction, refs *ViewRefs)
	Cursor() Cursor
}

// BaseView provides the default View behavior: frame storage, an ordered
// subview list, cursor state, and invalidation via the owning surface.
type BaseView struct {
	surface  *Surface
	frame    geom.Rect
	subviews []View
	cursor   Cursor
}

// NewBaseView creates a base view attached to the given surface.
func NewBaseView(surface *Surface, frame geom.Rect) BaseView {
	return BaseView{surface: surface, frame: frame}
}

// Surface returns the surface hosting this view.
func (v *BaseView) Surface() *Surface { return v.surface }

func (v *BaseView) Frame() geom.Rect { return v.frame }

func (v *BaseView) SetFrame(frame geom.Rect) {
	if v.frame == frame {
		return // nothing to do
	}
	v.frame = frame
	v.SetNeedsDisplay()
}

// DesiredSize defaults to the current frame size.
func (v *BaseView) DesiredSize() geom.Size { return v.frame.Size() }

func (v *BaseView) Subviews() []View { return v.subviews }

// AddSubview appends a child view. Subviews are laid out, drawn, and receive
// interactions in insertion order.
func (v *BaseView) AddSubview(child View) {
	v.subviews = append(v.subviews, child)
	v.SetNeedsDisplay()
}

// LayoutSubviews recurses into the subviews. Containers that position their
// children override this and call through afterwards.
func (v *BaseView) LayoutSubviews() {
	for _, subview := range v.subviews {
		subview.LayoutSubviews()
	}
}

// Draw renders the subviews. Views with their own content override this, emit
// their ops, then call through so children draw on top.
func (v *BaseView) Draw(c *render.Canvas) {
	for _, subview := range v.subviews {
		subview.Draw(c)
	}
}

// HandleInteraction is a no-op; interactive views override it.
func (v *BaseView) HandleInteraction(i Interaction, refs *ViewRefs) {}

func (v *BaseView) Cursor() Cursor          { return v.cursor }
func (v *BaseView) SetCursor(cursor Cursor) { v.cursor = cursor }

// SetNeedsDisplay marks the hosting surface dirty so the next display pass
// re-lays-out and redraws the tree.
func (v *BaseView) SetNeedsDisplay() {
	if v.surface != nil {
		v.surface.Invalidate()
	}
}
