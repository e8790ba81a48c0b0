package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/skimline/skimline/internal/geom"
	"github.com/skimline/skimline/internal/layout"
	"github.com/skimline/skimline/internal/render"
)

// wheelScale converts one GLFW scroll step into wheel deltas following the
// browser convention (positive deltaY scrolls down, in pixel-ish units).
const wheelScale = 20.0

// EventHandlers translates GLFW input callbacks into interactions dispatched
// through the surface's view tree, and mirrors the surface's cursor choice
// back onto the window.
type EventHandlers struct {
	window   *glfw.Window
	surface  *layout.Surface
	renderer *render.Renderer

	// Last observed pointer position in framebuffer coordinates, used to
	// derive per-move deltas.
	lastPointer  geom.Point
	pointerKnown bool

	appliedCursor layout.Cursor
	cursors       map[layout.Cursor]*glfw.Cursor
}

// NewEventHandlers creates the event handlers and installs the callbacks.
func NewEventHandlers(window *glfw.Window, surface *layout.Surface, renderer *render.Renderer) *EventHandlers {
	eh := &EventHandlers{
		window:   window,
		surface:  surface,
		renderer: renderer,
		cursors: map[layout.Cursor]*glfw.Cursor{
			// GLFW 3.3 ships no open/closed-hand standard cursors, so grab
			// maps to the hand and grabbing to the horizontal-resize arrows.
			layout.CursorNone:     glfw.CreateStandardCursor(glfw.ArrowCursor),
			layout.CursorGrab:     glfw.CreateStandardCursor(glfw.HandCursor),
			layout.CursorGrabbing: glfw.CreateStandardCursor(glfw.HResizeCursor),
		},
	}
	eh.SetupCallbacks(window)
	return eh
}

// SetupCallbacks configures all GLFW event callbacks.
func (eh *EventHandlers) SetupCallbacks(window *glfw.Window) {
	window.SetMouseButtonCallback(func(wnd *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		eh.handleMouseButton(button, action, mods)
	})
	window.SetCursorPosCallback(func(wnd *glfw.Window, xpos, ypos float64) {
		eh.handleCursorPos(xpos, ypos)
	})
	window.SetScrollCallback(func(wnd *glfw.Window, xoff, yoff float64) {
		eh.handleScroll(xoff, yoff)
	})
	window.SetKeyCallback(func(wnd *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		eh.handleKey(key, action)
	})
	window.SetFramebufferSizeCallback(func(wnd *glfw.Window, newW, newH int) {
		eh.surface.SetBounds(float64(newW), float64(newH))
		eh.renderer.SetView(newW, newH)
	})
}

// pointerPos returns the current cursor position in framebuffer coordinates.
// GLFW reports cursor positions in screen coordinates, which differ from the
// framebuffer on high-DPI displays.
func (eh *EventHandlers) pointerPos() geom.Point {
	mouseX, mouseY := eh.window.GetCursorPos()
	scaleX, scaleY := eh.window.GetContentScale()
	return geom.MakePoint(mouseX*float64(scaleX), mouseY*float64(scaleY))
}

func (eh *EventHandlers) handleMouseButton(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return // nothing to do
	}

	kind := layout.KindMouseDown
	if action == glfw.Release {
		kind = layout.KindMouseUp
	}
	eh.surface.DispatchInteraction(layout.Interaction{
		Kind:      kind,
		Location:  eh.pointerPos(),
		Modifiers: translateModifiers(mods),
	})
	eh.applyCursor()
}

func (eh *EventHandlers) handleCursorPos(xpos, ypos float64) {
	scaleX, scaleY := eh.window.GetContentScale()
	p := geom.MakePoint(xpos*float64(scaleX), ypos*float64(scaleY))

	var movementX, movementY float64
	if eh.pointerKnown {
		movementX = p.X - eh.lastPointer.X
		movementY = p.Y - eh.lastPointer.Y
	}
	eh.lastPointer = p
	eh.pointerKnown = true

	eh.surface.DispatchInteraction(layout.Interaction{
		Kind:      layout.KindMouseMove,
		Location:  p,
		MovementX: movementX,
		MovementY: movementY,
		Modifiers: eh.heldModifiers(),
	})
	eh.applyCursor()
}

func (eh *EventHandlers) handleScroll(xoff, yoff float64) {
	// GLFW reports scroll-up as positive yoff; the wheel convention used by
	// the views is the opposite.
	eh.surface.DispatchInteraction(layout.Interaction{
		Kind:      layout.KindWheel,
		Location:  eh.pointerPos(),
		DeltaX:    -xoff * wheelScale,
		DeltaY:    -yoff * wheelScale,
		Modifiers: eh.heldModifiers(),
	})
	eh.applyCursor()
}

func (eh *EventHandlers) handleKey(key glfw.Key, action glfw.Action) {
	if action != glfw.Press {
		return // nothing to do
	}
	switch key {
	case glfw.KeyEscape, glfw.KeyQ:
		eh.window.SetShouldClose(true)
	}
}

// heldModifiers samples the keyboard for modifiers on events that GLFW does
// not deliver them with (cursor movement and scrolling).
func (eh *EventHandlers) heldModifiers() layout.Modifiers {
	var mods layout.Modifiers
	if eh.window.GetKey(glfw.KeyLeftShift) == glfw.Press || eh.window.GetKey(glfw.KeyRightShift) == glfw.Press {
		mods |= layout.ModShift
	}
	return mods
}

func translateModifiers(mods glfw.ModifierKey) layout.Modifiers {
	var out layout.Modifiers
	if (mods & glfw.ModShift) != 0 {
		out |= layout.ModShift
	}
	return out
}

// applyCursor pushes the surface's effective cursor to the window, skipping
// the call when nothing changed.
func (eh *EventHandlers) applyCursor() {
	c := eh.surface.CurrentCursor()
	if c == eh.appliedCursor {
		return // nothing to do
	}
	eh.window.SetCursor(eh.cursors[c])
	eh.appliedCursor = c
}
