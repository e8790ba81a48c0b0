package layout

import "github.com/skimline/skimline/internal/geom"

// Kind tags an interaction with the pointer action that produced it.
type Kind int

const (
	KindMouseDown Kind = iota
	KindMouseMove
	KindMouseUp
	KindWheel
)

func (k Kind) String() string {
	switch k {
	case KindMouseDown:
		return "mouse-down"
	case KindMouseMove:
		return "mouse-move"
	case KindMouseUp:
		return "mouse-up"
	case KindWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// Modifiers is a bitset of modifier keys held during an interaction.
type Modifiers int

const (
	ModShift Modifiers = 1 << iota
)

// Contain reports whether all of the given modifiers are set.
func (m Modifiers) Contain(mods Modifiers) bool {
	return m&mods == mods
}

// Interaction is a typed pointer event, delivered to every view in the tree
// by the surface. Location is in framebuffer coordinates. MovementX/Y carry
// the incremental cursor movement for mouse-move events; DeltaX/Y carry wheel
// deltas (positive DeltaY means scrolling down, matching the browser wheel
// convention).
type Interaction struct {
	Kind      Kind
	Location  geom.Point
	MovementX float64
	MovementY float64
	DeltaX    float64
	DeltaY    float64
	Modifiers Modifiers
}
