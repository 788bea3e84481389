package wm

import "fmt"

// PositionKind selects how a window coordinate is expressed.
type PositionKind int

const (
	// PositionClose is an explicit offset from the near edge (left or top).
	PositionClose PositionKind = iota
	// PositionHalf centres the window along the axis.
	PositionHalf
	// PositionFar pins the window to the far edge (right or bottom).
	PositionFar
)

// Position is one axis of a window's placement. Only PositionClose
// carries an offset; the symbolic kinds are resolved when rendering.
type Position struct {
	Kind   PositionKind
	Offset int
}

// Close returns an explicit position at the given offset.
func Close(offset int) Position {
	return Position{Kind: PositionClose, Offset: offset}
}

// Half returns a centred position.
func Half() Position {
	return Position{Kind: PositionHalf}
}

// Far returns a position pinned to the far edge.
func Far() Position {
	return Position{Kind: PositionFar}
}

// IsExplicit reports whether the position is a concrete offset.
func (p Position) IsExplicit() bool {
	return p.Kind == PositionClose
}

// Resolve converts the position into an offset along an axis of the
// given extent for a window of the given size.
func (p Position) Resolve(extent, size int) int {
	switch p.Kind {
	case PositionHalf:
		return (extent - size) / 2
	case PositionFar:
		return extent - size
	default:
		return p.Offset
	}
}

func (p Position) String() string {
	switch p.Kind {
	case PositionHalf:
		return "Half"
	case PositionFar:
		return "Far"
	default:
		return fmt.Sprintf("Close(%d)", p.Offset)
	}
}

// Rect is a rendered box in desktop cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// clampOffset clamps v into [0, limit]. A negative limit pins to 0.
func clampOffset(v, limit int) int {
	return max(min(v, limit), 0)
}
