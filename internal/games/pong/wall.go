package pong

import "github.com/wowjack/bevy-pong-clone/internal/core"

// WallKind tags which boundary a wall guards.
type WallKind int

const (
	WallTop WallKind = iota
	WallBottom
)

// String returns a human-readable name for the wall kind.
func (k WallKind) String() string {
	switch k {
	case WallTop:
		return "Top"
	case WallBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Wall is a static obstacle spanning the playfield width.
type Wall struct {
	Kind     WallKind
	Position core.Vec3
	Scale    core.Vec3
}

// NewWall creates a wall of the given kind. Geometry is set by reset.
func NewWall(kind WallKind) Wall {
	return Wall{Kind: kind}
}

// Box returns the collision box.
func (w Wall) Box() core.Box {
	return core.BoxOf(w.Position, w.Scale)
}

func (w *Wall) reset(field core.Playfield, thickness float64) {
	w.Scale = core.NewVec3(field.Width, thickness, 1)

	offset := (field.Height - thickness) / 2
	if w.Kind == WallBottom {
		offset = -offset
	}
	w.Position = core.NewVec3(0, offset, 0)
}
