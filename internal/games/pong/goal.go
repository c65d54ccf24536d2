package pong

import "github.com/wowjack/bevy-pong-clone/internal/core"

// Side identifies a player. A goal's side is the player credited when the
// ball enters it.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Goal is a full-height scoring zone at a horizontal edge. The Left goal sits
// at the right edge (the one the left player attacks) and vice versa.
type Goal struct {
	Side     Side
	Position core.Vec3
	Scale    core.Vec3
}

// NewGoal creates the goal crediting side. Geometry is set by reset.
func NewGoal(side Side) Goal {
	return Goal{Side: side}
}

// Box returns the collision box.
func (g Goal) Box() core.Box {
	return core.BoxOf(g.Position, g.Scale)
}

func (g *Goal) reset(field core.Playfield, thickness float64) {
	g.Scale = core.NewVec3(thickness, field.Height, 1)

	offset := (field.Width - thickness) / 2
	if g.Side == SideRight {
		offset = -offset
	}
	g.Position = core.NewVec3(offset, 0, 0)
}
