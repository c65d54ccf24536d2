package pong

import (
	"github.com/wowjack/bevy-pong-clone/internal/config"
	"github.com/wowjack/bevy-pong-clone/internal/core"
)

// Ball is the only moving entity. Direction is kept at unit length; speed
// carries the magnitude.
type Ball struct {
	Position  core.Vec3
	Scale     core.Vec3
	Speed     float64
	Direction core.Vec2
}

// NewBall creates a ball at rest heading along direction.
// Size and speed stay zero until the first reset.
func NewBall(direction core.Vec2) Ball {
	return Ball{Direction: direction.Normalize()}
}

// Velocity returns speed * direction.
func (b Ball) Velocity() core.Vec2 {
	return b.Direction.Normalize().Scale(b.Speed)
}

// Move integrates the velocity over dt seconds. The position is not clamped;
// collision response happens afterwards in the same frame.
func (b *Ball) Move(dt float64) {
	b.Position = b.Position.Add(b.Velocity().Scale(dt).Extend(0))
}

// Box returns the collision box.
func (b Ball) Box() core.Box {
	return core.BoxOf(b.Position, b.Scale)
}

// Reflect bounces the ball off the given side of an obstacle. A component is
// only negated while the ball still travels into the obstacle, so a ball that
// stays overlapped for several frames does not flip back and forth.
func (b *Ball) Reflect(c core.Collision) (reflectX, reflectY bool) {
	switch c {
	case core.CollisionLeft:
		reflectX = b.Direction.X > 0
	case core.CollisionRight:
		reflectX = b.Direction.X < 0
	case core.CollisionTop:
		reflectY = b.Direction.Y < 0
	case core.CollisionBottom:
		reflectY = b.Direction.Y > 0
	}

	if reflectX {
		b.Direction.X = -b.Direction.X
	}
	if reflectY {
		b.Direction.Y = -b.Direction.Y
	}
	return reflectX, reflectY
}

// reset centers the ball and derives size and speed from the playfield height.
// Direction is left as it was, so play resumes toward the last heading.
func (b *Ball) reset(field core.Playfield, cfg config.BallConfig) {
	b.Speed = field.Height / cfg.SpeedDivisor

	size := cfg.SizeRatio * field.Height
	b.Scale = core.NewVec3(size, size, 1)

	b.Position = core.Vec3{}
}
