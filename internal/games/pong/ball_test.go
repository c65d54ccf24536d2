package pong

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wowjack/bevy-pong-clone/internal/core"
)

func TestNewBallDirectionIsUnit(t *testing.T) {
	b := NewBall(core.NewVec2(1, 1))
	assert.InDelta(t, 1.0, b.Direction.Len(), epsilon)
	assert.InDelta(t, math.Sqrt2/2, b.Direction.X, epsilon)
	assert.Zero(t, b.Speed)
	assert.Equal(t, core.Vec3{}, b.Scale)

	b = NewBall(core.NewVec2(3, 4))
	assert.InDelta(t, 0.6, b.Direction.X, epsilon)
	assert.InDelta(t, 0.8, b.Direction.Y, epsilon)
}

func TestBallMove(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		dir      core.Vec2
		dt       float64
		expected core.Vec3
	}{
		{"right half second", 100, core.NewVec2(1, 0), 0.5, core.NewVec3(50, 0, 0)},
		{"diagonal", 10, core.NewVec2(0.6, -0.8), 1, core.NewVec3(6, -8, 0)},
		{"zero dt", 100, core.NewVec2(1, 0), 0, core.Vec3{}},
		{"zero speed", 0, core.NewVec2(1, 0), 1, core.Vec3{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Speed: tc.speed, Direction: tc.dir}
			b.Move(tc.dt)
			assert.InDelta(t, tc.expected.X, b.Position.X, epsilon)
			assert.InDelta(t, tc.expected.Y, b.Position.Y, epsilon)
			assert.Zero(t, b.Position.Z)
		})
	}
}

func TestBallReflect(t *testing.T) {
	tests := []struct {
		name      string
		dir       core.Vec2
		collision core.Collision
		expected  core.Vec2
	}{
		{"left hit moving right", core.NewVec2(0.6, 0.8), core.CollisionLeft, core.NewVec2(-0.6, 0.8)},
		{"left hit already moving away", core.NewVec2(-0.6, 0.8), core.CollisionLeft, core.NewVec2(-0.6, 0.8)},
		{"right hit moving left", core.NewVec2(-0.6, 0.8), core.CollisionRight, core.NewVec2(0.6, 0.8)},
		{"right hit already moving away", core.NewVec2(0.6, 0.8), core.CollisionRight, core.NewVec2(0.6, 0.8)},
		{"top hit moving down", core.NewVec2(0.6, -0.8), core.CollisionTop, core.NewVec2(0.6, 0.8)},
		{"top hit already moving away", core.NewVec2(0.6, 0.8), core.CollisionTop, core.NewVec2(0.6, 0.8)},
		{"bottom hit moving up", core.NewVec2(0.6, 0.8), core.CollisionBottom, core.NewVec2(0.6, -0.8)},
		{"bottom hit already moving away", core.NewVec2(0.6, -0.8), core.CollisionBottom, core.NewVec2(0.6, -0.8)},
		{"inside reflects nothing", core.NewVec2(0.6, 0.8), core.CollisionInside, core.NewVec2(0.6, 0.8)},
		{"no collision", core.NewVec2(0.6, 0.8), core.CollisionNone, core.NewVec2(0.6, 0.8)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Speed: 42, Direction: tc.dir}
			b.Reflect(tc.collision)
			assert.Equal(t, tc.expected, b.Direction)
			assert.Equal(t, 42.0, b.Speed, "reflection must not change speed")
		})
	}
}

func TestBallStaysUnitAfterReflections(t *testing.T) {
	b := NewBall(core.NewVec2(1, 1))
	sides := []core.Collision{core.CollisionLeft, core.CollisionTop, core.CollisionRight, core.CollisionBottom}

	for i := 0; i < 1000; i++ {
		b.Reflect(sides[i%len(sides)])
		if math.Abs(b.Direction.Len()-1) > epsilon {
			t.Fatalf("direction lost unit length after %d reflections: %v", i+1, b.Direction)
		}
	}
}
