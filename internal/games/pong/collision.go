package pong

import "github.com/wowjack/bevy-pong-clone/internal/core"

// Bounce records one wall contact in a frame.
type Bounce struct {
	Wall      WallKind
	Collision core.Collision
	ReflectX  bool
	ReflectY  bool
}

// bounceOffWalls tests the ball against every wall independently and
// reflects its direction. Overlapping two walls in one frame may flip a
// component twice.
func bounceOffWalls(ball *Ball, walls []Wall) []Bounce {
	var bounces []Bounce
	for _, w := range walls {
		c := core.Collide(ball.Box(), w.Box())
		if c == core.CollisionNone {
			continue
		}
		rx, ry := ball.Reflect(c)
		bounces = append(bounces, Bounce{Wall: w.Kind, Collision: c, ReflectX: rx, ReflectY: ry})
	}
	return bounces
}

// scoreGoals credits every goal the ball overlaps and queues one reset
// signal per goal. Goals never change the ball.
func scoreGoals(ball Ball, goals []Goal, score *Score, resets *ResetCoordinator) []Side {
	var scored []Side
	for _, g := range goals {
		if !ball.Box().Overlaps(g.Box()) {
			continue
		}
		score.Add(g.Side)
		resets.Signal()
		scored = append(scored, g.Side)
	}
	return scored
}
