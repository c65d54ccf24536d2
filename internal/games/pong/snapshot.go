package pong

import "github.com/wowjack/bevy-pong-clone/internal/core"

// Snapshot is a copy of everything a host needs to present one frame.
type Snapshot struct {
	Frame  uint64
	Field  core.Playfield // Geometry of the last reset
	Ball   Ball
	Walls  [2]Wall
	Goals  [2]Goal
	Score  Score
	Resets uint64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:  g.frame,
		Field:  g.field,
		Ball:   g.ball,
		Walls:  g.walls,
		Goals:  g.goals,
		Score:  g.score,
		Resets: g.resets.Resets(),
	}
}

// Rects lists every entity's position and scale in draw order: goals,
// walls, ball.
func (s Snapshot) Rects() []EntityRect {
	rects := make([]EntityRect, 0, 5)
	for _, g := range s.Goals {
		rects = append(rects, EntityRect{Kind: EntityGoal, Side: g.Side, Position: g.Position, Scale: g.Scale})
	}
	for _, w := range s.Walls {
		rects = append(rects, EntityRect{Kind: EntityWall, Wall: w.Kind, Position: w.Position, Scale: w.Scale})
	}
	rects = append(rects, EntityRect{Kind: EntityBall, Position: s.Ball.Position, Scale: s.Ball.Scale})
	return rects
}

// EntityKind tags an EntityRect.
type EntityKind int

const (
	EntityBall EntityKind = iota
	EntityWall
	EntityGoal
)

// EntityRect is the render-facing view of one entity. Wall and Side are only
// meaningful for the matching kind.
type EntityRect struct {
	Kind     EntityKind
	Wall     WallKind
	Side     Side
	Position core.Vec3
	Scale    core.Vec3
}

// Box returns the rectangle as a core.Box.
func (r EntityRect) Box() core.Box {
	return core.BoxOf(r.Position, r.Scale)
}

// Color returns the color the entity is drawn with.
func (r EntityRect) Color() core.Color {
	switch r.Kind {
	case EntityGoal:
		return sideColor(r.Side)
	case EntityWall:
		return core.ColorWhite
	default:
		return core.ColorYellow
	}
}
