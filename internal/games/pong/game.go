// Package pong implements the playfield simulation: a ball bouncing between
// two walls, two goals that score and trigger a reset, and the score counters.
//
// A Game is stepped by a host once per frame with the elapsed time. Within a
// frame the order is fixed: pending reset, ball motion, wall bounces, goal
// checks. A goal queues a reset that is applied at the start of the next frame.
package pong

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/wowjack/bevy-pong-clone/internal/config"
	"github.com/wowjack/bevy-pong-clone/internal/core"
)

var (
	// ErrNoGeometry is returned when the host cannot report a playfield size.
	ErrNoGeometry = errors.New("no playfield geometry available")

	// ErrNotStarted is returned by Step before Start succeeded.
	ErrNotStarted = errors.New("pong: game not started")
)

// StepResult describes what happened during one frame.
type StepResult struct {
	Frame   uint64   // Frame number, starting at 1
	Reset   bool     // A reset was applied at the start of the frame
	Bounces []Bounce // Wall contacts
	Scored  []Side   // Goals entered; each one queued a reset
	Score   Score    // Score after the frame
}

// Game owns every entity and the session score. It is not safe for
// concurrent use; a host steps it from a single goroutine.
type Game struct {
	cfg      config.PongConfig
	geometry core.GeometryProvider
	logger   *log.Logger

	ball  Ball
	walls [2]Wall
	goals [2]Goal
	score Score

	resets  ResetCoordinator
	field   core.Playfield // Geometry used by the last reset
	frame   uint64
	started bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for goal and reset events.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New spawns the ball, walls and goals. The first reset is queued here and
// applied by Start, so nothing is observable in its zero-size state.
func New(cfg config.PongConfig, opts ...Option) *Game {
	dir := core.NewVec2(cfg.Ball.Direction.X, cfg.Ball.Direction.Y)
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
		ball:   NewBall(dir),
		walls:  [2]Wall{NewWall(WallTop), NewWall(WallBottom)},
		goals:  [2]Goal{NewGoal(SideLeft), NewGoal(SideRight)},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.resets.Signal()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Start binds the geometry provider and applies the initial reset.
// Without geometry the game cannot start.
func (g *Game) Start(geometry core.GeometryProvider) error {
	if geometry == nil {
		return fmt.Errorf("pong: start: %w", ErrNoGeometry)
	}
	g.geometry = geometry

	if _, err := g.applyReset(); err != nil {
		return err
	}
	g.started = true
	g.logger.Debug("game started", "width", g.field.Width, "height", g.field.Height)
	return nil
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(dt float64) (StepResult, error) {
	if !g.started {
		return StepResult{}, ErrNotStarted
	}

	g.frame++
	result := StepResult{Frame: g.frame}

	reset, err := g.applyReset()
	if err != nil {
		return result, err
	}
	result.Reset = reset

	g.ball.Move(dt)
	result.Bounces = bounceOffWalls(&g.ball, g.walls[:])
	result.Scored = scoreGoals(g.ball, g.goals[:], &g.score, &g.resets)

	for _, side := range result.Scored {
		g.logger.Debug("goal", "side", side, "score", g.score.String(), "frame", g.frame)
	}

	result.Score = g.score
	return result, nil
}

// applyReset re-derives every entity from the current geometry if a reset
// signal is pending.
func (g *Game) applyReset() (bool, error) {
	applied, err := g.resets.Apply(g.geometry, func(field core.Playfield) {
		g.field = field
		g.ball.reset(field, g.cfg.Ball)
		for i := range g.walls {
			g.walls[i].reset(field, g.cfg.Playfield.WallThickness)
		}
		for i := range g.goals {
			g.goals[i].reset(field, g.cfg.Playfield.GoalThickness)
		}
	})
	if applied {
		g.logger.Debug("reset applied",
			"width", g.field.Width,
			"height", g.field.Height,
			"speed", g.ball.Speed,
			"resets", g.resets.Resets(),
		)
	}
	return applied, err
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Walls returns copies of the top and bottom walls.
func (g *Game) Walls() [2]Wall {
	return g.walls
}

// Goals returns copies of the left and right goals.
func (g *Game) Goals() [2]Goal {
	return g.goals
}

// Score returns the current score.
func (g *Game) Score() Score {
	return g.score
}

// Frame returns the number of frames stepped.
func (g *Game) Frame() uint64 {
	return g.frame
}

// Resets returns the reset coordinator for inspection.
func (g *Game) Resets() *ResetCoordinator {
	return &g.resets
}

// Started reports whether the initial reset has been applied.
func (g *Game) Started() bool {
	return g.started
}
