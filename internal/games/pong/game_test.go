package pong

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wowjack/bevy-pong-clone/internal/config"
	"github.com/wowjack/bevy-pong-clone/internal/core"
)

func TestStartRequiresGeometry(t *testing.T) {
	g := New(config.DefaultPongConfig())

	err := g.Start(nil)
	assert.True(t, errors.Is(err, ErrNoGeometry))
	assert.False(t, g.Started())

	geom := newGeometry(800, 600)
	geom.ok = false
	err = g.Start(geom)
	assert.True(t, errors.Is(err, ErrNoGeometry))
	assert.False(t, g.Started())
	assert.Equal(t, 1, g.Resets().Pending(), "initial reset should stay queued")

	geom.ok = true
	require.NoError(t, g.Start(geom))
	assert.True(t, g.Started())
	assert.Zero(t, g.Resets().Pending())
	assert.Equal(t, uint64(1), g.Resets().Resets())
}

func TestStepBeforeStart(t *testing.T) {
	g := New(config.DefaultPongConfig())
	_, err := g.Step(0.1)
	assert.ErrorIs(t, err, ErrNotStarted)
	assert.Zero(t, g.Frame())
}

func TestGameMetadata(t *testing.T) {
	g := New(config.DefaultPongConfig())
	assert.Equal(t, "pong", g.ID())
	assert.Equal(t, "Pong", g.Title())
}

func TestGoalThenResetNextFrame(t *testing.T) {
	g, _ := startedGame(t, 800, 600)
	g.ball.Direction = core.NewVec2(-1, 0)

	var scored StepResult
	for i := 0; i < 100; i++ {
		res, err := g.Step(0.1)
		require.NoError(t, err)
		if len(res.Scored) > 0 {
			scored = res
			break
		}
	}

	require.Equal(t, []Side{SideRight}, scored.Scored)
	assert.Equal(t, Score{Left: 0, Right: 1}, scored.Score)
	assert.Equal(t, 1, g.Resets().Pending(), "reset waits for the next frame")
	assert.NotEqual(t, core.Vec3{}, g.Ball().Position, "the scoring frame leaves the ball where it is")

	res, err := g.Step(0)
	require.NoError(t, err)
	assert.True(t, res.Reset)
	assert.Empty(t, res.Scored)

	ball := g.Ball()
	assert.Equal(t, core.Vec3{}, ball.Position)
	assert.InDelta(t, 400, ball.Speed, epsilon)
	assert.Equal(t, core.NewVec2(-1, 0), ball.Direction, "direction survives a reset")
	assert.Equal(t, Score{Left: 0, Right: 1}, g.Score(), "reset never touches the score")
}

func TestLeftGoalCreditsLeft(t *testing.T) {
	g, _ := startedGame(t, 800, 600)
	g.ball.Direction = core.NewVec2(1, 0)
	g.ball.Position = core.NewVec3(380, 0, 0)

	res, err := g.Step(0)
	require.NoError(t, err)
	assert.Equal(t, []Side{SideLeft}, res.Scored)
	assert.Equal(t, 1, g.Score().Left)
	assert.Equal(t, core.NewVec2(1, 0), g.Ball().Direction, "goals never reflect the ball")
}

func TestWallBounce(t *testing.T) {
	g, _ := startedGame(t, 800, 600)
	g.ball.Direction = core.NewVec2(0.6, 0.8)
	g.ball.Position = core.NewVec3(0, 270, 0)

	res, err := g.Step(0)
	require.NoError(t, err)
	require.Len(t, res.Bounces, 1)
	assert.Equal(t, WallTop, res.Bounces[0].Wall)
	assert.Equal(t, core.CollisionBottom, res.Bounces[0].Collision)
	assert.True(t, res.Bounces[0].ReflectY)
	assert.InDelta(t, 0.6, g.Ball().Direction.X, epsilon)
	assert.InDelta(t, -0.8, g.Ball().Direction.Y, epsilon)

	// Still overlapping, but already moving away.
	res, err = g.Step(0)
	require.NoError(t, err)
	require.Len(t, res.Bounces, 1)
	assert.False(t, res.Bounces[0].ReflectY)
	assert.InDelta(t, -0.8, g.Ball().Direction.Y, epsilon)
}

func TestBottomWallBounce(t *testing.T) {
	g, _ := startedGame(t, 800, 600)
	g.ball.Direction = core.NewVec2(-0.6, -0.8)
	g.ball.Position = core.NewVec3(0, -270, 0)

	res, err := g.Step(0)
	require.NoError(t, err)
	require.Len(t, res.Bounces, 1)
	assert.Equal(t, WallBottom, res.Bounces[0].Wall)
	assert.Equal(t, core.CollisionTop, res.Bounces[0].Collision)
	assert.InDelta(t, 0.8, g.Ball().Direction.Y, epsilon)
	assert.InDelta(t, 400, g.Ball().Speed, epsilon)
}

func TestNoCollisionStability(t *testing.T) {
	g, _ := startedGame(t, 800, 600)
	before := g.Ball()

	for i := 0; i < 10; i++ {
		res, err := g.Step(0.01)
		require.NoError(t, err)
		assert.Empty(t, res.Bounces)
		assert.Empty(t, res.Scored)
		assert.False(t, res.Reset)
	}

	after := g.Ball()
	assert.Equal(t, before.Direction, after.Direction)
	assert.Equal(t, before.Speed, after.Speed)
	assert.InDelta(t, before.Velocity().X*0.1, after.Position.X, 1e-6)
	assert.InDelta(t, before.Velocity().Y*0.1, after.Position.Y, 1e-6)
	assert.Equal(t, Score{}, g.Score())
	assert.Equal(t, uint64(10), g.Frame())
}

func TestScoreMonotonic(t *testing.T) {
	g, _ := startedGame(t, 800, 600)
	g.ball.Direction = core.NewVec2(1, 0.3).Normalize()

	prev := g.Score()
	for i := 0; i < 2000; i++ {
		res, err := g.Step(1.0 / 60)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Score.Left, prev.Left)
		assert.GreaterOrEqual(t, res.Score.Right, prev.Right)
		assert.LessOrEqual(t, res.Score.Total()-prev.Total(), 2)
		prev = res.Score
	}
	assert.Positive(t, prev.Total(), "ball should have reached a goal")
}

func TestResizeAppliesOnlyOnReset(t *testing.T) {
	g, geom := startedGame(t, 800, 600)

	geom.field = core.Playfield{Width: 1000, Height: 400}
	_, err := g.Step(0)
	require.NoError(t, err)
	assert.Equal(t, core.NewVec3(0, 290, 0), g.Walls()[0].Position)
	assert.Equal(t, core.NewVec3(800, 20, 1), g.Walls()[0].Scale)

	g.Resets().Signal()
	res, err := g.Step(0)
	require.NoError(t, err)
	assert.True(t, res.Reset)
	assert.Equal(t, core.NewVec3(0, 190, 0), g.Walls()[0].Position)
	assert.Equal(t, core.NewVec3(1000, 20, 1), g.Walls()[0].Scale)
	assert.Equal(t, core.NewVec3(490, 0, 0), g.Goals()[0].Position)
	assert.InDelta(t, 400/1.5, g.Ball().Speed, epsilon)
}

func TestBothGoalsInOneFrame(t *testing.T) {
	g, _ := startedGame(t, 30, 600)

	res, err := g.Step(0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Side{SideLeft, SideRight}, res.Scored)
	assert.Equal(t, Score{Left: 1, Right: 1}, g.Score())
	assert.Equal(t, 2, g.Resets().Pending())

	resetsBefore := g.Resets().Resets()
	res, err = g.Step(0)
	require.NoError(t, err)
	assert.True(t, res.Reset)
	assert.Equal(t, resetsBefore+1, g.Resets().Resets(), "two signals collapse into one reset")
}

func TestStepFailsWhenGeometryLost(t *testing.T) {
	g, geom := startedGame(t, 800, 600)
	geom.ok = false

	_, err := g.Step(0.1)
	require.NoError(t, err, "geometry is only read during resets")

	g.Resets().Signal()
	_, err = g.Step(0.1)
	assert.ErrorIs(t, err, ErrNoGeometry)
}

func TestConfiguredDirectionIsNormalized(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Ball.Direction = config.Vec2Config{X: 0, Y: -5}

	g := New(cfg)
	assert.Equal(t, core.NewVec2(0, -1), g.Ball().Direction)
}
