package pong

import (
	"fmt"
	"math"

	"github.com/wowjack/bevy-pong-clone/internal/core"
)

// Visual characters for rendering
const (
	WallChar = '█'
	GoalChar = '░'
	BallChar = '●'
	NetChar  = '┊'
)

// Viewport maps playfield units onto screen cells.
type Viewport struct {
	CellWidth  float64 // Playfield units per column
	CellHeight float64 // Playfield units per row
}

// Playfield returns the playfield a screen of the given size covers.
func (v Viewport) Playfield(cols, rows int) core.Playfield {
	return core.Playfield{
		Width:  float64(cols) * v.CellWidth,
		Height: float64(rows) * v.CellHeight,
	}
}

// Project converts a playfield box into the cell rectangle covering it on a
// screen of the given size. Every box covers at least one cell.
func (v Viewport) Project(b core.Box, cols, rows int) core.Rect {
	halfW, halfH := v.Playfield(cols, rows).HalfExtents()
	bMin, bMax := b.Min(), b.Max()

	x0 := int(math.Floor((bMin.X + halfW) / v.CellWidth))
	x1 := int(math.Ceil((bMax.X + halfW) / v.CellWidth))
	y0 := int(math.Floor((halfH - bMax.Y) / v.CellHeight))
	y1 := int(math.Ceil((halfH - bMin.Y) / v.CellHeight))

	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// sideColor is the color used for a player's goal and score.
func sideColor(s Side) core.Color {
	if s == SideLeft {
		return core.ColorBlue
	}
	return core.ColorRed
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen, vp Viewport) {
	dst.Clear()

	cols, rows := dst.Width(), dst.Height()
	centerX := cols / 2

	dst.DrawVLine(centerX, 0, rows, NetChar, core.ColorGray)

	for _, goal := range g.goals {
		dst.DrawRect(vp.Project(goal.Box(), cols, rows), GoalChar, sideColor(goal.Side))
	}
	for _, wall := range g.walls {
		dst.DrawRect(vp.Project(wall.Box(), cols, rows), WallChar, core.ColorWhite)
	}

	dst.DrawRect(vp.Project(g.ball.Box(), cols, rows), BallChar, core.ColorYellow)

	// Scores sit just below the top wall
	left := fmt.Sprintf("%d", g.score.Left)
	right := fmt.Sprintf("%d", g.score.Right)
	dst.DrawTextColored(centerX-4-len(left), 1, left, sideColor(SideLeft))
	dst.DrawTextColored(centerX+4, 1, right, sideColor(SideRight))
}
