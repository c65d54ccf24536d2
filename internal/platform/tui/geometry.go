package tui

import (
	"github.com/wowjack/bevy-pong-clone/internal/core"
	"github.com/wowjack/bevy-pong-clone/internal/games/pong"
)

// terminalGeometry reports the playfield covered by the terminal.
// It is only touched from the Bubble Tea update loop.
type terminalGeometry struct {
	cols, rows int
	viewport   pong.Viewport
}

func (g *terminalGeometry) resize(cols, rows int) {
	g.cols, g.rows = cols, rows
}

// Geometry implements core.GeometryProvider.
func (g *terminalGeometry) Geometry() (core.Playfield, bool) {
	if g.cols <= 0 || g.rows <= 0 {
		return core.Playfield{}, false
	}
	return g.viewport.Playfield(g.cols, g.rows), true
}
