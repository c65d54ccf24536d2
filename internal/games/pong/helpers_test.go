package pong

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wowjack/bevy-pong-clone/internal/config"
	"github.com/wowjack/bevy-pong-clone/internal/core"
)

const epsilon = 1e-9

// mutableGeometry lets a test resize or remove the playfield between frames.
type mutableGeometry struct {
	field core.Playfield
	ok    bool
}

func (m *mutableGeometry) Geometry() (core.Playfield, bool) {
	return m.field, m.ok
}

func newGeometry(w, h float64) *mutableGeometry {
	return &mutableGeometry{field: core.Playfield{Width: w, Height: h}, ok: true}
}

// startedGame returns a game already started on a w x h playfield.
func startedGame(t *testing.T, w, h float64) (*Game, *mutableGeometry) {
	t.Helper()
	geom := newGeometry(w, h)
	g := New(config.DefaultPongConfig())
	require.NoError(t, g.Start(geom))
	return g, geom
}
