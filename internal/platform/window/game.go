//go:build ebiten

package window

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/wowjack/bevy-pong-clone/internal/core"
	"github.com/wowjack/bevy-pong-clone/internal/games/pong"
)

var background = color.RGBA{R: 12, G: 12, B: 16, A: 255}

// game adapts a pong game to the ebiten.Game interface.
type game struct {
	ctx      context.Context
	pong     *pong.Game
	geometry *windowGeometry
	logger   *log.Logger

	pixels map[core.Color]*ebiten.Image
	last   time.Time
	paused bool
	err    error
}

func newGame(ctx context.Context, p *pong.Game, logger *log.Logger) *game {
	return &game{
		ctx:      ctx,
		pong:     p,
		geometry: &windowGeometry{},
		logger:   logger,
		pixels:   make(map[core.Color]*ebiten.Image),
	}
}

// Update starts the game once a layout is known and then steps it by the
// wall-clock time since the previous update.
func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	if !g.pong.Started() {
		if _, ok := g.geometry.Geometry(); !ok {
			return nil
		}
		return g.fail(g.pong.Start(g.geometry))
	}

	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	if g.paused {
		return nil
	}

	_, err := g.pong.Step(dt)
	return g.fail(err)
}

// fail records a fatal error and stops the run loop.
func (g *game) fail(err error) error {
	if err == nil {
		return nil
	}
	g.logger.Error("stopping", "err", err)
	g.err = err
	return ebiten.Termination
}

// Draw renders the last snapshot.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if !g.pong.Started() {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	snap := g.pong.Snapshot()

	for _, r := range snap.Rects() {
		g.fillRect(screen, ScreenRect(r.Box(), w, h), r.Color())
	}

	face := basicfont.Face7x13
	left := fmt.Sprintf("%d", snap.Score.Left)
	right := fmt.Sprintf("%d", snap.Score.Right)
	top := int(snap.Walls[0].Scale.Y) + 24
	text.Draw(screen, left, face, w/2-40-7*len(left), top, RGBA(core.ColorBlue))
	text.Draw(screen, right, face, w/2+40, top, RGBA(core.ColorRed))

	if g.paused {
		text.Draw(screen, "PAUSED", face, w/2-21, h/2-30, RGBA(core.ColorYellow))
	}
}

func (g *game) fillRect(dst *ebiten.Image, r image.Rectangle, c core.Color) {
	if r.Empty() {
		return
	}
	px, ok := g.pixels[c]
	if !ok {
		px = ebiten.NewImage(1, 1)
		px.Fill(RGBA(c))
		g.pixels[c] = px
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	dst.DrawImage(px, op)
}

// Layout makes the logical screen match the window; its size is the playfield.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.geometry.width || outsideHeight != g.geometry.height {
		g.logger.Debug("window layout", "width", outsideWidth, "height", outsideHeight)
		g.geometry.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
