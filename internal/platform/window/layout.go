// Package window is the graphical host. It runs a pong game in an ebiten
// window whose size in pixels is the playfield.
//
// The ebiten implementation is only compiled with the ebiten build tag;
// without it a stub host is registered that refuses to run.
package window

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/wowjack/bevy-pong-clone/internal/core"
)

// HostName is the registry name of the window host.
const HostName = "window"

// ErrUnavailable is returned by the stub host in builds without ebiten.
var ErrUnavailable = errors.New("window: host not available")

// windowGeometry reports the playfield from the last layout size.
type windowGeometry struct {
	width, height int
}

func (g *windowGeometry) resize(width, height int) {
	g.width, g.height = width, height
}

// Geometry implements core.GeometryProvider.
func (g *windowGeometry) Geometry() (core.Playfield, bool) {
	if g.width <= 0 || g.height <= 0 {
		return core.Playfield{}, false
	}
	return core.Playfield{Width: float64(g.width), Height: float64(g.height)}, true
}

// ScreenRect converts a playfield box (origin at the center, y up) into a
// pixel rectangle on a w x h screen (origin top-left, y down).
func ScreenRect(b core.Box, w, h int) image.Rectangle {
	halfW, halfH := float64(w)/2, float64(h)/2
	bMin, bMax := b.Min(), b.Max()

	return image.Rect(
		int(math.Round(bMin.X+halfW)),
		int(math.Round(halfH-bMax.Y)),
		int(math.Round(bMax.X+halfW)),
		int(math.Round(halfH-bMin.Y)),
	)
}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {R: 200, G: 200, B: 200, A: 255},
	core.ColorRed:     {R: 220, G: 70, B: 70, A: 255},
	core.ColorBlue:    {R: 70, G: 120, B: 220, A: 255},
	core.ColorYellow:  {R: 240, G: 210, B: 80, A: 255},
	core.ColorWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorGray:    {R: 110, G: 110, B: 120, A: 255},
}

// RGBA returns the window color for c.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}
