//go:build ebiten

package window

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wowjack/bevy-pong-clone/internal/games/pong"
	"github.com/wowjack/bevy-pong-clone/internal/registry"
)

func init() {
	registry.Register(HostName, func() registry.Host { return &Host{} })
}

// Host runs pong in an ebiten window.
type Host struct{}

// Name implements registry.Host.
func (h *Host) Name() string {
	return HostName
}

// Title implements registry.Host.
func (h *Host) Title() string {
	return "Window (Ebitengine)"
}

// Run opens the window and blocks until it is closed, the player quits or
// ctx is cancelled.
func (h *Host) Run(ctx context.Context, opts registry.HostOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Config
	g := newGame(ctx, pong.New(cfg, pong.WithLogger(logger)), logger)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Runtime.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return g.err
}
