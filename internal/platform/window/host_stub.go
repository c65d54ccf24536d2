//go:build !ebiten

package window

import (
	"context"
	"fmt"

	"github.com/wowjack/bevy-pong-clone/internal/registry"
)

func init() {
	registry.Register(HostName, func() registry.Host { return &Host{} })
}

// Host is a placeholder registered in builds without the ebiten tag.
type Host struct{}

// Name implements registry.Host.
func (h *Host) Name() string {
	return HostName
}

// Title implements registry.Host.
func (h *Host) Title() string {
	return "Window (requires -tags ebiten)"
}

// Run always reports that the ebiten build tag is missing.
func (h *Host) Run(context.Context, registry.HostOptions) error {
	return fmt.Errorf("%w: rebuild with `-tags ebiten`", ErrUnavailable)
}
