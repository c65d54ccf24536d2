package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/wowjack/bevy-pong-clone/internal/games/pong"
	"github.com/wowjack/bevy-pong-clone/internal/registry"
)

// HostName is the registry name of the terminal host.
const HostName = "terminal"

func init() {
	registry.Register(HostName, func() registry.Host { return &Host{} })
}

// Host runs pong in the current terminal.
type Host struct{}

// Name implements registry.Host.
func (h *Host) Name() string {
	return HostName
}

// Title implements registry.Host.
func (h *Host) Title() string {
	return "Terminal (Bubble Tea)"
}

// Run starts the game on the terminal attached to stdout and blocks until
// the player quits or ctx is cancelled.
func (h *Host) Run(ctx context.Context, opts registry.HostOptions) error {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("tui: terminal size: %w: %w", pong.ErrNoGeometry, err)
	}

	game := pong.New(opts.Config, pong.WithLogger(opts.Logger))
	model, err := NewModel(game, opts.Config, cols, rows, opts.Logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}

	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
