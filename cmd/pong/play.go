package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wowjack/bevy-pong-clone/internal/config"
	"github.com/wowjack/bevy-pong-clone/internal/platform/tui"
	"github.com/wowjack/bevy-pong-clone/internal/registry"
)

const defaultHost = tui.HostName

var flagHost string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play pong",
	Long: `Start a game with the selected host.

Controls (terminal):
  P/Esc      - Pause
  Ctrl+S     - Save a text screenshot to ~/.pong/screenshots
  Q/Ctrl+C   - Quit

Controls (window):
  P          - Pause
  Q/Esc      - Quit

Examples:
  pong play
  pong play --host window
  pong play --config ./my-pong.yaml --log-level debug --log-file pong.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagHost, "host", defaultHost, "Host to play with (see 'pong hosts')")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	host, err := registry.Create(flagHost)
	if err != nil {
		return fmt.Errorf("%w (run 'pong hosts' to see available hosts)", err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogLevel, flagLogFile, host.Name() == tui.HostName)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "host", host.Name(), "tick_rate", cfg.Runtime.TickRate)
	if err := host.Run(ctx, registry.HostOptions{Config: cfg, Logger: logger}); err != nil {
		logger.Error("host stopped", "host", host.Name(), "err", err)
		return err
	}
	logger.Info("bye", "host", host.Name())
	return nil
}

// resolveConfig loads the configuration and applies command-line overrides.
func resolveConfig(cmd *cobra.Command) (config.PongConfig, error) {
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("fps") {
		cfg.Runtime.TickRate = flagFPS
	}
	return cfg, cfg.Validate()
}

// commandContext returns the command's context, falling back to Background
// for commands executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
