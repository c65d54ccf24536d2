// pong runs the pong playfield simulation in the terminal or in a window.
//
// Usage:
//
//	pong                     - Play in the terminal
//	pong play [--host name]  - Play using the given host
//	pong hosts               - List available hosts
//	pong config              - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (YAML, or TOML by extension)
//	--fps <rate>        - Override the tick rate
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import hosts to register them
	_ "github.com/wowjack/bevy-pong-clone/internal/platform/tui"
	_ "github.com/wowjack/bevy-pong-clone/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - a ball, two walls and two goals",
	Long: `Pong runs a two-goal playfield: the ball bounces off the top and
bottom walls, and every goal scores a point and resets the field.

Available commands:
  play     - Play using a host (default: terminal)
  hosts    - Show all available hosts
  config   - Print the effective configuration

Examples:
  pong
  pong play --host window
  pong --config ./pong.toml --fps 120
  pong config > ~/.pong/configs/pong.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.Flags().StringVar(&flagHost, "host", defaultHost, "Host to play with (see 'pong hosts')")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(hostsCmd)
	rootCmd.AddCommand(configCmd)
}
