package main

import (
	"github.com/spf13/cobra"

	"github.com/wowjack/bevy-pong-clone/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration pong would run with, after the config file
search and command-line overrides, as YAML.

Search order:
  --config <path>
  ~/.pong/configs/pong.{yaml,yml,toml}
  ./configs/pong.{yaml,yml,toml}
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	data, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
