package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// searchNames are the file names tried in each config directory.
var searchNames = []string{"pong.yaml", "pong.yml", "pong.toml"}

// LoadPong loads the pong configuration.
// Search order: customPath -> ~/.pong/configs/pong.{yaml,yml,toml} ->
// ./configs/pong.{yaml,yml,toml} -> embedded default.
// Files may be partial; missing keys keep their default values.
func LoadPong(customPath string) (PongConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PongConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Decode(data, formatOf(customPath))
		if err != nil {
			return PongConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return PongConfig{}, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	dirs := []string{filepath.Join("configs")}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append([]string{filepath.Join(home, ".pong", "configs")}, dirs...)
	}

	for _, dir := range dirs {
		for _, name := range searchNames {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if cfg, err := Decode(data, formatOf(path)); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := Decode(defaultPongYAML, FormatYAML)
	if err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// formatOf picks the encoding from a file extension. Anything that is not
// .toml is read as YAML.
func formatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode parses data over the default configuration.
func Decode(data []byte, format Format) (PongConfig, error) {
	cfg := DefaultPongConfig()
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return PongConfig{}, fmt.Errorf("toml unmarshal: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return PongConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}
	return cfg, nil
}

// Encode renders cfg as YAML.
func Encode(cfg PongConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
