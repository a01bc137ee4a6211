package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "maze.yaml"

// LoadMaze loads the Flamin Maze configuration.
// Search order: customPath -> ~/.flaminmaze/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
func LoadMaze(customPath string) (MazeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MazeConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return MazeConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultMazeYAML)
	if err != nil {
		return DefaultMazeConfig(), nil
	}
	return cfg, nil
}

// parse decodes YAML over the built-in defaults, so a partial file only
// overrides the keys it sets, then validates the result.
func parse(data []byte) (MazeConfig, error) {
	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MazeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MazeConfig{}, err
	}
	return cfg, nil
}

// Validate reports the first inconsistency in the configuration.
func (c MazeConfig) Validate() error {
	if c.Board.Width < 1 || c.Board.Height < 2 {
		return fmt.Errorf("board must be at least 1x2, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Timer.Max <= 0 {
		return errors.New("timer max must be positive")
	}
	if c.Timer.Warning < 0 || c.Timer.Warning >= c.Timer.Max {
		return fmt.Errorf("timer warning %.1f must be in [0, %.1f)", c.Timer.Warning, c.Timer.Max)
	}
	if len(c.Difficulty.Tiers) == 0 {
		return errors.New("difficulty needs at least one tier")
	}
	last := 0
	for i, t := range c.Difficulty.Tiers {
		if t.TimerSpeed <= 0 {
			return fmt.Errorf("tier %d: timer speed must be positive", i)
		}
		if t.NextLevel == 0 {
			continue
		}
		if t.NextLevel <= last {
			return fmt.Errorf("tier %d: next level %d must exceed %d", i, t.NextLevel, last)
		}
		last = t.NextLevel
	}
	if len(c.Music.Play) == 0 {
		return errors.New("music needs at least one play track")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flaminmaze", "configs", filename)
}
