package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the built-in configuration, used when the
// embedded YAML cannot be parsed.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Board: BoardConfig{Width: 7, Height: 10},
		Timer: TimerConfig{Max: 99.9, Warning: 33.3},
		Difficulty: DifficultyConfig{
			TitleTier: 4,
			Tiers: []Tier{
				{TimerSpeed: 5.0, BlockHue: 0.33, NextLevel: 5},
				{TimerSpeed: 7.5, BlockHue: 0.43, NextLevel: 10},
				{TimerSpeed: 10.0, BlockHue: 0.58, NextLevel: 15},
				{TimerSpeed: 12.0, BlockHue: 0.78, NextLevel: 25},
				{TimerSpeed: 14.0, BlockHue: 0.93, NextLevel: 35},
				{TimerSpeed: 16.0, BlockHue: 0.03, NextLevel: 0},
			},
		},
		Effects: EffectsConfig{
			LedFade:        0.1,
			HueChangeSpeed: 0.005,
			BannerFade:     0.05,
			SlotSpeed:      0.1,
		},
		Ads: AdsConfig{
			Enabled:    true,
			MaxPerGame: 3,
			Duration:   5,
		},
		Banners: BannersConfig{
			DismissGameCount: 5,
			MazeExitMaxTier:  2,
			RatingPeriod:     20,
		},
		Music: MusicConfig{
			Menu: "Neon Lobby",
			Play: []string{"Hot Corridors", "Burning Walls", "Exit Fever"},
		},
		Tutorial: TutorialConfig{
			Panels: []string{"Insert a coin", "Draw the path", "Reach the exit", "Beat the clock"},
		},
		SplashDuration: 1.5,
		LoseDuration:   4.0,
	}
}

// DefaultYAML returns the embedded default maze.yaml.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
