// Package config provides YAML-based game configuration loading, the
// difficulty tier table and environment overrides for Flamin Maze.
package config

// MazeConfig contains all configuration for Flamin Maze.
type MazeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timer      TimerConfig      `yaml:"timer"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Effects    EffectsConfig    `yaml:"effects"`
	Ads        AdsConfig        `yaml:"ads"`
	Banners    BannersConfig    `yaml:"banners"`
	Music      MusicConfig      `yaml:"music"`
	Tutorial   TutorialConfig   `yaml:"tutorial"`

	SplashDuration float64 `yaml:"splash_duration"` // Seconds the intro plays
	LoseDuration   float64 `yaml:"lose_duration"`   // Seconds the skull stays up
}

// BoardConfig defines the maze dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimerConfig defines the countdown timer of a game.
type TimerConfig struct {
	Max     float64 `yaml:"max"`     // Value after a refill
	Warning float64 `yaml:"warning"` // Below this the board pulses and the alarm plays
}

// DifficultyConfig defines the tier table.
type DifficultyConfig struct {
	TitleTier int    `yaml:"title_tier"` // Tier whose hue colors the title screen
	Tiers     []Tier `yaml:"tiers"`
}

// Tier is one difficulty step. NextLevel is the level at which the game
// moves on to the next tier; 0 means never.
type Tier struct {
	TimerSpeed float64 `yaml:"timer_speed"` // Timer units drained per second
	BlockHue   float64 `yaml:"block_hue"`   // Hue of the maze blocks, in [0,1)
	NextLevel  int     `yaml:"next_level"`
}

// EffectsConfig defines the per-tick easing speeds of visual effects.
type EffectsConfig struct {
	LedFade        float64 `yaml:"led_fade"`
	HueChangeSpeed float64 `yaml:"hue_change_speed"`
	BannerFade     float64 `yaml:"banner_fade"`
	SlotSpeed      float64 `yaml:"slot_speed"`
}

// AdsConfig defines the rewarded intermission that refills the timer.
type AdsConfig struct {
	Enabled    bool    `yaml:"enabled"`
	MaxPerGame int     `yaml:"max_per_game"`
	Duration   float64 `yaml:"duration_seconds"`
}

// BannersConfig defines when informational banners appear.
type BannersConfig struct {
	DismissGameCount int `yaml:"dismiss_game_count"` // Games before the coin slot hint can be dismissed
	MazeExitMaxTier  int `yaml:"maze_exit_max_tier"` // Highest tier a game may end on to show the exit hint
	RatingPeriod     int `yaml:"rating_period"`      // Show the rating prompt every N games
}

// MusicConfig names the music tracks.
type MusicConfig struct {
	Menu string   `yaml:"menu"`
	Play []string `yaml:"play"`
}

// TutorialConfig lists the captions of the tutorial panels.
type TutorialConfig struct {
	Panels []string `yaml:"panels"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// timerScaleForPreset returns the factor applied to every tier's timer speed.
func timerScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}

// ApplyMazePreset modifies the config based on a difficulty preset.
// The fixed preset keeps the game on the first tier forever.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	scale := timerScaleForPreset(preset)
	tiers := make([]Tier, len(cfg.Difficulty.Tiers))
	for i, t := range cfg.Difficulty.Tiers {
		t.TimerSpeed *= scale
		tiers[i] = t
	}
	if preset == DifficultyFixed && len(tiers) > 0 {
		tiers = tiers[:1]
		tiers[0].NextLevel = 0
	}
	cfg.Difficulty.Tiers = tiers
}
