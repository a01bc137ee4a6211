package config

import "math"

// Difficulty answers tier questions over the configured tier table.
type Difficulty struct {
	tiers []Tier
}

// NewDifficulty creates a tier table view.
func NewDifficulty(cfg DifficultyConfig) Difficulty {
	return Difficulty{tiers: cfg.Tiers}
}

// Len returns the number of tiers.
func (d Difficulty) Len() int {
	return len(d.tiers)
}

// Tier returns tier i, clamped to the table.
func (d Difficulty) Tier(i int) Tier {
	if len(d.tiers) == 0 {
		return Tier{TimerSpeed: 1, NextLevel: 0}
	}
	return d.tiers[min(max(i, 0), len(d.tiers)-1)]
}

// NextLevel returns the level at which tier i ends, or math.MaxInt for a
// final tier.
func (d Difficulty) NextLevel(i int) int {
	next := d.Tier(i).NextLevel
	if next <= 0 || i >= len(d.tiers)-1 {
		return math.MaxInt
	}
	return next
}

// Advance returns the tier to use once level has been reached on tier i.
func (d Difficulty) Advance(i, level int) (int, bool) {
	if level >= d.NextLevel(i) {
		return i + 1, true
	}
	return i, false
}
