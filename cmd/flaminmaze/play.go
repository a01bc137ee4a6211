package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flamin-maze/internal/core"
	"github.com/vovakirdan/flamin-maze/internal/platform/tui"
	"github.com/vovakirdan/flamin-maze/internal/registry"
	"github.com/vovakirdan/flamin-maze/internal/social"
	"github.com/vovakirdan/flamin-maze/internal/storage"
)

// Smallest terminal the default 7x10 board fits in.
const (
	minWidth  = 40
	minHeight = 25
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagName       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flamin Maze in this terminal",
	Long: `Start a game of Flamin Maze.

Controls:
  Mouse        - Hold the left button and draw the path
  Arrows/WASD  - Move the cursor; every move draws one step
  Space/Enter  - Insert a coin
  T            - Watch an intermission for more time
  L            - Leaderboards
  B            - Toggle the board / dismiss a message
  Esc          - Skip the intermission
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower timer on every tier
  normal - The arcade timer
  hard   - Faster timer on every tier
  fixed  - Stay on the first tier forever

Examples:
  flaminmaze play
  flaminmaze play --difficulty easy
  flaminmaze play --config ./my-maze.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML (env FLAMIN_CONFIG)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file (env FLAMIN_LOG_FILE)")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name on the leaderboards (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("play: stdout is not a terminal")
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("play: cannot get terminal size: %w", err)
	}
	if width < minWidth || height < minHeight {
		return fmt.Errorf("play: terminal is %dx%d, need at least %dx%d", width, height, minWidth, minHeight)
	}

	// The game owns the terminal, so logs go to a file.
	logPath := firstNonEmpty(flagLogFile, env.LogFile)
	logPath, err = expandHome(logPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("play: cannot create log directory: %w", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("play: cannot open log file: %w", err)
	}
	defer logFile.Close()
	logger := newLogger(logFile, "flaminmaze")

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if c, ok := game.(registry.Configurable); ok {
		if err := c.LoadConfig(firstNonEmpty(flagConfig, env.ConfigPath), flagDifficulty); err != nil {
			return err
		}
	}

	name := firstNonEmpty(flagName, os.Getenv("USER"), "player")
	player := social.Player{ID: "local", Name: name}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - the game still works
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
		if p, err := social.LocalPlayer(store, name); err != nil {
			logger.Warn("could not load player", "error", err)
		} else {
			player = p
		}
	}

	logger.Info("starting game", "player", player.Name, "size", fmt.Sprintf("%dx%d", width, height))
	return tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Player: player,
		Logger: logger,
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
