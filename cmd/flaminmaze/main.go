// flaminmaze is Flamin Maze for the terminal: draw a path through a
// burning maze before the clock runs out.
//
// Usage:
//
//	flaminmaze play          - Play in this terminal
//	flaminmaze serve         - Start SSH server for remote play
//	flaminmaze scores        - Show the leaderboards
//	flaminmaze stats         - Show leaderboard statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60, env FLAMIN_TPS)
//	--seed <value>  - Set RNG seed for reproducible mazes
//	--db <path>     - Set database path (default: ~/.flaminmaze/scores.db, env FLAMIN_DB)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flamin-maze/internal/config"
	"github.com/vovakirdan/flamin-maze/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	env config.Env
)

func main() {
	var err error
	env, err = config.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", env.TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", env.DBPath, "Path to scores database")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flaminmaze",
	Short: "Flamin Maze - draw your way out before the clock runs out",
	Long: `Flamin Maze is an arcade maze game for the terminal. Insert a coin,
draw a path from the entrance to the exit with the mouse (or the arrow
keys) and beat the timer. Every maze solved adds time and points.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the leaderboards
  stats    - View leaderboard statistics

Settings can also come from the environment or a .env file:
  FLAMIN_DB, FLAMIN_CONFIG, FLAMIN_LOG_LEVEL, FLAMIN_LOG_FILE,
  FLAMIN_SSH_ADDR, FLAMIN_TPS

Examples:
  flaminmaze play
  flaminmaze play --difficulty hard
  flaminmaze serve --ssh :2222
  flaminmaze scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}

// gameID is the registered id every command plays.
const gameID = game.ID

// newLogger creates a logger at the level named by FLAMIN_LOG_LEVEL.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(env.LogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", env.LogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
