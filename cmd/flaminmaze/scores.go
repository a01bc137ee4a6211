package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flamin-maze/internal/core"
	"github.com/vovakirdan/flamin-maze/internal/platform/tui"
	"github.com/vovakirdan/flamin-maze/internal/social"
	"github.com/vovakirdan/flamin-maze/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show the leaderboards",
	Long: `Display the top scores of every leaderboard, or of one board.

Boards:
  ` + core.BoardHighScores + `
  ` + core.BoardHighLevels + `
  ` + core.BoardPlayedGames + `

Examples:
  flaminmaze scores
  flaminmaze scores FlaminMaze.HighLevels --limit 20
  flaminmaze scores -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries per board")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the boards and your achievements")
}

func runScores(_ *cobra.Command, args []string) error {
	boards := core.Boards
	if len(args) == 1 {
		if !isBoard(args[0]) {
			return fmt.Errorf("unknown board %q", args[0])
		}
		boards = args
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		player, err := social.LocalPlayer(store, firstNonEmpty(os.Getenv("USER"), "player"))
		if err != nil {
			return err
		}
		return tui.RunScoreboard(store, player.ID, width, height)
	}

	for i, board := range boards {
		if i > 0 {
			fmt.Println()
		}
		if err := printBoard(store, board); err != nil {
			return err
		}
	}
	return nil
}

func printBoard(store *storage.Store, board string) error {
	scores, err := store.TopScores(board, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println(board)
	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "Rank", "Player", "Value", "Date")
	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "----", "------", "-----", "----")
	for _, entry := range scores {
		fmt.Printf("  %-4d  %-20s  %-10d  %s\n",
			entry.Rank, entry.PlayerName, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.HighScore(board); err == nil {
		fmt.Printf("  Best: %d\n", best)
	}
	return nil
}

func isBoard(id string) bool {
	for _, b := range core.Boards {
		if b == id {
			return true
		}
	}
	return false
}
