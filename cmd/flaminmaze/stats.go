package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flamin-maze/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show leaderboard statistics",
	Long:  `Shows the number of reports, players and the best value of every leaderboard.`,
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-24s  %8s  %8s  %10s  %s\n", "Board", "Reports", "Players", "Best", "Last report")
	fmt.Printf("  %-24s  %8s  %8s  %10s  %s\n", "-----", "-------", "-------", "----", "-----------")
	for _, b := range stats {
		fmt.Printf("  %-24s  %8d  %8d  %10d  %s\n",
			b.BoardID, b.Reports, b.Players, b.Best, b.LastReport.Format("2006-01-02 15:04"))
	}
	return nil
}
