package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coinstorm/internal/platform/tui"
	"github.com/vovakirdan/coinstorm/internal/storage"
)

var flagBrowse bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show save slot statistics",
	Long: `Display aggregate statistics and recent runs for a save slot.

With --browse, opens an interactive run history browser instead.

Examples:
  coinstorm stats
  coinstorm stats --slot alice
  coinstorm stats --browse`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive run history browser")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening saves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, flagSlot, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running history browser: %v\n", err)
			os.Exit(1)
		}
		return
	}

	stats, err := store.GetSlotStats(flagSlot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Slot: %s\n", flagSlot)
	fmt.Println()

	if stats.RunCount == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'coinstorm play' to record the first run!")
		return
	}

	fmt.Printf("  Runs:           %d\n", stats.RunCount)
	fmt.Printf("  Best coins:     %d\n", stats.BestCoins)
	fmt.Printf("  Average coins:  %.1f\n", stats.AvgCoins)
	fmt.Printf("  Raiders downed: %d\n", stats.TotalKills)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:    %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	runs, err := store.RecentRuns(flagSlot, 10)
	if err != nil || len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("  %-4s  %-8s  %-8s  %-9s  %s\n", "Run", "Coins", "Raiders", "Duration", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-9s  %s\n", "----", "-----", "-------", "--------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8d  %d:%02d      %s\n",
			i+1, r.Coins, r.Raiders, r.Duration/60, r.Duration%60,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
