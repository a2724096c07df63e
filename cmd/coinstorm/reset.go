package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coinstorm/internal/storage"
)

var flagForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe a save slot",
	Long: `Delete a save slot's record and run history. This cannot be undone.

Examples:
  coinstorm reset --slot alice
  coinstorm reset --slot alice --force`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagForce, "force", false, "Skip the confirmation prompt")
}

func runReset(_ *cobra.Command, _ []string) {
	if !flagForce {
		fmt.Printf("Delete slot %q and all its run history? [y/N] ", flagSlot)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening saves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.DeleteSlot(flagSlot); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting slot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Slot %q deleted.\n", flagSlot)
}
