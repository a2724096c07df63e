// coinstorm is a terminal arcade shooter: pilot a ship, blast descending
// raiders, catch the coins they drop, and buy persistent upgrades.
//
// Usage:
//
//	coinstorm play           - Play in the current terminal
//	coinstorm serve          - Start SSH server for remote play
//	coinstorm stats          - Show save slot statistics and run history
//	coinstorm reset          - Wipe a save slot
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.coinstorm/saves.db)
//	--slot <name>   - Save slot to play in (default: "default")
//	--config <path> - Path to custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagSlot   string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coinstorm",
	Short: "Coinstorm - arcade shooter in your terminal",
	Long: `Coinstorm is a terminal arcade shooter. Your ship fires on its own;
you steer, dodge the raider swarm, scoop up coin drops, and spend them
on upgrades that persist between sessions.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  stats    - View save slot statistics and run history
  reset    - Wipe a save slot

Examples:
  coinstorm play
  coinstorm play --slot alice
  coinstorm serve --ssh :2222
  coinstorm stats --browse
  coinstorm reset --slot alice`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.coinstorm/saves.db", "Path to saves database")
	rootCmd.PersistentFlags().StringVar(&flagSlot, "slot", "default", "Save slot name")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
}
