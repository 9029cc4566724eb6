// pushout is a terminal arcade game: drive a dozer around a walled platform
// and push the falling crates over its open edge before the platform fills up.
//
// Usage:
//
//	pushout list              - List available games
//	pushout play              - Play in this terminal
//	pushout serve             - Start SSH server for remote play
//	pushout config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/pushout/internal/games/pushout"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pushout",
	Short: "Pushout - push the crates off the platform",
	Long: `Pushout is a short arcade game for the terminal. Crates keep dropping
onto a walled platform; shove them over the open edge before there is no
room left. Scores are kept in memory for as long as the process runs.

Available commands:
  list     - Show all available games
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  pushout play
  pushout play --difficulty hard
  pushout serve --ssh :2222
  pushout config > ~/.arcade/configs/pushout.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
