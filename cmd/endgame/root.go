package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags.
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "endgame",
	Short: "Classify why recorded chess games ended",
	Long: `Endgame assigns one canonical end-reason code to each game in a
corpus of recorded games, combining platform metadata with conditions
confirmed by replaying the recorded moves (stalemate, threefold
repetition, the fifty-move rule, insufficient material).

Examples:
  # Classify a directory of shards
  endgame run --input ./games --output ./out

  # Classify a single game from the command line
  endgame classify --moves "f3 e5 g4 Qh4#" --termination Normal --result 0-1 --mated

  # Show the canonical code table
  endgame codes`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// newLogger builds the CLI logger; verbose switches to development
// logging.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
