package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/discochess/endgame"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a single game from the command line",
	Long: `Classify one game given its metadata and move list, printing the
end-reason code and label.

Examples:
  # Fool's mate
  endgame classify --moves "f3 e5 g4 Qh4#" --termination Normal --result 0-1 --mated

  # A reported draw whose moves confirm threefold repetition
  endgame classify --moves "Nf3 Nf6 Ng1 Ng8 Nf3 Nf6 Ng1 Ng8" --termination Normal --result 1/2-1/2`,
	RunE: runClassify,
}

var (
	movesFlag       string
	terminationFlag string
	resultFlag      string
	matedFlag       bool
	jsonFlag        bool
)

func init() {
	classifyCmd.Flags().StringVar(&movesFlag, "moves", "", "space-separated move tokens")
	classifyCmd.Flags().StringVar(&terminationFlag, "termination", "", "termination category label")
	classifyCmd.Flags().StringVar(&resultFlag, "result", "", `result: "1-0", "0-1", or "1/2-1/2"`)
	classifyCmd.Flags().BoolVar(&matedFlag, "mated", false, "the move list ends in checkmate")
	classifyCmd.Flags().BoolVar(&jsonFlag, "json", false, "output result as JSON")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	classifier, err := endgame.New(endgame.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("creating classifier: %w", err)
	}

	reason := classifier.Classify(endgame.Record{
		Moves:       movesFlag,
		Termination: endgame.ParseTermination(terminationFlag),
		Result:      endgame.ParseResult(resultFlag),
		Mated:       matedFlag,
	})

	if jsonFlag {
		fmt.Printf(`{"end_reason_code":%d,"end_reason":%q}`+"\n", reason.Code(), reason.String())
	} else {
		fmt.Printf("%d %s\n", reason.Code(), reason)
	}
	return nil
}
