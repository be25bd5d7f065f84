package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/discochess/endgame"
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "Print the canonical end-reason code table",
	Run: func(cmd *cobra.Command, args []string) {
		for _, reason := range endgame.Reasons() {
			fmt.Printf("%2d  %s\n", reason.Code(), reason)
		}
	},
}

func init() {
	rootCmd.AddCommand(codesCmd)
}
