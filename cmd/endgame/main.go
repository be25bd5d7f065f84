// Package main provides the endgame CLI tool for classifying why
// recorded chess games ended.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
