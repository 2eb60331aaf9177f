package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lineup",
	Short: "Chess starting-lineup validator",
	Long: `lineup validates chess piece placement records against the rules of
a standard chess starting layout.

It reads placement lines of the form "{Side} {PieceType} {Square}"
(for example "White Rook A1"), aggregates them per side, and reports:
- placements on valid starting squares
- placements on valid but non-starting squares
- conflicting placements (same-side pieces sharing a square)
- invalid placements (squares outside the board)
- missing and extra pieces per piece type

lineup checks a single static snapshot of placements; it does not
validate moves, turn order, or game state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
