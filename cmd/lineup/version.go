package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lineup/internal/version"
)

// Version returns the current version
func Version() string {
	return version.Get()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lineup version %s\n", Version())
	},
}
