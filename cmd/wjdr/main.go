// Package main is the entry point for the wjdr command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wjdr",
	Short: "Warhammer fantasy character sheet tool",
	Long:  `wjdr rolls dice and generates starting Warhammer fantasy roleplay characters.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(generateCmd)
}
