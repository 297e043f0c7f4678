// Package main provides the entry point for the Mindstyle assessment
// server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mindstyle",
	Short: "Mindstyle Assessment Server",
	Long:  "Mindstyle serves the Ergos Mind quiz front-end and generates multi-page personality-assessment PDF reports, delivered to the user by email.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
