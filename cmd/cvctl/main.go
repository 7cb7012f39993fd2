// Package main is the cvctl command line: offline resume parsing, skill
// matching and schema setup.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cv-intake/internal/config"
	"cv-intake/pkg/logger"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "cvctl",
	Short: "Resume intake tooling",
	Long:  "cvctl parses resumes into structured profiles, scores candidates against jobs and prepares the database.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.Setup(logLevel, "text")
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

func main() {
	config.LoadEnv()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
