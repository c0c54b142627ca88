// Package main provides the entry point for the ATS Inspector CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_inspector",
	Short: "ATS Inspector & CV Optimizer",
	Long:  "ATS Inspector scores a CV against a job posting, detects which applicant tracking system the employer uses, and produces targeted improvement tips plus an ATS-friendly rewrite of the CV.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
