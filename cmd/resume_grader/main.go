// Package main provides the entry point for the Resume Grader server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_grader",
	Short: "Resume Grader HTTP API Server",
	Long:  "Resume Grader scores student resumes against a target role using a two-pass LLM pipeline with retrieved rubrics, examples, and rewrite patterns.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
