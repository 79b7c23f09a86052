package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-grader/internal/db"
	"github.com/jonathan/resume-grader/internal/llm"
)

var backfillCmd = &cobra.Command{
	Use:   "backfill-embeddings",
	Short: "Embed reference chunks that are missing vectors",
	Long:  `Scan the reference chunk table for rows without an embedding, embed their content, and write the vectors back. Safe to re-run; only missing rows are touched.`,
	RunE:  runBackfill,
}

var backfillBatchSize int

func init() {
	backfillCmd.Flags().IntVar(&backfillBatchSize, "batch-size", 50, "Chunks to process per batch")
	rootCmd.AddCommand(backfillCmd)
}

func runBackfill(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if backfillBatchSize < 1 {
		return fmt.Errorf("--batch-size must be at least 1")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	total := 0
	for {
		chunks, err := database.ListChunksMissingEmbedding(ctx, backfillBatchSize)
		if err != nil {
			return fmt.Errorf("failed to list chunks: %w", err)
		}
		if len(chunks) == 0 {
			break
		}

		for _, chunk := range chunks {
			vec, err := client.Embed(ctx, chunk.Content)
			if err != nil {
				return fmt.Errorf("failed to embed chunk %d: %w", chunk.ID, err)
			}
			if err := database.UpdateChunkEmbedding(ctx, chunk.ID, vec); err != nil {
				return fmt.Errorf("failed to update chunk %d: %w", chunk.ID, err)
			}
			total++
		}
		fmt.Printf("Embedded %d chunks so far...\n", total)
	}

	fmt.Printf("Backfill complete: %d chunks embedded\n", total)
	return nil
}
