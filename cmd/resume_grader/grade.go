package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-grader/internal/config"
	"github.com/jonathan/resume-grader/internal/db"
	"github.com/jonathan/resume-grader/internal/grading"
	"github.com/jonathan/resume-grader/internal/ingestion"
	"github.com/jonathan/resume-grader/internal/llm"
	"github.com/jonathan/resume-grader/internal/observability"
	"github.com/jonathan/resume-grader/internal/rag"
	"github.com/jonathan/resume-grader/internal/types"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade a resume PDF from the command line",
	Long: `Run the two-pass grading pipeline against a local resume PDF and print the report as JSON.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runGrade,
}

var (
	gradeConfigPath  string
	gradeResume      string
	gradeRole        string
	gradeAPIKey      string
	gradeDatabaseURL string
	gradeVerbose     bool
)

func init() {
	gradeCmd.Flags().StringVar(&gradeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	gradeCmd.Flags().StringVarP(&gradeResume, "resume", "r", "", "Path to resume PDF")
	gradeCmd.Flags().StringVar(&gradeRole, "role", "", "Target role (Backend Engineer, Frontend Engineer, Full-Stack Engineer)")
	gradeCmd.Flags().StringVar(&gradeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	gradeCmd.Flags().StringVar(&gradeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	gradeCmd.Flags().BoolVarP(&gradeVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(gradeCmd)
}

func runGrade(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Load config file if provided
	var cfg config.Config
	if gradeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(gradeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("resume") {
		cfg.Resume = gradeResume
	}
	if cmd.Flags().Changed("role") {
		cfg.Role = gradeRole
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = gradeAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = gradeDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = gradeVerbose
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Role == "" {
		return fmt.Errorf("--role is required")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (use --api-key or GEMINI_API_KEY)")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (use --db-url or DATABASE_URL)")
	}

	role, err := types.ParseRole(cfg.Role)
	if err != nil {
		return err
	}

	pdf, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	if err := ingestion.ValidatePDF(pdf); err != nil {
		return err
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	orchestrator := rag.NewOrchestrator(rag.NewGateway(client, database))
	if cfg.MinExampleScore > 0 || cfg.MaxTagGroups > 0 {
		opts := rag.DefaultFilterOptions()
		if cfg.MinExampleScore > 0 {
			opts.MinScore = cfg.MinExampleScore
		}
		if cfg.MaxTagGroups > 0 {
			opts.MaxGroups = cfg.MaxTagGroups
		}
		orchestrator = orchestrator.WithFilterOptions(opts)
	}

	pipeline := grading.NewPipeline(client, orchestrator)
	pipeline.Verbose = cfg.Verbose

	result, err := pipeline.Run(ctx, types.GradeParams{
		ResumeName: filepath.Base(cfg.Resume),
		Role:       role,
		PDF:        pdf,
	})
	if err != nil {
		return fmt.Errorf("grading failed: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintGradeSummary(result.Grade, result.FormatScore)
		printer.PrintContextStats(result.Context)
		printer.PrintFinalScores(result.Feedback, result.FormatScore)
	}

	out, err := json.MarshalIndent(map[string]any{
		"resume_name":         filepath.Base(cfg.Resume),
		"role":                role,
		"feedback":            result.Feedback,
		"resume_format_score": result.FormatScore,
		"grade":               result.Grade,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
