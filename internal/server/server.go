// Package server provides the HTTP REST API for the resume grader.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-grader/internal/config"
	"github.com/jonathan/resume-grader/internal/db"
	"github.com/jonathan/resume-grader/internal/grading"
	"github.com/jonathan/resume-grader/internal/llm"
	"github.com/jonathan/resume-grader/internal/rag"
	"github.com/jonathan/resume-grader/internal/server/middleware"
	"github.com/jonathan/resume-grader/internal/types"
)

// Grader runs the two-pass grading pipeline for one resume.
type Grader interface {
	Run(ctx context.Context, params types.GradeParams) (*grading.Result, error)
}

// ReportStore persists grading reports and the per-user grading lock.
type ReportStore interface {
	SaveReport(ctx context.Context, report *types.Report) (uuid.UUID, error)
	GetReport(ctx context.Context, id, userID uuid.UUID) (*types.Report, error)
	ListReports(ctx context.Context, userID uuid.UUID) ([]*types.Report, error)
	AcquireGradeLock(ctx context.Context, userID uuid.UUID) error
	ReleaseGradeLock(ctx context.Context, userID uuid.UUID) error
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	db         *db.DB
	llmClient  llm.Client
	store      ReportStore
	grader     Grader
	jwtService *JWTService
}

// Config holds server configuration
type Config struct {
	Addr        string
	DatabaseURL string
	APIKey      string
	Verbose     bool
}

// New creates a new server instance
func New(ctx context.Context, cfg Config) (*Server, error) {
	// Connect to database
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), cfg.APIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		client.Close()
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	gateway := rag.NewGateway(client, database)
	orchestrator := rag.NewOrchestrator(gateway)
	pipeline := grading.NewPipeline(client, orchestrator)
	pipeline.Verbose = cfg.Verbose

	s := &Server{
		db:         database,
		llmClient:  client,
		store:      database,
		grader:     pipeline,
		jwtService: NewJWTService(jwtConfig),
	}

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Grading waits on two model calls
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router. Everything except the health check
// requires a valid bearer token.
func (s *Server) routes() http.Handler {
	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	protected := http.NewServeMux()
	protected.HandleFunc("POST /grade", s.handleGrade)
	protected.HandleFunc("GET /reports", s.handleListReports)
	protected.HandleFunc("GET /reports/{id}", s.handleGetReport)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("/", auth(protected))
	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("Error closing LLM client: %v", err)
		}
	}
	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
