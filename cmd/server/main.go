package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"draftdeck/internal/auth"
	"draftdeck/internal/config"
	"draftdeck/internal/handler"
	"draftdeck/internal/llm"
	"draftdeck/internal/llm/prompts"
	anthropicProvider "draftdeck/internal/llm/providers/anthropic"
	loremProvider "draftdeck/internal/llm/providers/lorem"
	"draftdeck/internal/middleware"
	"draftdeck/internal/repository/postgres"
	"draftdeck/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create table names and ensure schema
	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	projectRepo := postgres.NewProjectRepository(repoConfig)
	sectionRepo := postgres.NewSectionRepository(repoConfig)
	refinementRepo := postgres.NewRefinementRepository(repoConfig)
	feedbackRepo := postgres.NewFeedbackRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Setup prompt templates and the completion provider
	registry, err := prompts.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load prompt templates: %v", err)
	}

	client, err := setupProvider(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to setup completion provider: %v", err)
	}

	generator := llm.NewContentGenerator(client, registry)
	planner := llm.NewOutlinePlanner(client, registry)

	// Create services
	projectService := service.NewProjectService(projectRepo, sectionRepo, logger)
	sectionService := service.NewSectionService(projectRepo, sectionRepo, logger)
	outlineService := service.NewOutlineService(projectRepo, planner, logger)
	generationService := service.NewGenerationService(projectRepo, sectionRepo, generator, logger)
	refinementService := service.NewRefinementService(projectRepo, sectionRepo, refinementRepo, txManager, generator, logger)
	feedbackService := service.NewFeedbackService(sectionRepo, feedbackRepo, logger)
	exportService := service.NewExportService(projectRepo, sectionRepo, logger)

	// Create handlers
	projectHandler := handler.NewProjectHandler(projectService, sectionService, outlineService, logger)
	documentHandler := handler.NewDocumentHandler(generationService, refinementService, feedbackService, exportService, logger)

	// Setup routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.Health)

	// Project routes
	mux.HandleFunc("POST /api/projects", projectHandler.CreateProject)
	mux.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.GetProject)
	mux.HandleFunc("PUT /api/projects/{id}", projectHandler.UpdateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", projectHandler.DeleteProject)
	mux.HandleFunc("POST /api/projects/{id}/outline", projectHandler.PlanOutline)
	mux.HandleFunc("GET /api/projects/{id}/sections", projectHandler.ListSections)
	mux.HandleFunc("POST /api/projects/{id}/sections", projectHandler.CreateSection)

	// Document routes
	mux.HandleFunc("POST /api/documents/generate-section-content", documentHandler.GenerateSectionContent)
	mux.HandleFunc("POST /api/documents/refine-section-content", documentHandler.RefineSectionContent)
	mux.HandleFunc("GET /api/documents/refinements/{section_id}", documentHandler.ListRefinements)
	mux.HandleFunc("POST /api/documents/feedback", documentHandler.AddFeedback)
	mux.HandleFunc("GET /api/documents/feedback/{section_id}", documentHandler.ListFeedback)
	mux.HandleFunc("POST /api/documents/generate-all-content/{project_id}", documentHandler.GenerateAllContent)
	mux.HandleFunc("GET /api/documents/export/{project_id}", documentHandler.Export)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	if cfg.JWKSURL != "" {
		verifier, err := auth.NewJWTVerifier(cfg.JWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWT verifier: %v", err)
		}
		defer verifier.Close()
		root = middleware.Auth(verifier)(root)
	} else {
		if cfg.Environment == "prod" {
			log.Fatalf("JWKS_URL is required in production")
		}
		logger.Warn("no JWKS URL configured; all requests run as the dev user",
			"dev_user_id", cfg.DevUserID,
		)
		root = middleware.StaticAuth(cfg.DevUserID)(root)
	}
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // generation calls are slow
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupProvider picks the completion provider from configuration. The
// lorem provider serves dev runs without an API key.
func setupProvider(cfg *config.Config, logger *slog.Logger) (llm.CompletionClient, error) {
	if cfg.DefaultProvider == "lorem" || cfg.AnthropicAPIKey == "" {
		logger.Warn("using lorem completion provider; generated content is filler text")
		return loremProvider.NewProvider(), nil
	}

	client, err := anthropicProvider.NewProvider(cfg.AnthropicAPIKey, cfg.DefaultModel)
	if err != nil {
		return nil, err
	}

	logger.Info("completion provider ready", "provider", client.Name(), "model", cfg.DefaultModel)
	return client, nil
}
