package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hireflow/backend/config"
	_ "github.com/hireflow/backend/docs"
	"github.com/hireflow/backend/gemini"
	"github.com/hireflow/backend/groq"
	"github.com/hireflow/backend/handlers"
	"github.com/hireflow/backend/llm"
	"github.com/hireflow/backend/logger"
	"github.com/hireflow/backend/mcp"
	"github.com/hireflow/backend/screening"
	"github.com/hireflow/backend/storage"
	"github.com/hireflow/backend/tools"
	"github.com/hireflow/backend/utils"
)

// @title HireFlow API
// @version 1.0
// @description AI-assisted resume screening backend: parsing, scoring, candidate management and recruiting content generation.

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description Shared secret for the public API and MCP endpoints.

func main() {
	// Load .env file if present (for local development)
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg)
	log := logger.For("main")

	if envErr != nil {
		log.Info("No .env file found, using environment variables")
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Configuration error")
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	httpClient := utils.NewHTTPClient(time.Duration(cfg.HTTPTimeoutSeconds) * time.Second)

	// LLM providers, in PROVIDER_ORDER
	geminiClient, err := gemini.NewProvider(ctx, cfg, httpClient)
	if err != nil {
		log.WithError(err).Warn("Gemini provider disabled")
		geminiClient = nil
	} else if geminiClient != nil {
		defer geminiClient.Close()
		log.WithField("mode", cfg.GeminiMode()).Info("Gemini provider enabled")
	}

	var providers []llm.Provider
	for _, name := range cfg.ProviderOrder {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case gemini.ProviderName:
			if geminiClient != nil {
				providers = append(providers, geminiClient)
			}
		case groq.ProviderName:
			if cfg.GroqEnabled() {
				providers = append(providers, groq.NewClient(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel, httpClient))
			}
		default:
			log.WithField("provider", name).Warn("Unknown provider in PROVIDER_ORDER")
		}
	}
	if len(providers) == 0 {
		log.Warn("No LLM provider configured; AI endpoints will report providers unavailable")
	}

	opts := []screening.Option{
		screening.WithPageFetcher(utils.NewPageFetcher(httpClient)),
	}
	if geminiClient != nil {
		opts = append(opts, screening.WithDocumentParser(geminiClient))
	}
	if cfg.GeminiAPIKey != "" {
		opts = append(opts, screening.WithEmbedder(
			gemini.NewEmbedder(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.EmbeddingModel, httpClient),
		))
	}
	if cfg.RedisURL != "" {
		redisClient, err := storage.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, chat transcripts will not be stored")
		} else {
			defer redisClient.Close()
			opts = append(opts, screening.WithTranscripts(storage.NewRedisTranscripts(redisClient)))
		}
	}

	svc := screening.NewService(llm.NewChain(providers...), opts...)

	// Persistence
	store, err := storage.NewCandidateStore(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize candidate store")
	}
	defer store.Close()
	log.WithField("backend", cfg.StoreBackend).Info("Candidate store initialized")

	blobs, err := storage.NewBlobs(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize blob storage")
	}
	defer blobs.Close()
	log.WithField("backend", cfg.BlobBackend).Info("Blob storage initialized")

	extractor := utils.NewDocumentExtractor()
	pipeline := screening.NewPipeline(svc, extractor, store, blobs.Resumes)

	// Tools exposed to external agents
	toolRegistry := tools.NewToolRegistry()
	toolRegistry.Register(tools.NewParseResumeTool(svc))
	toolRegistry.Register(tools.NewScoreCandidateTool(svc))
	toolRegistry.Register(tools.NewCompareCandidatesTool(svc))
	toolRegistry.Register(tools.NewGenerateJDTool(svc))
	toolRegistry.Register(tools.NewFetchPortfolioTool(utils.NewPageFetcher(httpClient)))

	maxUpload := int64(cfg.MaxUploadMB) << 20
	routes := &handlers.Routes{
		Screening:  handlers.NewScreeningHandler(svc, extractor, cfg.AppURL, maxUpload),
		Candidates: handlers.NewCandidateHandler(store, blobs, pipeline, svc, maxUpload),
		System:     handlers.NewSystemHandler(svc, toolRegistry),
		MCP:        mcp.NewServer(toolRegistry, "hireflow", handlers.Version),
		APISecret:  cfg.APISecret,
	}
	if cfg.APISecret == "" {
		log.Warn("API_SECRET is not set; the public API and MCP endpoints will reject every request")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AppURL, "http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "x-api-key"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	routes.Register(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).WithField("providers", svc.Providers()).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		return
	}

	log.Info("Server exited gracefully")
}
