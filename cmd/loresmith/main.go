// LoreSmith server: serves the HTTP API, runs the ingestion queue
// workers, and performs the scheduled maintenance sweeps.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/loresmith/loresmith/ent/queuemessage"
	"github.com/loresmith/loresmith/pkg/api"
	"github.com/loresmith/loresmith/pkg/blob"
	"github.com/loresmith/loresmith/pkg/chunks"
	"github.com/loresmith/loresmith/pkg/cleanup"
	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/database"
	"github.com/loresmith/loresmith/pkg/dedup"
	"github.com/loresmith/loresmith/pkg/changelog"
	"github.com/loresmith/loresmith/pkg/embedding"
	"github.com/loresmith/loresmith/pkg/entityextract"
	"github.com/loresmith/loresmith/pkg/extract"
	"github.com/loresmith/loresmith/pkg/graph"
	"github.com/loresmith/loresmith/pkg/llm"
	"github.com/loresmith/loresmith/pkg/planning"
	"github.com/loresmith/loresmith/pkg/queue"
	"github.com/loresmith/loresmith/pkg/rebuild"
	"github.com/loresmith/loresmith/pkg/services"
	"github.com/loresmith/loresmith/pkg/staging"
	"github.com/loresmith/loresmith/pkg/vector"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// embedderAdapter bridges the embedding service to the narrow interface the
// staging pipeline declares.
type embedderAdapter struct {
	svc *embedding.Service
}

func (a embedderAdapter) EmbedAndIndex(ctx context.Context, sourceID, text string, metadata map[string]any) (staging.EmbedResult, error) {
	res, err := a.svc.EmbedAndIndex(ctx, sourceID, text, metadata)
	return staging.EmbedResult{VectorIDs: res.VectorIDs, Fallback: res.Fallback}, err
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting LoreSmith",
		"pod_id", podID,
		"config_dir", *configDir,
		"http_port", cfg.Server.Port)

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	logger := slog.Default()

	// 3. External stores: blob storage and the vector index
	blobs, err := blob.NewS3Store(ctx, blob.S3Options{
		Bucket:   cfg.Blob.Bucket,
		Region:   cfg.Blob.Region,
		Endpoint: cfg.Blob.Endpoint,
	})
	if err != nil {
		slog.Error("Failed to initialize blob store", "error", err)
		os.Exit(1)
	}

	index, err := vector.NewQdrantIndex(ctx, vector.QdrantOptions{
		Host:       cfg.Vector.Host,
		Port:       cfg.Vector.Port,
		APIKey:     os.Getenv(cfg.Vector.APIKeyEnv),
		UseTLS:     cfg.Vector.UseTLS,
		Collection: cfg.Vector.Collection,
		Dim:        cfg.Pipeline.EmbeddingDim,
	})
	if err != nil {
		slog.Error("Failed to initialize vector index", "error", err)
		os.Exit(1)
	}
	slog.Info("External stores initialized",
		"bucket", cfg.Blob.Bucket, "collection", cfg.Vector.Collection)

	// 4. LLM provider
	provider := llm.NewOpenAIClient(llm.OpenAIOptions{
		BaseURL:           cfg.LLM.BaseURL,
		APIKey:            os.Getenv(cfg.LLM.APIKeyEnv),
		ChatModel:         cfg.LLM.ChatModel,
		EmbeddingModel:    cfg.Pipeline.EmbeddingModel,
		EmbeddingDim:      cfg.Pipeline.EmbeddingDim,
		RequestsPerMinute: int(cfg.LLM.RequestsPerMinute),
	}, logger)

	// 5. Pipeline components
	q := queue.New(dbClient.Client, cfg.Queue, logger)
	graphSvc := graph.NewService(dbClient.Client, logger)
	changes := changelog.NewStore(dbClient.Client, logger)
	chunkStore := chunks.NewStore(dbClient.Client, logger)
	extractor := extract.NewExtractor(logger)
	embedder := embedding.NewService(provider, index, *cfg.Pipeline, logger)
	deduper := dedup.NewDeduplicator(embedder, index, *cfg.Pipeline, logger)
	calculator := rebuild.NewCalculator(graphSvc, logger)

	entityExtractor := entityextract.NewService(provider, cfg.LLM.MaxResponseTokens, logger)
	contentProvider := staging.NewDirectFileProvider(blobs, extractor, cfg.Pipeline.NonPDFChunkThresholdMB)
	stagingSvc := staging.NewService(
		contentProvider,
		entityExtractor,
		graphSvc,
		deduper,
		embedderAdapter{svc: embedder},
		changes,
		calculator,
		*cfg.Pipeline,
		logger,
	)

	// 6. Domain services
	notifications := services.NewNotificationService(dbClient.Client, logger)
	files := services.NewFileService(dbClient.Client, blobs, q, notifications, logger)
	campaigns := services.NewCampaignService(dbClient.Client, q, logger)
	entities := services.NewEntityService(campaigns, graphSvc, logger)
	digests := services.NewDigestService(dbClient.Client, campaigns, embedder, index, logger)
	planner := planning.NewService(embedder, index, graphSvc, provider, cfg.Pipeline, nil, logger)
	trigger := rebuild.NewTrigger(dbClient.Client, changes, graphSvc, q, cfg.Pipeline, logger)
	slog.Info("Services initialized")

	// 7. Queue executors and the worker pool
	filePipeline := services.NewFilePipeline(
		dbClient.Client, blobs, chunkStore, extractor, embedder, notifications, *cfg.Pipeline, logger)
	extraction := services.NewExtractionExecutor(stagingSvc, notifications, logger)
	rebuilds := rebuild.NewProcessor(
		dbClient.Client, graphSvc, changes, embedder, provider, notifications, cfg.Pipeline, logger)

	workerPool := queue.NewWorkerPool(podID, q, cfg.Queue, queue.Registry{
		queuemessage.KindFileProcessing:   filePipeline,
		queuemessage.KindEntityExtraction: extraction,
		queuemessage.KindGraphRebuild:     rebuilds,
	})
	workerPool.Start(ctx)

	// 8. Scheduled maintenance
	maintenance := cleanup.NewService(cfg.Retention, dbClient.Client, blobs, workerPool, trigger, notifications)
	maintenance.Start(ctx)
	defer maintenance.Stop()

	// 9. HTTP server
	httpServer := api.NewServer(
		cfg, dbClient, files, campaigns, entities, digests, notifications,
		planner, trigger, workerPool, logger)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("LoreSmith started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: workers first so in-flight messages finish
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded; unfinished messages will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
