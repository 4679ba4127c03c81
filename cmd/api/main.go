package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/BruksfildServices01/matcha-inventory/internal/attachments"
	"github.com/BruksfildServices01/matcha-inventory/internal/audit"
	"github.com/BruksfildServices01/matcha-inventory/internal/auth"
	"github.com/BruksfildServices01/matcha-inventory/internal/cache"
	"github.com/BruksfildServices01/matcha-inventory/internal/config"
	dbpkg "github.com/BruksfildServices01/matcha-inventory/internal/db"
	"github.com/BruksfildServices01/matcha-inventory/internal/domain/inventory"
	"github.com/BruksfildServices01/matcha-inventory/internal/handlers"
	"github.com/BruksfildServices01/matcha-inventory/internal/infra/repository"
	"github.com/BruksfildServices01/matcha-inventory/internal/logger"
	"github.com/BruksfildServices01/matcha-inventory/internal/observability/metrics"
	"github.com/BruksfildServices01/matcha-inventory/internal/observability/tracing"
	"github.com/BruksfildServices01/matcha-inventory/internal/routes"
	"github.com/BruksfildServices01/matcha-inventory/internal/usecase/dashboard"
)

const serviceName = "matcha-inventory"

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	log.Info("starting inventory api", slog.String("environment", cfg.Environment))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := tracing.Init(ctx, log, serviceName, cfg.Environment)
	if err != nil {
		log.Error("failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// ======================================================
	// STORAGE
	// ======================================================
	backend := dbpkg.OpenInventory(ctx, cfg, log)
	metrics.SetStorageBackend(backend.Mode())

	auditDB, err := dbpkg.OpenAudit(cfg)
	if err != nil {
		log.Warn("audit database unavailable, auditing to log", slog.String("error", err.Error()))
	}

	var sink audit.Sink = audit.NewSlogSink(log)
	var auditLogs handlers.AuditLogLister
	if auditDB != nil {
		auditRepo := repository.NewAuditLogGormRepository(auditDB)
		sink = audit.New(auditRepo)
		auditLogs = auditRepo
	}
	auditDispatcher := audit.NewDispatcher(sink, log)

	var summaryCache dashboard.Cache
	if cfg.RedisURL != "" && cfg.DashboardCacheTTL > 0 {
		redisClient, err := cache.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, dashboard cache disabled", slog.String("error", err.Error()))
		} else {
			defer redisClient.Close()
			summaryCache = redisClient
		}
	}

	// ======================================================
	// DOMAIN
	// ======================================================
	repos := inventory.NewRepositories(backend, auditDispatcher, metrics.Mutations{})
	dashboardSvc := dashboard.NewService(repos, summaryCache, cfg.DashboardCacheTTL, log)
	repos.Observe(dashboardSvc)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	users := auth.NewService(backend, tokens)

	var storage attachments.Storage
	var local *attachments.Local
	if cfg.S3Enabled() {
		storage = attachments.NewS3(attachments.S3Options{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			PublicURL:       cfg.S3PublicURL,
		})
	} else {
		local = attachments.NewLocal(cfg.UploadDir, "/uploads")
		storage = local
	}
	uploads := attachments.NewUploader(storage, attachments.Options{
		MaxBytes:     cfg.MaxUploadBytes,
		MaxDimension: cfg.ImageMaxDimension,
		Quality:      cfg.ImageQuality,
	}, log)

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Config:       cfg,
		Log:          log,
		Backend:      backend,
		Repos:        repos,
		Users:        users,
		Dashboard:    dashboardSvc,
		Uploads:      uploads,
		LocalUploads: local,
		AuditLogs:    auditLogs,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      otelhttp.NewHandler(r, serviceName),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("server starting", slog.String("addr", cfg.Addr()), slog.String("storage", backend.Mode()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", slog.String("error", err.Error()))
			sigChan <- syscall.SIGTERM
		}
	}()

	<-sigChan
	log.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", slog.String("error", err.Error()))
	}
	if err := auditDispatcher.Close(shutdownCtx); err != nil {
		log.Error("audit drain error", slog.String("error", err.Error()))
	}
	if err := backend.Close(shutdownCtx); err != nil {
		log.Error("storage close error", slog.String("error", err.Error()))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing shutdown error", slog.String("error", err.Error()))
	}
	log.Info("server stopped")
}
