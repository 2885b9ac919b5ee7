package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/chronicle-engine/internal/config"
	"github.com/jwebster45206/chronicle-engine/internal/handlers"
	"github.com/jwebster45206/chronicle-engine/internal/logger"
	"github.com/jwebster45206/chronicle-engine/internal/middleware"
	"github.com/jwebster45206/chronicle-engine/internal/scheduler"
	"github.com/jwebster45206/chronicle-engine/internal/storage"
	"github.com/jwebster45206/chronicle-engine/pkg/chronicle"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Chronicle Engine API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"archive_path", cfg.ArchivePath,
		"templates", chronicle.DefaultRegistry().Len())

	sessions, err := storage.NewRedisStorage(cfg.RedisURL, cfg.SessionTTL, log)
	if err != nil {
		log.Error("Invalid Redis configuration", "error", err)
		os.Exit(1)
	}
	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()

	if err := sessions.WaitForConnection(storageCtx, 2*time.Second); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}

	archive, err := storage.OpenArchive(cfg.ArchivePath, log)
	if err != nil {
		log.Error("Failed to open chronicle archive", "error", err, "path", cfg.ArchivePath)
		os.Exit(1)
	}

	pruner := scheduler.New(archive, cfg.ArchiveRetention, log)
	if err := pruner.Start(cfg.ArchivePruneSchedule); err != nil {
		log.Error("Failed to start archive pruning", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(map[string]handlers.Pinger{
		"sessions": sessions,
		"archive":  archive,
	}, log)
	mux.Handle("/health", healthHandler)

	timelineHandler := handlers.NewTimelineHandler(log, sessions, archive, chronicle.DefaultRegistry(), handlers.TimelineOptions{
		DefaultEmpireName: cfg.DefaultEmpireName,
		MaxUploadBytes:    cfg.MaxUploadBytes,
	})
	mux.Handle("/v1/timelines", timelineHandler)
	mux.Handle("/v1/timelines/", timelineHandler)

	chronicleHandler := handlers.NewChronicleHandler(log, archive)
	mux.Handle("/v1/chronicles", chronicleHandler)
	mux.Handle("/v1/chronicles/", chronicleHandler)

	handler := middleware.Logger(log, mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  60 * time.Second, // large save uploads
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	pruner.Stop()

	if err := archive.Close(); err != nil {
		log.Error("Error closing chronicle archive", "error", err)
	}
	if err := sessions.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	log.Info("Server exited")
}
