package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go-whatsapp-job-monitor/internal/config"
	"go-whatsapp-job-monitor/internal/server"
	"go-whatsapp-job-monitor/internal/store"
	"go-whatsapp-job-monitor/internal/watcher"
)

func main() {
	// ── Logging ──────────────────────────────────────────
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// ── Config ───────────────────────────────────────────
	cfg := config.Load()
	log.Info().Str("port", cfg.ServerPort).Str("jobs_file", cfg.JobsFile).Msg("starting job monitor API")

	// ── Store ────────────────────────────────────────────
	jobStore := store.New(cfg.JobsFile)
	jobStore.Load()
	log.Info().Int("jobs", jobStore.Count()).Msg("jobs loaded")

	// ── Server + file watcher ────────────────────────────
	srv := server.New(cfg, jobStore, log.Logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fw := watcher.New(cfg.JobsFile, srv.Reload, log.Logger)
	go func() {
		if err := fw.Run(ctx); err != nil {
			log.Error().Err(err).Msg("file watcher stopped")
		}
	}()

	// ── HTTP ─────────────────────────────────────────────
	httpSrv := &http.Server{
		Addr:        ":" + cfg.ServerPort,
		Handler:     srv.Router(),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().Str("port", cfg.ServerPort).Msg("API server running")

	<-ctx.Done()

	log.Info().Msg("shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
