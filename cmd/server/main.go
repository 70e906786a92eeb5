package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/folio/backend/internal/config"
	"github.com/folio/backend/internal/handler"
	"github.com/folio/backend/internal/logging"
	"github.com/folio/backend/internal/repository"
	"github.com/folio/backend/internal/service"
	"github.com/folio/backend/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	resumeStore, err := storage.Open(ctx, storage.Source{
		Kind:            cfg.ResumeSource,
		Dir:             cfg.ResumeDir,
		Bucket:          cfg.ResumeBucket,
		CredentialsFile: cfg.GoogleCredentials,
	})
	if err != nil {
		logging.Fatal("failed to open resume storage", "source", cfg.ResumeSource, "error", err)
	}
	if c, ok := resumeStore.(io.Closer); ok {
		defer c.Close()
	}

	contactService := service.NewContactService(repository.NewPgContactRepository(pool))

	if cfg.AdminToken == "" && cfg.IsProduction() {
		slog.Warn("ADMIN_TOKEN is not set; GET /api/contacts is open")
	}

	router := handler.NewRouter(handler.RouterConfig{
		Base:     handler.New(pool, cfg.FrontendURL),
		Contacts: handler.NewContactHandler(contactService),
		Resume: handler.NewResumeHandler(resumeStore, handler.ResumeConfig{
			Key:      cfg.ResumeKey,
			Filename: cfg.ResumeFilename,
		}),
		AdminToken:     cfg.AdminToken,
		MetricsEnabled: cfg.MetricsEnabled,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.Env, "resume_source", cfg.ResumeSource)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
