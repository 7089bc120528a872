// @title Mergington High School Activities API
// @version 1.0
// @description Sign students up for extracurricular activities and manage rosters.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mergingtonactivities/config"
	"mergingtonactivities/internal/adapters/email"
	deliveryhttp "mergingtonactivities/internal/delivery/http"
	"mergingtonactivities/internal/delivery/http/controllers"
	"mergingtonactivities/internal/domain"
	"mergingtonactivities/internal/observability"
	"mergingtonactivities/internal/repository/memory"
	"mergingtonactivities/internal/repository/postgres"
	"mergingtonactivities/internal/services"
	"mergingtonactivities/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	source, closeSource, err := catalogSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	opts := []memory.Option{memory.WithRosterObserver(observability.SetRosterSize)}
	if cfg.EnforceCapacity {
		opts = append(opts, memory.WithCapacityLimit())
	}
	repo := memory.NewActivityRepository(nil, opts...)
	if err := services.SeedRegistry(ctx, source, memory.DefaultActivities(), repo, logger); err != nil {
		return err
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	activitySvc := services.NewActivityService(repo, emailSvc, logger)

	handler := deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		Logger:             logger,
		AllowedOrigins:     cfg.AllowedOrigins,
		ActivityController: controllers.NewActivityController(logger, activitySvc),
		Static:             web.FS,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// catalogSource picks the Postgres catalogue when DATABASE_URL is set and the
// built-in activities otherwise. The returned func releases any connection.
func catalogSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.ActivityCatalogSource, func(), error) {
	if cfg.DBUrl == "" {
		return memory.NewDefaultCatalogSource(), func() {}, nil
	}
	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("loading activity catalog from postgres")
	return postgres.NewActivityCatalogRepository(db), func() { closeDB(db, logger) }, nil
}

func closeDB(db *sql.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Warn("close database", "err", err)
	}
}
