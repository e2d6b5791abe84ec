// Package server initializes and runs the main application server.
// It wires configuration, logging, storage, the authentication services and
// the HTTP endpoint, and handles graceful shutdown.
package server

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

	"github.com/mstoliarov/authgate/internal/logging"
	"github.com/mstoliarov/authgate/internal/server/auth"
	"github.com/mstoliarov/authgate/internal/server/config"
	"github.com/mstoliarov/authgate/internal/server/httpapi"
	"github.com/mstoliarov/authgate/internal/server/metrics"
	"github.com/mstoliarov/authgate/internal/server/storage"
	"github.com/mstoliarov/authgate/internal/server/users"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	config *config.Config
	logger logging.Logger
	router http.Handler
	store  *storage.Postgres
}

func NewApp(cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	store, err := storage.NewPostgres(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher := auth.NewHasher(cfg.BcryptCost)
	codec := auth.NewTokenCodec([]byte(cfg.SecretKey), cfg.TokenValidityDuration)
	service := users.NewService(store.Users(), hasher, codec)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	handler := httpapi.NewAuthHandler(service, logger, collector, httpapi.CookieConfig{
		Name:   cfg.SessionCookieName,
		Path:   cfg.SessionCookiePath,
		Domain: cfg.SessionCookieDomain,
		Secure: cfg.SessionCookieSecure,
		MaxAge: int(cfg.TokenValidityDuration.Seconds()),
	})

	router := httpapi.NewRouter(&httpapi.RouterDeps{
		Handler:  handler,
		Verifier: codec,
		Logger:   logger,
		Registry: registry,
	})

	return &App{config: cfg, logger: logger, router: router, store: store}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	server := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.router,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, "shutdown error", "error", err.Error())
		}
		if err := app.store.Close(); err != nil {
			app.logger.Error(shutdownCtx, "db close error", "error", err.Error())
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
	}
}
