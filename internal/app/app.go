package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"article-analytics/internal/analytics"
	"article-analytics/internal/events"
	internalhttp "article-analytics/internal/http"
	"article-analytics/internal/shared/configs"
	"article-analytics/internal/shared/loggers"
	"article-analytics/internal/shared/postgres"
	"article-analytics/internal/stores"
	"article-analytics/internal/streams"
	"article-analytics/internal/trackers"

	"github.com/jmoiron/sqlx"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
	db        *sqlx.DB

	pageViewConsumer streams.PageViewConsumer
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "article-analytics").
		Logger()

	// Connect to Postgres
	db, err := postgres.Connect(postgres.Config{
		DSN:             config.Database.DSN,
		MaxOpenConns:    config.Database.MaxOpenConns,
		MaxIdleConns:    config.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(config.Database.ConnMaxLifetime) * time.Second,
	}, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	queryTimeout := time.Duration(config.Database.QueryTimeout) * time.Second
	viewEventStore := stores.NewViewEventStore(db, queryTimeout)
	articleStore := stores.NewArticleStore(db, queryTimeout)

	// Initialize stream queue
	pageViewQueue := streams.NewPartitionedQueue[events.PageViewEvent]()

	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	pageViewConsumer := streams.NewPageViewConsumer(pageViewQueue, viewEventStore, consumerLogger)

	// Initialize tracking service
	pageViewProducer := streams.NewPageViewProducer(pageViewQueue)
	trackingService := trackers.NewTrackingService(pageViewProducer)

	// Initialize report service
	reportService := analytics.NewReportService(viewEventStore, articleStore, config.Analytics.TopArticlesLimit)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(reportService, trackingService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:           config,
		appLogger:        appLogger,
		server:           server,
		db:               db,
		pageViewConsumer: pageViewConsumer,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting article-analytics service on port %d (log_level=%s)",
			app.config.Server.Port,
			app.config.Log.Level)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.pageViewConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel background consumers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background consumers cancelled")
	}

	// 3) Wait for background consumers to drain in-flight writes
	app.pageViewConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	// 4) Close the database pool
	if err := app.db.Close(); err != nil {
		return fmt.Errorf("database close failed: %w", err)
	}
	app.appLogger.Info().Msg("Database connection closed")

	return nil
}
