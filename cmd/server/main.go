package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"proxypool-server/internal/config"
	domain "proxypool-server/internal/domain/proxy"
	"proxypool-server/internal/infrastructure/logger"
	"proxypool-server/internal/infrastructure/source"
	"proxypool-server/internal/interfaces/httpserver"
)

type Application struct {
	httpServer *httpserver.HttpServer
	manager    *domain.Manager
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, manager *domain.Manager, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		manager:    manager,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	go a.manager.RunPeriodic(ctx)
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool := domain.NewPool()
	checker := &domain.HTTPChecker{
		TestURL: cfg.TestURL,
		Timeout: cfg.TestTimeout,
	}
	validator := domain.NewValidator(checker, cfg.ValidationBatchSize, cfg.ValidationWorkers, log)
	sources := []domain.Source{
		source.NewHTMLSource(cfg.HTMLSourceURL, log),
		source.NewJSONSource(cfg.JSONSourceURL, log),
	}
	manager := domain.NewManager(pool, sources, validator, cfg.SourceFetchTimeout, cfg.RefreshInterval, log)

	// Warm the pool before serving; a failed first cycle is not fatal.
	if _, err := manager.Refresh(ctx, false); err != nil {
		log.Warn().Err(err).Msg("initial refresh failed")
	}

	httpServer := httpserver.New(cfg, log, manager)
	app := NewApplication(httpServer, manager, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
