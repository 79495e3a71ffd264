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

	"dispatch/cmd"
	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/rediscache"
	"dispatch/internal/core/ports"
	"dispatch/internal/seed"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []cmd.Option{cmd.WithLogger(logger)}

	if config.RedisAddr != "" {
		client := rediscache.NewClient(config.RedisAddr)
		defer client.Close()

		if err = client.Ping(ctx).Err(); err != nil {
			log.Fatalf("Error connecting to redis at %s: %v", config.RedisAddr, err)
		}
		opts = append(opts, cmd.WithRankCache(rediscache.NewRankReportCache(client, config.RankCacheTTL, logger)))
	}

	app, err := cmd.NewCompositionRoot(config, openStorage(ctx, config, logger), opts...)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	if config.Seed {
		if _, err = app.CreateSeeder().Run(ctx); err != nil && !errors.Is(err, seed.ErrAlreadySeeded) {
			log.Fatalf("Error loading fixtures: %v", err)
		}
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, config.HTTPPort, logger)
}

func openStorage(ctx context.Context, config cmd.Config, logger *slog.Logger) ports.UnitOfWorkFactory {
	if config.StorageDriver == cmd.StorageMemory {
		logger.InfoContext(ctx, "Using in-memory storage")
		return memory.NewUnitOfWorkFactory(memory.NewStore())
	}

	conn := config.Connection()
	if err := postgres.EnsureDatabase(ctx, conn); err != nil {
		log.Fatalf("Error preparing database: %v", err)
	}

	db, err := postgres.Open(conn.DSN())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	logger.InfoContext(ctx, "Using postgres storage", "host", conn.Host, "database", conn.Name)
	return postgres.NewGormUnitOfWorkFactory(db)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := app.CreateHTTPServer()
	if err != nil {
		log.Fatalf("Error building HTTP server: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error running HTTP server: %v", err)
		}
	}()
	logger.InfoContext(ctx, "HTTP server started", "port", port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.ErrorContext(shutdownCtx, "HTTP server shutdown failed", "error", err)
	}
}
