package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oasis-server/internal/auth"
	"oasis-server/internal/explorer"
	"oasis-server/internal/middleware"
	"oasis-server/internal/planet"
	"oasis-server/internal/server"
	serverHandlers "oasis-server/internal/server/handlers"
	"oasis-server/internal/shared/config"
	"oasis-server/internal/shared/database"
	"oasis-server/internal/shared/logger"
	"oasis-server/internal/shared/redis"
	"oasis-server/internal/star"
	"oasis-server/internal/system"
	"oasis-server/migrations"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.Init()

	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.GlobalConfig
	log := slog.With("component", "main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect()
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}()

	// An explicit directory overrides the schema built into the binary.
	schema := fs.FS(migrations.FS)
	if cfg.Database.MigrationsPath != "" {
		schema = os.DirFS(cfg.Database.MigrationsPath)
	}
	if _, err := db.Migrate(ctx, schema); err != nil {
		return err
	}

	redisClient, err := redis.Connect()
	if err != nil {
		log.Warn("Redis unavailable, keeping OAuth state in memory", "error", err)
		redisClient = nil
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", "error", err)
		}
	}()

	tokens, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiration)
	if err != nil {
		return err
	}

	states := auth.NewStateStore(redisClient, auth.DefaultStateTTL)
	if memory, ok := states.(*auth.MemoryStateStore); ok {
		memory.StartCleanup(ctx, time.Minute)
	}

	appLogger := slog.Default()
	deps := server.Deps{
		DB:              db,
		StarService:     star.NewService(cfg.Generation.StrictCodes, appLogger),
		PlanetService:   planet.NewService(cfg.Generation.StrictCodes, appLogger),
		SystemService:   system.NewService(system.NewRepository(db, appLogger), cfg.Generation, appLogger),
		ExplorerService: explorer.NewService(explorer.NewRepository(db, appLogger), cfg.Admin, appLogger),
		AuthService:     auth.NewService(auth.NewRepository(db), tokens, states, appLogger),
		Providers:       auth.ConfiguredProviders(cfg),
		FrontendURL:     cfg.Frontend.URL,
	}
	if redisClient != nil {
		deps.Redis = serverHandlers.PingerFunc(redisClient.Healthy)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	limiter.StartCleanup(ctx, time.Minute)

	mux := server.NewRoutes(deps).Setup()
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      server.Handler(mux, middleware.NewCORS(cfg.Frontend), limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Oasis server starting", "addr", srv.Addr, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
