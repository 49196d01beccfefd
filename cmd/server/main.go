// backend-go/cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stayview/revgrid/backend-go/internal/api"
	"github.com/stayview/revgrid/backend-go/internal/cache"
	"github.com/stayview/revgrid/backend-go/internal/clock"
	"github.com/stayview/revgrid/backend-go/internal/config"
	"github.com/stayview/revgrid/backend-go/internal/engine"
	"github.com/stayview/revgrid/backend-go/internal/repository"
	"github.com/stayview/revgrid/backend-go/internal/repository/postgres"
	"github.com/stayview/revgrid/backend-go/internal/service"
	"github.com/stayview/revgrid/backend-go/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	clk := clock.NewSystem()

	// Restriction storage: Postgres when enabled, seeded sample data
	// otherwise (the dashboard demo runs without a database).
	var restrictionRepo repository.RestrictionRepository
	if cfg.Database.Enabled {
		db, err := postgres.NewDB(&cfg.Database)
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()
		restrictionRepo = postgres.NewRestrictionRepository(db)
	} else {
		logger.Log.Info().Msg("Database disabled, using in-memory sample catalog")
		restrictionRepo = repository.NewSampleRepository(clk.Now())
	}

	// Status cache backend
	var statusCache cache.StatusCache
	switch cfg.Cache.Backend {
	case "redis":
		redisCache, err := cache.NewRedisStatusCache(cfg.Cache)
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to connect to redis")
		}
		statusCache = redisCache
	case "none":
		statusCache = cache.NewNoopStatusCache()
	default:
		statusCache = cache.NewMemoryStatusCache(cfg.Cache.MaxEntries)
	}

	// Initialize services
	classifier := engine.NewClassifier(clk, cfg.Engine.DefaultCapacity)
	statusService := service.NewStatusService(classifier, statusCache)
	gridService := service.NewGridService(statusService, cfg.Engine.PrecomputeWorkers)
	restrictionService := service.NewRestrictionService(restrictionRepo, clk)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := restrictionService.Load(ctx); err != nil {
		cancel()
		logger.Log.Fatal().Err(err).Msg("Failed to load restriction catalog")
	}
	cancel()

	// Initialize HTTP server
	router := api.NewRouter(&api.Services{
		StatusService:      statusService,
		GridService:        gridService,
		RestrictionService: restrictionService,
	}, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
