package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	_ "bgcatalog/backend/docs"
	"bgcatalog/backend/internal/auth"
	"bgcatalog/backend/internal/config"
	"bgcatalog/backend/internal/database"
	"bgcatalog/backend/internal/handler"
	"bgcatalog/backend/internal/logger"
	"bgcatalog/backend/internal/repository"
)

// @title           Board Game Catalog API
// @version         1.0
// @description     Catalog of board games with categories, mechanics, collections, ratings and recommendations.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		panic("Configuration load failed: " + err.Error())
	}
	log := logger.New(cfg.AppEnv, cfg.LogLevel, os.Stdout)
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("Configuration validation failed")
		os.Exit(1)
	}
	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("Server stopped")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	defaultCaller, err := cfg.DefaultCaller()
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.DatabaseURL, logger.ForGorm(log, cfg.DBLogLevel))
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.Migrate(db); err != nil {
		return err
	}
	log.Info().Msg("Database ready")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := handler.NewRouter(handler.Dependencies{
		Games:           repository.NewGameRepository(db, log),
		Taxonomy:        repository.NewTaxonomyRepository(db, log),
		Collections:     repository.NewCollectionRepository(db, log),
		Ratings:         repository.NewRatingRepository(db, log),
		Recommendations: repository.NewRecommendationRepository(db, log),
		Users:           repository.NewUserRepository(db),
		Auth: auth.Options{
			Secret:            cfg.JWTSecret,
			RequireValidToken: cfg.RequireValidToken,
			DefaultCaller:     defaultCaller,
		},
		RecommendationsPerRun: cfg.RecommendationsPerRun,
		Metrics:               registry,
		Log:                   log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server is running")
		log.Info().Msgf("Swagger UI is available at http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		log.Info().Msg("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("Graceful shutdown complete")
	return nil
}
