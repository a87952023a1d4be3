package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/megareality/estate/internal/api"
	"github.com/megareality/estate/internal/repository"
	"github.com/megareality/estate/internal/repository/memory"
	"github.com/megareality/estate/internal/seed"
	"github.com/megareality/estate/internal/services"
	"github.com/megareality/estate/pkg/config"
	"github.com/megareality/estate/pkg/database"
	"github.com/megareality/estate/pkg/logger"
	"go.uber.org/zap"

	_ "github.com/megareality/estate/docs"
)

// @title           MegaReality Real Estate API
// @version         1.0
// @description     Listing administration backend: properties, agents, builders, projects, inquiries, admins and home page content.

// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("Starting Real Estate API",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
		zap.String("db_driver", cfg.DBDriver),
	)

	ctx := context.Background()
	repos, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open store", zap.Error(err))
	}
	defer closeStore()

	if cfg.SeedOnStart {
		if _, err := seed.Run(ctx, repos, time.Now().UTC()); err != nil {
			log.Fatal("Failed to seed store", zap.Error(err))
		}
	}

	// JWT Secret from environment
	jwtSecret := []byte(cfg.JWTSecret)
	if len(jwtSecret) == 0 {
		log.Warn("JWT_SECRET not set, using default (INSECURE for production)")
		jwtSecret = []byte("change-me-in-production-please")
	}
	if !cfg.AuthRequired {
		log.Warn("AUTH_REQUIRED is off: admin routes accept unauthenticated requests")
	}

	svc := services.New(repos, services.Options{JWTSecret: jwtSecret})

	// Create router with dependencies
	router := api.NewRouter(api.Dependencies{
		Services:           svc,
		Ping:               repos.Ping,
		HMACSecret:         jwtSecret,
		AuthRequired:       cfg.AuthRequired,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}

// openStore returns the repositories for the configured backend and a func
// releasing it.
func openStore(ctx context.Context, cfg *config.Config) (*repository.Repositories, func(), error) {
	if cfg.DBDriver == "memory" {
		logger.L().Warn("using in-memory store: data is lost on restart")
		return memory.New(), func() {}, nil
	}

	db, err := database.Open(ctx, database.Options{
		Driver:  cfg.DBDriver,
		DSN:     cfg.DatabaseURL,
		Verbose: cfg.IsDevelopment(),
	})
	if err != nil {
		return nil, nil, err
	}
	logger.L().Info("Database connected successfully")

	if cfg.DBAutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			_ = database.Close(db)
			return nil, nil, err
		}
	}

	closeFn := func() {
		if err := database.Close(db); err != nil {
			logger.L().Warn("database close failed", zap.Error(err))
		}
	}
	return repository.NewGormRepositories(db), closeFn, nil
}
