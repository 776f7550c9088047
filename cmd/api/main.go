package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-internship-backend/config"
	_ "go-internship-backend/docs" // Important for Swagger
	v1 "go-internship-backend/internal/delivery/http/v1"
	"go-internship-backend/internal/repository/postgres"
	"go-internship-backend/internal/usecase"
	"go-internship-backend/pkg/database"
	"go-internship-backend/pkg/logger"
	"go-internship-backend/pkg/redis"
	"go-internship-backend/pkg/session"
	"go-internship-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Internship Board API
// @version         1.0
// @description     Backend for the internship job board using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting internship board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional - rate limiting falls back to memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	authUC := usecase.NewAuthUsecase(userRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, applicationRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, int64(cfg.MaxResumeSizeMB)<<20)

	// 7. Setup Sessions
	if cfg.SessionSecret == "" {
		logger.Log.Error("SESSION_SECRET is required")
		os.Exit(1)
	}
	sessions := session.NewManager(cfg.SessionSecret, time.Duration(cfg.SessionTTL)*time.Hour)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		Sessions:      sessions,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
