package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs" // Important for Swagger
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	filerepo "go-portfolio-backend/internal/repository/file"
	"go-portfolio-backend/internal/repository/memory"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"
	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Backend for the portfolio website: project catalog and contact form.
// @host            localhost:3000
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	// 3. Setup Redis (optional, backs distributed rate limiting)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 4. Setup Repositories
	projectRepo := memory.NewProjectRepository(memory.DefaultProjects())
	submissionStore := filerepo.NewSubmissionStore(cfg.ContactLogPath)

	// 5. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email not configured - contact submissions will be logged but not dispatched")
	}

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	contactUC := usecase.NewContactUsecase(submissionStore, emailService, validate)
	projectUC := usecase.NewProjectUsecase(projectRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ProjectUC: projectUC,
		Config:    cfg,
	})

	// 8. Start Server
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
