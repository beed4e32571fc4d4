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
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/repository/jsonfile"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	// 3. Seed missing data files so a fresh deployment serves empty documents
	if err := jsonfile.Seed(cfg.PortfolioFile, cfg.ProfileFile); err != nil {
		logger.Log.Error("Failed to prepare data files", "error", err)
		os.Exit(1)
	}

	// 4. Setup Repositories
	portfolioRepo := jsonfile.NewPortfolioRepository(cfg.PortfolioFile)
	profileRepo := jsonfile.NewProfileRepository(cfg.ProfileFile)

	// 5. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 6. Setup UseCases
	validate := validator.New()
	portfolioUC := usecase.NewPortfolioUsecase(portfolioRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	authUC := usecase.NewAuthUsecase(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash)
	contactUC := usecase.NewContactUsecase(emailService)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		PortfolioUC: portfolioUC,
		ProfileUC:   profileUC,
		AuthUC:      authUC,
		ContactUC:   contactUC,
		Config:      cfg,
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
