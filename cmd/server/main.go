package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "volunteer-portal/internal/api/http"
	"volunteer-portal/internal/config"
	"volunteer-portal/internal/logger"
	"volunteer-portal/internal/mail"
	"volunteer-portal/internal/repository/postgres"
	"volunteer-portal/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Volunteer Portal...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "base_url", cfg.Server.BaseURL)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Email configuration", "mode", cfg.Email.Mode, "from", cfg.Email.From)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Mail Sender
	sender, err := mail.New(cfg.Email)
	if err != nil {
		logger.Error("Failed to initialize mail sender", "error", err)
		log.Fatalf("Failed to initialize mail sender: %v", err)
	}

	// Initialize Services
	notifier := service.NewNotifier(sender, cfg.Server.BaseURL, time.Duration(cfg.Email.TimeoutSeconds)*time.Second)
	proposalSvc := service.NewProposalService(store.ProposalRepository, store.TagRepository, notifier)
	signupSvc := service.NewSignupService(store.SignupRepository, notifier)
	tagSvc := service.NewTagService(store.TagRepository)

	// Initialize HTTP handlers
	handler, err := httpapi.NewHandler(proposalSvc, signupSvc, tagSvc)
	if err != nil {
		logger.Error("Failed to initialize HTTP handler", "error", err)
		log.Fatalf("Failed to initialize HTTP handler: %v", err)
	}

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      httpapi.NewRouter(handler),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
