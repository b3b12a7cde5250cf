// Command seed ensures the default specialty tags exist. Safe to run
// repeatedly; existing tags are left untouched.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	"volunteer-portal/internal/config"
	"volunteer-portal/internal/logger"
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
	logger.Info("Seeding default tags...", "count", len(service.DefaultTags))

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

	store := postgres.NewStore(db)
	tagSvc := service.NewTagService(store.TagRepository)

	created, err := tagSvc.Seed(context.Background(), service.DefaultTags)
	if err != nil {
		logger.Error("Seeding failed", "error", err, "created_before_failure", created)
		log.Fatalf("Failed to seed tags: %v", err)
	}
	logger.Info("Seeding complete", "created", created, "total", len(service.DefaultTags))
}
