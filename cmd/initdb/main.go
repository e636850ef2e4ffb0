package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"mealshare/internal/config"
	"mealshare/internal/db"
	"mealshare/internal/db/mock"
	applog "mealshare/internal/log"
	"mealshare/models"
)

// initdb drops every table, recreates the schema and loads the sample data.
// An optional argument overrides the configured database URL or path.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if len(os.Args) > 1 {
		cfg.Database.URL = os.Args[1]
	}

	if err := run(context.Background(), cfg.Database); err != nil {
		fmt.Fprintf(os.Stderr, "initdb failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.DatabaseConfig) error {
	if strings.TrimSpace(cfg.URL) == "" {
		return fmt.Errorf("database url must not be empty")
	}

	database, err := db.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close(database)

	if err := db.Reset(database); err != nil {
		return fmt.Errorf("reset schema: %w", err)
	}
	if err := mock.Seed(ctx, database); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	var recipes int64
	if err := database.WithContext(ctx).Model(&models.Recipe{}).Count(&recipes).Error; err != nil {
		return fmt.Errorf("count recipes: %w", err)
	}
	applog.Info(ctx, "database initialised", "url", cfg.URL, "recipes", recipes)
	return nil
}
