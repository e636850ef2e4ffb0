package main

import (
	"context"
	"path/filepath"
	"testing"

	"mealshare/internal/config"
	"mealshare/internal/db"
	"mealshare/models"
)

func TestRunResetsAndSeeds(t *testing.T) {
	ctx := context.Background()
	cfg := config.DatabaseConfig{URL: filepath.Join(t.TempDir(), "nested", "meal_sharing.db")}

	for i := 0; i < 2; i++ {
		if err := run(ctx, cfg); err != nil {
			t.Fatalf("run #%d: %v", i+1, err)
		}
	}

	database, err := db.Initialize(cfg)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close(database) })

	counts := map[string]struct {
		model any
		want  int64
	}{
		"recipes":     {&models.Recipe{}, 9},
		"users":       {&models.User{}, 4},
		"dietaryTags": {&models.DietaryTag{}, 16},
		"reviews":     {&models.Review{}, 5},
		"favorites":   {&models.Favorite{}, 4},
	}
	for name, c := range counts {
		var got int64
		if err := database.Model(c.model).Count(&got).Error; err != nil {
			t.Fatalf("count %s: %v", name, err)
		}
		if got != c.want {
			t.Fatalf("expected %d %s after repeated runs, got %d", c.want, name, got)
		}
	}
}

func TestRunRejectsEmptyURL(t *testing.T) {
	if err := run(context.Background(), config.DatabaseConfig{URL: "  "}); err == nil {
		t.Fatal("expected error for empty database url")
	}
}
