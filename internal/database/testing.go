package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/yourusername/ff-toolbox/internal/config"
)

// SetupTestDB creates a test database connection. Tests are skipped when
// FF_TOOLBOX_TEST_CONFIG is unset so the suite runs without Postgres.
func SetupTestDB(t *testing.T) *DB {
	path := os.Getenv("FF_TOOLBOX_TEST_CONFIG")
	if path == "" {
		t.Skip("FF_TOOLBOX_TEST_CONFIG not set, skipping database tests")
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load test config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := Initialize(ctx, cfg)
	if err != nil {
		t.Fatalf("failed to create test database connection: %v", err)
	}

	return db
}

// TeardownTestDB closes the database connection cleanly
func TeardownTestDB(t *testing.T, db *DB) {
	t.Helper()
	db.Close()
}
