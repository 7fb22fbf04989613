// Package testdb provides a migrated PostgreSQL database for integration tests.
//
// Tests using it are skipped unless TEST_DATABASE_URL points at a database
// that may be wiped.
package testdb

import (
	"os"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bgcatalog/backend/internal/database"
)

// EnvVar names the environment variable holding the test DSN.
const EnvVar = "TEST_DATABASE_URL"

var tables = []string{
	"audit_logs", "recommendations", "game_ratings", "collections",
	"game_mechanics", "game_categories", "games", "mechanics", "categories", "users",
}

// New connects, migrates and truncates every catalog table.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv(EnvVar)
	if dsn == "" {
		t.Skipf("%s not set, skipping database test", EnvVar)
	}

	db, err := database.Connect(dsn, logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatalf("testdb: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("testdb: %v", err)
	}
	Reset(t, db)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Reset empties every catalog table and restarts id sequences.
func Reset(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, table := range tables {
		if err := db.Exec("TRUNCATE TABLE " + table + " RESTART IDENTITY CASCADE").Error; err != nil {
			t.Fatalf("testdb: truncate %s: %v", table, err)
		}
	}
}
