// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"immat-api/config"
	"immat-api/database"
	"immat-api/models"
)

// NewDB returns a migrated in-memory SQLite database. The pool is pinned to
// one connection because every SQLite memory connection is its own database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"), &config.Config{
		DBMaxOpenConns: 1,
		DBLogLevel:     "silent",
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })

	return db
}

// SeedProvinces inserts raw province/city pairs; nil means NULL.
func SeedProvinces(t *testing.T, db *gorm.DB, rows [][2]*string) {
	t.Helper()

	for _, row := range rows {
		if err := db.Create(&models.Province{Province: row[0], Ville: row[1]}).Error; err != nil {
			t.Fatalf("seed province: %v", err)
		}
	}
}

func Str(s string) *string {
	return &s
}
