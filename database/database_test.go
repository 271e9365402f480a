package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm/logger"
	"immat-api/config"
	"immat-api/models"
)

func TestMigrateAndSeed(t *testing.T) {
	db, err := Open(sqlite.Open(":memory:"), &config.Config{DBMaxOpenConns: 1, DBLogLevel: "silent"})
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, Migrate(db))
	require.NoError(t, SeedData(db))

	var user models.User
	require.NoError(t, db.First(&user, "login = ?", "user@example.com").Error)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))

	var provinces int64
	db.Model(&models.Province{}).Count(&provinces)
	assert.Equal(t, int64(6), provinces)

	// Seeding twice must not duplicate anything.
	require.NoError(t, SeedData(db))
	var again int64
	db.Model(&models.Province{}).Count(&again)
	assert.Equal(t, provinces, again)

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.Equal(t, int64(1), users)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, logLevel("SILENT"))
	assert.Equal(t, logger.Warn, logLevel("unknown"))
	assert.Equal(t, logger.Info, logLevel("info"))
}
