package database

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"immat-api/config"
	"immat-api/models"
)

func Initialize(cfg *config.Config) (*gorm.DB, error) {
	return Open(mysql.Open(cfg.DatabaseURL), cfg)
}

// Open connects through the given dialector and applies the pool settings,
// so every handler shares one pool.
func Open(dialector gorm.Dialector, cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logLevel(cfg.DBLogLevel)),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	if cfg.DBMaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	}
	if cfg.DBMaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}
	if cfg.DBConnLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.DBConnLifetime)
	}

	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func logLevel(name string) logger.LogLevel {
	switch strings.ToLower(name) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Motorcycle{},
		&models.User{},
		&models.Province{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// SeedData populates an empty database with the default operator account
// and a few reference rows for development.
func SeedData(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}

	if userCount == 0 {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		user := models.User{
			Nom:      "admin",
			Login:    "user@example.com",
			Password: string(hashedPassword),
			Droit:    "admin",
		}
		if err := db.Create(&user).Error; err != nil {
			fmt.Printf("Warning: Could not create seed user %s: %v\n", user.Login, err)
		}
	}

	var provinceCount int64
	if err := db.Model(&models.Province{}).Count(&provinceCount).Error; err != nil {
		return fmt.Errorf("failed to count provinces: %w", err)
	}
	if provinceCount > 0 {
		fmt.Println("Reference data already present, skipping seed")
		return nil
	}

	seed := map[string][]string{
		"Casablanca": {"Casablanca", "Mohammedia"},
		"Rabat":      {"Rabat", "Salé", "Témara"},
		"Marrakech":  {"Marrakech"},
	}

	var rows []models.Province
	for province, cities := range seed {
		for _, city := range cities {
			p, v := province, city
			rows = append(rows, models.Province{Province: &p, Ville: &v})
		}
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to seed provinces: %w", err)
	}

	fmt.Println("Database seeded with reference data")
	return nil
}
