package db

import (
	"fmt"
	"log"

	"propfinance_app_go/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize opens the sqlite content store. WAL mode keeps public reads
// flowing while an import run writes.
func Initialize(dbPath string, environment string) error {
	logLevel := logger.Info
	if environment == "production" {
		logLevel = logger.Warn
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath+"?_journal_mode=WAL"), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to open content store: %w", err)
	}

	log.Println("Content store opened (WAL mode enabled)")
	return nil
}

// Migrate creates or updates the schema for the full entity set. Both the
// server and the import tool run it, so either can start against a fresh
// database file.
func Migrate() error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	err := DB.AutoMigrate(
		&models.County{},
		&models.Town{},
		&models.LocationService{},
		&models.Lead{},
		&models.CaseStudy{},
		&models.Guide{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Schema migrations completed")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
