package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bgcatalog/backend/internal/models"
)

// Connect opens the PostgreSQL connection pool.
func Connect(dsn string, log logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: log,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := setupJoinTables(db); err != nil {
		return nil, err
	}
	return db, nil
}

// setupJoinTables registers the explicit join models so that many2many
// preloading and migration use them.
func setupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Game{}, "Categories", &models.GameCategory{}); err != nil {
		return fmt.Errorf("setup game_categories: %w", err)
	}
	if err := db.SetupJoinTable(&models.Game{}, "Mechanics", &models.GameMechanic{}); err != nil {
		return fmt.Errorf("setup game_mechanics: %w", err)
	}
	return nil
}

// Migrate creates or updates the catalog tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Mechanic{},
		&models.Game{},
		&models.GameCategory{},
		&models.GameMechanic{},
		&models.Collection{},
		&models.GameRating{},
		&models.Recommendation{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
