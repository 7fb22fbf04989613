package database

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bgcatalog/backend/internal/models"
)

// SeedUser describes the account created by EnsureUser.
type SeedUser struct {
	ID       uuid.UUID
	Email    string
	Username string
	Password string
}

// EnsureUser creates the user if no row with its id exists yet.
func EnsureUser(db *gorm.DB, u SeedUser) (*models.User, error) {
	var existing models.User
	err := db.First(&existing, "id = ?", u.ID).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("look up user %s: %w", u.ID, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: string(hashedPassword),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user %s: %w", u.ID, err)
	}
	return &user, nil
}

// DefaultCategories are the categories a fresh catalog starts with.
var DefaultCategories = []string{
	"Abstract", "Cooperative", "Deduction", "Economic", "Family",
	"Party", "Strategy", "Thematic", "War",
}

// DefaultMechanics are the mechanics a fresh catalog starts with.
var DefaultMechanics = []string{
	"Area Control", "Deck Building", "Dice Rolling", "Drafting",
	"Hand Management", "Set Collection", "Tile Placement", "Worker Placement",
}

// SeedTaxonomy inserts the default categories and mechanics, skipping names
// that already exist.
func SeedTaxonomy(db *gorm.DB) error {
	categories := make([]models.Category, 0, len(DefaultCategories))
	for _, name := range DefaultCategories {
		categories = append(categories, models.Category{Name: name})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	mechanics := make([]models.Mechanic, 0, len(DefaultMechanics))
	for _, name := range DefaultMechanics {
		mechanics = append(mechanics, models.Mechanic{Name: name})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&mechanics).Error; err != nil {
		return fmt.Errorf("seed mechanics: %w", err)
	}
	return nil
}
