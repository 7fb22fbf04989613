package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"bgcatalog/backend/internal/models"
)

// TaxonomyCommand is the input for creating a category or a mechanic.
type TaxonomyCommand struct {
	Name        string
	Description *string
}

// TaxonomyRepository manages the category and mechanic dictionaries.
type TaxonomyRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewTaxonomyRepository creates a TaxonomyRepository.
func NewTaxonomyRepository(db *gorm.DB, log zerolog.Logger) *TaxonomyRepository {
	return &TaxonomyRepository{db: db, log: log}
}

// ListCategories returns every category ordered by name.
func (r *TaxonomyRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		r.log.Error().Err(err).Msg("Error fetching categories")
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory inserts a category. A duplicate name yields ErrConflict.
func (r *TaxonomyRepository) CreateCategory(ctx context.Context, cmd TaxonomyCommand) (*models.Category, error) {
	category := models.Category{Name: cmd.Name, Description: cmd.Description}
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		err = translate(err)
		r.logError(err, "Error creating category")
		return nil, fmt.Errorf("create category %q: %w", cmd.Name, err)
	}
	return &category, nil
}

// ListMechanics returns every mechanic ordered by name.
func (r *TaxonomyRepository) ListMechanics(ctx context.Context) ([]models.Mechanic, error) {
	mechanics := []models.Mechanic{}
	if err := r.db.WithContext(ctx).Order("name").Find(&mechanics).Error; err != nil {
		r.log.Error().Err(err).Msg("Error fetching mechanics")
		return nil, fmt.Errorf("list mechanics: %w", err)
	}
	return mechanics, nil
}

// CreateMechanic inserts a mechanic. A duplicate name yields ErrConflict.
func (r *TaxonomyRepository) CreateMechanic(ctx context.Context, cmd TaxonomyCommand) (*models.Mechanic, error) {
	mechanic := models.Mechanic{Name: cmd.Name, Description: cmd.Description}
	if err := r.db.WithContext(ctx).Create(&mechanic).Error; err != nil {
		err = translate(err)
		r.logError(err, "Error creating mechanic")
		return nil, fmt.Errorf("create mechanic %q: %w", cmd.Name, err)
	}
	return &mechanic, nil
}

func (r *TaxonomyRepository) logError(err error, msg string) {
	if IsDomainError(err) {
		r.log.Debug().Err(err).Msg(msg)
		return
	}
	r.log.Error().Err(err).Msg(msg)
}
