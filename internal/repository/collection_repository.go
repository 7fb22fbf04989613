package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"bgcatalog/backend/internal/models"
)

// CollectionRepository manages the games users have saved.
type CollectionRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewCollectionRepository creates a CollectionRepository.
func NewCollectionRepository(db *gorm.DB, log zerolog.Logger) *CollectionRepository {
	return &CollectionRepository{db: db, log: log}
}

// List returns one page of the user's collection, newest first, with each
// game's categories and mechanics loaded.
func (r *CollectionRepository) List(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.Collection, int64, error) {
	filtered := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Collection{}).Where("user_id = ?", userID)
	}
	shape := func(db *gorm.DB) *gorm.DB {
		return db.
			Preload("Game.Categories", orderByID("categories")).
			Preload("Game.Mechanics", orderByID("mechanics")).
			Order("added_at DESC").
			Order("id DESC")
	}

	items, total, err := paginate[models.Collection](filtered, page, limit, shape)
	if err != nil {
		r.log.Error().Err(err).Str("user_id", userID.String()).Msg("Error fetching collection")
		return nil, 0, err
	}
	return items, total, nil
}

// Add saves a game to the user's collection. It returns ErrNotFound for an
// unknown game and ErrConflict when the game is already saved.
func (r *CollectionRepository) Add(ctx context.Context, userID uuid.UUID, gameID uint) (*models.Collection, error) {
	entry := models.Collection{UserID: userID, GameID: gameID}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireGame(tx, gameID); err != nil {
			return err
		}

		var existing int64
		err := tx.Model(&models.Collection{}).
			Where("user_id = ? AND game_id = ?", userID, gameID).
			Count(&existing).Error
		if err != nil {
			return fmt.Errorf("check collection: %w", err)
		}
		if existing > 0 {
			return ErrConflict
		}

		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("insert collection: %w", err)
		}
		return nil
	})
	if err != nil {
		err = translate(err)
		if !IsDomainError(err) {
			r.log.Error().Err(err).Uint("game_id", gameID).Msg("Error adding to collection")
		}
		return nil, err
	}
	return &entry, nil
}

// Remove deletes a collection entry owned by the user.
func (r *CollectionRepository) Remove(ctx context.Context, userID uuid.UUID, collectionID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry models.Collection
		if err := tx.First(&entry, collectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("check collection %d: %w", collectionID, err)
		}
		if entry.UserID != userID {
			return ErrForbidden
		}
		if err := tx.Delete(&entry).Error; err != nil {
			return fmt.Errorf("delete collection %d: %w", collectionID, err)
		}
		return nil
	})
	if err != nil && !IsDomainError(err) {
		r.log.Error().Err(err).Uint("collection_id", collectionID).Msg("Error removing from collection")
	}
	return err
}

// requireGame returns ErrNotFound unless the game exists.
func requireGame(tx *gorm.DB, gameID uint) error {
	var count int64
	if err := tx.Model(&models.Game{}).Where("id = ?", gameID).Count(&count).Error; err != nil {
		return fmt.Errorf("check game %d: %w", gameID, err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
