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

// RatingCommand is the input for rating a game.
type RatingCommand struct {
	Rating  int
	Comment *string
}

// RatingRepository manages users' ratings of games.
type RatingRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewRatingRepository creates a RatingRepository.
func NewRatingRepository(db *gorm.DB, log zerolog.Logger) *RatingRepository {
	return &RatingRepository{db: db, log: log}
}

// ListForGame returns one page of a game's ratings, newest first.
// It returns ErrNotFound when the game does not exist.
func (r *RatingRepository) ListForGame(ctx context.Context, gameID uint, page, limit int) ([]models.GameRating, int64, error) {
	if err := requireGame(r.db.WithContext(ctx), gameID); err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.log.Error().Err(err).Uint("game_id", gameID).Msg("Error fetching ratings")
		}
		return nil, 0, err
	}

	filtered := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.GameRating{}).Where("game_id = ?", gameID)
	}
	shape := func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC").Order("id DESC")
	}

	ratings, total, err := paginate[models.GameRating](filtered, page, limit, shape)
	if err != nil {
		r.log.Error().Err(err).Uint("game_id", gameID).Msg("Error fetching ratings")
		return nil, 0, err
	}
	return ratings, total, nil
}

// Create stores the user's rating of a game. It returns ErrNotFound for an
// unknown game and ErrConflict when the user already rated it.
func (r *RatingRepository) Create(ctx context.Context, gameID uint, userID uuid.UUID, cmd RatingCommand) (*models.GameRating, error) {
	rating := models.GameRating{
		GameID:  gameID,
		UserID:  userID,
		Rating:  cmd.Rating,
		Comment: cmd.Comment,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireGame(tx, gameID); err != nil {
			return err
		}

		var existing int64
		err := tx.Model(&models.GameRating{}).
			Where("game_id = ? AND user_id = ?", gameID, userID).
			Count(&existing).Error
		if err != nil {
			return fmt.Errorf("check rating: %w", err)
		}
		if existing > 0 {
			return ErrConflict
		}

		if err := tx.Create(&rating).Error; err != nil {
			return fmt.Errorf("insert rating: %w", err)
		}
		return nil
	})
	if err != nil {
		err = translate(err)
		if !IsDomainError(err) {
			r.log.Error().Err(err).Uint("game_id", gameID).Msg("Error rating game")
		}
		return nil, err
	}
	return &rating, nil
}

// Update changes the user's most recent rating of a game. It returns
// ErrNotFound when the user has not rated the game.
func (r *RatingRepository) Update(ctx context.Context, gameID uint, userID uuid.UUID, cmd RatingCommand) (*models.GameRating, error) {
	var rating models.GameRating

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("game_id = ? AND user_id = ?", gameID, userID).
			Order("created_at DESC").
			First(&rating).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("find rating: %w", err)
		}

		rating.Rating = cmd.Rating
		rating.Comment = cmd.Comment
		err = tx.Model(&rating).Updates(map[string]any{
			"rating":  cmd.Rating,
			"comment": cmd.Comment,
		}).Error
		if err != nil {
			return fmt.Errorf("update rating %d: %w", rating.ID, err)
		}
		return nil
	})
	if err != nil {
		if !IsDomainError(err) {
			r.log.Error().Err(err).Uint("game_id", gameID).Msg("Error updating rating")
		}
		return nil, err
	}
	return &rating, nil
}
