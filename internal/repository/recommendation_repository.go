package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bgcatalog/backend/internal/models"
)

// RecommendationInput is what a recommendation was computed from. It is
// stored verbatim in recommendations.input_data.
type RecommendationInput struct {
	CollectionGameIDs []uint `json:"collectionGameIds"`
	CategoryIDs       []uint `json:"categoryIds"`
	MechanicIDs       []uint `json:"mechanicIds"`
}

// RecommendationRepository generates and stores game suggestions.
type RecommendationRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewRecommendationRepository creates a RecommendationRepository.
func NewRecommendationRepository(db *gorm.DB, log zerolog.Logger) *RecommendationRepository {
	return &RecommendationRepository{db: db, log: log}
}

// List returns one page of the user's past recommendations, newest first.
func (r *RecommendationRepository) List(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.Recommendation, int64, error) {
	filtered := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Recommendation{}).Where("user_id = ?", userID)
	}
	shape := func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC").Order("id DESC")
	}

	items, total, err := paginate[models.Recommendation](filtered, page, limit, shape)
	if err != nil {
		r.log.Error().Err(err).Str("user_id", userID.String()).Msg("Error fetching recommendations")
		return nil, 0, err
	}
	return items, total, nil
}

type recommendationCandidate struct {
	ID    uint
	Title string
	Score int64
}

// Generate suggests up to count games the user has not saved yet, ranked by
// how many categories and mechanics they share with the user's collection.
// The input and the suggested titles are stored as a new recommendation.
func (r *RecommendationRepository) Generate(ctx context.Context, userID uuid.UUID, count int) ([]string, error) {
	titles := []string{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		input, err := collectRecommendationInput(tx, userID)
		if err != nil {
			return err
		}

		query := tx.Table("games").
			Select("games.id, games.title, "+
				"(SELECT COUNT(*) FROM game_categories gc WHERE gc.game_id = games.id AND gc.category_id IN ?) + "+
				"(SELECT COUNT(*) FROM game_mechanics gm WHERE gm.game_id = games.id AND gm.mechanic_id IN ?) AS score",
				input.CategoryIDs, input.MechanicIDs)
		if len(input.CollectionGameIDs) > 0 {
			query = query.Where("games.id NOT IN ?", input.CollectionGameIDs)
		}

		var candidates []recommendationCandidate
		err = query.Order("score DESC").Order("games.title ASC").Limit(count).Scan(&candidates).Error
		if err != nil {
			return fmt.Errorf("rank games: %w", err)
		}
		for _, c := range candidates {
			titles = append(titles, c.Title)
		}

		inputJSON, err := json.Marshal(input.normalized())
		if err != nil {
			return fmt.Errorf("encode recommendation input: %w", err)
		}
		titlesJSON, err := json.Marshal(titles)
		if err != nil {
			return fmt.Errorf("encode recommendation: %w", err)
		}
		text := string(titlesJSON)

		rec := models.Recommendation{
			UserID:    userID,
			InputData: datatypes.JSON(inputJSON),
			Text:      &text,
		}
		if err := tx.Create(&rec).Error; err != nil {
			return fmt.Errorf("insert recommendation: %w", err)
		}
		return nil
	})
	if err != nil {
		r.log.Error().Err(err).Str("user_id", userID.String()).Msg("Error generating recommendations")
		return nil, err
	}
	return titles, nil
}

func (in RecommendationInput) normalized() RecommendationInput {
	if in.CollectionGameIDs == nil {
		in.CollectionGameIDs = []uint{}
	}
	if in.CategoryIDs == nil {
		in.CategoryIDs = []uint{}
	}
	if in.MechanicIDs == nil {
		in.MechanicIDs = []uint{}
	}
	return in
}

func collectRecommendationInput(tx *gorm.DB, userID uuid.UUID) (RecommendationInput, error) {
	input := RecommendationInput{
		CollectionGameIDs: []uint{},
		CategoryIDs:       []uint{},
		MechanicIDs:       []uint{},
	}

	err := tx.Model(&models.Collection{}).
		Where("user_id = ?", userID).
		Distinct().
		Order("game_id").
		Pluck("game_id", &input.CollectionGameIDs).Error
	if err != nil {
		return input, fmt.Errorf("load collection: %w", err)
	}
	if len(input.CollectionGameIDs) == 0 {
		return input, nil
	}

	err = tx.Model(&models.GameCategory{}).
		Where("game_id IN ?", input.CollectionGameIDs).
		Distinct().
		Order("category_id").
		Pluck("category_id", &input.CategoryIDs).Error
	if err != nil {
		return input, fmt.Errorf("load collection categories: %w", err)
	}

	err = tx.Model(&models.GameMechanic{}).
		Where("game_id IN ?", input.CollectionGameIDs).
		Distinct().
		Order("mechanic_id").
		Pluck("mechanic_id", &input.MechanicIDs).Error
	if err != nil {
		return input, fmt.Errorf("load collection mechanics: %w", err)
	}
	return input, nil
}

// ParseTitles decodes the stored title list of a recommendation.
func ParseTitles(rec models.Recommendation) []string {
	titles := []string{}
	if rec.Text == nil {
		return titles
	}
	if err := json.Unmarshal([]byte(*rec.Text), &titles); err != nil {
		return []string{*rec.Text}
	}
	return titles
}
