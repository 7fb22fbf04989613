package handler

import (
	"context"

	"github.com/google/uuid"

	"bgcatalog/backend/internal/models"
	"bgcatalog/backend/internal/repository"
)

// GameStore is the data access the game handlers need.
type GameStore interface {
	List(ctx context.Context, f repository.GameFilters) ([]models.Game, int64, error)
	GetByID(ctx context.Context, id uint) (*models.Game, error)
	Create(ctx context.Context, callerID uuid.UUID, cmd repository.GameCommand) (*models.Game, error)
	Update(ctx context.Context, id uint, callerID uuid.UUID, cmd repository.GameCommand) (*models.Game, error)
	Delete(ctx context.Context, id uint, callerID uuid.UUID) error
}

// TaxonomyStore reads and creates categories and mechanics.
type TaxonomyStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, cmd repository.TaxonomyCommand) (*models.Category, error)
	ListMechanics(ctx context.Context) ([]models.Mechanic, error)
	CreateMechanic(ctx context.Context, cmd repository.TaxonomyCommand) (*models.Mechanic, error)
}

// CollectionStore manages saved games.
type CollectionStore interface {
	List(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.Collection, int64, error)
	Add(ctx context.Context, userID uuid.UUID, gameID uint) (*models.Collection, error)
	Remove(ctx context.Context, userID uuid.UUID, collectionID uint) error
}

// RatingStore manages game ratings.
type RatingStore interface {
	ListForGame(ctx context.Context, gameID uint, page, limit int) ([]models.GameRating, int64, error)
	Create(ctx context.Context, gameID uint, userID uuid.UUID, cmd repository.RatingCommand) (*models.GameRating, error)
	Update(ctx context.Context, gameID uint, userID uuid.UUID, cmd repository.RatingCommand) (*models.GameRating, error)
}

// RecommendationStore generates and lists recommendations.
type RecommendationStore interface {
	List(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.Recommendation, int64, error)
	Generate(ctx context.Context, userID uuid.UUID, count int) ([]string, error)
}

// UserStore reads accounts.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

var (
	_ GameStore           = (*repository.GameRepository)(nil)
	_ TaxonomyStore       = (*repository.TaxonomyRepository)(nil)
	_ CollectionStore     = (*repository.CollectionRepository)(nil)
	_ RatingStore         = (*repository.RatingRepository)(nil)
	_ RecommendationStore = (*repository.RecommendationRepository)(nil)
	_ UserStore           = (*repository.UserRepository)(nil)
)
