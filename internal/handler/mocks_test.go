package handler

import (
	"context"

	"github.com/google/uuid"

	"bgcatalog/backend/internal/models"
	"bgcatalog/backend/internal/repository"
)

type mockGameStore struct {
	calls       int
	listFunc    func(ctx context.Context, f repository.GameFilters) ([]models.Game, int64, error)
	getByIDFunc func(ctx context.Context, id uint) (*models.Game, error)
	createFunc  func(ctx context.Context, callerID uuid.UUID, cmd repository.GameCommand) (*models.Game, error)
	updateFunc  func(ctx context.Context, id uint, callerID uuid.UUID, cmd repository.GameCommand) (*models.Game, error)
	deleteFunc  func(ctx context.Context, id uint, callerID uuid.UUID) error
}

func (m *mockGameStore) List(ctx context.Context, f repository.GameFilters) ([]models.Game, int64, error) {
	m.calls++
	if m.listFunc != nil {
		return m.listFunc(ctx, f)
	}
	return []models.Game{}, 0, nil
}

func (m *mockGameStore) GetByID(ctx context.Context, id uint) (*models.Game, error) {
	m.calls++
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockGameStore) Create(ctx context.Context, callerID uuid.UUID, cmd repository.GameCommand) (*models.Game, error) {
	m.calls++
	if m.createFunc != nil {
		return m.createFunc(ctx, callerID, cmd)
	}
	return &models.Game{}, nil
}

func (m *mockGameStore) Update(ctx context.Context, id uint, callerID uuid.UUID, cmd repository.GameCommand) (*models.Game, error) {
	m.calls++
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, callerID, cmd)
	}
	return &models.Game{ID: id}, nil
}

func (m *mockGameStore) Delete(ctx context.Context, id uint, callerID uuid.UUID) error {
	m.calls++
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id, callerID)
	}
	return nil
}

type mockTaxonomyStore struct {
	calls              int
	listCategoriesFunc func(ctx context.Context) ([]models.Category, error)
	createCategoryFunc func(ctx context.Context, cmd repository.TaxonomyCommand) (*models.Category, error)
}

func (m *mockTaxonomyStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	m.calls++
	if m.listCategoriesFunc != nil {
		return m.listCategoriesFunc(ctx)
	}
	return []models.Category{}, nil
}

func (m *mockTaxonomyStore) CreateCategory(ctx context.Context, cmd repository.TaxonomyCommand) (*models.Category, error) {
	m.calls++
	if m.createCategoryFunc != nil {
		return m.createCategoryFunc(ctx, cmd)
	}
	return &models.Category{Name: cmd.Name, Description: cmd.Description}, nil
}

func (m *mockTaxonomyStore) ListMechanics(ctx context.Context) ([]models.Mechanic, error) {
	m.calls++
	return []models.Mechanic{{ID: 1, Name: "Deck Building"}}, nil
}

func (m *mockTaxonomyStore) CreateMechanic(ctx context.Context, cmd repository.TaxonomyCommand) (*models.Mechanic, error) {
	m.calls++
	return &models.Mechanic{ID: 2, Name: cmd.Name}, nil
}

type mockCollectionStore struct {
	calls      int
	listFunc   func(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.Collection, int64, error)
	addFunc    func(ctx context.Context, userID uuid.UUID, gameID uint) (*models.Collection, error)
	removeFunc func(ctx context.Context, userID uuid.UUID, collectionID uint) error
}

func (m *mockCollectionStore) List(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.Collection, int64, error) {
	m.calls++
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, page, limit)
	}
	return []models.Collection{}, 0, nil
}

func (m *mockCollectionStore) Add(ctx context.Context, userID uuid.UUID, gameID uint) (*models.Collection, error) {
	m.calls++
	if m.addFunc != nil {
		return m.addFunc(ctx, userID, gameID)
	}
	return &models.Collection{UserID: userID, GameID: gameID}, nil
}

func (m *mockCollectionStore) Remove(ctx context.Context, userID uuid.UUID, collectionID uint) error {
	m.calls++
	if m.removeFunc != nil {
		return m.removeFunc(ctx, userID, collectionID)
	}
	return nil
}

type mockRatingStore struct {
	calls      int
	listFunc   func(ctx context.Context, gameID uint, page, limit int) ([]models.GameRating, int64, error)
	createFunc func(ctx context.Context, gameID uint, userID uuid.UUID, cmd repository.RatingCommand) (*models.GameRating, error)
	updateFunc func(ctx context.Context, gameID uint, userID uuid.UUID, cmd repository.RatingCommand) (*models.GameRating, error)
}

func (m *mockRatingStore) ListForGame(ctx context.Context, gameID uint, page, limit int) ([]models.GameRating, int64, error) {
	m.calls++
	if m.listFunc != nil {
		return m.listFunc(ctx, gameID, page, limit)
	}
	return []models.GameRating{}, 0, nil
}

func (m *mockRatingStore) Create(ctx context.Context, gameID uint, userID uuid.UUID, cmd repository.RatingCommand) (*models.GameRating, error) {
	m.calls++
	if m.createFunc != nil {
		return m.createFunc(ctx, gameID, userID, cmd)
	}
	return &models.GameRating{GameID: gameID, UserID: userID, Rating: cmd.Rating, Comment: cmd.Comment}, nil
}

func (m *mockRatingStore) Update(ctx context.Context, gameID uint, userID uuid.UUID, cmd repository.RatingCommand) (*models.GameRating, error) {
	m.calls++
	if m.updateFunc != nil {
		return m.updateFunc(ctx, gameID, userID, cmd)
	}
	return &models.GameRating{GameID: gameID, UserID: userID, Rating: cmd.Rating}, nil
}

type mockRecommendationStore struct {
	calls        int
	listFunc     func(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.Recommendation, int64, error)
	generateFunc func(ctx context.Context, userID uuid.UUID, count int) ([]string, error)
}

func (m *mockRecommendationStore) List(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.Recommendation, int64, error) {
	m.calls++
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, page, limit)
	}
	return []models.Recommendation{}, 0, nil
}

func (m *mockRecommendationStore) Generate(ctx context.Context, userID uuid.UUID, count int) ([]string, error) {
	m.calls++
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, count)
	}
	return []string{}, nil
}

type mockUserStore struct {
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*models.User, error)
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
