package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bgcatalog/backend/internal/models"
)

// Sort keys and directions accepted by GameFilters.
const (
	SortByTitle     = "title"
	SortByCreatedAt = "createdAt"
	OrderAsc        = "asc"
	OrderDesc       = "desc"
)

// GameFilters narrows and orders a game listing.
type GameFilters struct {
	Page        int
	Limit       int
	Title       string
	MinPlayers  *int
	MaxPlayers  *int
	CategoryIDs []uint
	MechanicIDs []uint
	SortBy      string
	Order       string
}

// GameCommand is the validated input of a create or update.
type GameCommand struct {
	Title       string
	Publisher   *string
	MinPlayers  int
	MaxPlayers  int
	PlayTime    *int
	CategoryIDs []uint
	MechanicIDs []uint
}

// GameRepository reads and writes games together with their category and
// mechanic associations.
type GameRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewGameRepository creates a GameRepository.
func NewGameRepository(db *gorm.DB, log zerolog.Logger) *GameRepository {
	return &GameRepository{db: db, log: log}
}

// List returns one page of games matching f and the total number of matches.
func (r *GameRepository) List(ctx context.Context, f GameFilters) ([]models.Game, int64, error) {
	filtered := func() *gorm.DB {
		return applyGameFilters(r.db.WithContext(ctx).Model(&models.Game{}), f)
	}
	shape := func(db *gorm.DB) *gorm.DB {
		return db.
			Preload("Categories", orderByID("categories")).
			Preload("Mechanics", orderByID("mechanics")).
			Order(clause.OrderByColumn{
				Column: clause.Column{Table: "games", Name: sortColumn(f.SortBy)},
				Desc:   f.Order == OrderDesc,
			}).
			Order("games.id")
	}

	games, total, err := paginate[models.Game](filtered, f.Page, f.Limit, shape)
	if err != nil {
		r.log.Error().Err(err).Msg("Error fetching games")
		return nil, 0, err
	}
	return games, total, nil
}

func applyGameFilters(db *gorm.DB, f GameFilters) *gorm.DB {
	if f.Title != "" {
		db = db.Where("games.title ILIKE ?", "%"+f.Title+"%")
	}
	if f.MinPlayers != nil {
		db = db.Where("games.min_players >= ?", *f.MinPlayers)
	}
	if f.MaxPlayers != nil {
		db = db.Where("games.max_players <= ?", *f.MaxPlayers)
	}
	if len(f.CategoryIDs) > 0 {
		db = db.Where("EXISTS (SELECT 1 FROM game_categories gc WHERE gc.game_id = games.id AND gc.category_id IN ?)", f.CategoryIDs)
	}
	if len(f.MechanicIDs) > 0 {
		db = db.Where("EXISTS (SELECT 1 FROM game_mechanics gm WHERE gm.game_id = games.id AND gm.mechanic_id IN ?)", f.MechanicIDs)
	}
	return db
}

func sortColumn(sortBy string) string {
	if sortBy == SortByCreatedAt {
		return "created_at"
	}
	return "title"
}

// GetByID returns the game with its categories and mechanics loaded.
// It returns ErrNotFound when no game has the id.
func (r *GameRepository) GetByID(ctx context.Context, id uint) (*models.Game, error) {
	game, err := loadGame(r.db.WithContext(ctx), id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		r.log.Error().Err(err).Uint("game_id", id).Msg("Error fetching game")
	}
	return game, err
}

func loadGame(db *gorm.DB, id uint) (*models.Game, error) {
	var game models.Game
	err := db.
		Preload("Categories", orderByID("categories")).
		Preload("Mechanics", orderByID("mechanics")).
		First(&game, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load game %d: %w", id, err)
	}
	return &game, nil
}

// Create inserts a game owned by callerID together with its associations.
// All inserts share one transaction: on any failure nothing is persisted.
func (r *GameRepository) Create(ctx context.Context, callerID uuid.UUID, cmd GameCommand) (*models.Game, error) {
	game := models.Game{
		Title:      cmd.Title,
		Publisher:  cmd.Publisher,
		MinPlayers: cmd.MinPlayers,
		MaxPlayers: cmd.MaxPlayers,
		PlayTime:   cmd.PlayTime,
		UserID:     callerID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&game).Error; err != nil {
			return fmt.Errorf("insert game: %w", err)
		}
		return insertAssociations(tx, game.ID, cmd)
	})
	if err != nil {
		err = translate(err)
		r.logWriteError(err, "Error creating game", 0)
		return nil, err
	}

	return r.GetByID(ctx, game.ID)
}

// Update replaces the scalar fields and both association sets of a game owned
// by callerID. It returns ErrNotFound for a missing game and ErrForbidden when
// the game belongs to another user.
func (r *GameRepository) Update(ctx context.Context, id uint, callerID uuid.UUID, cmd GameCommand) (*models.Game, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		game, err := lockOwnedGame(tx, id, callerID)
		if err != nil {
			return err
		}

		game.Title = cmd.Title
		game.Publisher = cmd.Publisher
		game.MinPlayers = cmd.MinPlayers
		game.MaxPlayers = cmd.MaxPlayers
		game.PlayTime = cmd.PlayTime

		err = tx.Model(game).Updates(map[string]any{
			"title":       cmd.Title,
			"publisher":   cmd.Publisher,
			"min_players": cmd.MinPlayers,
			"max_players": cmd.MaxPlayers,
			"play_time":   cmd.PlayTime,
		}).Error
		if err != nil {
			return fmt.Errorf("update game: %w", err)
		}

		if err := deleteAssociations(tx, id); err != nil {
			return err
		}
		return insertAssociations(tx, id, cmd)
	})
	if err != nil {
		err = translate(err)
		r.logWriteError(err, "Error updating game", id)
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Delete removes a game owned by callerID and its association rows.
func (r *GameRepository) Delete(ctx context.Context, id uint, callerID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		game, err := lockOwnedGame(tx, id, callerID)
		if err != nil {
			return err
		}
		if err := deleteAssociations(tx, id); err != nil {
			return err
		}

		result := tx.Delete(game)
		if result.Error != nil {
			return fmt.Errorf("delete game: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		err = translate(err)
		r.logWriteError(err, "Error deleting game", id)
		return err
	}
	return nil
}

// lockOwnedGame loads the game row for update and checks its owner.
func lockOwnedGame(tx *gorm.DB, id uint, callerID uuid.UUID) (*models.Game, error) {
	var game models.Game
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&game, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("check game %d: %w", id, err)
	}
	if game.UserID != callerID {
		return nil, ErrForbidden
	}
	return &game, nil
}

func deleteAssociations(tx *gorm.DB, gameID uint) error {
	if err := tx.Where("game_id = ?", gameID).Delete(&models.GameCategory{}).Error; err != nil {
		return fmt.Errorf("delete game categories: %w", err)
	}
	if err := tx.Where("game_id = ?", gameID).Delete(&models.GameMechanic{}).Error; err != nil {
		return fmt.Errorf("delete game mechanics: %w", err)
	}
	return nil
}

func insertAssociations(tx *gorm.DB, gameID uint, cmd GameCommand) error {
	if ids := uniqueIDs(cmd.CategoryIDs); len(ids) > 0 {
		rows := make([]models.GameCategory, 0, len(ids))
		for _, categoryID := range ids {
			rows = append(rows, models.GameCategory{GameID: gameID, CategoryID: categoryID})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert game categories: %w", err)
		}
	}

	if ids := uniqueIDs(cmd.MechanicIDs); len(ids) > 0 {
		rows := make([]models.GameMechanic, 0, len(ids))
		for _, mechanicID := range ids {
			rows = append(rows, models.GameMechanic{GameID: gameID, MechanicID: mechanicID})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert game mechanics: %w", err)
		}
	}
	return nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (r *GameRepository) logWriteError(err error, msg string, gameID uint) {
	event := r.log.Error()
	if IsDomainError(err) {
		event = r.log.Debug()
	}
	if gameID != 0 {
		event = event.Uint("game_id", gameID)
	}
	event.Err(err).Msg(msg)
}
