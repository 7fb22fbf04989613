package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Game represents a board game in the catalog.
type Game struct {
	ID         uint      `gorm:"primaryKey"`
	Title      string    `gorm:"size:255;not null;index"`
	Publisher  *string   `gorm:"size:255"`
	MinPlayers int       `gorm:"not null"`
	MaxPlayers int       `gorm:"not null"`
	PlayTime   *int      // minutes
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"` // owner
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Categories []Category `gorm:"many2many:game_categories;"`
	Mechanics  []Mechanic `gorm:"many2many:game_mechanics;"`
}

// GameCategory is the join row between a game and a category.
type GameCategory struct {
	GameID     uint `gorm:"primaryKey"`
	CategoryID uint `gorm:"primaryKey"`
}

// GameMechanic is the join row between a game and a mechanic.
type GameMechanic struct {
	GameID     uint `gorm:"primaryKey"`
	MechanicID uint `gorm:"primaryKey"`
}

// CategoryIDs returns the ids of the loaded categories.
func (g *Game) CategoryIDs() []uint {
	ids := make([]uint, 0, len(g.Categories))
	for _, c := range g.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// MechanicIDs returns the ids of the loaded mechanics.
func (g *Game) MechanicIDs() []uint {
	ids := make([]uint, 0, len(g.Mechanics))
	for _, m := range g.Mechanics {
		ids = append(ids, m.ID)
	}
	return ids
}

func (g *Game) AfterCreate(tx *gorm.DB) error {
	return recordAudit(tx, "games", g.ID, AuditInsert, g.auditSnapshot())
}

func (g *Game) AfterUpdate(tx *gorm.DB) error {
	return recordAudit(tx, "games", g.ID, AuditUpdate, g.auditSnapshot())
}

func (g *Game) AfterDelete(tx *gorm.DB) error {
	return recordAudit(tx, "games", g.ID, AuditDelete, g.auditSnapshot())
}

func (g *Game) auditSnapshot() map[string]any {
	return map[string]any{
		"title":      g.Title,
		"publisher":  g.Publisher,
		"minPlayers": g.MinPlayers,
		"maxPlayers": g.MaxPlayers,
		"playTime":   g.PlayTime,
		"userId":     g.UserID,
	}
}
