package models

import (
	"time"

	"github.com/google/uuid"
)

// GameRating is a user's score for a game. One rating per (user, game) is
// expected but not enforced by the table.
type GameRating struct {
	ID        uint      `gorm:"primaryKey"`
	GameID    uint      `gorm:"not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 10"`
	Comment   *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}
