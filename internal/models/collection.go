package models

import (
	"time"

	"github.com/google/uuid"
)

// Collection is a game saved by a user.
type Collection struct {
	ID      uint      `gorm:"primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index"`
	GameID  uint      `gorm:"not null;index"`
	AddedAt time.Time `gorm:"autoCreateTime"`

	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}
