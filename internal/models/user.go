package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account managed by the identity provider. The API only reads it.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"size:255;unique;not null"`
	Username     string    `gorm:"size:255;unique;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
