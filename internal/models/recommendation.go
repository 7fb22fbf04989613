package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Recommendation is a generated list of suggested games for a user.
// InputData records what the suggestion was computed from; Text holds the
// suggested titles as a JSON array.
type Recommendation struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	InputData datatypes.JSON `gorm:"type:jsonb;not null"`
	Text      *string        `gorm:"column:recommendation"`
	CreatedAt time.Time
}
