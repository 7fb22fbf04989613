package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bgcatalog/backend/internal/identity"
)

// Audit operations.
const (
	AuditInsert = "INSERT"
	AuditUpdate = "UPDATE"
	AuditDelete = "DELETE"
)

// AuditLog is an append-only record of a change to an audited table.
type AuditLog struct {
	ID          uint           `gorm:"primaryKey"`
	Table       string         `gorm:"column:table_name;size:100;not null;index"`
	RecordID    uint           `gorm:"not null;index"`
	Operation   string         `gorm:"size:10;not null"`
	ChangedData datatypes.JSON `gorm:"type:jsonb"`
	UserID      *uuid.UUID     `gorm:"type:uuid"`
	ChangedAt   time.Time      `gorm:"autoCreateTime"`
}

// recordAudit appends an audit row in the same transaction as the change.
// The acting user comes from the statement context when the request carried one.
func recordAudit(tx *gorm.DB, table string, recordID uint, op string, data map[string]any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode audit data: %w", err)
	}

	entry := AuditLog{
		Table:       table,
		RecordID:    recordID,
		Operation:   op,
		ChangedData: datatypes.JSON(payload),
	}
	if userID, ok := identity.Caller(tx.Statement.Context); ok {
		entry.UserID = &userID
	}

	if err := tx.Session(&gorm.Session{NewDB: true}).Create(&entry).Error; err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}
