package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ModificationCreate = "create"
	ModificationUpdate = "update"
	ModificationDelete = "delete"
)

func IsValidModificationType(kind string) bool {
	switch kind {
	case ModificationCreate, ModificationUpdate, ModificationDelete:
		return true
	default:
		return false
	}
}

// MealModification is an append-only record of a client-side meal change.
// MealData keeps the meal payload as it was sent at the time of the change.
type MealModification struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	UserID    string         `gorm:"not null;index" json:"user_id"`
	MealID    string         `gorm:"not null" json:"meal_id"`
	Type      string         `gorm:"not null" json:"type"`
	MealData  datatypes.JSON `gorm:"not null" json:"meal_data"`
	CreatedAt time.Time      `json:"created_at"`
}
