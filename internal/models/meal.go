package models

import "time"

type Meal struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"not null;index" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	Time        string    `gorm:"not null" json:"time"`
	OnDiet      bool      `gorm:"not null" json:"on_diet"`
	Calories    *int      `json:"calories"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
