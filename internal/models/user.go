package models

import "time"

const (
	GoalLoseWeight     = "lose weight"
	GoalMaintainWeight = "maintain weight"
	GoalGainWeight     = "gain weight"
)

// Goals lists the accepted values for User.Goal.
func Goals() []string {
	return []string{GoalLoseWeight, GoalMaintainWeight, GoalGainWeight}
}

func IsValidGoal(goal string) bool {
	for _, candidate := range Goals() {
		if goal == candidate {
			return true
		}
	}
	return false
}

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	FirstName    string    `gorm:"not null" json:"first_name"`
	LastName     string    `gorm:"not null" json:"last_name"`
	PhotoURL     *string   `gorm:"column:photo_url" json:"photo_url"`
	Weight       *float64  `json:"weight"`
	Height       *float64  `json:"height"`
	Goal         *string   `json:"goal"`
	SessionToken *string   `gorm:"column:session_token" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
