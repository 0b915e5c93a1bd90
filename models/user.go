package models

import "time"

type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Email             string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FullName          string    `gorm:"size:100;not null" json:"full_name"`
	Password          string    `gorm:"size:255;not null" json:"-"`
	TotalPointsEarned int       `gorm:"not null;default:0" json:"total_points_earned"`
	CurrentTier       string    `gorm:"size:20;not null;default:'Starter'" json:"current_tier"`
	Status            string    `gorm:"size:20;not null;default:'Active'" json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}
