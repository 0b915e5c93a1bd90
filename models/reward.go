package models

import "time"

// Reward is created exactly once per successfully verified task. The
// multiplier and bonus columns exist in the schema but the active award path
// writes zeros; only base points × 10 is applied.
type Reward struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"not null;index" json:"user_id"`
	TaskID              uint      `gorm:"not null;uniqueIndex" json:"task_id"`
	PointsEarned        int       `gorm:"not null" json:"points_earned"`
	BasePoints          int       `gorm:"not null" json:"base_points"`
	FrequencyMultiplier float64   `gorm:"not null;default:0" json:"frequency_multiplier"`
	VerificationBonus   int       `gorm:"not null;default:0" json:"verification_bonus"`
	StreakBonus         int       `gorm:"not null;default:0" json:"streak_bonus"`
	EarlyBonus          int       `gorm:"not null;default:0" json:"early_bonus"`
	CreatedAt           time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Task Task `gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Reward) TableName() string {
	return "rewards"
}
