package models

import (
	"time"

	"github.com/google/uuid"
)

type RefreshToken struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// NewRefreshToken builds an unsaved refresh token with an opaque uuid id.
func NewRefreshToken(userID uint, ttlDays int) *RefreshToken {
	return &RefreshToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Duration(ttlDays) * 24 * time.Hour),
		CreatedAt: time.Now(),
	}
}
