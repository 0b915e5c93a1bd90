package models

import "time"

// RevokedToken is the DB fallback for the access-token jti blacklist when
// Redis is not configured. Rows are tiny and expire with the tokens they
// shadow; no cleanup job is required for correctness.
type RevokedToken struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	RevokedAt time.Time `json:"revoked_at"`
}

func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
