package models

import (
	"time"

	"gorm.io/datatypes"
)

// Blockchain record statuses.
const (
	BlockchainConfirmed = "confirmed"
	BlockchainFailed    = "failed"
)

// BlockchainRecord stores the placeholder transaction written after a
// verification is awarded. It is decorative: a failed row never reverts the
// award that produced it.
type BlockchainRecord struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	TaskID     uint           `gorm:"not null;index" json:"task_id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	PropertyID uint           `gorm:"not null;index" json:"property_id"`
	TxHash     string         `gorm:"size:80" json:"tx_hash"`
	Status     string         `gorm:"size:20;not null" json:"status"`
	Payload    datatypes.JSON `gorm:"type:json" json:"payload,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (BlockchainRecord) TableName() string {
	return "blockchain_records"
}
