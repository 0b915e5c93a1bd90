package models

import (
	"time"

	"gorm.io/datatypes"
)

// Verification is an append-only record of one adjudication attempt. A task
// that is resubmitted accumulates multiple rows.
type Verification struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	TaskID          uint           `gorm:"not null;index" json:"task_id"`
	EvidenceURLs    datatypes.JSON `gorm:"type:json" json:"evidence_urls"`
	AIAnalysis      string         `gorm:"type:text" json:"ai_analysis"`
	IsVerified      bool           `gorm:"not null" json:"is_verified"`
	Confidence      float64        `gorm:"not null" json:"confidence"`
	RejectionReason string         `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`

	Task Task `gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Verification) TableName() string {
	return "verifications"
}
