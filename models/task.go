package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/shashank-padala/insurus-sub000/catalog"
)

// Task statuses.
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskVerified   = "verified"
	TaskRejected   = "rejected"
	TaskCompleted  = "completed"
)

type Task struct {
	ID                 uint                     `gorm:"primaryKey" json:"id"`
	ChecklistID        uint                     `gorm:"not null;index" json:"checklist_id"`
	TemplateCode       string                   `gorm:"size:100" json:"template_code,omitempty"`
	Name               string                   `gorm:"size:255;not null" json:"name"`
	Description        string                   `gorm:"type:text" json:"description"`
	CategoryID         uint                     `gorm:"not null" json:"category_id"`
	RiskCategoryID     uint                     `gorm:"not null" json:"risk_category_id"`
	BasePointsValue    int                      `gorm:"not null" json:"base_points_value"`
	Frequency          catalog.Frequency        `gorm:"size:20;not null" json:"frequency"`
	VerificationType   catalog.VerificationType `gorm:"size:20;not null" json:"verification_type"`
	Status             string                   `gorm:"size:20;not null;default:'pending'" json:"status"`
	DueDate            time.Time                `gorm:"not null" json:"due_date"`
	EvidenceURLs       datatypes.JSON           `gorm:"type:json" json:"evidence_urls,omitempty"`
	VerificationResult datatypes.JSON           `gorm:"type:json" json:"verification_result,omitempty"`
	PointsEarned       int                      `gorm:"not null;default:0" json:"points_earned"`
	VerifiedAt         *time.Time               `json:"verified_at,omitempty"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"-"`

	Checklist TaskChecklist `gorm:"foreignKey:ChecklistID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Task) TableName() string {
	return "tasks"
}
