package models

import (
	"time"

	"gorm.io/datatypes"
)

// Checklist statuses.
const (
	ChecklistPending    = "pending"
	ChecklistInProgress = "in_progress"
	ChecklistCompleted  = "completed"
)

// TaskChecklist groups a property's scheduled tasks for one calendar month.
// ChecklistMonth is always the first of the month; the composite unique index
// is what makes resolve-or-create safe under concurrent registration.
type TaskChecklist struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	PropertyID     uint           `gorm:"not null;uniqueIndex:idx_property_month" json:"property_id"`
	ChecklistMonth time.Time      `gorm:"not null;uniqueIndex:idx_property_month" json:"checklist_month"`
	Status         string         `gorm:"size:20;not null;default:'pending'" json:"status"`
	DueDate        time.Time      `gorm:"not null" json:"due_date"`
	GenerationMeta datatypes.JSON `gorm:"type:json" json:"generation_meta,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"-"`

	Property Property `gorm:"foreignKey:PropertyID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (TaskChecklist) TableName() string {
	return "task_checklists"
}
