package models

import (
	"time"

	"github.com/shashank-padala/insurus-sub000/catalog"
)

// AdminTask records an ad-hoc task broadcast by an admin. The broadcast
// endpoint validates it against the same catalog rules as generated
// candidates, then appends it to the current-month checklist of every
// property.
type AdminTask struct {
	ID               uint                     `gorm:"primaryKey" json:"id"`
	AdminID          int64                    `gorm:"not null;index" json:"admin_id"`
	Name             string                   `gorm:"size:255;not null" json:"name"`
	Description      string                   `gorm:"type:text" json:"description"`
	Category         string                   `gorm:"size:50;not null" json:"category"`
	RiskCategory     string                   `gorm:"size:50;not null" json:"risk_category"`
	PointsValue      int                      `gorm:"not null" json:"points_value"`
	VerificationType catalog.VerificationType `gorm:"size:20;not null" json:"verification_type"`
	TasksCreated     int                      `gorm:"not null;default:0" json:"tasks_created"`
	CreatedAt        time.Time                `json:"created_at"`
}

func (AdminTask) TableName() string {
	return "admin_tasks"
}
