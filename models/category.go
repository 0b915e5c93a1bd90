package models

import "time"

// TaskCategory and RiskCategory are small reference tables seeded from the
// catalog's closed code sets. The materializer resolves codes to ids once per
// run; an unresolvable code skips that single task, never the batch.
type TaskCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
}

func (TaskCategory) TableName() string {
	return "task_categories"
}

type RiskCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
}

func (RiskCategory) TableName() string {
	return "risk_categories"
}
