package models

import (
	"time"

	"gorm.io/datatypes"
)

type Property struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         uint           `gorm:"not null;index" json:"user_id"`
	Address        string         `gorm:"size:255;not null" json:"address"`
	City           string         `gorm:"size:100;not null" json:"city"`
	State          string         `gorm:"size:100" json:"state"`
	ZipCode        string         `gorm:"size:20" json:"zip_code"`
	Country        string         `gorm:"size:100" json:"country"`
	PropertyType   string         `gorm:"size:50;not null" json:"property_type"`
	SafetyDevices  datatypes.JSON `gorm:"type:json" json:"safety_devices"`
	RiskAssessment datatypes.JSON `gorm:"type:json" json:"risk_assessment,omitempty"`
	// Percentage of this property's tasks marked verified or completed,
	// recomputed in full after every verification event.
	SafetyScore int       `gorm:"not null;default:0" json:"safety_score"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Property) TableName() string {
	return "properties"
}
