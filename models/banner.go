package models

import "time"

type Banner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	ImageURL  string    `gorm:"size:512;not null" json:"image_url"`
	LinkURL   string    `gorm:"size:512" json:"link_url,omitempty"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (Banner) TableName() string {
	return "banners"
}
