package models

import "time"

type Service struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"uniqueIndex:idx_services_business_name;not null" json:"business_id"`

	Name        string  `gorm:"size:100;uniqueIndex:idx_services_business_name;not null" json:"name"`
	DurationMin int     `json:"duration"`
	Price       float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
