package models

import "time"

type Business struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `gorm:"uniqueIndex;not null" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Timezone string `gorm:"size:50" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
