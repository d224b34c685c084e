package models

import "time"

// MessageCategories are the only titles a customer message may carry.
var MessageCategories = []string{
	"Rescheduling an Appointment",
	"Canceling an Appointment",
	"Questions About Services",
	"Payment and Billing Issues",
	"Other Inquiries",
}

func IsMessageCategory(title string) bool {
	for _, c := range MessageCategories {
		if c == title {
			return true
		}
	}
	return false
}

type Message struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SenderID uint `gorm:"index;not null" json:"sender_id"`
	Sender   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	BusinessID uint     `gorm:"index;not null" json:"business_id"`
	Business   Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Title   string `gorm:"size:50;not null" json:"title"`
	Content string `gorm:"size:1000;not null" json:"content"`
	Read    bool   `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
