package models

import "time"

type Appointment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PublicID string `gorm:"size:36;uniqueIndex" json:"public_id"`

	BusinessID uint     `gorm:"index;not null" json:"business_id"`
	Business   Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Set when the booking came from an authenticated customer account.
	// Bookings taken over the phone by the business have no account link.
	CustomerID *uint `gorm:"index" json:"customer_id"`

	Date        time.Time `gorm:"type:date;not null" json:"date"`
	StartTime   string    `gorm:"size:8;not null" json:"start_time"`
	DurationMin int       `gorm:"not null" json:"duration"`

	// Seconds-of-day bounds of the booked interval. Kept alongside
	// start_time/duration so the exclusion constraint can range over them.
	StartSec int `gorm:"not null" json:"-"`
	EndSec   int `gorm:"not null" json:"-"`

	// Title and cost are snapshots of the service at booking time; they are
	// never re-joined to the live services table.
	Title string  `gorm:"size:100;not null" json:"title"`
	Cost  float64 `json:"cost"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`
	Notes         string `gorm:"size:1000" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
