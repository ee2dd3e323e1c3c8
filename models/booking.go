package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is a customer's request for a service slot. Walk-in job cards get a
// synthesized booking with a WI- number and preferred_time "Walk-in".
type Booking struct {
	Id            string `json:"id" gorm:"primaryKey"`
	BookingNumber string `json:"booking_number" gorm:"unique;not null"`

	CustomerName string `json:"customer_name" gorm:"not null"`
	Mobile       string `json:"mobile" gorm:"not null"`

	VehicleType   string `json:"vehicle_type"`
	VehicleBrand  string `json:"vehicle_brand"`
	VehicleModel  string `json:"vehicle_model"`
	VehicleNumber string `json:"vehicle_number"`

	ServiceType      string `json:"service_type"`
	OtherDescription string `json:"other_description"`

	// Calendar date (YYYY-MM-DD) and a free-form slot label.
	PreferredDate   string `json:"preferred_date"`
	PreferredTime   string `json:"preferred_time"`
	AdditionalNotes string `json:"additional_notes"`

	// pending | confirmed | completed
	Status string `json:"status" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if b.Id == "" {
		b.Id = uuid.NewString()
	}
	return
}
