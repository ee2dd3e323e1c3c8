package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRecord holds one mark per staff member per calendar day. Marking
// the same day again replaces the earlier record (upsert on the composite
// unique index), it never appends a duplicate.
type AttendanceRecord struct {
	Id      string `json:"id" gorm:"primaryKey"`
	StaffId string `json:"staff_id" gorm:"index:idx_attendance_staff_date,unique,priority:1;not null"`
	Staff   *Staff `json:"staff,omitempty" gorm:"foreignKey:StaffId;references:Id"`

	// Calendar date, YYYY-MM-DD.
	Date string `json:"date" gorm:"index:idx_attendance_staff_date,unique,priority:2;not null"`

	// present | absent | half_day
	Status string `json:"status" gorm:"not null"`
	Notes  string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

func (AttendanceRecord) TableName() string { return "attendance" }

func (a *AttendanceRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if a.Id == "" {
		a.Id = uuid.NewString()
	}
	return
}
