package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Staff struct {
	Id     string `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"not null"`
	Role   string `json:"role"`
	Mobile string `json:"mobile"`

	MonthlySalary float64 `json:"monthly_salary" gorm:"type:numeric(12,2)"`
	JoiningDate   string  `json:"joining_date"`

	// active | inactive
	Status string `json:"status" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Staff) BeforeCreate(tx *gorm.DB) (err error) {
	if s.Id == "" {
		s.Id = uuid.NewString()
	}
	return
}
