package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// JobCard is the internal work order derived from a booking. At most one job
// card exists per booking; a billed card is immutable except through the
// billing-deletion reversal.
type JobCard struct {
	Id            string   `json:"id" gorm:"primaryKey"`
	BookingId     *string  `json:"booking_id" gorm:"uniqueIndex"`
	Booking       *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingId;references:Id"`
	JobCardNumber string   `json:"job_card_number" gorm:"unique;not null"`

	Categories datatypes.JSON `json:"categories"`

	Items []JobCardItem `json:"items" gorm:"foreignKey:JobCardId;constraint:OnDelete:CASCADE"`

	// Caller-supplied sum of item prices; the writer does not recompute it.
	TotalEstimatedAmount float64 `json:"total_estimated_amount" gorm:"type:numeric(12,2)"`

	// draft | finalized | billed
	Status string `json:"status" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type JobCardItem struct {
	Id                 string  `json:"id" gorm:"primaryKey"`
	JobCardId          string  `json:"-" gorm:"index;not null"`
	Category           string  `json:"category"`
	ProblemDescription string  `json:"problem_description"`
	EstimatedPrice     float64 `json:"estimated_price" gorm:"type:numeric(12,2)"`

	CreatedAt time.Time `json:"created_at"`
}

func (jc *JobCard) BeforeCreate(tx *gorm.DB) (err error) {
	if jc.Id == "" {
		jc.Id = uuid.NewString()
	}
	return
}

func (item *JobCardItem) BeforeCreate(tx *gorm.DB) (err error) {
	if item.Id == "" {
		item.Id = uuid.NewString()
	}
	return
}
