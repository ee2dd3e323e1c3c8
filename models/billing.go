package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Billing is the invoice derived from exactly one job card. The unique index
// on JobCardId backs the one-billing-per-job-card invariant at the storage
// layer, so two racing creates cannot both commit.
type Billing struct {
	Id         string   `json:"id" gorm:"primaryKey"`
	JobCardId  string   `json:"job_card_id" gorm:"uniqueIndex;not null"`
	JobCard    *JobCard `json:"job_card,omitempty" gorm:"foreignKey:JobCardId;references:Id"`
	BillNumber string   `json:"bill_number" gorm:"unique;not null"`

	JobCardTotal   float64 `json:"job_card_total" gorm:"type:numeric(12,2)"`
	InventoryTotal float64 `json:"inventory_total" gorm:"type:numeric(12,2)"`
	// Internal bookkeeping only; never part of FinalAmount.
	ExpensesTotal float64 `json:"expenses_total" gorm:"type:numeric(12,2)"`
	Discount      float64 `json:"discount" gorm:"type:numeric(12,2)"`
	FinalAmount   float64 `json:"final_amount" gorm:"type:numeric(12,2)"`

	// pending | partial | paid
	PaymentStatus string `json:"payment_status" gorm:"index"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`

	Items    []BillingItem `json:"items" gorm:"foreignKey:BillingId;constraint:OnDelete:CASCADE"`
	Expenses []Expense     `json:"expenses" gorm:"foreignKey:BillingId;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BillingItem snapshots the part name and price at billing time; the
// inventory reference may be nil for ad-hoc line items.
type BillingItem struct {
	Id          string  `json:"id" gorm:"primaryKey"`
	BillingId   string  `json:"-" gorm:"index;not null"`
	InventoryId *string `json:"inventory_id"`
	ItemName    string  `json:"item_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price" gorm:"type:numeric(12,2)"`
	TotalPrice  float64 `json:"total_price" gorm:"type:numeric(12,2)"`

	CreatedAt time.Time `json:"created_at"`
}

// Expense is an internal cost attached to a bill; excluded from the
// customer-facing total.
type Expense struct {
	Id          string  `json:"id" gorm:"primaryKey"`
	BillingId   string  `json:"-" gorm:"index;not null"`
	ExpenseName string  `json:"expense_name"`
	Amount      float64 `json:"amount" gorm:"type:numeric(12,2)"`
	Notes       string  `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

func (b *Billing) BeforeCreate(tx *gorm.DB) (err error) {
	if b.Id == "" {
		b.Id = uuid.NewString()
	}
	return
}

func (item *BillingItem) BeforeCreate(tx *gorm.DB) (err error) {
	if item.Id == "" {
		item.Id = uuid.NewString()
	}
	return
}

func (e *Expense) BeforeCreate(tx *gorm.DB) (err error) {
	if e.Id == "" {
		e.Id = uuid.NewString()
	}
	return
}
