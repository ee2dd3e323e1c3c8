package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Purchase is an immutable stock-in record; there are no update or delete
// paths, corrections are entered as new purchases.
type Purchase struct {
	Id          string         `json:"id" gorm:"primaryKey"`
	InventoryId string         `json:"inventory_id" gorm:"index;not null"`
	Inventory   *InventoryItem `json:"inventory,omitempty" gorm:"foreignKey:InventoryId;references:Id"`

	Quantity      int     `json:"quantity" gorm:"not null"`
	PurchasePrice float64 `json:"purchase_price" gorm:"type:numeric(12,2)"`
	Supplier      string  `json:"supplier"`
	PurchaseDate  string  `json:"purchase_date"`
	Notes         string  `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) (err error) {
	if p.Id == "" {
		p.Id = uuid.NewString()
	}
	return
}
