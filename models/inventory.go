package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryCategory struct {
	Id   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"unique;not null"`

	CreatedAt time.Time `json:"created_at"`
}

// InventoryItem tracks a part and its stock level. Stock only rises through
// purchases and only falls through billing consumption, clamped at zero.
type InventoryItem struct {
	Id         string             `json:"id" gorm:"primaryKey"`
	ItemName   string             `json:"item_name" gorm:"not null"`
	CategoryId *string            `json:"category_id"`
	Category   *InventoryCategory `json:"category,omitempty" gorm:"foreignKey:CategoryId;references:Id"`

	// "Two Wheeler" | "Four Wheeler" | "Both"
	VehicleCompatibility string `json:"vehicle_compatibility"`

	PurchasePrice float64 `json:"purchase_price" gorm:"type:numeric(12,2)"`
	SellingPrice  float64 `json:"selling_price" gorm:"type:numeric(12,2)"`

	QuantityInStock int `json:"quantity_in_stock"`
	MinStockAlert   int `json:"min_stock_alert"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LowStock reports whether the item has fallen to or below its alert level.
func (item *InventoryItem) LowStock() bool {
	return item.QuantityInStock <= item.MinStockAlert
}

func (cat *InventoryCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if cat.Id == "" {
		cat.Id = uuid.NewString()
	}
	return
}

func (item *InventoryItem) BeforeCreate(tx *gorm.DB) (err error) {
	if item.Id == "" {
		item.Id = uuid.NewString()
	}
	return
}
