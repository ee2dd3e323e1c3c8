package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"garage-backend/models"
	"garage-backend/utils"
)

// InventoryService is the stock ledger: purchases add, billing consumption
// subtracts with a floor at zero. Both mutations are single atomic UPDATEs so
// concurrent writers cannot lose an increment or drive stock negative.
type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

type InventoryItemInput struct {
	ItemName             string  `json:"item_name" validate:"required"`
	CategoryId           string  `json:"category_id"`
	VehicleCompatibility string  `json:"vehicle_compatibility"`
	PurchasePrice        float64 `json:"purchase_price"`
	SellingPrice         float64 `json:"selling_price"`
	QuantityInStock      int     `json:"quantity_in_stock" validate:"min=0"`
	MinStockAlert        int     `json:"min_stock_alert"`
}

type InventoryFilter struct {
	CategoryId string
	LowStock   bool
}

type PurchaseInput struct {
	InventoryId   string  `json:"inventory_id" validate:"required"`
	Quantity      int     `json:"quantity" validate:"required,gt=0"`
	PurchasePrice float64 `json:"purchase_price"`
	Supplier      string  `json:"supplier"`
	PurchaseDate  string  `json:"purchase_date"`
	Notes         string  `json:"notes"`
}

func (s *InventoryService) CreateCategory(name string) (*models.InventoryCategory, error) {
	category := models.InventoryCategory{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("create inventory category: %w", err)
	}
	return &category, nil
}

func (s *InventoryService) ListCategories() ([]models.InventoryCategory, error) {
	categories := []models.InventoryCategory{}
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list inventory categories: %w", err)
	}
	return categories, nil
}

func (s *InventoryService) CreateItem(in InventoryItemInput) (*models.InventoryItem, error) {
	compatibility := in.VehicleCompatibility
	if compatibility == "" {
		compatibility = "Both"
	}
	minAlert := in.MinStockAlert
	if minAlert == 0 {
		minAlert = 5
	}

	item := models.InventoryItem{
		ItemName:             in.ItemName,
		VehicleCompatibility: compatibility,
		PurchasePrice:        in.PurchasePrice,
		SellingPrice:         in.SellingPrice,
		QuantityInStock:      in.QuantityInStock,
		MinStockAlert:        minAlert,
	}
	if in.CategoryId != "" {
		item.CategoryId = &in.CategoryId
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create inventory item: %w", err)
	}
	return &item, nil
}

// UpdateItem is a full field replace, per the external surface.
func (s *InventoryService) UpdateItem(id string, in InventoryItemInput) (*models.InventoryItem, error) {
	if _, err := s.GetItem(id); err != nil {
		return nil, err
	}

	var categoryId *string
	if in.CategoryId != "" {
		categoryId = &in.CategoryId
	}
	updates := map[string]interface{}{
		"item_name":             in.ItemName,
		"category_id":           categoryId,
		"vehicle_compatibility": in.VehicleCompatibility,
		"purchase_price":        in.PurchasePrice,
		"selling_price":         in.SellingPrice,
		"quantity_in_stock":     in.QuantityInStock,
		"min_stock_alert":       in.MinStockAlert,
	}
	if err := s.db.Model(&models.InventoryItem{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update inventory item: %w", err)
	}
	return s.GetItem(id)
}

func (s *InventoryService) DeleteItem(id string) error {
	res := s.db.Delete(&models.InventoryItem{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete inventory item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *InventoryService) List(f InventoryFilter) ([]models.InventoryItem, error) {
	q := s.db.Model(&models.InventoryItem{}).Preload("Category").Order("item_name")
	if f.CategoryId != "" && f.CategoryId != "all" {
		q = q.Where("category_id = ?", f.CategoryId)
	}
	if f.LowStock {
		q = q.Where("quantity_in_stock <= min_stock_alert")
	}

	items := []models.InventoryItem{}
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return items, nil
}

func (s *InventoryService) GetItem(id string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.db.Preload("Category").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &item, nil
}

// RecordPurchase writes the purchase row and bumps the item's stock in one
// transaction; the increment is a single UPDATE expression, not a
// read-modify-write.
func (s *InventoryService) RecordPurchase(in PurchaseInput) (*models.Purchase, error) {
	if _, err := s.GetItem(in.InventoryId); err != nil {
		return nil, err
	}

	purchaseDate := in.PurchaseDate
	if purchaseDate == "" {
		purchaseDate = utils.Today()
	}

	purchase := models.Purchase{
		InventoryId:   in.InventoryId,
		Quantity:      in.Quantity,
		PurchasePrice: in.PurchasePrice,
		Supplier:      in.Supplier,
		PurchaseDate:  purchaseDate,
		Notes:         in.Notes,
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin: %w", tx.Error)
	}
	defer tx.Rollback()

	if err := tx.Create(&purchase).Error; err != nil {
		return nil, fmt.Errorf("create purchase: %w", err)
	}
	err := tx.Model(&models.InventoryItem{}).Where("id = ?", in.InventoryId).
		UpdateColumn("quantity_in_stock", gorm.Expr("quantity_in_stock + ?", in.Quantity)).Error
	if err != nil {
		return nil, fmt.Errorf("increment stock: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("commit purchase: %w", err)
	}
	return &purchase, nil
}

func (s *InventoryService) ListPurchases(inventoryId string) ([]models.Purchase, error) {
	q := s.db.Model(&models.Purchase{}).Preload("Inventory").Order("purchase_date DESC")
	if inventoryId != "" {
		q = q.Where("inventory_id = ?", inventoryId)
	}

	purchases := []models.Purchase{}
	if err := q.Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return purchases, nil
}

// ConsumeForBilling decrements stock, clamped at zero. Over-consumption
// silently truncates instead of erroring: billing is never blocked by a
// stock mismatch.
func (s *InventoryService) ConsumeForBilling(tx *gorm.DB, inventoryId string, quantity int) error {
	err := tx.Model(&models.InventoryItem{}).Where("id = ?", inventoryId).
		UpdateColumn("quantity_in_stock",
			gorm.Expr("CASE WHEN quantity_in_stock > ? THEN quantity_in_stock - ? ELSE 0 END", quantity, quantity)).Error
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	return nil
}
