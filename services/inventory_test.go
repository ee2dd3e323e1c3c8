package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garage-backend/models"
)

func TestRecordPurchaseIncrementsStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)
	item := createTestInventoryItem(t, db, "Engine Oil 10W-30", 3, 5)

	purchase, err := svc.RecordPurchase(PurchaseInput{
		InventoryId:   item.Id,
		Quantity:      7,
		PurchasePrice: 450,
		Supplier:      "AutoParts Distributors",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, purchase.PurchaseDate)

	reloaded, err := svc.GetItem(item.Id)
	require.NoError(t, err)
	assert.Equal(t, 10, reloaded.QuantityInStock)
}

func TestRecordPurchaseUnknownItem(t *testing.T) {
	db := newTestDB(t)

	_, err := NewInventoryService(db).RecordPurchase(PurchaseInput{
		InventoryId: "no-such-item",
		Quantity:    1,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConsumeForBillingClampsAtZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)
	item := createTestInventoryItem(t, db, "Brake Pad", 4, 2)

	// Consuming 10 from a stock of 4 floors at zero instead of going to -6.
	require.NoError(t, svc.ConsumeForBilling(db, item.Id, 10))

	reloaded, err := svc.GetItem(item.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.QuantityInStock)
}

func TestConsumeForBillingPartialStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)
	item := createTestInventoryItem(t, db, "Air Filter", 8, 2)

	require.NoError(t, svc.ConsumeForBilling(db, item.Id, 3))

	reloaded, err := svc.GetItem(item.Id)
	require.NoError(t, err)
	assert.Equal(t, 5, reloaded.QuantityInStock)
}

func TestListLowStockOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)
	low := createTestInventoryItem(t, db, "Spark Plug", 2, 5)
	atThreshold := createTestInventoryItem(t, db, "Chain Lube", 5, 5)
	createTestInventoryItem(t, db, "Coolant", 20, 5)

	items, err := svc.List(InventoryFilter{LowStock: true})
	require.NoError(t, err)
	require.Len(t, items, 2)

	ids := []string{items[0].Id, items[1].Id}
	assert.Contains(t, ids, low.Id)
	assert.Contains(t, ids, atThreshold.Id)
}

func TestInventoryItemDefaults(t *testing.T) {
	db := newTestDB(t)

	item, err := NewInventoryService(db).CreateItem(InventoryItemInput{ItemName: "Clutch Cable"})
	require.NoError(t, err)
	assert.Equal(t, "Both", item.VehicleCompatibility)
	assert.Equal(t, 5, item.MinStockAlert)
}

func TestInventoryCategoryFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	category, err := svc.CreateCategory("Lubricants")
	require.NoError(t, err)

	_, err = svc.CreateItem(InventoryItemInput{ItemName: "Gear Oil", CategoryId: category.Id})
	require.NoError(t, err)
	createTestInventoryItem(t, db, "Wiper Blade", 4, 2)

	items, err := svc.List(InventoryFilter{CategoryId: category.Id})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Gear Oil", items[0].ItemName)
	require.NotNil(t, items[0].Category)
	assert.Equal(t, "Lubricants", items[0].Category.Name)
}

func TestPurchaseListFilterByItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)
	first := createTestInventoryItem(t, db, "Headlight Bulb", 0, 2)
	second := createTestInventoryItem(t, db, "Tail Lamp", 0, 2)

	for _, id := range []string{first.Id, first.Id, second.Id} {
		_, err := svc.RecordPurchase(PurchaseInput{InventoryId: id, Quantity: 2, PurchasePrice: 120})
		require.NoError(t, err)
	}

	purchases, err := svc.ListPurchases(first.Id)
	require.NoError(t, err)
	assert.Len(t, purchases, 2)

	all, err := svc.ListPurchases("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	var count int64
	require.NoError(t, db.Model(&models.Purchase{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}
