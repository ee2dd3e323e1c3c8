package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garage-backend/models"
)

func TestBillingCreateComputesFinalAmount(t *testing.T) {
	db := newTestDB(t)
	booking := createTestBooking(t, db)
	jobCard := createTestJobCard(t, db, booking.Id, 1500)
	inventorySvc := NewInventoryService(db)
	svc := NewBillingService(db, inventorySvc)
	item := createTestInventoryItem(t, db, "Brake Pad", 10, 2)

	billing, err := svc.Create(CreateBillingInput{
		JobCardId: jobCard.Id,
		Items: []BillingItemInput{
			{InventoryId: item.Id, ItemName: "Brake Pad", Quantity: 2, UnitPrice: 200},
		},
		Expenses: []ExpenseInput{
			{ExpenseName: "Outside labour", Amount: 300},
		},
		Discount: 200,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(billing.BillNumber, "BILL-"))
	assert.Equal(t, 1500.0, billing.JobCardTotal)
	assert.Equal(t, 400.0, billing.InventoryTotal)
	assert.Equal(t, 300.0, billing.ExpensesTotal)
	// Expenses are internal and must not leak into the customer-facing total.
	assert.Equal(t, 1700.0, billing.FinalAmount)
	assert.Equal(t, "pending", billing.PaymentStatus)
}

func TestBillingCreateConsumesStockAndBillsJobCard(t *testing.T) {
	db := newTestDB(t)
	booking := createTestBooking(t, db)
	jobCard := createTestJobCard(t, db, booking.Id, 1000)
	inventorySvc := NewInventoryService(db)
	svc := NewBillingService(db, inventorySvc)
	item := createTestInventoryItem(t, db, "Engine Oil", 4, 2)

	_, err := svc.Create(CreateBillingInput{
		JobCardId: jobCard.Id,
		Items: []BillingItemInput{
			{InventoryId: item.Id, ItemName: "Engine Oil", Quantity: 10, UnitPrice: 450},
		},
	})
	require.NoError(t, err)

	// Over-consumption truncates at zero rather than erroring or going negative.
	reloaded, err := inventorySvc.GetItem(item.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.QuantityInStock)

	var card models.JobCard
	require.NoError(t, db.First(&card, "id = ?", jobCard.Id).Error)
	assert.Equal(t, "billed", card.Status)
}

func TestBillingCreateRejectsSecondBillForJobCard(t *testing.T) {
	db := newTestDB(t)
	booking := createTestBooking(t, db)
	jobCard := createTestJobCard(t, db, booking.Id, 1000)
	svc := NewBillingService(db, NewInventoryService(db))

	_, err := svc.Create(CreateBillingInput{JobCardId: jobCard.Id})
	require.NoError(t, err)

	_, err = svc.Create(CreateBillingInput{JobCardId: jobCard.Id})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestBillingCreateMissingJobCard(t *testing.T) {
	db := newTestDB(t)
	svc := NewBillingService(db, NewInventoryService(db))

	_, err := svc.Create(CreateBillingInput{JobCardId: "no-such-card"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBillingDeleteReopensJobCardWithoutRestoringStock(t *testing.T) {
	db := newTestDB(t)
	booking := createTestBooking(t, db)
	jobCard := createTestJobCard(t, db, booking.Id, 1000)
	inventorySvc := NewInventoryService(db)
	svc := NewBillingService(db, inventorySvc)
	item := createTestInventoryItem(t, db, "Oil Filter", 10, 2)

	billing, err := svc.Create(CreateBillingInput{
		JobCardId: jobCard.Id,
		Items: []BillingItemInput{
			{InventoryId: item.Id, ItemName: "Oil Filter", Quantity: 4, UnitPrice: 150},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(billing.Id))

	// Job card is re-billable again.
	var card models.JobCard
	require.NoError(t, db.First(&card, "id = ?", jobCard.Id).Error)
	assert.Equal(t, "finalized", card.Status)

	// Stock stays at its post-consumption level; deletion does not restock.
	reloaded, err := inventorySvc.GetItem(item.Id)
	require.NoError(t, err)
	assert.Equal(t, 6, reloaded.QuantityInStock)

	// Owned rows are gone with the bill.
	var itemCount, expenseCount int64
	require.NoError(t, db.Model(&models.BillingItem{}).Where("billing_id = ?", billing.Id).Count(&itemCount).Error)
	require.NoError(t, db.Model(&models.Expense{}).Where("billing_id = ?", billing.Id).Count(&expenseCount).Error)
	assert.EqualValues(t, 0, itemCount)
	assert.EqualValues(t, 0, expenseCount)

	_, err = svc.Get(billing.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBillingRebillAfterDelete(t *testing.T) {
	db := newTestDB(t)
	booking := createTestBooking(t, db)
	jobCard := createTestJobCard(t, db, booking.Id, 1000)
	svc := NewBillingService(db, NewInventoryService(db))

	first, err := svc.Create(CreateBillingInput{JobCardId: jobCard.Id})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(first.Id))

	second, err := svc.Create(CreateBillingInput{JobCardId: jobCard.Id, Discount: 50})
	require.NoError(t, err)
	assert.Equal(t, 950.0, second.FinalAmount)
}

func TestBillingUpdateStatusFreeTransitions(t *testing.T) {
	db := newTestDB(t)
	booking := createTestBooking(t, db)
	jobCard := createTestJobCard(t, db, booking.Id, 1000)
	svc := NewBillingService(db, NewInventoryService(db))

	billing, err := svc.Create(CreateBillingInput{JobCardId: jobCard.Id})
	require.NoError(t, err)

	// No terminal lock: paid can move back to partial.
	for _, status := range []string{"paid", "partial", "pending"} {
		updated, err := svc.UpdateStatus(billing.Id, status, "cash")
		require.NoError(t, err)
		assert.Equal(t, status, updated.PaymentStatus)
		assert.Equal(t, "cash", updated.PaymentMethod)
	}
}

func TestBillingDefaultQuantityIsOne(t *testing.T) {
	db := newTestDB(t)
	booking := createTestBooking(t, db)
	jobCard := createTestJobCard(t, db, booking.Id, 0)
	svc := NewBillingService(db, NewInventoryService(db))

	billing, err := svc.Create(CreateBillingInput{
		JobCardId: jobCard.Id,
		Items: []BillingItemInput{
			{ItemName: "Coolant", UnitPrice: 250},
		},
	})
	require.NoError(t, err)
	require.Len(t, billing.Items, 1)
	assert.Equal(t, 1, billing.Items[0].Quantity)
	assert.Equal(t, 250.0, billing.Items[0].TotalPrice)
	assert.Equal(t, 250.0, billing.InventoryTotal)
}
