package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"garage-backend/database"
	"garage-backend/models"
)

// newTestDB opens a throwaway sqlite database with the full schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "garage_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createTestBooking(t *testing.T, db *gorm.DB) *models.Booking {
	t.Helper()

	booking, err := NewBookingService(db).Create(CreateBookingInput{
		CustomerName:  "Ravi Kumar",
		Mobile:        "9876543210",
		VehicleType:   "Two Wheeler",
		VehicleBrand:  "Honda",
		VehicleModel:  "Activa",
		VehicleNumber: "KA-01-AB-1234",
		ServiceType:   "General Service",
		PreferredDate: "2026-09-05",
		PreferredTime: "10:00 AM",
	})
	require.NoError(t, err)
	return booking
}

func createTestJobCard(t *testing.T, db *gorm.DB, bookingId string, total float64) *models.JobCard {
	t.Helper()

	jobCard, err := NewJobCardService(db).Create(CreateJobCardInput{
		BookingId:  bookingId,
		Categories: []string{"Engine"},
		Items: []JobCardItemInput{
			{Category: "Engine", ProblemDescription: "Oil change", EstimatedPrice: total},
		},
		TotalEstimatedAmount: total,
		Status:               "finalized",
	})
	require.NoError(t, err)
	return jobCard
}

func createTestInventoryItem(t *testing.T, db *gorm.DB, name string, stock, minAlert int) *models.InventoryItem {
	t.Helper()

	item, err := NewInventoryService(db).CreateItem(InventoryItemInput{
		ItemName:        name,
		PurchasePrice:   100,
		SellingPrice:    200,
		QuantityInStock: stock,
		MinStockAlert:   minAlert,
	})
	require.NoError(t, err)
	return item
}
