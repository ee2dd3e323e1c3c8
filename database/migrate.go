package database

import (
	"gorm.io/gorm"

	"garage-backend/models"
)

// AutoMigrate creates the schema, referenced tables first so the foreign keys
// resolve. The unique indexes on job_cards.booking_id, billing.job_card_id and
// attendance (staff_id, date) come from the model tags and back the
// one-per-reference invariants at the storage layer.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Booking{},
		&models.JobCard{},
		&models.JobCardItem{},
		&models.InventoryCategory{},
		&models.InventoryItem{},
		&models.Purchase{},
		&models.Billing{},
		&models.BillingItem{},
		&models.Expense{},
		&models.Staff{},
		&models.AttendanceRecord{},
	)
}
