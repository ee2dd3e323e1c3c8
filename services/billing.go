package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"garage-backend/models"
	"garage-backend/utils"
)

// BillingService turns one job card plus parts usage and a discount into an
// invoice, and keeps job card and inventory state consistent with billing
// existence. Creation runs in a single transaction covering the billing row,
// its items and expenses, the stock decrements and the job card status flip.
type BillingService struct {
	db        *gorm.DB
	inventory *InventoryService
}

func NewBillingService(db *gorm.DB, inventory *InventoryService) *BillingService {
	return &BillingService{db: db, inventory: inventory}
}

type BillingItemInput struct {
	InventoryId string  `json:"inventory_id"`
	ItemName    string  `json:"item_name" validate:"required"`
	Quantity    int     `json:"quantity" validate:"min=0"`
	UnitPrice   float64 `json:"unit_price"`
}

type ExpenseInput struct {
	ExpenseName string  `json:"expense_name" validate:"required"`
	Amount      float64 `json:"amount"`
	Notes       string  `json:"notes"`
}

type CreateBillingInput struct {
	JobCardId     string             `json:"job_card_id" validate:"required"`
	Items         []BillingItemInput `json:"items" validate:"dive"`
	Expenses      []ExpenseInput     `json:"expenses" validate:"dive"`
	Discount      float64            `json:"discount" validate:"min=0"`
	PaymentStatus string             `json:"payment_status"`
	PaymentMethod string             `json:"payment_method"`
	Notes         string             `json:"notes"`
}

type BillingFilter struct {
	JobCardId     string
	PaymentStatus string
}

func (s *BillingService) Create(in CreateBillingInput) (*models.Billing, error) {
	var jobCard models.JobCard
	if err := s.db.First(&jobCard, "id = ?", in.JobCardId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get job card: %w", err)
	}

	var count int64
	if err := s.db.Model(&models.Billing{}).Where("job_card_id = ?", in.JobCardId).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check existing billing: %w", err)
	}
	if count > 0 {
		return nil, &ConflictError{Message: "billing already exists for this job card"}
	}

	paymentStatus := in.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "pending"
	}

	items := make([]models.BillingItem, 0, len(in.Items))
	inventoryTotal := 0.0
	for _, item := range in.Items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		lineTotal := utils.Round2(float64(quantity) * item.UnitPrice)
		inventoryTotal += lineTotal

		row := models.BillingItem{
			ItemName:   item.ItemName,
			Quantity:   quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: lineTotal,
		}
		if item.InventoryId != "" {
			id := item.InventoryId
			row.InventoryId = &id
		}
		items = append(items, row)
	}

	expenses := make([]models.Expense, 0, len(in.Expenses))
	expensesTotal := 0.0
	for _, exp := range in.Expenses {
		expensesTotal += exp.Amount
		expenses = append(expenses, models.Expense{
			ExpenseName: exp.ExpenseName,
			Amount:      exp.Amount,
			Notes:       exp.Notes,
		})
	}

	billing := models.Billing{
		JobCardId:      jobCard.Id,
		BillNumber:     utils.NewBillNumber(),
		JobCardTotal:   jobCard.TotalEstimatedAmount,
		InventoryTotal: utils.Round2(inventoryTotal),
		// Expenses are internal bookkeeping; customer invoices never include them.
		ExpensesTotal: utils.Round2(expensesTotal),
		Discount:      in.Discount,
		FinalAmount:   utils.Round2(jobCard.TotalEstimatedAmount + inventoryTotal - in.Discount),
		PaymentStatus: paymentStatus,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		Items:         items,
		Expenses:      expenses,
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin: %w", tx.Error)
	}
	defer tx.Rollback()

	if err := tx.Create(&billing).Error; err != nil {
		return nil, fmt.Errorf("create billing: %w", err)
	}

	for _, item := range billing.Items {
		if item.InventoryId == nil {
			continue
		}
		if err := s.inventory.ConsumeForBilling(tx, *item.InventoryId, item.Quantity); err != nil {
			return nil, err
		}
	}

	if err := tx.Model(&models.JobCard{}).Where("id = ?", jobCard.Id).Update("status", "billed").Error; err != nil {
		return nil, fmt.Errorf("mark job card billed: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("commit billing: %w", err)
	}
	return &billing, nil
}

// Delete removes the bill and reopens its job card for re-billing. Stock
// consumed at creation time is not restored; parts handed over stay consumed.
func (s *BillingService) Delete(id string) error {
	billing, err := s.Get(id)
	if err != nil {
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin: %w", tx.Error)
	}
	defer tx.Rollback()

	if err := tx.Delete(&models.BillingItem{}, "billing_id = ?", id).Error; err != nil {
		return fmt.Errorf("delete billing items: %w", err)
	}
	if err := tx.Delete(&models.Expense{}, "billing_id = ?", id).Error; err != nil {
		return fmt.Errorf("delete billing expenses: %w", err)
	}
	if err := tx.Delete(&models.Billing{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete billing: %w", err)
	}
	if err := tx.Model(&models.JobCard{}).Where("id = ?", billing.JobCardId).Update("status", "finalized").Error; err != nil {
		return fmt.Errorf("reopen job card: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit billing delete: %w", err)
	}
	return nil
}

// UpdateStatus changes the payment fields; any payment status may move to any
// other, there is no terminal lock on "paid".
func (s *BillingService) UpdateStatus(id, paymentStatus, paymentMethod string) (*models.Billing, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"payment_status": paymentStatus,
		"payment_method": paymentMethod,
	}
	if err := s.db.Model(&models.Billing{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update billing status: %w", err)
	}
	return s.Get(id)
}

func (s *BillingService) List(f BillingFilter) ([]models.Billing, error) {
	q := s.db.Model(&models.Billing{}).
		Preload("JobCard").
		Preload("JobCard.Booking").
		Preload("JobCard.Items").
		Preload("Items").
		Preload("Expenses").
		Order("created_at DESC")
	if f.JobCardId != "" {
		q = q.Where("job_card_id = ?", f.JobCardId)
	}
	if f.PaymentStatus != "" && f.PaymentStatus != "all" {
		q = q.Where("payment_status = ?", f.PaymentStatus)
	}

	billings := []models.Billing{}
	if err := q.Find(&billings).Error; err != nil {
		return nil, fmt.Errorf("list billings: %w", err)
	}
	return billings, nil
}

func (s *BillingService) Get(id string) (*models.Billing, error) {
	var billing models.Billing
	err := s.db.
		Preload("JobCard").
		Preload("JobCard.Booking").
		Preload("JobCard.Items").
		Preload("Items").
		Preload("Expenses").
		First(&billing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get billing: %w", err)
	}
	return &billing, nil
}
