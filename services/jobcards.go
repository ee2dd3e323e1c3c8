package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"garage-backend/models"
	"garage-backend/utils"
)

// JobCardService owns the draft → finalized → billed state machine. Creation
// and item replacement run inside a single transaction so a job card can
// never be committed without its items.
type JobCardService struct {
	db *gorm.DB
}

func NewJobCardService(db *gorm.DB) *JobCardService {
	return &JobCardService{db: db}
}

type JobCardItemInput struct {
	Category           string  `json:"category" validate:"required"`
	ProblemDescription string  `json:"problem_description" validate:"required"`
	EstimatedPrice     float64 `json:"estimated_price"`
}

type WalkInCustomerInput struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	Mobile        string `json:"mobile" validate:"required"`
	VehicleType   string `json:"vehicle_type" validate:"required"`
	VehicleBrand  string `json:"vehicle_brand"`
	VehicleModel  string `json:"vehicle_model"`
	VehicleNumber string `json:"vehicle_number"`
	ServiceType   string `json:"service_type"`
}

type CreateJobCardInput struct {
	BookingId      string               `json:"booking_id"`
	IsWalkIn       bool                 `json:"is_walk_in"`
	WalkInCustomer *WalkInCustomerInput `json:"walk_in_customer"`
	Categories     []string             `json:"categories"`
	Items          []JobCardItemInput   `json:"items" validate:"min=1,dive"`
	// Caller-supplied; stored as-is without recomputation from Items.
	TotalEstimatedAmount float64 `json:"total_estimated_amount"`
	Status               string  `json:"status"`
}

type UpdateJobCardInput struct {
	Categories           []string           `json:"categories"`
	Items                []JobCardItemInput `json:"items" validate:"min=1,dive"`
	TotalEstimatedAmount float64            `json:"total_estimated_amount"`
	Status               string             `json:"status"`
}

type JobCardFilter struct {
	BookingId string
	Status    string
}

func marshalCategories(categories []string) (datatypes.JSON, error) {
	if categories == nil {
		categories = []string{}
	}
	raw, err := json.Marshal(categories)
	if err != nil {
		return nil, fmt.Errorf("marshal categories: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func (s *JobCardService) Create(in CreateJobCardInput) (*models.JobCard, error) {
	if !in.IsWalkIn && in.BookingId == "" {
		return nil, &ValidationError{Message: "booking_id is required unless the job card is a walk-in"}
	}
	if in.IsWalkIn && in.WalkInCustomer == nil {
		return nil, &ValidationError{Message: "walk_in_customer is required for a walk-in job card"}
	}

	categories, err := marshalCategories(in.Categories)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = "finalized"
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin: %w", tx.Error)
	}
	defer tx.Rollback()

	bookingId := in.BookingId
	if in.IsWalkIn {
		walkIn := in.WalkInCustomer
		serviceType := walkIn.ServiceType
		if serviceType == "" {
			serviceType = "General Service"
		}
		booking := models.Booking{
			BookingNumber: utils.NewWalkInNumber(),
			CustomerName:  walkIn.CustomerName,
			Mobile:        walkIn.Mobile,
			VehicleType:   walkIn.VehicleType,
			VehicleBrand:  walkIn.VehicleBrand,
			VehicleModel:  walkIn.VehicleModel,
			VehicleNumber: walkIn.VehicleNumber,
			ServiceType:   serviceType,
			PreferredDate: utils.Today(),
			PreferredTime: "Walk-in",
			Status:        "confirmed",
		}
		if err := tx.Create(&booking).Error; err != nil {
			return nil, fmt.Errorf("create walk-in booking: %w", err)
		}
		bookingId = booking.Id
	} else {
		var count int64
		if err := tx.Model(&models.JobCard{}).Where("booking_id = ?", bookingId).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("check existing job card: %w", err)
		}
		if count > 0 {
			return nil, &ConflictError{Message: "job card already exists for this booking"}
		}
	}

	jobCard := models.JobCard{
		BookingId:            &bookingId,
		JobCardNumber:        utils.NewJobCardNumber(),
		Categories:           categories,
		TotalEstimatedAmount: in.TotalEstimatedAmount,
		Status:               status,
	}
	if err := tx.Create(&jobCard).Error; err != nil {
		return nil, fmt.Errorf("create job card: %w", err)
	}

	for _, item := range in.Items {
		row := models.JobCardItem{
			JobCardId:          jobCard.Id,
			Category:           item.Category,
			ProblemDescription: item.ProblemDescription,
			EstimatedPrice:     item.EstimatedPrice,
		}
		if err := tx.Create(&row).Error; err != nil {
			return nil, fmt.Errorf("create job card item: %w", err)
		}
		jobCard.Items = append(jobCard.Items, row)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("commit job card: %w", err)
	}
	return &jobCard, nil
}

func (s *JobCardService) Update(id string, in UpdateJobCardInput) (*models.JobCard, error) {
	jobCard, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if jobCard.Status == "billed" {
		return nil, &ImmutableStateError{Message: "cannot edit a billed job card"}
	}

	categories, err := marshalCategories(in.Categories)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = "draft"
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin: %w", tx.Error)
	}
	defer tx.Rollback()

	updates := map[string]interface{}{
		"categories":             categories,
		"total_estimated_amount": in.TotalEstimatedAmount,
		"status":                 status,
	}
	if err := tx.Model(&models.JobCard{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update job card: %w", err)
	}

	// Full replace, not a diff.
	if err := tx.Delete(&models.JobCardItem{}, "job_card_id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("clear job card items: %w", err)
	}
	for _, item := range in.Items {
		row := models.JobCardItem{
			JobCardId:          id,
			Category:           item.Category,
			ProblemDescription: item.ProblemDescription,
			EstimatedPrice:     item.EstimatedPrice,
		}
		if err := tx.Create(&row).Error; err != nil {
			return nil, fmt.Errorf("create job card item: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("commit job card update: %w", err)
	}
	return s.Get(id)
}

// Delete removes the job card and its items unconditionally; unlike Update,
// billed cards are not guarded.
func (s *JobCardService) Delete(id string) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin: %w", tx.Error)
	}
	defer tx.Rollback()

	if err := tx.Delete(&models.JobCardItem{}, "job_card_id = ?", id).Error; err != nil {
		return fmt.Errorf("delete job card items: %w", err)
	}
	res := tx.Delete(&models.JobCard{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete job card: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit job card delete: %w", err)
	}
	return nil
}

func (s *JobCardService) List(f JobCardFilter) ([]models.JobCard, error) {
	q := s.db.Model(&models.JobCard{}).
		Preload("Booking").
		Preload("Items").
		Order("created_at DESC")
	if f.BookingId != "" {
		q = q.Where("booking_id = ?", f.BookingId)
	}
	if f.Status != "" && f.Status != "all" {
		q = q.Where("status = ?", f.Status)
	}

	jobCards := []models.JobCard{}
	if err := q.Find(&jobCards).Error; err != nil {
		return nil, fmt.Errorf("list job cards: %w", err)
	}
	return jobCards, nil
}

func (s *JobCardService) Get(id string) (*models.JobCard, error) {
	var jobCard models.JobCard
	err := s.db.Preload("Booking").Preload("Items").First(&jobCard, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get job card: %w", err)
	}
	return &jobCard, nil
}
