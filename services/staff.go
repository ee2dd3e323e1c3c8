package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"garage-backend/models"
	"garage-backend/utils"
)

type StaffService struct {
	db *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{db: db}
}

type CreateStaffInput struct {
	Name          string  `json:"name" validate:"required"`
	Role          string  `json:"role" validate:"required"`
	Mobile        string  `json:"mobile"`
	MonthlySalary float64 `json:"monthly_salary" validate:"min=0"`
	JoiningDate   string  `json:"joining_date"`
}

type UpdateStaffInput struct {
	Name          string  `json:"name" validate:"required"`
	Role          string  `json:"role" validate:"required"`
	Mobile        string  `json:"mobile"`
	MonthlySalary float64 `json:"monthly_salary" validate:"min=0"`
	Status        string  `json:"status" validate:"required,oneof=active inactive"`
}

func (s *StaffService) Create(in CreateStaffInput) (*models.Staff, error) {
	joiningDate := in.JoiningDate
	if joiningDate == "" {
		joiningDate = utils.Today()
	}
	staff := models.Staff{
		Name:          in.Name,
		Role:          in.Role,
		Mobile:        in.Mobile,
		MonthlySalary: in.MonthlySalary,
		JoiningDate:   joiningDate,
		Status:        "active",
	}
	if err := s.db.Create(&staff).Error; err != nil {
		return nil, fmt.Errorf("create staff: %w", err)
	}
	return &staff, nil
}

func (s *StaffService) Update(id string, in UpdateStaffInput) (*models.Staff, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"name":           in.Name,
		"role":           in.Role,
		"mobile":         in.Mobile,
		"monthly_salary": in.MonthlySalary,
		"status":         in.Status,
	}
	if err := s.db.Model(&models.Staff{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update staff: %w", err)
	}
	return s.Get(id)
}

func (s *StaffService) Delete(id string) error {
	res := s.db.Delete(&models.Staff{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete staff: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *StaffService) List(status string) ([]models.Staff, error) {
	q := s.db.Model(&models.Staff{}).Order("name")
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}

	staff := []models.Staff{}
	if err := q.Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	return staff, nil
}

func (s *StaffService) Get(id string) (*models.Staff, error) {
	var staff models.Staff
	if err := s.db.First(&staff, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return &staff, nil
}
