package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"garage-backend/models"
	"garage-backend/utils"
)

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

type CreateBookingInput struct {
	CustomerName     string `json:"customer_name" validate:"required"`
	Mobile           string `json:"mobile" validate:"required"`
	VehicleType      string `json:"vehicle_type" validate:"required"`
	VehicleBrand     string `json:"vehicle_brand"`
	VehicleModel     string `json:"vehicle_model"`
	VehicleNumber    string `json:"vehicle_number"`
	ServiceType      string `json:"service_type" validate:"required"`
	OtherDescription string `json:"other_description"`
	PreferredDate    string `json:"preferred_date" validate:"required"`
	PreferredTime    string `json:"preferred_time" validate:"required"`
	AdditionalNotes  string `json:"additional_notes"`
}

type BookingFilter struct {
	Status      string
	VehicleType string
	ServiceType string
	Date        string
}

func (s *BookingService) Create(in CreateBookingInput) (*models.Booking, error) {
	booking := models.Booking{
		BookingNumber:    utils.NewBookingNumber(),
		CustomerName:     in.CustomerName,
		Mobile:           in.Mobile,
		VehicleType:      in.VehicleType,
		VehicleBrand:     in.VehicleBrand,
		VehicleModel:     in.VehicleModel,
		VehicleNumber:    in.VehicleNumber,
		ServiceType:      in.ServiceType,
		OtherDescription: in.OtherDescription,
		PreferredDate:    in.PreferredDate,
		PreferredTime:    in.PreferredTime,
		AdditionalNotes:  in.AdditionalNotes,
		Status:           "pending",
	}
	if err := s.db.Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return &booking, nil
}

func (s *BookingService) List(f BookingFilter) ([]models.Booking, error) {
	q := s.db.Model(&models.Booking{}).Order("created_at DESC")
	if f.Status != "" && f.Status != "all" {
		q = q.Where("status = ?", f.Status)
	}
	if f.VehicleType != "" && f.VehicleType != "all" {
		q = q.Where("vehicle_type = ?", f.VehicleType)
	}
	if f.ServiceType != "" && f.ServiceType != "all" {
		q = q.Where("service_type = ?", f.ServiceType)
	}
	if f.Date != "" {
		q = q.Where("preferred_date = ?", f.Date)
	}

	bookings := []models.Booking{}
	if err := q.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) Get(id string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &booking, nil
}

func (s *BookingService) UpdateStatus(id, status string) (*models.Booking, error) {
	booking, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(booking).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	return booking, nil
}

func (s *BookingService) Delete(id string) error {
	res := s.db.Delete(&models.Booking{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// BookingStats drives the dashboard counters.
type BookingStats struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	Confirmed   int64 `json:"confirmed"`
	Completed   int64 `json:"completed"`
	TwoWheeler  int64 `json:"two_wheeler"`
	FourWheeler int64 `json:"four_wheeler"`
}

func (s *BookingService) Stats() (*BookingStats, error) {
	var stats BookingStats
	counts := []struct {
		dst   *int64
		where []interface{}
	}{
		{&stats.Total, nil},
		{&stats.Pending, []interface{}{"status = ?", "pending"}},
		{&stats.Confirmed, []interface{}{"status = ?", "confirmed"}},
		{&stats.Completed, []interface{}{"status = ?", "completed"}},
		{&stats.TwoWheeler, []interface{}{"vehicle_type = ?", "Two Wheeler"}},
		{&stats.FourWheeler, []interface{}{"vehicle_type = ?", "Four Wheeler"}},
	}
	for _, c := range counts {
		q := s.db.Model(&models.Booking{})
		if c.where != nil {
			q = q.Where(c.where[0], c.where[1:]...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("booking stats: %w", err)
		}
	}
	return &stats, nil
}
