package services

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"garage-backend/models"
)

// AttendanceService records daily attendance marks and computes the monthly
// salary summary. The summary is a pure read-side aggregation recomputed on
// every query; no payroll run is persisted.
type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

type MarkAttendanceInput struct {
	StaffId string `json:"staff_id" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Status  string `json:"status" validate:"required,oneof=present absent half_day"`
	Notes   string `json:"notes"`
}

type AttendanceFilter struct {
	StaffId string
	Date    string
	Month   string // YYYY-MM
}

// SalarySummaryRow is one staff member's prorated figure for a month.
type SalarySummaryRow struct {
	Staff            models.Staff `json:"staff"`
	PresentDays      int          `json:"present_days"`
	HalfDays         int          `json:"half_days"`
	AbsentDays       int          `json:"absent_days"`
	TotalWorkingDays float64      `json:"total_working_days"`
	MonthlySalary    float64      `json:"monthly_salary"`
	CalculatedSalary float64      `json:"calculated_salary"`
}

// Mark upserts the attendance record keyed on (staff, date): a second mark for
// the same day overwrites the first.
func (s *AttendanceService) Mark(in MarkAttendanceInput) (*models.AttendanceRecord, error) {
	var staff models.Staff
	if err := s.db.First(&staff, "id = ?", in.StaffId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}

	record := models.AttendanceRecord{
		StaffId: in.StaffId,
		Date:    in.Date,
		Status:  in.Status,
		Notes:   in.Notes,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "staff_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "notes"}),
	}).Create(&record).Error
	if err != nil {
		return nil, fmt.Errorf("mark attendance: %w", err)
	}

	var saved models.AttendanceRecord
	if err := s.db.Preload("Staff").First(&saved, "staff_id = ? AND date = ?", in.StaffId, in.Date).Error; err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}
	return &saved, nil
}

func (s *AttendanceService) List(f AttendanceFilter) ([]models.AttendanceRecord, error) {
	q := s.db.Model(&models.AttendanceRecord{}).Preload("Staff").Order("date DESC")
	if f.StaffId != "" {
		q = q.Where("staff_id = ?", f.StaffId)
	}
	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	}
	if f.Month != "" {
		// Zero-padded ISO dates order lexically, so a string range covers the month.
		q = q.Where("date >= ? AND date <= ?", f.Month+"-01", f.Month+"-31")
	}

	records := []models.AttendanceRecord{}
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}

// SalarySummary aggregates the month's marks per active staff member. The
// per-day salary uses a flat 30-day divisor regardless of the month's actual
// length; unmarked days contribute nothing.
func (s *AttendanceService) SalarySummary(month string) ([]SalarySummaryRow, error) {
	if month == "" {
		return nil, &ValidationError{Message: "month is required"}
	}

	staffList := []models.Staff{}
	if err := s.db.Where("status = ?", "active").Order("name").Find(&staffList).Error; err != nil {
		return nil, fmt.Errorf("list active staff: %w", err)
	}

	records := []models.AttendanceRecord{}
	err := s.db.Where("date >= ? AND date <= ?", month+"-01", month+"-31").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list month attendance: %w", err)
	}

	byStaff := make(map[string][]models.AttendanceRecord, len(staffList))
	for _, record := range records {
		byStaff[record.StaffId] = append(byStaff[record.StaffId], record)
	}

	summary := make([]SalarySummaryRow, 0, len(staffList))
	for _, staff := range staffList {
		row := SalarySummaryRow{Staff: staff, MonthlySalary: staff.MonthlySalary}
		for _, record := range byStaff[staff.Id] {
			switch record.Status {
			case "present":
				row.PresentDays++
			case "half_day":
				row.HalfDays++
			case "absent":
				row.AbsentDays++
			}
		}
		row.TotalWorkingDays = float64(row.PresentDays) + 0.5*float64(row.HalfDays)
		perDaySalary := staff.MonthlySalary / 30
		row.CalculatedSalary = math.Round(perDaySalary * row.TotalWorkingDays)
		summary = append(summary, row)
	}
	return summary, nil
}
