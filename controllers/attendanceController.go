package controllers

import (
	"github.com/gofiber/fiber/v2"

	"garage-backend/middlewares"
	"garage-backend/services"
)

type AttendanceController struct {
	attendance *services.AttendanceService
}

func NewAttendanceController(attendance *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendance: attendance}
}

// Mark upserts the day's record; marking twice keeps the latest status.
func (ct *AttendanceController) Mark(c *fiber.Ctx) error {
	var in services.MarkAttendanceInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	record, err := ct.attendance.Mark(in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "attendance": record})
}

func (ct *AttendanceController) List(c *fiber.Ctx) error {
	records, err := ct.attendance.List(services.AttendanceFilter{
		StaffId: c.Query("staffId"),
		Date:    c.Query("date"),
		Month:   c.Query("month"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"attendance": records})
}

func (ct *AttendanceController) SalarySummary(c *fiber.Ctx) error {
	summary, err := ct.attendance.SalarySummary(c.Query("month"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"summary": summary})
}
