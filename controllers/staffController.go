package controllers

import (
	"github.com/gofiber/fiber/v2"

	"garage-backend/middlewares"
	"garage-backend/services"
)

type StaffController struct {
	staff *services.StaffService
}

func NewStaffController(staff *services.StaffService) *StaffController {
	return &StaffController{staff: staff}
}

func (ct *StaffController) Create(c *fiber.Ctx) error {
	var in services.CreateStaffInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	staff, err := ct.staff.Create(in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "staff": staff})
}

func (ct *StaffController) List(c *fiber.Ctx) error {
	staff, err := ct.staff.List(c.Query("status"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"staff": staff})
}

func (ct *StaffController) Update(c *fiber.Ctx) error {
	var in services.UpdateStaffInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	staff, err := ct.staff.Update(c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "staff": staff})
}

func (ct *StaffController) Delete(c *fiber.Ctx) error {
	if err := ct.staff.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
