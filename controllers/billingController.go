package controllers

import (
	"github.com/gofiber/fiber/v2"

	"garage-backend/middlewares"
	"garage-backend/services"
)

type BillingController struct {
	billing *services.BillingService
}

func NewBillingController(billing *services.BillingService) *BillingController {
	return &BillingController{billing: billing}
}

func (ct *BillingController) Create(c *fiber.Ctx) error {
	var in services.CreateBillingInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	billing, err := ct.billing.Create(in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "billing": billing})
}

func (ct *BillingController) List(c *fiber.Ctx) error {
	billings, err := ct.billing.List(services.BillingFilter{
		JobCardId:     c.Query("jobCardId"),
		PaymentStatus: c.Query("paymentStatus"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"billings": billings})
}

func (ct *BillingController) Get(c *fiber.Ctx) error {
	billing, err := ct.billing.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"billing": billing})
}

type updateBillingStatusInput struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending partial paid"`
	PaymentMethod string `json:"payment_method"`
}

func (ct *BillingController) UpdateStatus(c *fiber.Ctx) error {
	var in updateBillingStatusInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	billing, err := ct.billing.UpdateStatus(c.Params("id"), in.PaymentStatus, in.PaymentMethod)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "billing": billing})
}

func (ct *BillingController) Delete(c *fiber.Ctx) error {
	if err := ct.billing.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Billing deleted successfully"})
}
