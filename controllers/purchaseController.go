package controllers

import (
	"github.com/gofiber/fiber/v2"

	"garage-backend/middlewares"
	"garage-backend/services"
)

type PurchaseController struct {
	inventory *services.InventoryService
}

func NewPurchaseController(inventory *services.InventoryService) *PurchaseController {
	return &PurchaseController{inventory: inventory}
}

func (ct *PurchaseController) Create(c *fiber.Ctx) error {
	var in services.PurchaseInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	purchase, err := ct.inventory.RecordPurchase(in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "purchase": purchase})
}

func (ct *PurchaseController) List(c *fiber.Ctx) error {
	purchases, err := ct.inventory.ListPurchases(c.Query("inventoryId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"purchases": purchases})
}
