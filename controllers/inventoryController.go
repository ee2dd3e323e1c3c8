package controllers

import (
	"github.com/gofiber/fiber/v2"

	"garage-backend/middlewares"
	"garage-backend/services"
)

type InventoryController struct {
	inventory *services.InventoryService
}

func NewInventoryController(inventory *services.InventoryService) *InventoryController {
	return &InventoryController{inventory: inventory}
}

type createCategoryInput struct {
	Name string `json:"name" validate:"required"`
}

func (ct *InventoryController) CreateCategory(c *fiber.Ctx) error {
	var in createCategoryInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	category, err := ct.inventory.CreateCategory(in.Name)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "category": category})
}

func (ct *InventoryController) ListCategories(c *fiber.Ctx) error {
	categories, err := ct.inventory.ListCategories()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"categories": categories})
}

func (ct *InventoryController) CreateItem(c *fiber.Ctx) error {
	var in services.InventoryItemInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	item, err := ct.inventory.CreateItem(in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "item": item})
}

func (ct *InventoryController) List(c *fiber.Ctx) error {
	items, err := ct.inventory.List(services.InventoryFilter{
		CategoryId: c.Query("categoryId"),
		LowStock:   c.Query("lowStock") == "true",
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"inventory": items})
}

func (ct *InventoryController) UpdateItem(c *fiber.Ctx) error {
	var in services.InventoryItemInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	item, err := ct.inventory.UpdateItem(c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "item": item})
}

func (ct *InventoryController) DeleteItem(c *fiber.Ctx) error {
	if err := ct.inventory.DeleteItem(c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
