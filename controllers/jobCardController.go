package controllers

import (
	"github.com/gofiber/fiber/v2"

	"garage-backend/middlewares"
	"garage-backend/services"
)

type JobCardController struct {
	jobCards *services.JobCardService
}

func NewJobCardController(jobCards *services.JobCardService) *JobCardController {
	return &JobCardController{jobCards: jobCards}
}

func (ct *JobCardController) Create(c *fiber.Ctx) error {
	var in services.CreateJobCardInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	if in.IsWalkIn && in.WalkInCustomer != nil {
		if err := middlewares.ValidateStruct(in.WalkInCustomer); err != nil {
			return err
		}
	}

	jobCard, err := ct.jobCards.Create(in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "job_card": jobCard})
}

func (ct *JobCardController) List(c *fiber.Ctx) error {
	jobCards, err := ct.jobCards.List(services.JobCardFilter{
		BookingId: c.Query("bookingId"),
		Status:    c.Query("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"job_cards": jobCards})
}

func (ct *JobCardController) Get(c *fiber.Ctx) error {
	jobCard, err := ct.jobCards.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"job_card": jobCard})
}

func (ct *JobCardController) Update(c *fiber.Ctx) error {
	var in services.UpdateJobCardInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	jobCard, err := ct.jobCards.Update(c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "job_card": jobCard})
}

func (ct *JobCardController) Delete(c *fiber.Ctx) error {
	if err := ct.jobCards.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
