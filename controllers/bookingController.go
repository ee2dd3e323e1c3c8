package controllers

import (
	"github.com/gofiber/fiber/v2"

	"garage-backend/middlewares"
	"garage-backend/services"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

func (ct *BookingController) Create(c *fiber.Ctx) error {
	var in services.CreateBookingInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	booking, err := ct.bookings.Create(in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":        true,
		"booking":        booking,
		"booking_number": booking.BookingNumber,
	})
}

func (ct *BookingController) List(c *fiber.Ctx) error {
	bookings, err := ct.bookings.List(services.BookingFilter{
		Status:      c.Query("status"),
		VehicleType: c.Query("vehicleType"),
		ServiceType: c.Query("serviceType"),
		Date:        c.Query("date"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"bookings": bookings})
}

func (ct *BookingController) Get(c *fiber.Ctx) error {
	booking, err := ct.bookings.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"booking": booking})
}

type updateBookingStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed"`
}

func (ct *BookingController) UpdateStatus(c *fiber.Ctx) error {
	var in updateBookingStatusInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	booking, err := ct.bookings.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "booking": booking})
}

func (ct *BookingController) Delete(c *fiber.Ctx) error {
	if err := ct.bookings.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Booking deleted successfully"})
}

func (ct *BookingController) Stats(c *fiber.Ctx) error {
	stats, err := ct.bookings.Stats()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"stats": stats})
}
