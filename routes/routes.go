package routes

import (
	"github.com/gofiber/fiber/v2"

	"garage-backend/controllers"
)

// Controllers bundles the handler set for route registration.
type Controllers struct {
	Auth       *controllers.AuthController
	Bookings   *controllers.BookingController
	JobCards   *controllers.JobCardController
	Inventory  *controllers.InventoryController
	Purchases  *controllers.PurchaseController
	Billing    *controllers.BillingController
	Staff      *controllers.StaffController
	Attendance *controllers.AttendanceController
}

// Register wires all HTTP routes.
func Register(app *fiber.App, ct Controllers) {
	api := app.Group("/api")

	api.Get("/health", controllers.HealthCheck)
	api.Post("/admin/login", ct.Auth.Login)

	// Bookings
	api.Post("/bookings", ct.Bookings.Create)
	api.Get("/bookings", ct.Bookings.List)
	api.Get("/bookings/:id", ct.Bookings.Get)
	api.Put("/bookings/:id", ct.Bookings.UpdateStatus)
	api.Delete("/bookings/:id", ct.Bookings.Delete)
	api.Get("/stats", ct.Bookings.Stats)

	// Job cards
	api.Post("/job-cards", ct.JobCards.Create)
	api.Get("/job-cards", ct.JobCards.List)
	api.Get("/job-cards/:id", ct.JobCards.Get)
	api.Put("/job-cards/:id", ct.JobCards.Update)
	api.Delete("/job-cards/:id", ct.JobCards.Delete)

	// Inventory (categories before :id so the path doesn't shadow)
	api.Post("/inventory/categories", ct.Inventory.CreateCategory)
	api.Get("/inventory/categories", ct.Inventory.ListCategories)
	api.Post("/inventory", ct.Inventory.CreateItem)
	api.Get("/inventory", ct.Inventory.List)
	api.Put("/inventory/:id", ct.Inventory.UpdateItem)
	api.Delete("/inventory/:id", ct.Inventory.DeleteItem)

	// Purchases (create + list only; purchases are immutable)
	api.Post("/purchases", ct.Purchases.Create)
	api.Get("/purchases", ct.Purchases.List)

	// Billing
	api.Post("/billing", ct.Billing.Create)
	api.Get("/billing", ct.Billing.List)
	api.Get("/billing/:id", ct.Billing.Get)
	api.Put("/billing/:id", ct.Billing.UpdateStatus)
	api.Delete("/billing/:id", ct.Billing.Delete)

	// Staff & attendance
	api.Post("/staff", ct.Staff.Create)
	api.Get("/staff", ct.Staff.List)
	api.Put("/staff/:id", ct.Staff.Update)
	api.Delete("/staff/:id", ct.Staff.Delete)

	api.Post("/attendance", ct.Attendance.Mark)
	api.Get("/attendance", ct.Attendance.List)
	api.Get("/salary-summary", ct.Attendance.SalarySummary)
}
