package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	log "github.com/sirupsen/logrus"

	"garage-backend/config"
	"garage-backend/controllers"
	"garage-backend/database"
	"garage-backend/middlewares"
	"garage-backend/routes"
	"garage-backend/services"
)

func main() {
	cfg := config.Load()

	// ---- Database
	db, err := database.Connect(cfg)
	if err != nil {
		log.WithError(err).Fatal("could not connect to database")
	}
	if err := database.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("could not migrate schema")
	}

	// ---- Services (single injected store handle, no globals)
	bookingSvc := services.NewBookingService(db)
	jobCardSvc := services.NewJobCardService(db)
	inventorySvc := services.NewInventoryService(db)
	billingSvc := services.NewBillingService(db, inventorySvc)
	staffSvc := services.NewStaffService(db)
	attendanceSvc := services.NewAttendanceService(db)

	// ---- Fiber app with global error handler + body limit
	app := fiber.New(fiber.Config{
		ErrorHandler: middlewares.ErrorHandler,
		BodyLimit:    cfg.BodyLimitBytes,
	})

	// ---- CORS
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: false, // using Bearer tokens, not cookies
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	// ---- Global rate limiter (applies to all routes; tune via env)
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: time.Duration(cfg.RateLimitSecs) * time.Second,
	}))

	// ---- Routes
	routes.Register(app, routes.Controllers{
		Auth:       controllers.NewAuthController(cfg),
		Bookings:   controllers.NewBookingController(bookingSvc),
		JobCards:   controllers.NewJobCardController(jobCardSvc),
		Inventory:  controllers.NewInventoryController(inventorySvc),
		Purchases:  controllers.NewPurchaseController(inventorySvc),
		Billing:    controllers.NewBillingController(billingSvc),
		Staff:      controllers.NewStaffController(staffSvc),
		Attendance: controllers.NewAttendanceController(attendanceSvc),
	})

	// ---- Start
	log.WithField("port", cfg.Port).Info("API server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
