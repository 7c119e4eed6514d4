package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/tourbook/controllers"
	"github.com/meinhoongagan/tourbook/middleware"
)

// Handlers bundles everything the route tables need.
type Handlers struct {
	Auth       *middleware.Auth
	Accounts   *controllers.AuthController
	References *controllers.ReferenceController
	Resumes    *controllers.ResumeController
	Tours      *controllers.TourController
	Reviews    *controllers.ReviewController
	Bookings   *controllers.BookingController

	// PublicBookingFetch mounts the booking fetch-by-id routes without
	// authentication.
	PublicBookingFetch bool
}

func Setup(app *fiber.App, h Handlers) {
	SetupAuthRoutes(app, h)
	SetupReferenceRoutes(app, h)
	SetupResumeRoutes(app, h)
	SetupTourRoutes(app, h)
	SetupReviewRoutes(app, h)
	SetupBookingRoutes(app, h)
}
