package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/tourbook/middleware"
	"github.com/meinhoongagan/tourbook/models"
)

// SetupBookingRoutes configures the booking routes. Tourists request and
// list their own bookings; guides with a resume confirm and list incoming
// ones.
func SetupBookingRoutes(app *fiber.App, h Handlers) {
	bookings := app.Group("/bookings")
	tourist := []fiber.Handler{h.Auth.Protected(), middleware.RequireRole(models.RoleTourist)}
	guide := []fiber.Handler{h.Auth.Protected(), h.Auth.RequireGuideWithResume()}

	bookings.Post("/guides", append(tourist, h.Bookings.RequestGuideBooking)...)
	bookings.Post("/tours", append(tourist, h.Bookings.RequestTourBooking)...)

	bookings.Put("/guides/:id/confirm", append(guide, h.Bookings.ConfirmGuideBooking)...)
	bookings.Put("/tour/:id/confirm", append(guide, h.Bookings.ConfirmTourBooking)...)
	bookings.Put("/tours/:id/confirm", append(guide, h.Bookings.ConfirmTourBooking)...)

	bookings.Get("/guides/guide/me", append(guide, h.Bookings.IncomingGuideBookings)...)
	bookings.Get("/tours/guide/me", append(guide, h.Bookings.IncomingTourBookings)...)
	bookings.Get("/guides/tourist/me", append(tourist, h.Bookings.OwnGuideBookings)...)
	bookings.Get("/tours/tourist/me", append(tourist, h.Bookings.OwnTourBookings)...)

	if h.PublicBookingFetch {
		bookings.Get("/guides/:id", h.Bookings.GetGuideBooking)
		bookings.Get("/tours/:id", h.Bookings.GetTourBooking)
		return
	}
	bookings.Get("/guides/:id", h.Auth.Protected(), h.Bookings.GetGuideBooking)
	bookings.Get("/tours/:id", h.Auth.Protected(), h.Bookings.GetTourBooking)
}
