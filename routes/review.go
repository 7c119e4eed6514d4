package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/tourbook/middleware"
	"github.com/meinhoongagan/tourbook/models"
)

func SetupReviewRoutes(app *fiber.App, h Handlers) {
	touristOnly := []fiber.Handler{h.Auth.Protected(), middleware.RequireRole(models.RoleTourist)}

	app.Post("/reviews", append(touristOnly, h.Reviews.CreateReview)...)
	app.Get("/reviews", h.Reviews.ListReviews)
	app.Get("/reviews/:id", h.Reviews.GetReview)

	app.Post("/tour-reviews", append(touristOnly, h.Reviews.CreateTourReview)...)
	app.Get("/tour-reviews", h.Reviews.ListTourReviews)
	app.Get("/tour-reviews/:id", h.Reviews.GetTourReview)
}
