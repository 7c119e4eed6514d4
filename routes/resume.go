package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/tourbook/middleware"
	"github.com/meinhoongagan/tourbook/models"
)

// SetupResumeRoutes configures guide resume routes. /me is registered ahead
// of /:id.
func SetupResumeRoutes(app *fiber.App, h Handlers) {
	resumes := app.Group("/resumes")
	guideOnly := []fiber.Handler{h.Auth.Protected(), middleware.RequireRole(models.RoleGuide)}

	resumes.Post("/", append(guideOnly, h.Resumes.Create)...)
	resumes.Get("/me", append(guideOnly, h.Resumes.Mine)...)
	resumes.Put("/me", append(guideOnly, h.Resumes.UpdateMine)...)
	resumes.Delete("/:id", append(guideOnly, h.Resumes.Delete)...)

	resumes.Get("/", h.Resumes.List)
	resumes.Get("/:id", h.Resumes.Get)
	resumes.Get("/:id/rating", h.Resumes.Rating)
}
