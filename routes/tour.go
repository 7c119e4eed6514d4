package routes

import "github.com/gofiber/fiber/v2"

// SetupTourRoutes configures tour routes. Managing tours needs a guide with
// a resume.
func SetupTourRoutes(app *fiber.App, h Handlers) {
	tours := app.Group("/tours")
	manage := []fiber.Handler{h.Auth.Protected(), h.Auth.RequireGuideWithResume()}

	tours.Post("/", append(manage, h.Tours.Create)...)
	tours.Put("/:id", append(manage, h.Tours.Update)...)
	tours.Delete("/:id", append(manage, h.Tours.Delete)...)
	tours.Post("/:id/photos", append(manage, h.Tours.AddPhoto)...)

	tours.Get("/", h.Tours.List)
	tours.Get("/:id", h.Tours.Get)
}
