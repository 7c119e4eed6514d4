package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/tourbook/middleware"
	"github.com/meinhoongagan/tourbook/models"
)

// SetupAuthRoutes configures signup, signin and profile routes
func SetupAuthRoutes(app *fiber.App, h Handlers) {
	auth := app.Group("/auth")
	auth.Post("/signup", h.Accounts.Signup)
	auth.Post("/signin", h.Accounts.Signin)
	auth.Get("/me", h.Auth.Protected(), h.Accounts.Me)
	auth.Post("/logout", h.Auth.Protected(), h.Accounts.Logout)

	profile := app.Group("/profile", h.Auth.Protected())
	profile.Get("/guide", middleware.RequireRole(models.RoleGuide), h.Accounts.Profile)
	profile.Get("/tourist", middleware.RequireRole(models.RoleTourist), h.Accounts.Profile)
	profile.Post("/photo", h.Accounts.UploadPhoto)
}
