package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/services"
	"github.com/meinhoongagan/tourbook/utils"
)

// RequireRole checks if the caller has the required role
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := services.RequireRole(Account(c), role); err != nil {
			return utils.SendError(c, err)
		}
		return c.Next()
	}
}
