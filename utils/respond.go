package utils

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// SendError writes err with its mapped status. Internal failures are logged
// here and answered with a generic body.
func SendError(c *fiber.Ctx, err error) error {
	status := HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(NewErrorResponse(err))
}
