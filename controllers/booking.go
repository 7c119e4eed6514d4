package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/tourbook/middleware"
	"github.com/meinhoongagan/tourbook/services"
	"github.com/meinhoongagan/tourbook/utils"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

func (h *BookingController) RequestGuideBooking(c *fiber.Ctx) error {
	var in services.GuideBookingInput
	if err := parseBody(c, &in); err != nil {
		return utils.SendError(c, err)
	}
	view, err := h.bookings.RequestGuideBooking(c.UserContext(), middleware.Account(c), in)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(view)
}

func (h *BookingController) RequestTourBooking(c *fiber.Ctx) error {
	var in services.TourBookingInput
	if err := parseBody(c, &in); err != nil {
		return utils.SendError(c, err)
	}
	view, err := h.bookings.RequestTourBooking(c.UserContext(), middleware.Account(c), in)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(view)
}

func (h *BookingController) ConfirmGuideBooking(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	view, err := h.bookings.ConfirmGuideBooking(c.UserContext(), middleware.Account(c), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Booking confirmed", "booking": view})
}

func (h *BookingController) ConfirmTourBooking(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	view, err := h.bookings.ConfirmTourBooking(c.UserContext(), middleware.Account(c), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Booking confirmed", "booking": view})
}

func (h *BookingController) IncomingGuideBookings(c *fiber.Ctx) error {
	views, err := h.bookings.ListIncomingGuideBookings(c.UserContext(), middleware.Account(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(views)
}

func (h *BookingController) IncomingTourBookings(c *fiber.Ctx) error {
	views, err := h.bookings.ListIncomingTourBookings(c.UserContext(), middleware.Account(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(views)
}

func (h *BookingController) OwnGuideBookings(c *fiber.Ctx) error {
	views, err := h.bookings.ListOwnGuideBookings(c.UserContext(), middleware.Account(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(views)
}

func (h *BookingController) OwnTourBookings(c *fiber.Ctx) error {
	views, err := h.bookings.ListOwnTourBookings(c.UserContext(), middleware.Account(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(views)
}

// GetGuideBooking answers the booking to its participants, or to anyone when
// the route is mounted without authentication.
func (h *BookingController) GetGuideBooking(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	view, err := h.bookings.GetGuideBooking(c.UserContext(), middleware.Account(c), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(view)
}

func (h *BookingController) GetTourBooking(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	view, err := h.bookings.GetTourBooking(c.UserContext(), middleware.Account(c), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(view)
}
