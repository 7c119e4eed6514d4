package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/tourbook/middleware"
	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/services"
	"github.com/meinhoongagan/tourbook/utils"
)

type TourController struct {
	tours *services.TourService
}

func NewTourController(tours *services.TourService) *TourController {
	return &TourController{tours: tours}
}

func (h *TourController) Create(c *fiber.Ctx) error {
	var in services.TourInput
	if err := parseBody(c, &in); err != nil {
		return utils.SendError(c, err)
	}
	view, err := h.tours.Create(c.UserContext(), middleware.Account(c), in)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (h *TourController) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	view, err := h.tours.Get(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(view)
}

func (h *TourController) List(c *fiber.Ctx) error {
	f := models.TourFilter{
		Skip:  c.QueryInt("skip", 0),
		Limit: c.QueryInt("limit", 0),
	}
	var err error
	if f.GuideID, err = queryUint(c, "guide_id"); err != nil {
		return utils.SendError(c, err)
	}
	if f.MinPrice, err = queryFloat(c, "min_price"); err != nil {
		return utils.SendError(c, err)
	}
	if f.MaxPrice, err = queryFloat(c, "max_price"); err != nil {
		return utils.SendError(c, err)
	}
	if f.DateFrom, err = queryDate(c, "date_from"); err != nil {
		return utils.SendError(c, err)
	}
	if f.DateTo, err = queryDate(c, "date_to"); err != nil {
		return utils.SendError(c, err)
	}
	if f.LanguageID, err = queryUint(c, "language_id"); err != nil {
		return utils.SendError(c, err)
	}
	if f.AddressID, err = queryUint(c, "address_id"); err != nil {
		return utils.SendError(c, err)
	}

	views, err := h.tours.List(c.UserContext(), f)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(views)
}

func (h *TourController) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	var in services.TourInput
	if err := parseBody(c, &in); err != nil {
		return utils.SendError(c, err)
	}
	view, err := h.tours.Update(c.UserContext(), middleware.Account(c), id, in)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(view)
}

func (h *TourController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := h.tours.Delete(c.UserContext(), middleware.Account(c), id); err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Tour deleted"})
}

// AddPhoto appends an uploaded image to the tour's photos
func (h *TourController) AddPhoto(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	photo, err := openPhoto(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	defer photo.Close()

	added, err := h.tours.AddPhoto(c.UserContext(), middleware.Account(c), id, photo)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(added)
}
