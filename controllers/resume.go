package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/tourbook/middleware"
	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/services"
	"github.com/meinhoongagan/tourbook/utils"
)

type ResumeController struct {
	resumes *services.ResumeService
}

func NewResumeController(resumes *services.ResumeService) *ResumeController {
	return &ResumeController{resumes: resumes}
}

func (h *ResumeController) Create(c *fiber.Ctx) error {
	var in services.ResumeInput
	if err := parseBody(c, &in); err != nil {
		return utils.SendError(c, err)
	}
	view, err := h.resumes.Create(c.UserContext(), middleware.Account(c), in)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (h *ResumeController) Mine(c *fiber.Ctx) error {
	view, err := h.resumes.Mine(c.UserContext(), middleware.Account(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(view)
}

func (h *ResumeController) UpdateMine(c *fiber.Ctx) error {
	var in services.ResumeInput
	if err := parseBody(c, &in); err != nil {
		return utils.SendError(c, err)
	}
	view, err := h.resumes.UpdateMine(c.UserContext(), middleware.Account(c), in)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(view)
}

func (h *ResumeController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := h.resumes.Delete(c.UserContext(), middleware.Account(c), id); err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Resume deleted"})
}

func (h *ResumeController) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	view, err := h.resumes.Get(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(view)
}

func (h *ResumeController) Rating(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	stats, err := h.resumes.Rating(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(stats)
}

// List supports skip, limit, guide_id, min_price, max_price, price_type,
// min_rating, max_rating, language_ids and address_ids.
func (h *ResumeController) List(c *fiber.Ctx) error {
	f := models.ResumeFilter{
		Skip:      c.QueryInt("skip", 0),
		Limit:     c.QueryInt("limit", 0),
		PriceType: c.Query("price_type"),
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
	if f.MinRating, err = queryFloat(c, "min_rating"); err != nil {
		return utils.SendError(c, err)
	}
	if f.MaxRating, err = queryFloat(c, "max_rating"); err != nil {
		return utils.SendError(c, err)
	}
	if f.LanguageIDs, err = queryUintList(c, "language_ids"); err != nil {
		return utils.SendError(c, err)
	}
	if f.AddressIDs, err = queryUintList(c, "address_ids"); err != nil {
		return utils.SendError(c, err)
	}

	views, err := h.resumes.List(c.UserContext(), f)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(views)
}
