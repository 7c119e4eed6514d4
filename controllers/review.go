package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/tourbook/middleware"
	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/services"
	"github.com/meinhoongagan/tourbook/utils"
)

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// CreateReview adds a tourist's review of a guide resume
func (h *ReviewController) CreateReview(c *fiber.Ctx) error {
	var in services.ReviewInput
	if err := parseBody(c, &in); err != nil {
		return utils.SendError(c, err)
	}
	review, err := h.reviews.CreateReview(c.UserContext(), middleware.Account(c), in)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

func (h *ReviewController) GetReview(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	review, err := h.reviews.GetReview(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(review)
}

func (h *ReviewController) ListReviews(c *fiber.Ctx) error {
	f, err := reviewFilter(c, "resume_id")
	if err != nil {
		return utils.SendError(c, err)
	}
	reviews, err := h.reviews.ListReviews(c.UserContext(), f)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(reviews)
}

// CreateTourReview adds a tourist's review of a tour
func (h *ReviewController) CreateTourReview(c *fiber.Ctx) error {
	var in services.TourReviewInput
	if err := parseBody(c, &in); err != nil {
		return utils.SendError(c, err)
	}
	review, err := h.reviews.CreateTourReview(c.UserContext(), middleware.Account(c), in)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

func (h *ReviewController) GetTourReview(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	review, err := h.reviews.GetTourReview(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(review)
}

func (h *ReviewController) ListTourReviews(c *fiber.Ctx) error {
	f, err := reviewFilter(c, "tour_id")
	if err != nil {
		return utils.SendError(c, err)
	}
	reviews, err := h.reviews.ListTourReviews(c.UserContext(), f)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(reviews)
}

func reviewFilter(c *fiber.Ctx, targetKey string) (models.ReviewFilter, error) {
	f := models.ReviewFilter{
		Skip:  c.QueryInt("skip", 0),
		Limit: c.QueryInt("limit", 0),
	}
	var err error
	if f.TargetID, err = queryUint(c, targetKey); err != nil {
		return f, err
	}
	if f.MinRating, err = queryFloat(c, "min_rating"); err != nil {
		return f, err
	}
	return f, nil
}
