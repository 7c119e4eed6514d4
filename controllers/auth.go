package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/tourbook/middleware"
	"github.com/meinhoongagan/tourbook/services"
	"github.com/meinhoongagan/tourbook/utils"
)

type AuthController struct {
	accounts *services.AccountService
}

func NewAuthController(accounts *services.AccountService) *AuthController {
	return &AuthController{accounts: accounts}
}

// Signup handles account registration
func (h *AuthController) Signup(c *fiber.Ctx) error {
	var in services.SignupInput
	if err := parseBody(c, &in); err != nil {
		return utils.SendError(c, err)
	}
	resp, err := h.accounts.Signup(c.UserContext(), in)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(resp)
}

// Signin handles authentication
func (h *AuthController) Signin(c *fiber.Ctx) error {
	var in services.SigninInput
	if err := parseBody(c, &in); err != nil {
		return utils.SendError(c, err)
	}
	resp, err := h.accounts.Signin(c.UserContext(), in)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthController) Me(c *fiber.Ctx) error {
	return c.JSON(middleware.Account(c))
}

func (h *AuthController) Logout(c *fiber.Ctx) error {
	if err := h.accounts.Logout(c.UserContext(), middleware.Claims(c)); err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Profile returns the caller's name, email and address
func (h *AuthController) Profile(c *fiber.Ctx) error {
	profile, err := h.accounts.Profile(c.UserContext(), middleware.Account(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(profile)
}

// UploadPhoto replaces the caller's profile picture
func (h *AuthController) UploadPhoto(c *fiber.Ctx) error {
	photo, err := openPhoto(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	defer photo.Close()

	url, err := h.accounts.UploadPhoto(c.UserContext(), middleware.Account(c), photo)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(fiber.Map{"profile_image": url})
}
