package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/services"
	"github.com/meinhoongagan/tourbook/utils"
)

const (
	accountKey = "account"
	claimsKey  = "claims"
)

// Auth resolves bearer tokens into accounts for the routes behind it.
type Auth struct {
	guard  *services.Guard
	secret []byte
}

func NewAuth(guard *services.Guard, secret []byte) *Auth {
	return &Auth{guard: guard, secret: secret}
}

// Protected verifies the bearer token and stores the caller's account and
// claims in the request locals.
func (a *Auth) Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:    a.secret,
		SigningMethod: "HS256",
		ErrorHandler:  jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return utils.SendError(c, utils.Unauthenticated("Invalid token"))
			}
			mapClaims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return utils.SendError(c, utils.Unauthenticated("Invalid token claims"))
			}
			claims, err := utils.ClaimsFromMap(mapClaims)
			if err != nil {
				return utils.SendError(c, err)
			}

			account, err := a.guard.ResolveClaims(c.UserContext(), claims)
			if err != nil {
				return utils.SendError(c, err)
			}

			c.Locals(accountKey, account)
			c.Locals(claimsKey, claims)
			return c.Next()
		},
	})
}

// RequireGuideWithResume lets through guides that have published a resume.
func (a *Auth) RequireGuideWithResume() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := a.guard.RequireGuideWithResume(c.UserContext(), Account(c)); err != nil {
			return utils.SendError(c, err)
		}
		return c.Next()
	}
}

// Account returns the caller resolved by Protected, or nil on public routes.
func Account(c *fiber.Ctx) *models.User {
	account, _ := c.Locals(accountKey).(*models.User)
	return account
}

func Claims(c *fiber.Ctx) *utils.Claims {
	claims, _ := c.Locals(claimsKey).(*utils.Claims)
	return claims
}

// jwtError handles JWT errors
func jwtError(c *fiber.Ctx, err error) error {
	return utils.SendError(c, utils.WrapError(utils.ErrUnauthenticated, "Invalid or expired token", err))
}
