// Package services holds the application logic behind the HTTP handlers:
// the authorization guard, the booking engine, the rating aggregator and
// the CRUD flows around them. Dependencies are narrow interfaces satisfied
// by *store.Store.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/utils"
)

type AccountFinder interface {
	FindAccountByEmail(ctx context.Context, email string) (*models.User, error)
}

type ResumeChecker interface {
	GuideHasResume(ctx context.Context, guideID uint) (bool, error)
}

type TokenVerifier interface {
	Verify(token string) (*utils.Claims, error)
}

// Revoker tracks logged-out token ids.
type Revoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Guard resolves bearer tokens to accounts and answers the role and
// resume checks built on top of that.
type Guard struct {
	accounts AccountFinder
	resumes  ResumeChecker
	tokens   TokenVerifier
	revoked  Revoker
}

// NewGuard builds a guard. revoked may be nil when no denylist is configured.
func NewGuard(accounts AccountFinder, resumes ResumeChecker, tokens TokenVerifier, revoked Revoker) *Guard {
	return &Guard{accounts: accounts, resumes: resumes, tokens: tokens, revoked: revoked}
}

// Authenticate verifies a raw token and resolves its subject.
func (g *Guard) Authenticate(ctx context.Context, token string) (*models.User, *utils.Claims, error) {
	if token == "" {
		return nil, nil, utils.Unauthenticated("Missing token")
	}
	claims, err := g.tokens.Verify(token)
	if err != nil {
		return nil, nil, err
	}
	account, err := g.ResolveClaims(ctx, claims)
	if err != nil {
		return nil, nil, err
	}
	return account, claims, nil
}

// ResolveClaims turns already verified claims into an account, rejecting
// revoked tokens.
func (g *Guard) ResolveClaims(ctx context.Context, claims *utils.Claims) (*models.User, error) {
	if claims == nil {
		return nil, utils.Unauthenticated("Invalid token")
	}
	if g.revoked != nil && claims.ID != "" {
		revoked, err := g.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, utils.Unauthenticated("Token has been revoked")
		}
	}
	return g.ResolveSubject(ctx, claims.Subject)
}

// ResolveSubject looks the account up by email. An unknown subject is an
// authentication failure, not a missing resource.
func (g *Guard) ResolveSubject(ctx context.Context, email string) (*models.User, error) {
	account, err := g.accounts.FindAccountByEmail(ctx, email)
	if errors.Is(err, utils.ErrNotFound) {
		return nil, utils.WrapError(utils.ErrUnauthenticated, "User not found", err)
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

func RequireRole(account *models.User, role models.Role) (*models.User, error) {
	if account == nil {
		return nil, utils.Unauthenticated("Not authenticated")
	}
	if account.Role != role {
		return nil, utils.Forbidden("Only " + string(role) + " accounts can perform this action")
	}
	return account, nil
}

// RequireGuideWithResume gates tour management and booking confirmation.
func (g *Guard) RequireGuideWithResume(ctx context.Context, account *models.User) (*models.User, error) {
	account, err := RequireRole(account, models.RoleGuide)
	if err != nil {
		return nil, err
	}
	ok, err := g.resumes.GuideHasResume(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, utils.Forbidden("You must upload a resume before performing this action")
	}
	return account, nil
}
