package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/services/servicetest"
	"github.com/meinhoongagan/tourbook/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardFixture() (*Guard, *servicetest.Store, *servicetest.Denylist, *utils.TokenIssuer) {
	store := servicetest.NewStore()
	store.Accounts[5] = &models.User{ID: 5, Email: "gia@example.com", Role: models.RoleGuide}
	store.Accounts[10] = &models.User{ID: 10, Email: "tom@example.com", Role: models.RoleTourist}
	denylist := servicetest.NewDenylist()
	tokens := utils.NewTokenIssuer("secret", time.Hour)
	return NewGuard(store, store, tokens, denylist), store, denylist, tokens
}

func TestAuthenticate(t *testing.T) {
	guard, _, _, tokens := newGuardFixture()
	ctx := context.Background()

	token, _, err := tokens.Issue("tom@example.com", "tourist")
	require.NoError(t, err)

	account, claims, err := guard.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(10), account.ID)
	assert.Equal(t, "tourist", claims.Role)

	_, _, err = guard.Authenticate(ctx, "")
	assert.True(t, errors.Is(err, utils.ErrUnauthenticated))

	_, _, err = guard.Authenticate(ctx, "not-a-token")
	assert.True(t, errors.Is(err, utils.ErrUnauthenticated))
}

func TestAuthenticateUnknownSubjectIsUnauthenticated(t *testing.T) {
	guard, _, _, tokens := newGuardFixture()

	token, _, err := tokens.Issue("ghost@example.com", "guide")
	require.NoError(t, err)

	_, _, err = guard.Authenticate(context.Background(), token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrUnauthenticated))
	assert.Equal(t, 401, utils.HTTPStatus(err))
}

func TestAuthenticateRevokedToken(t *testing.T) {
	guard, _, denylist, tokens := newGuardFixture()
	ctx := context.Background()

	token, claims, err := tokens.Issue("gia@example.com", "guide")
	require.NoError(t, err)
	require.NoError(t, denylist.Revoke(ctx, claims.ID, time.Hour))

	_, _, err = guard.Authenticate(ctx, token)
	assert.True(t, errors.Is(err, utils.ErrUnauthenticated))
}

func TestRequireRole(t *testing.T) {
	tourist := &models.User{ID: 10, Role: models.RoleTourist}

	got, err := RequireRole(tourist, models.RoleTourist)
	require.NoError(t, err)
	assert.Same(t, tourist, got)

	_, err = RequireRole(tourist, models.RoleGuide)
	assert.True(t, errors.Is(err, utils.ErrForbidden))

	_, err = RequireRole(nil, models.RoleGuide)
	assert.True(t, errors.Is(err, utils.ErrUnauthenticated))
}

func TestRequireGuideWithResume(t *testing.T) {
	guard, store, _, _ := newGuardFixture()
	ctx := context.Background()
	guide := store.Accounts[5]

	_, err := guard.RequireGuideWithResume(ctx, guide)
	assert.True(t, errors.Is(err, utils.ErrForbidden), "no resume yet")

	store.Resumes[1] = &models.Resume{ID: 1, GuideID: guide.ID}
	got, err := guard.RequireGuideWithResume(ctx, guide)
	require.NoError(t, err)
	assert.Equal(t, guide.ID, got.ID)

	_, err = guard.RequireGuideWithResume(ctx, store.Accounts[10])
	assert.True(t, errors.Is(err, utils.ErrForbidden))
}
