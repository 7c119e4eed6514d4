package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/services/servicetest"
	"github.com/meinhoongagan/tourbook/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupSigninLogout(t *testing.T) {
	ctx := context.Background()
	store := servicetest.NewStore()
	denylist := servicetest.NewDenylist()
	tokens := utils.NewTokenIssuer("secret", time.Hour)
	accounts := NewAccountService(store, tokens, denylist, nil)
	guard := NewGuard(store, store, tokens, denylist)

	resp, err := accounts.Signup(ctx, SignupInput{
		Name: "Gia", Email: "Gia@Example.com", Password: "hunter22", Role: "guide",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)

	account, claims, err := guard.Authenticate(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "gia@example.com", account.Email)
	assert.Equal(t, models.RoleGuide, account.Role)
	assert.NotEqual(t, "hunter22", account.Password)

	_, err = accounts.Signup(ctx, SignupInput{
		Name: "Gia", Email: "gia@example.com", Password: "hunter22", Role: "tourist",
	})
	assert.True(t, errors.Is(err, utils.ErrConflict))

	signin, err := accounts.Signin(ctx, SigninInput{Email: "gia@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, signin.AccessToken)

	_, err = accounts.Signin(ctx, SigninInput{Email: "gia@example.com", Password: "wrong"})
	assert.True(t, errors.Is(err, utils.ErrUnauthenticated))
	_, err = accounts.Signin(ctx, SigninInput{Email: "nobody@example.com", Password: "wrong"})
	assert.True(t, errors.Is(err, utils.ErrUnauthenticated))

	require.NoError(t, accounts.Logout(ctx, claims))
	assert.Contains(t, denylist.Revoked, claims.ID)
	_, _, err = guard.Authenticate(ctx, resp.AccessToken)
	assert.True(t, errors.Is(err, utils.ErrUnauthenticated))
}

func TestSignupValidation(t *testing.T) {
	ctx := context.Background()
	store := servicetest.NewStore()
	accounts := NewAccountService(store, utils.NewTokenIssuer("secret", time.Hour), nil, nil)

	_, err := accounts.Signup(ctx, SignupInput{Name: "X", Email: "x@example.com", Password: "hunter22", Role: "admin"})
	assert.True(t, errors.Is(err, utils.ErrValidation))

	_, err = accounts.Signup(ctx, SignupInput{Name: "X", Email: "not-an-email", Password: "hunter22", Role: "guide"})
	assert.True(t, errors.Is(err, utils.ErrValidation))

	missing := uint(42)
	_, err = accounts.Signup(ctx, SignupInput{Name: "X", Email: "x@example.com", Password: "hunter22", Role: "guide", AddressID: &missing})
	assert.True(t, errors.Is(err, utils.ErrValidation))
	assert.Empty(t, store.Accounts)

	assert.NoError(t, accounts.Logout(ctx, &utils.Claims{}), "logout without a denylist is acknowledged")
}

func TestProfileAndPhoto(t *testing.T) {
	ctx := context.Background()
	store := servicetest.NewStore()
	store.Addresses[3] = &models.Address{ID: 3, RegionID: 1, CityID: 2}
	addressID := uint(3)
	store.Accounts[10] = &models.User{ID: 10, Name: "Tom", Email: "tom@example.com", Role: models.RoleTourist, AddressID: &addressID}
	storage := &servicetest.Storage{}

	accounts := NewAccountService(store, utils.NewTokenIssuer("secret", time.Hour), nil, storage)
	profile, err := accounts.Profile(ctx, store.Accounts[10])
	require.NoError(t, err)
	assert.Equal(t, "Tom", profile.UserName)
	require.NotNil(t, profile.Address)
	assert.Equal(t, uint(3), profile.Address.ID)

	url, err := accounts.UploadPhoto(ctx, store.Accounts[10], strings.NewReader("png"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.test/profiles/user-10-"))
	assert.Equal(t, url, store.Accounts[10].ProfileImage)

	disabled := NewAccountService(store, utils.NewTokenIssuer("secret", time.Hour), nil, nil)
	_, err = disabled.UploadPhoto(ctx, store.Accounts[10], strings.NewReader("png"))
	assert.ErrorIs(t, err, utils.ErrStorageDisabled)
}
