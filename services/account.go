package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/utils"
)

type AccountStore interface {
	CreateAccount(ctx context.Context, user *models.User) error
	FindAccountByEmail(ctx context.Context, email string) (*models.User, error)
	FindAccount(ctx context.Context, id uint) (*models.User, error)
	FindAddresses(ctx context.Context, ids []uint) ([]models.Address, error)
	UpdateProfileImage(ctx context.Context, id uint, url string) error
}

type TokenIssuer interface {
	Issue(subject, role string) (string, *utils.Claims, error)
}

type SignupInput struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required"`
	AddressID *uint  `json:"address_id"`
}

type SigninInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AccountService struct {
	store   AccountStore
	tokens  TokenIssuer
	revoker Revoker
	photos  ObjectStorage
	now     func() time.Time
}

// NewAccountService builds the service. revoker and photos are optional.
func NewAccountService(store AccountStore, tokens TokenIssuer, revoker Revoker, photos ObjectStorage) *AccountService {
	return &AccountService{store: store, tokens: tokens, revoker: revoker, photos: photos, now: time.Now}
}

func (s *AccountService) Signup(ctx context.Context, in SignupInput) (*TokenResponse, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	role, err := models.ParseRole(in.Role)
	if err != nil {
		return nil, utils.WrapError(utils.ErrValidation, "role must be one of [guide tourist]", err)
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if in.AddressID != nil {
		addrs, err := s.store.FindAddresses(ctx, []uint{*in.AddressID})
		if err != nil {
			return nil, err
		}
		if len(addrs) == 0 {
			return nil, utils.Validation(fmt.Sprintf("Unknown address id %d.", *in.AddressID))
		}
	}

	_, err = s.store.FindAccountByEmail(ctx, email)
	if err == nil {
		return nil, utils.Conflict("Email already registered.")
	}
	if !errors.Is(err, utils.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:      in.Name,
		Email:     email,
		Password:  hash,
		Role:      role,
		AddressID: in.AddressID,
	}
	if err := s.store.CreateAccount(ctx, user); err != nil {
		return nil, err
	}
	return s.issue(user)
}

func (s *AccountService) Signin(ctx context.Context, in SigninInput) (*TokenResponse, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	user, err := s.store.FindAccountByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if errors.Is(err, utils.ErrNotFound) {
		return nil, utils.Unauthenticated("Incorrect email or password")
	}
	if err != nil {
		return nil, err
	}
	if !utils.CheckPassword(in.Password, user.Password) {
		return nil, utils.Unauthenticated("Incorrect email or password")
	}
	return s.issue(user)
}

// Logout revokes the token until it would have expired anyway. Without a
// denylist the call is only acknowledged.
func (s *AccountService) Logout(ctx context.Context, claims *utils.Claims) error {
	if s.revoker == nil || claims == nil || claims.ID == "" {
		return nil
	}
	ttl := claims.Remaining(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.revoker.Revoke(ctx, claims.ID, ttl)
}

func (s *AccountService) Profile(ctx context.Context, account *models.User) (*ProfileView, error) {
	user, err := s.store.FindAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	view := NewProfileView(user)
	return &view, nil
}

// UploadPhoto stores a new profile image and returns its URL.
func (s *AccountService) UploadPhoto(ctx context.Context, account *models.User, r io.Reader) (string, error) {
	if s.photos == nil {
		return "", utils.ErrStorageDisabled
	}
	url, err := s.photos.Store(ctx, r, "profiles", fmt.Sprintf("user-%d-%s", account.ID, uuid.NewString()))
	if err != nil {
		return "", fmt.Errorf("upload profile photo: %w", err)
	}
	if err := s.store.UpdateProfileImage(ctx, account.ID, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *AccountService) issue(user *models.User) (*TokenResponse, error) {
	token, _, err := s.tokens.Issue(user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
