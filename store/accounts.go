package store

import (
	"context"

	"github.com/meinhoongagan/tourbook/db"
	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/utils"
)

func (s *Store) CreateAccount(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Omit("Address").Create(user).Error
	if err != nil {
		return translate(err, "Account")
	}
	return nil
}

func (s *Store) FindAccountByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err, "Account")
	}
	return &user, nil
}

func (s *Store) FindAccount(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Address").
		Preload("Address.Region").
		Preload("Address.City").
		First(&user, id).Error
	if err != nil {
		return nil, translate(err, "Account")
	}
	return &user, nil
}

// FindAccounts loads the accounts with the given ids in one round trip.
// Unknown ids are skipped.
func (s *Store) FindAccounts(ctx context.Context, ids []uint) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	err := s.db.WithContext(ctx).
		Scopes(db.WithIDs(ids...)).
		Order("id ASC").
		Find(&users).Error
	return users, translate(err, "Account")
}

func (s *Store) UpdateProfileImage(ctx context.Context, id uint, url string) error {
	res := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("profile_image", url)
	if res.Error != nil {
		return translate(res.Error, "Account")
	}
	if res.RowsAffected == 0 {
		return utils.NotFound("Account not found.")
	}
	return nil
}
