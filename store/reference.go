package store

import (
	"context"
	"errors"

	"github.com/meinhoongagan/tourbook/db"
	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/utils"
	"gorm.io/gorm"
)

func (s *Store) CreateRegion(ctx context.Context, region *models.Region) error {
	return translate(s.db.WithContext(ctx).Create(region).Error, "Region")
}

func (s *Store) ListRegions(ctx context.Context) ([]models.Region, error) {
	var regions []models.Region
	err := s.db.WithContext(ctx).Order("id ASC").Find(&regions).Error
	return regions, translate(err, "Region")
}

func (s *Store) FindRegion(ctx context.Context, id uint) (*models.Region, error) {
	var region models.Region
	if err := s.db.WithContext(ctx).Scopes(db.WithID(id)).First(&region).Error; err != nil {
		return nil, translate(err, "Region")
	}
	return &region, nil
}

func (s *Store) RenameRegion(ctx context.Context, id uint, name string) (*models.Region, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Region{}).
		Scopes(db.WithID(id)).
		Update("name", name)
	if res.Error != nil {
		return nil, translate(res.Error, "Region")
	}
	if res.RowsAffected == 0 {
		return nil, translate(gorm.ErrRecordNotFound, "Region")
	}
	return &models.Region{ID: id, Name: name}, nil
}

// DeleteRegion refuses regions that cities or addresses still point at.
func (s *Store) DeleteRegion(ctx context.Context, id uint) error {
	return s.deleteReference(ctx, &models.Region{}, id, "Region")
}

func (s *Store) CreateCity(ctx context.Context, city *models.City) error {
	return translate(s.db.WithContext(ctx).Omit("Region").Create(city).Error, "City")
}

func (s *Store) ListCities(ctx context.Context, regionID *uint) ([]models.City, error) {
	q := s.db.WithContext(ctx)
	if regionID != nil {
		q = q.Where("region_id = ?", *regionID)
	}
	var cities []models.City
	err := q.Order("id ASC").Find(&cities).Error
	return cities, translate(err, "City")
}

func (s *Store) FindCity(ctx context.Context, id uint) (*models.City, error) {
	var city models.City
	if err := s.db.WithContext(ctx).Scopes(db.WithID(id)).First(&city).Error; err != nil {
		return nil, translate(err, "City")
	}
	return &city, nil
}

func (s *Store) CreateAddress(ctx context.Context, address *models.Address) error {
	return translate(s.db.WithContext(ctx).Omit("Region", "City").Create(address).Error, "Address")
}

func (s *Store) ListAddresses(ctx context.Context) ([]models.Address, error) {
	var addresses []models.Address
	err := s.db.WithContext(ctx).
		Preload("Region").
		Preload("City").
		Order("id ASC").
		Find(&addresses).Error
	return addresses, translate(err, "Address")
}

func (s *Store) FindAddress(ctx context.Context, id uint) (*models.Address, error) {
	var address models.Address
	err := s.db.WithContext(ctx).
		Preload("Region").
		Preload("City").
		Scopes(db.WithID(id)).
		First(&address).Error
	if err != nil {
		return nil, translate(err, "Address")
	}
	return &address, nil
}

// FindAddresses returns the subset of ids that exist.
func (s *Store) FindAddresses(ctx context.Context, ids []uint) ([]models.Address, error) {
	var addresses []models.Address
	if len(ids) == 0 {
		return addresses, nil
	}
	err := s.db.WithContext(ctx).Scopes(db.WithIDs(ids...)).Order("id ASC").Find(&addresses).Error
	return addresses, translate(err, "Address")
}

func (s *Store) CreateLanguage(ctx context.Context, language *models.Language) error {
	return translate(s.db.WithContext(ctx).Create(language).Error, "Language")
}

func (s *Store) ListLanguages(ctx context.Context) ([]models.Language, error) {
	var languages []models.Language
	err := s.db.WithContext(ctx).Order("id ASC").Find(&languages).Error
	return languages, translate(err, "Language")
}

func (s *Store) FindLanguage(ctx context.Context, id uint) (*models.Language, error) {
	var language models.Language
	if err := s.db.WithContext(ctx).Scopes(db.WithID(id)).First(&language).Error; err != nil {
		return nil, translate(err, "Language")
	}
	return &language, nil
}

func (s *Store) FindLanguages(ctx context.Context, ids []uint) ([]models.Language, error) {
	var languages []models.Language
	if len(ids) == 0 {
		return languages, nil
	}
	err := s.db.WithContext(ctx).Scopes(db.WithIDs(ids...)).Order("id ASC").Find(&languages).Error
	return languages, translate(err, "Language")
}

// DeleteLanguage refuses languages still linked to resumes, tours or bookings.
func (s *Store) DeleteLanguage(ctx context.Context, id uint) error {
	return s.deleteReference(ctx, &models.Language{}, id, "Language")
}

func (s *Store) deleteReference(ctx context.Context, model interface{}, id uint, entity string) error {
	res := s.db.WithContext(ctx).Scopes(db.WithID(id)).Delete(model)
	if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
		return utils.WrapError(utils.ErrConflict, entity+" is still in use and cannot be deleted.", res.Error)
	}
	if res.Error != nil {
		return translate(res.Error, entity)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, entity)
	}
	return nil
}
