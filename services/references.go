package services

import (
	"context"
	"fmt"

	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/utils"
)

type ReferenceStore interface {
	CreateRegion(ctx context.Context, region *models.Region) error
	ListRegions(ctx context.Context) ([]models.Region, error)
	FindRegion(ctx context.Context, id uint) (*models.Region, error)
	RenameRegion(ctx context.Context, id uint, name string) (*models.Region, error)
	DeleteRegion(ctx context.Context, id uint) error
	CreateCity(ctx context.Context, city *models.City) error
	ListCities(ctx context.Context, regionID *uint) ([]models.City, error)
	FindCity(ctx context.Context, id uint) (*models.City, error)
	CreateAddress(ctx context.Context, address *models.Address) error
	ListAddresses(ctx context.Context) ([]models.Address, error)
	FindAddress(ctx context.Context, id uint) (*models.Address, error)
	FindAddresses(ctx context.Context, ids []uint) ([]models.Address, error)
	CreateLanguage(ctx context.Context, language *models.Language) error
	ListLanguages(ctx context.Context) ([]models.Language, error)
	FindLanguage(ctx context.Context, id uint) (*models.Language, error)
	DeleteLanguage(ctx context.Context, id uint) error
	FindLanguages(ctx context.Context, ids []uint) ([]models.Language, error)
}

type RegionInput struct {
	Name string `json:"region" validate:"required"`
}

type CityInput struct {
	Name     string `json:"city" validate:"required"`
	RegionID uint   `json:"region_id" validate:"required"`
}

type AddressInput struct {
	RegionID uint `json:"region_id" validate:"required"`
	CityID   uint `json:"city_id" validate:"required"`
}

type LanguageInput struct {
	Name string `json:"name" validate:"required"`
}

type ReferenceService struct {
	store ReferenceStore
}

func NewReferenceService(store ReferenceStore) *ReferenceService {
	return &ReferenceService{store: store}
}

func (s *ReferenceService) CreateRegion(ctx context.Context, in RegionInput) (*models.Region, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	region := &models.Region{Name: in.Name}
	if err := s.store.CreateRegion(ctx, region); err != nil {
		return nil, err
	}
	return region, nil
}

func (s *ReferenceService) ListRegions(ctx context.Context) ([]models.Region, error) {
	return s.store.ListRegions(ctx)
}

func (s *ReferenceService) GetRegion(ctx context.Context, id uint) (*models.Region, error) {
	return s.store.FindRegion(ctx, id)
}

func (s *ReferenceService) UpdateRegion(ctx context.Context, id uint, in RegionInput) (*models.Region, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	return s.store.RenameRegion(ctx, id, in.Name)
}

func (s *ReferenceService) DeleteRegion(ctx context.Context, id uint) error {
	return s.store.DeleteRegion(ctx, id)
}

func (s *ReferenceService) CreateCity(ctx context.Context, in CityInput) (*models.City, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	if _, err := s.store.FindRegion(ctx, in.RegionID); err != nil {
		return nil, err
	}
	city := &models.City{Name: in.Name, RegionID: in.RegionID}
	if err := s.store.CreateCity(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *ReferenceService) ListCities(ctx context.Context, regionID *uint) ([]models.City, error) {
	return s.store.ListCities(ctx, regionID)
}

func (s *ReferenceService) GetCity(ctx context.Context, id uint) (*models.City, error) {
	return s.store.FindCity(ctx, id)
}

// CreateAddress requires the city to lie in the given region.
func (s *ReferenceService) CreateAddress(ctx context.Context, in AddressInput) (*models.Address, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	city, err := s.store.FindCity(ctx, in.CityID)
	if err != nil {
		return nil, err
	}
	if city.RegionID != in.RegionID {
		return nil, utils.Validation(fmt.Sprintf("City %d does not belong to region %d.", in.CityID, in.RegionID))
	}
	address := &models.Address{RegionID: in.RegionID, CityID: in.CityID}
	if err := s.store.CreateAddress(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *ReferenceService) ListAddresses(ctx context.Context) ([]models.Address, error) {
	return s.store.ListAddresses(ctx)
}

func (s *ReferenceService) GetAddress(ctx context.Context, id uint) (*models.Address, error) {
	return s.store.FindAddress(ctx, id)
}

func (s *ReferenceService) CreateLanguage(ctx context.Context, in LanguageInput) (*models.Language, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	language := &models.Language{Name: in.Name}
	if err := s.store.CreateLanguage(ctx, language); err != nil {
		return nil, err
	}
	return language, nil
}

func (s *ReferenceService) ListLanguages(ctx context.Context) ([]models.Language, error) {
	return s.store.ListLanguages(ctx)
}

func (s *ReferenceService) GetLanguage(ctx context.Context, id uint) (*models.Language, error) {
	return s.store.FindLanguage(ctx, id)
}

func (s *ReferenceService) DeleteLanguage(ctx context.Context, id uint) error {
	return s.store.DeleteLanguage(ctx, id)
}

type linkFinder interface {
	FindLanguages(ctx context.Context, ids []uint) ([]models.Language, error)
	FindAddresses(ctx context.Context, ids []uint) ([]models.Address, error)
}

// resolveLinks loads the referenced languages and addresses, failing with a
// Validation error naming the first unknown id.
func resolveLinks(ctx context.Context, finder linkFinder, languageIDs, addressIDs []uint) ([]models.Language, []models.Address, error) {
	languageIDs, addressIDs = dedupe(languageIDs), dedupe(addressIDs)

	langs, err := finder.FindLanguages(ctx, languageIDs)
	if err != nil {
		return nil, nil, err
	}
	if missing := firstMissing(languageIDs, func(id uint) bool {
		for _, l := range langs {
			if l.ID == id {
				return true
			}
		}
		return false
	}); missing != 0 {
		return nil, nil, utils.Validation(fmt.Sprintf("Unknown language id %d.", missing))
	}

	addrs, err := finder.FindAddresses(ctx, addressIDs)
	if err != nil {
		return nil, nil, err
	}
	if missing := firstMissing(addressIDs, func(id uint) bool {
		for _, a := range addrs {
			if a.ID == id {
				return true
			}
		}
		return false
	}); missing != 0 {
		return nil, nil, utils.Validation(fmt.Sprintf("Unknown address id %d.", missing))
	}
	return langs, addrs, nil
}

func firstMissing(ids []uint, found func(uint) bool) uint {
	for _, id := range ids {
		if !found(id) {
			return id
		}
	}
	return 0
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
