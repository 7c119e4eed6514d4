package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/services/servicetest"
	"github.com/meinhoongagan/tourbook/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog() *servicetest.Store {
	store := servicetest.NewStore()
	store.Accounts[5] = &models.User{ID: 5, Name: "Gia", Role: models.RoleGuide}
	store.Accounts[6] = &models.User{ID: 6, Name: "Gus", Role: models.RoleGuide}
	store.Accounts[10] = &models.User{ID: 10, Name: "Tom", Role: models.RoleTourist}
	store.Languages[1] = &models.Language{ID: 1, Name: "English"}
	store.Languages[2] = &models.Language{ID: 2, Name: "Greek"}
	store.Addresses[3] = &models.Address{ID: 3, RegionID: 1, CityID: 2}
	return store
}

func TestResumeLifecycle(t *testing.T) {
	ctx := context.Background()
	store := seedCatalog()
	svc := NewResumeService(store, NewRatingService(store))
	guide := store.Accounts[5]

	created, err := svc.Create(ctx, guide, ResumeInput{Bio: "Local", Price: 40, LanguageIDs: []uint{1, 2, 1}, AddressIDs: []uint{3}})
	require.NoError(t, err)
	assert.Equal(t, "Gia", created.GuideName)
	assert.Len(t, created.Languages, 2)
	assert.Equal(t, 0.0, created.Rating)

	_, err = svc.Create(ctx, guide, ResumeInput{Bio: "Again"})
	assert.True(t, errors.Is(err, utils.ErrConflict))
	assert.Equal(t, 400, utils.HTTPStatus(err))
	assert.Len(t, store.Resumes, 1)

	_, err = svc.Create(ctx, store.Accounts[6], ResumeInput{LanguageIDs: []uint{9}})
	assert.True(t, errors.Is(err, utils.ErrValidation))

	store.Reviews[1] = &models.Review{ID: 1, ResumeID: created.ID, Rating: 4}
	store.Reviews[2] = &models.Review{ID: 2, ResumeID: created.ID, Rating: 5}
	list, err := svc.List(ctx, models.ResumeFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.InDelta(t, 4.5, list[0].Rating, 1e-9)

	updated, err := svc.UpdateMine(ctx, guide, ResumeInput{Bio: "Updated", Price: 50, LanguageIDs: []uint{2}})
	require.NoError(t, err)
	assert.Equal(t, "Updated", updated.Bio)
	assert.Len(t, updated.Languages, 1)

	err = svc.Delete(ctx, store.Accounts[6], created.ID)
	assert.True(t, errors.Is(err, utils.ErrForbidden))
	require.NoError(t, svc.Delete(ctx, guide, created.ID))
	_, err = svc.Mine(ctx, guide)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestTourLifecycle(t *testing.T) {
	ctx := context.Background()
	store := seedCatalog()
	storage := &servicetest.Storage{}
	svc := NewTourService(store, NewRatingService(store), storage)
	guide := store.Accounts[5]

	in := TourInput{
		Title:          "Harbour walk",
		Date:           models.NewDate(2025, 6, 1),
		DepartureTime:  "09:30",
		Duration:       models.Duration{Hours: 2, Minutes: 30},
		GuestCount:     12,
		DestinationIDs: []uint{3},
		LanguageIDs:    []uint{1},
	}
	tour, err := svc.Create(ctx, guide, in)
	require.NoError(t, err)
	assert.Equal(t, "Gia", tour.GuideName)

	bad := in
	bad.DepartureTime = "9am"
	_, err = svc.Create(ctx, guide, bad)
	assert.True(t, errors.Is(err, utils.ErrValidation))

	bad = in
	bad.Duration = models.Duration{Minutes: 75}
	_, err = svc.Create(ctx, guide, bad)
	assert.True(t, errors.Is(err, utils.ErrValidation))

	in.Title = "Harbour walk at dusk"
	_, err = svc.Update(ctx, store.Accounts[6], tour.ID, in)
	assert.True(t, errors.Is(err, utils.ErrForbidden))
	updated, err := svc.Update(ctx, guide, tour.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Harbour walk at dusk", updated.Title)

	first, err := svc.AddPhoto(ctx, guide, tour.ID, strings.NewReader("a"))
	require.NoError(t, err)
	second, err := svc.AddPhoto(ctx, guide, tour.ID, strings.NewReader("b"))
	require.NoError(t, err)
	assert.Equal(t, 0, first.Position)
	assert.Equal(t, 1, second.Position)
	assert.Len(t, storage.Uploads, 2)

	store.TourReviews[1] = &models.TourReview{ID: 1, TourID: tour.ID, Rating: 3}
	got, err := svc.Get(ctx, tour.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got.Rating, 1e-9)
	assert.Len(t, got.Photos, 2)

	assert.True(t, errors.Is(svc.Delete(ctx, store.Accounts[6], tour.ID), utils.ErrForbidden))
	require.NoError(t, svc.Delete(ctx, guide, tour.ID))

	noStorage := NewTourService(store, NewRatingService(store), nil)
	_, err = noStorage.AddPhoto(ctx, guide, tour.ID, strings.NewReader("c"))
	assert.ErrorIs(t, err, utils.ErrStorageDisabled)
}

func TestReviews(t *testing.T) {
	ctx := context.Background()
	store := seedCatalog()
	store.Resumes[1] = &models.Resume{ID: 1, GuideID: 5}
	svc := NewReviewService(store)
	tourist := store.Accounts[10]

	review, err := svc.CreateReview(ctx, tourist, ReviewInput{ResumeID: 1, Title: "Great", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, tourist.ID, review.TouristID)

	_, err = svc.CreateReview(ctx, tourist, ReviewInput{ResumeID: 1, Title: "Too high", Rating: 6})
	assert.True(t, errors.Is(err, utils.ErrValidation))
	_, err = svc.CreateReview(ctx, tourist, ReviewInput{ResumeID: 99, Title: "Nobody", Rating: 3})
	assert.True(t, errors.Is(err, utils.ErrNotFound))
	_, err = svc.CreateTourReview(ctx, tourist, TourReviewInput{TourID: 99, Title: "Nothing", Rating: 3})
	assert.True(t, errors.Is(err, utils.ErrNotFound))

	resumeID := uint(1)
	list, err := svc.ListReviews(ctx, models.ReviewFilter{TargetID: &resumeID})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestReferenceData(t *testing.T) {
	ctx := context.Background()
	store := servicetest.NewStore()
	svc := NewReferenceService(store)

	north, err := svc.CreateRegion(ctx, RegionInput{Name: "North"})
	require.NoError(t, err)
	south, err := svc.CreateRegion(ctx, RegionInput{Name: "South"})
	require.NoError(t, err)
	_, err = svc.CreateRegion(ctx, RegionInput{Name: "North"})
	assert.True(t, errors.Is(err, utils.ErrConflict))

	city, err := svc.CreateCity(ctx, CityInput{Name: "Harbourtown", RegionID: north.ID})
	require.NoError(t, err)
	_, err = svc.CreateCity(ctx, CityInput{Name: "Nowhere", RegionID: 404})
	assert.True(t, errors.Is(err, utils.ErrNotFound))

	_, err = svc.CreateAddress(ctx, AddressInput{RegionID: south.ID, CityID: city.ID})
	assert.True(t, errors.Is(err, utils.ErrValidation))
	addr, err := svc.CreateAddress(ctx, AddressInput{RegionID: north.ID, CityID: city.ID})
	require.NoError(t, err)
	assert.NotZero(t, addr.ID)

	cities, err := svc.ListCities(ctx, &south.ID)
	require.NoError(t, err)
	assert.Empty(t, cities)

	_, err = svc.CreateLanguage(ctx, LanguageInput{})
	assert.True(t, errors.Is(err, utils.ErrValidation))
}

func TestReferenceMaintenance(t *testing.T) {
	ctx := context.Background()
	store := servicetest.NewStore()
	svc := NewReferenceService(store)

	north, err := svc.CreateRegion(ctx, RegionInput{Name: "North"})
	require.NoError(t, err)
	_, err = svc.CreateRegion(ctx, RegionInput{Name: "South"})
	require.NoError(t, err)

	renamed, err := svc.UpdateRegion(ctx, north.ID, RegionInput{Name: "Far North"})
	require.NoError(t, err)
	assert.Equal(t, "Far North", renamed.Name)
	_, err = svc.UpdateRegion(ctx, north.ID, RegionInput{Name: "South"})
	assert.True(t, errors.Is(err, utils.ErrConflict))
	_, err = svc.UpdateRegion(ctx, 404, RegionInput{Name: "West"})
	assert.True(t, errors.Is(err, utils.ErrNotFound))

	city, err := svc.CreateCity(ctx, CityInput{Name: "Harbourtown", RegionID: north.ID})
	require.NoError(t, err)
	got, err := svc.GetCity(ctx, city.ID)
	require.NoError(t, err)
	assert.Equal(t, "Harbourtown", got.Name)

	addr, err := svc.CreateAddress(ctx, AddressInput{RegionID: north.ID, CityID: city.ID})
	require.NoError(t, err)
	loaded, err := svc.GetAddress(ctx, addr.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.City)
	assert.Equal(t, "Harbourtown", loaded.City.Name)

	err = svc.DeleteRegion(ctx, north.ID)
	assert.True(t, errors.Is(err, utils.ErrConflict))

	greek, err := svc.CreateLanguage(ctx, LanguageInput{Name: "Greek"})
	require.NoError(t, err)
	store.GuideBookings[1] = &models.GuideBooking{ID: 1, LanguageID: greek.ID}
	assert.True(t, errors.Is(svc.DeleteLanguage(ctx, greek.ID), utils.ErrConflict))

	delete(store.GuideBookings, 1)
	require.NoError(t, svc.DeleteLanguage(ctx, greek.ID))
	_, err = svc.GetLanguage(ctx, greek.ID)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}
