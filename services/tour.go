package services

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/utils"
)

type TourStore interface {
	linkFinder
	accountsFinder
	CreateTour(ctx context.Context, tour *models.Tour) error
	FindTour(ctx context.Context, id uint) (*models.Tour, error)
	ListTours(ctx context.Context, f models.TourFilter) ([]models.Tour, error)
	UpdateTour(ctx context.Context, tour *models.Tour) error
	DeleteTour(ctx context.Context, id uint) error
	AddTourPhoto(ctx context.Context, tourID uint, url string) (*models.TourPhoto, error)
}

// ObjectStorage keeps uploaded photos and hands back their public URL.
type ObjectStorage interface {
	Store(ctx context.Context, r io.Reader, folder, name string) (string, error)
}

type TourInput struct {
	Title          string          `json:"title" validate:"required"`
	Date           models.Date     `json:"date" validate:"required"`
	DepartureTime  string          `json:"departure_time" validate:"omitempty,datetime=15:04"`
	ReturnTime     string          `json:"return_time" validate:"omitempty,datetime=15:04"`
	Duration       models.Duration `json:"duration"`
	GuestCount     int             `json:"guest_count" validate:"gte=0"`
	Price          float64         `json:"price" validate:"gte=0"`
	PriceType      string          `json:"price_type"`
	PaymentType    string          `json:"payment_type"`
	DressCode      string          `json:"dress_code"`
	Included       string          `json:"included"`
	NotIncluded    string          `json:"not_included"`
	About          string          `json:"about"`
	DestinationIDs []uint          `json:"destination_ids"`
	LanguageIDs    []uint          `json:"language_ids"`
}

type TourService struct {
	store   TourStore
	ratings *RatingService
	photos  ObjectStorage
}

// NewTourService builds the service. photos may be nil, in which case photo
// uploads fail with utils.ErrStorageDisabled.
func NewTourService(store TourStore, ratings *RatingService, photos ObjectStorage) *TourService {
	return &TourService{store: store, ratings: ratings, photos: photos}
}

func (s *TourService) Create(ctx context.Context, guide *models.User, in TourInput) (*TourView, error) {
	tour := &models.Tour{GuideID: guide.ID}
	if err := s.apply(ctx, tour, in); err != nil {
		return nil, err
	}
	if err := s.store.CreateTour(ctx, tour); err != nil {
		return nil, err
	}
	view := NewTourView(tour, partyOf(guide), 0)
	return &view, nil
}

func (s *TourService) Get(ctx context.Context, id uint) (*TourView, error) {
	tour, err := s.store.FindTour(ctx, id)
	if err != nil {
		return nil, err
	}
	views, err := s.views(ctx, []models.Tour{*tour})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *TourService) List(ctx context.Context, f models.TourFilter) ([]TourView, error) {
	tours, err := s.store.ListTours(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, tours)
}

func (s *TourService) Update(ctx context.Context, guide *models.User, id uint, in TourInput) (*TourView, error) {
	tour, err := s.owned(ctx, guide, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, tour, in); err != nil {
		return nil, err
	}
	if err := s.store.UpdateTour(ctx, tour); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *TourService) Delete(ctx context.Context, guide *models.User, id uint) error {
	if _, err := s.owned(ctx, guide, id); err != nil {
		return err
	}
	return s.store.DeleteTour(ctx, id)
}

// AddPhoto uploads r and appends it to the tour's photo sequence.
func (s *TourService) AddPhoto(ctx context.Context, guide *models.User, id uint, r io.Reader) (*models.TourPhoto, error) {
	if s.photos == nil {
		return nil, utils.ErrStorageDisabled
	}
	if _, err := s.owned(ctx, guide, id); err != nil {
		return nil, err
	}
	url, err := s.photos.Store(ctx, r, "tours", fmt.Sprintf("tour-%d-%s", id, uuid.NewString()))
	if err != nil {
		return nil, fmt.Errorf("upload tour photo: %w", err)
	}
	return s.store.AddTourPhoto(ctx, id, url)
}

func (s *TourService) owned(ctx context.Context, guide *models.User, id uint) (*models.Tour, error) {
	tour, err := s.store.FindTour(ctx, id)
	if err != nil {
		return nil, err
	}
	if tour.GuideID != guide.ID {
		return nil, utils.Forbidden("You can only manage your own tours.")
	}
	return tour, nil
}

func (s *TourService) apply(ctx context.Context, tour *models.Tour, in TourInput) error {
	if err := utils.ValidateStruct(in); err != nil {
		return err
	}
	if !in.Duration.Valid() {
		return utils.Validation("duration must have non-negative hours and 0-59 minutes")
	}
	langs, dests, err := resolveLinks(ctx, s.store, in.LanguageIDs, in.DestinationIDs)
	if err != nil {
		return err
	}

	tour.Title = in.Title
	tour.Date = in.Date
	tour.DepartureTime = in.DepartureTime
	tour.ReturnTime = in.ReturnTime
	tour.Duration = in.Duration
	tour.GuestCount = in.GuestCount
	tour.Price = in.Price
	tour.PriceType = in.PriceType
	tour.PaymentType = in.PaymentType
	tour.DressCode = in.DressCode
	tour.Included = in.Included
	tour.NotIncluded = in.NotIncluded
	tour.About = in.About
	tour.Languages = langs
	tour.Destinations = dests
	return nil
}

func (s *TourService) views(ctx context.Context, tours []models.Tour) ([]TourView, error) {
	ids := make([]uint, 0, len(tours))
	guideIDs := make([]uint, 0, len(tours))
	for _, t := range tours {
		ids = append(ids, t.ID)
		guideIDs = append(guideIDs, t.GuideID)
	}
	ratings, err := s.ratings.Averages(ctx, models.RatingTargetTour, ids)
	if err != nil {
		return nil, err
	}
	guides, err := loadParties(ctx, s.store, guideIDs)
	if err != nil {
		return nil, err
	}

	views := make([]TourView, 0, len(tours))
	for i := range tours {
		views = append(views, NewTourView(&tours[i], guides[tours[i].GuideID], ratings[tours[i].ID]))
	}
	return views, nil
}
