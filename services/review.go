package services

import (
	"context"

	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/utils"
)

type ReviewStore interface {
	FindResume(ctx context.Context, id uint) (*models.Resume, error)
	FindTour(ctx context.Context, id uint) (*models.Tour, error)
	CreateReview(ctx context.Context, review *models.Review) error
	FindReview(ctx context.Context, id uint) (*models.Review, error)
	ListReviews(ctx context.Context, f models.ReviewFilter) ([]models.Review, error)
	CreateTourReview(ctx context.Context, review *models.TourReview) error
	FindTourReview(ctx context.Context, id uint) (*models.TourReview, error)
	ListTourReviews(ctx context.Context, f models.ReviewFilter) ([]models.TourReview, error)
}

type ReviewInput struct {
	ResumeID    uint    `json:"resume_id" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating" validate:"gte=1,lte=5"`
}

type TourReviewInput struct {
	TourID      uint    `json:"tour_id" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating" validate:"gte=1,lte=5"`
}

type ReviewService struct {
	store ReviewStore
}

func NewReviewService(store ReviewStore) *ReviewService {
	return &ReviewService{store: store}
}

func (s *ReviewService) CreateReview(ctx context.Context, tourist *models.User, in ReviewInput) (*models.Review, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	if _, err := s.store.FindResume(ctx, in.ResumeID); err != nil {
		return nil, err
	}
	review := &models.Review{
		ResumeID:    in.ResumeID,
		TouristID:   tourist.ID,
		Title:       in.Title,
		Description: in.Description,
		Rating:      in.Rating,
	}
	if err := s.store.CreateReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	return s.store.FindReview(ctx, id)
}

func (s *ReviewService) ListReviews(ctx context.Context, f models.ReviewFilter) ([]models.Review, error) {
	return s.store.ListReviews(ctx, f)
}

func (s *ReviewService) CreateTourReview(ctx context.Context, tourist *models.User, in TourReviewInput) (*models.TourReview, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	if _, err := s.store.FindTour(ctx, in.TourID); err != nil {
		return nil, err
	}
	review := &models.TourReview{
		TourID:      in.TourID,
		TouristID:   tourist.ID,
		Title:       in.Title,
		Description: in.Description,
		Rating:      in.Rating,
	}
	if err := s.store.CreateTourReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) GetTourReview(ctx context.Context, id uint) (*models.TourReview, error) {
	return s.store.FindTourReview(ctx, id)
}

func (s *ReviewService) ListTourReviews(ctx context.Context, f models.ReviewFilter) ([]models.TourReview, error) {
	return s.store.ListTourReviews(ctx, f)
}
