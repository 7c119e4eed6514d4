package services

import (
	"context"

	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/utils"
)

type ResumeStore interface {
	linkFinder
	CreateResume(ctx context.Context, resume *models.Resume) error
	FindResume(ctx context.Context, id uint) (*models.Resume, error)
	FindResumeByGuide(ctx context.Context, guideID uint) (*models.Resume, error)
	ListResumes(ctx context.Context, f models.ResumeFilter) ([]models.Resume, error)
	UpdateResume(ctx context.Context, resume *models.Resume) error
	DeleteResume(ctx context.Context, id uint) error
}

type ResumeInput struct {
	Bio                 string       `json:"bio"`
	ExperienceStartDate *models.Date `json:"experience_start_date"`
	Price               float64      `json:"price" validate:"gte=0"`
	PriceType           string       `json:"price_type"`
	LanguageIDs         []uint       `json:"language_ids"`
	AddressIDs          []uint       `json:"address_ids"`
}

type ResumeService struct {
	store   ResumeStore
	ratings *RatingService
}

func NewResumeService(store ResumeStore, ratings *RatingService) *ResumeService {
	return &ResumeService{store: store, ratings: ratings}
}

// Create publishes the guide's resume. A guide has at most one.
func (s *ResumeService) Create(ctx context.Context, guide *models.User, in ResumeInput) (*ResumeView, error) {
	resume := &models.Resume{GuideID: guide.ID}
	if err := s.apply(ctx, resume, in); err != nil {
		return nil, err
	}
	if err := s.store.CreateResume(ctx, resume); err != nil {
		return nil, err
	}
	resume.Guide = guide
	view := NewResumeView(resume, 0)
	return &view, nil
}

func (s *ResumeService) Mine(ctx context.Context, guide *models.User) (*ResumeView, error) {
	resume, err := s.store.FindResumeByGuide(ctx, guide.ID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, resume)
}

// UpdateMine replaces the fields and the language/address sets of the
// guide's resume.
func (s *ResumeService) UpdateMine(ctx context.Context, guide *models.User, in ResumeInput) (*ResumeView, error) {
	resume, err := s.store.FindResumeByGuide(ctx, guide.ID)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, resume, in); err != nil {
		return nil, err
	}
	if err := s.store.UpdateResume(ctx, resume); err != nil {
		return nil, err
	}
	return s.view(ctx, resume)
}

func (s *ResumeService) Delete(ctx context.Context, guide *models.User, id uint) error {
	resume, err := s.store.FindResume(ctx, id)
	if err != nil {
		return err
	}
	if resume.GuideID != guide.ID {
		return utils.Forbidden("You can only delete your own resume.")
	}
	return s.store.DeleteResume(ctx, id)
}

func (s *ResumeService) Get(ctx context.Context, id uint) (*ResumeView, error) {
	resume, err := s.store.FindResume(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, resume)
}

// List returns one page of resumes with their ratings computed in a single
// aggregate query.
func (s *ResumeService) List(ctx context.Context, f models.ResumeFilter) ([]ResumeView, error) {
	resumes, err := s.store.ListResumes(ctx, f)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(resumes))
	for _, r := range resumes {
		ids = append(ids, r.ID)
	}
	ratings, err := s.ratings.Averages(ctx, models.RatingTargetResume, ids)
	if err != nil {
		return nil, err
	}

	views := make([]ResumeView, 0, len(resumes))
	for i := range resumes {
		views = append(views, NewResumeView(&resumes[i], ratings[resumes[i].ID]))
	}
	return views, nil
}

func (s *ResumeService) Rating(ctx context.Context, id uint) (*RatingStats, error) {
	if _, err := s.store.FindResume(ctx, id); err != nil {
		return nil, err
	}
	return s.ratings.Stats(ctx, models.RatingTargetResume, id)
}

func (s *ResumeService) apply(ctx context.Context, resume *models.Resume, in ResumeInput) error {
	if err := utils.ValidateStruct(in); err != nil {
		return err
	}
	langs, addrs, err := resolveLinks(ctx, s.store, in.LanguageIDs, in.AddressIDs)
	if err != nil {
		return err
	}
	resume.Bio = in.Bio
	resume.ExperienceStartDate = in.ExperienceStartDate
	resume.Price = in.Price
	resume.PriceType = in.PriceType
	resume.Languages = langs
	resume.Addresses = addrs
	return nil
}

func (s *ResumeService) view(ctx context.Context, resume *models.Resume) (*ResumeView, error) {
	rating, err := s.ratings.Average(ctx, models.RatingTargetResume, resume.ID)
	if err != nil {
		return nil, err
	}
	view := NewResumeView(resume, rating)
	return &view, nil
}
