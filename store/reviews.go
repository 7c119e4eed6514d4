package store

import (
	"context"
	"fmt"

	"github.com/meinhoongagan/tourbook/db"
	"github.com/meinhoongagan/tourbook/models"
)

func (s *Store) CreateReview(ctx context.Context, review *models.Review) error {
	err := s.db.WithContext(ctx).Omit("Resume", "Tourist").Create(review).Error
	return translate(err, "Review")
}

func (s *Store) FindReview(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, translate(err, "Review")
	}
	return &review, nil
}

func (s *Store) ListReviews(ctx context.Context, f models.ReviewFilter) ([]models.Review, error) {
	q := s.db.WithContext(ctx).Model(&models.Review{})
	if f.TargetID != nil {
		q = q.Where("resume_id = ?", *f.TargetID)
	}
	if f.MinRating != nil {
		q = q.Where("rating >= ?", *f.MinRating)
	}
	var reviews []models.Review
	err := q.Scopes(db.OrderByID("reviews"), db.Paginate(f.Skip, f.Limit)).Find(&reviews).Error
	return reviews, translate(err, "Review")
}

func (s *Store) CreateTourReview(ctx context.Context, review *models.TourReview) error {
	err := s.db.WithContext(ctx).Omit("Tour", "Tourist").Create(review).Error
	return translate(err, "Tour review")
}

func (s *Store) FindTourReview(ctx context.Context, id uint) (*models.TourReview, error) {
	var review models.TourReview
	if err := s.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, translate(err, "Tour review")
	}
	return &review, nil
}

func (s *Store) ListTourReviews(ctx context.Context, f models.ReviewFilter) ([]models.TourReview, error) {
	q := s.db.WithContext(ctx).Model(&models.TourReview{})
	if f.TargetID != nil {
		q = q.Where("tour_id = ?", *f.TargetID)
	}
	if f.MinRating != nil {
		q = q.Where("rating >= ?", *f.MinRating)
	}
	var reviews []models.TourReview
	err := q.Scopes(db.OrderByID("tour_reviews"), db.Paginate(f.Skip, f.Limit)).Find(&reviews).Error
	return reviews, translate(err, "Tour review")
}

type summaryRow struct {
	TargetID uint
	Count    int64
	Sum      float64
	One      int64
	Two      int64
	Three    int64
	Four     int64
	Five     int64
}

// The buckets round half up, matching models.StarBucket.
const bucketColumns = `COUNT(*) AS count, COALESCE(SUM(rating), 0) AS sum,
	SUM(CASE WHEN rating < 1.5 THEN 1 ELSE 0 END) AS one,
	SUM(CASE WHEN rating >= 1.5 AND rating < 2.5 THEN 1 ELSE 0 END) AS two,
	SUM(CASE WHEN rating >= 2.5 AND rating < 3.5 THEN 1 ELSE 0 END) AS three,
	SUM(CASE WHEN rating >= 3.5 AND rating < 4.5 THEN 1 ELSE 0 END) AS four,
	SUM(CASE WHEN rating >= 4.5 THEN 1 ELSE 0 END) AS five`

// RatingSummaries aggregates the reviews of every target in ids with one
// grouped query. Targets without reviews are absent from the result.
func (s *Store) RatingSummaries(ctx context.Context, target models.RatingTarget, ids []uint) ([]models.RatingSummary, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var table, column string
	switch target {
	case models.RatingTargetResume:
		table, column = "reviews", "resume_id"
	case models.RatingTargetTour:
		table, column = "tour_reviews", "tour_id"
	default:
		return nil, fmt.Errorf("unknown rating target %q", target)
	}

	var rows []summaryRow
	err := s.db.WithContext(ctx).
		Table(table).
		Select(column+" AS target_id, "+bucketColumns).
		Where(column+" IN ?", ids).
		Group(column).
		Order(column + " ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err, "Review")
	}

	summaries := make([]models.RatingSummary, 0, len(rows))
	for _, r := range rows {
		summaries = append(summaries, models.RatingSummary{
			TargetID:     r.TargetID,
			Count:        r.Count,
			Sum:          r.Sum,
			Distribution: [5]int64{r.One, r.Two, r.Three, r.Four, r.Five},
		})
	}
	return summaries, nil
}
