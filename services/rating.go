package services

import (
	"context"
	"strconv"

	"github.com/meinhoongagan/tourbook/models"
)

type RatingStore interface {
	RatingSummaries(ctx context.Context, target models.RatingTarget, ids []uint) ([]models.RatingSummary, error)
}

// RatingService derives average ratings from review rows on every read.
// Nothing is stored or cached.
type RatingService struct {
	store RatingStore
}

func NewRatingService(store RatingStore) *RatingService {
	return &RatingService{store: store}
}

// RatingStats is the public breakdown of a target's reviews. Distribution
// is keyed by star count "1".."5".
type RatingStats struct {
	Count        int64            `json:"count"`
	Average      float64          `json:"average"`
	Distribution map[string]int64 `json:"distribution"`
}

// Average is the mean rating of the target, 0.0 when it has no reviews.
func (r *RatingService) Average(ctx context.Context, target models.RatingTarget, id uint) (float64, error) {
	averages, err := r.Averages(ctx, target, []uint{id})
	if err != nil {
		return 0, err
	}
	return averages[id], nil
}

// Averages computes the averages of a whole page in one query. Every
// requested id is present in the result.
func (r *RatingService) Averages(ctx context.Context, target models.RatingTarget, ids []uint) (map[uint]float64, error) {
	averages := make(map[uint]float64, len(ids))
	for _, id := range ids {
		averages[id] = 0
	}
	if len(ids) == 0 {
		return averages, nil
	}

	summaries, err := r.store.RatingSummaries(ctx, target, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range summaries {
		averages[s.TargetID] = mean(s)
	}
	return averages, nil
}

func (r *RatingService) Stats(ctx context.Context, target models.RatingTarget, id uint) (*RatingStats, error) {
	summaries, err := r.store.RatingSummaries(ctx, target, []uint{id})
	if err != nil {
		return nil, err
	}

	summary := models.RatingSummary{TargetID: id}
	for _, s := range summaries {
		if s.TargetID == id {
			summary = s
		}
	}

	stats := &RatingStats{
		Count:        summary.Count,
		Average:      mean(summary),
		Distribution: make(map[string]int64, len(summary.Distribution)),
	}
	for i, n := range summary.Distribution {
		stats.Distribution[strconv.Itoa(i+1)] = n
	}
	return stats, nil
}

func mean(s models.RatingSummary) float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}
