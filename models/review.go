package models

import (
	"time"
)

// Review is a tourist's rating of a guide resume.
type Review struct {
	ID          uint      `json:"review_id" gorm:"primaryKey"`
	ResumeID    uint      `json:"resume_id" gorm:"not null;index"`
	Resume      *Resume   `json:"-" gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE"`
	TouristID   uint      `json:"tourist_id" gorm:"not null;index"`
	Tourist     *User     `json:"-" gorm:"foreignKey:TouristID"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Rating      float64   `json:"rating" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// TourReview is a tourist's rating of a published tour.
type TourReview struct {
	ID          uint      `json:"review_id" gorm:"primaryKey"`
	TourID      uint      `json:"tour_id" gorm:"not null;index"`
	Tour        *Tour     `json:"-" gorm:"foreignKey:TourID;constraint:OnDelete:CASCADE"`
	TouristID   uint      `json:"tourist_id" gorm:"not null;index"`
	Tourist     *User     `json:"-" gorm:"foreignKey:TouristID"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Rating      float64   `json:"rating" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReviewFilter struct {
	Skip      int
	Limit     int
	TargetID  *uint
	MinRating *float64
}

// RatingTarget names the table family a rating aggregate is computed over.
type RatingTarget string

const (
	RatingTargetResume RatingTarget = "resume"
	RatingTargetTour   RatingTarget = "tour"
)

// RatingSummary is the raw aggregate for one target: the sum and count of
// ratings plus how many fall into each whole-star bucket (index 0 is 1 star).
type RatingSummary struct {
	TargetID     uint
	Count        int64
	Sum          float64
	Distribution [5]int64
}

// StarBucket maps a rating to its distribution index, clamped to 1..5 stars.
func StarBucket(rating float64) int {
	stars := int(rating + 0.5)
	if stars < 1 {
		stars = 1
	}
	if stars > 5 {
		stars = 5
	}
	return stars - 1
}
