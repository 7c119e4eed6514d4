package services

import (
	"time"

	"github.com/meinhoongagan/tourbook/models"
)

// Party is the display data of a booking participant.
type Party struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

func partyOf(u *models.User) *Party {
	if u == nil {
		return nil
	}
	return &Party{ID: u.ID, Name: u.Name, Photo: u.ProfileImage}
}

// BookingEnrichment carries optional values stitched onto booking views.
// Nil parties are left out of the response.
type BookingEnrichment struct {
	Tourist *Party
	Guide   *Party
}

type GuideBookingView struct {
	ID           uint                `json:"booking_id"`
	TouristID    uint                `json:"tourist_id"`
	GuideID      uint                `json:"guide_id"`
	TourDate     models.Date         `json:"tour_date"`
	ReserveCount int                 `json:"reserve_count"`
	LanguageID   uint                `json:"language_id"`
	Message      string              `json:"message"`
	Confirmed    bool                `json:"confirmed"`
	State        models.BookingState `json:"state"`
	CreatedAt    time.Time           `json:"created_at"`
	TouristName  string              `json:"tourist_name,omitempty"`
	TouristPhoto string              `json:"tourist_photo,omitempty"`
	GuideName    string              `json:"guide_name,omitempty"`
	GuidePhoto   string              `json:"guide_photo,omitempty"`
}

func NewGuideBookingView(b *models.GuideBooking, e *BookingEnrichment) GuideBookingView {
	v := GuideBookingView{
		ID:           b.ID,
		TouristID:    b.TouristID,
		GuideID:      b.GuideID,
		TourDate:     b.TourDate,
		ReserveCount: b.ReserveCount,
		LanguageID:   b.LanguageID,
		Message:      b.Message,
		Confirmed:    b.Confirmed,
		State:        b.State(),
		CreatedAt:    b.CreatedAt,
	}
	if e != nil {
		if e.Tourist != nil {
			v.TouristName, v.TouristPhoto = e.Tourist.Name, e.Tourist.Photo
		}
		if e.Guide != nil {
			v.GuideName, v.GuidePhoto = e.Guide.Name, e.Guide.Photo
		}
	}
	return v
}

type TourBookingView struct {
	ID           uint                `json:"booking_id"`
	TouristID    uint                `json:"tourist_id"`
	TourID       uint                `json:"tour_id"`
	TourTitle    string              `json:"tour_title,omitempty"`
	GuideID      uint                `json:"guide_id,omitempty"`
	ReserveCount int                 `json:"reserve_count"`
	LanguageID   uint                `json:"language_id"`
	Message      string              `json:"message"`
	Confirmed    bool                `json:"confirmed"`
	State        models.BookingState `json:"state"`
	CreatedAt    time.Time           `json:"created_at"`
	TouristName  string              `json:"tourist_name,omitempty"`
	TouristPhoto string              `json:"tourist_photo,omitempty"`
	GuideName    string              `json:"guide_name,omitempty"`
	GuidePhoto   string              `json:"guide_photo,omitempty"`
}

func NewTourBookingView(b *models.TourBooking, e *BookingEnrichment) TourBookingView {
	v := TourBookingView{
		ID:           b.ID,
		TouristID:    b.TouristID,
		TourID:       b.TourID,
		GuideID:      b.OwnerID(),
		ReserveCount: b.ReserveCount,
		LanguageID:   b.LanguageID,
		Message:      b.Message,
		Confirmed:    b.Confirmed,
		State:        b.State(),
		CreatedAt:    b.CreatedAt,
	}
	if b.Tour != nil {
		v.TourTitle = b.Tour.Title
	}
	if e != nil {
		if e.Tourist != nil {
			v.TouristName, v.TouristPhoto = e.Tourist.Name, e.Tourist.Photo
		}
		if e.Guide != nil {
			v.GuideName, v.GuidePhoto = e.Guide.Name, e.Guide.Photo
		}
	}
	return v
}

// ResumeView is a resume as listed publicly, with its guide's name and the
// derived average rating.
type ResumeView struct {
	models.Resume
	GuideName string  `json:"guide_name"`
	Rating    float64 `json:"rating"`
}

func NewResumeView(r *models.Resume, rating float64) ResumeView {
	v := ResumeView{Resume: *r, Rating: rating}
	if r.Guide != nil {
		v.GuideName = r.Guide.Name
	}
	return v
}

type TourView struct {
	models.Tour
	GuideName string  `json:"guide_name,omitempty"`
	Rating    float64 `json:"rating"`
}

func NewTourView(t *models.Tour, guide *Party, rating float64) TourView {
	v := TourView{Tour: *t, Rating: rating}
	if guide != nil {
		v.GuideName = guide.Name
	}
	return v
}

// ProfileView is what /profile/guide and /profile/tourist answer.
type ProfileView struct {
	UserName string          `json:"user_name"`
	Email    string          `json:"email"`
	Photo    string          `json:"photo,omitempty"`
	Address  *models.Address `json:"address"`
}

func NewProfileView(u *models.User) ProfileView {
	return ProfileView{UserName: u.Name, Email: u.Email, Photo: u.ProfileImage, Address: u.Address}
}
