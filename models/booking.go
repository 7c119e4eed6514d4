package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// BookingState is derived from the confirmed flag. Requested is initial,
// Confirmed is terminal.
type BookingState string

const (
	BookingRequested BookingState = "requested"
	BookingConfirmed BookingState = "confirmed"
)

func stateOf(confirmed bool) BookingState {
	if confirmed {
		return BookingConfirmed
	}
	return BookingRequested
}

// CheckTransition validates a state change. Re-confirming is allowed and has
// no effect; nothing ever leaves Confirmed.
func CheckTransition(from, to BookingState) error {
	switch from {
	case BookingRequested:
		if to == BookingConfirmed || to == BookingRequested {
			return nil
		}
	case BookingConfirmed:
		if to == BookingConfirmed {
			return nil
		}
		return fmt.Errorf("no transitions allowed from %s", from)
	}
	return fmt.Errorf("invalid transition from %s to %s", from, to)
}

// GuideBooking is a request for a guide's time on a given date.
type GuideBooking struct {
	ID           uint      `json:"booking_id" gorm:"primaryKey"`
	TouristID    uint      `json:"tourist_id" gorm:"not null;index"`
	Tourist      *User     `json:"-" gorm:"foreignKey:TouristID"`
	GuideID      uint      `json:"guide_id" gorm:"not null;index"`
	Guide        *User     `json:"-" gorm:"foreignKey:GuideID"`
	TourDate     Date      `json:"tour_date" gorm:"type:date;not null"`
	ReserveCount int       `json:"reserve_count" gorm:"not null"`
	LanguageID   uint      `json:"language_id" gorm:"not null"`
	Language     *Language `json:"-" gorm:"foreignKey:LanguageID"`
	Message      string    `json:"message" gorm:"type:text"`
	Confirmed    bool      `json:"confirmed" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (b *GuideBooking) BeforeCreate(tx *gorm.DB) error {
	b.Confirmed = false
	return nil
}

func (b *GuideBooking) State() BookingState {
	return stateOf(b.Confirmed)
}

// OwnerID is the guide allowed to confirm the booking.
func (b *GuideBooking) OwnerID() uint {
	return b.GuideID
}

// TourBooking is a request for seats on a published tour.
type TourBooking struct {
	ID           uint      `json:"booking_id" gorm:"primaryKey"`
	TouristID    uint      `json:"tourist_id" gorm:"not null;index"`
	Tourist      *User     `json:"-" gorm:"foreignKey:TouristID"`
	TourID       uint      `json:"tour_id" gorm:"not null;index"`
	Tour         *Tour     `json:"-" gorm:"foreignKey:TourID"`
	ReserveCount int       `json:"reserve_count" gorm:"not null"`
	LanguageID   uint      `json:"language_id" gorm:"not null"`
	Language     *Language `json:"-" gorm:"foreignKey:LanguageID"`
	Message      string    `json:"message" gorm:"type:text"`
	Confirmed    bool      `json:"confirmed" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (b *TourBooking) BeforeCreate(tx *gorm.DB) error {
	b.Confirmed = false
	return nil
}

func (b *TourBooking) State() BookingState {
	return stateOf(b.Confirmed)
}

// OwnerID is the guide owning the booked tour. Tour must be loaded.
func (b *TourBooking) OwnerID() uint {
	if b.Tour == nil {
		return 0
	}
	return b.Tour.GuideID
}

// GuideBacklog counts requests still waiting on a guide.
type GuideBacklog struct {
	GuideID       uint
	GuideCount    int64
	TourCount     int64
	OldestWaiting time.Time
}
