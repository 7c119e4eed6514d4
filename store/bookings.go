package store

import (
	"context"
	"sort"
	"time"

	"github.com/meinhoongagan/tourbook/db"
	"github.com/meinhoongagan/tourbook/models"
)

func (s *Store) CreateGuideBooking(ctx context.Context, booking *models.GuideBooking) error {
	err := s.db.WithContext(ctx).Omit("Tourist", "Guide", "Language").Create(booking).Error
	return translate(err, "Booking")
}

func (s *Store) CreateTourBooking(ctx context.Context, booking *models.TourBooking) error {
	err := s.db.WithContext(ctx).Omit("Tourist", "Tour", "Language").Create(booking).Error
	return translate(err, "Booking")
}

func (s *Store) FindGuideBooking(ctx context.Context, id uint) (*models.GuideBooking, error) {
	var booking models.GuideBooking
	if err := s.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, translate(err, "Booking")
	}
	return &booking, nil
}

// FindTourBooking loads the booking with its tour, which carries the owner.
func (s *Store) FindTourBooking(ctx context.Context, id uint) (*models.TourBooking, error) {
	var booking models.TourBooking
	if err := s.db.WithContext(ctx).Preload("Tour").First(&booking, id).Error; err != nil {
		return nil, translate(err, "Booking")
	}
	return &booking, nil
}

// ConfirmGuideBooking flips confirmed in a single conditional UPDATE. It
// reports how many rows changed: zero means the booking is missing, owned by
// someone else or already confirmed.
func (s *Store) ConfirmGuideBooking(ctx context.Context, id, guideID uint) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&models.GuideBooking{}).
		Where("id = ? AND guide_id = ? AND confirmed = ?", id, guideID, false).
		Update("confirmed", true)
	return res.RowsAffected, translate(res.Error, "Booking")
}

func (s *Store) ConfirmTourBooking(ctx context.Context, id, guideID uint) (int64, error) {
	owned := s.db.Model(&models.Tour{}).Select("id").Where("guide_id = ?", guideID)
	res := s.db.WithContext(ctx).
		Model(&models.TourBooking{}).
		Where("id = ? AND confirmed = ? AND tour_id IN (?)", id, false, owned).
		Update("confirmed", true)
	return res.RowsAffected, translate(res.Error, "Booking")
}

func (s *Store) ListGuideBookingsByGuide(ctx context.Context, guideID uint) ([]models.GuideBooking, error) {
	var bookings []models.GuideBooking
	err := s.db.WithContext(ctx).
		Where("guide_id = ?", guideID).
		Scopes(db.OrderByID("guide_bookings")).
		Find(&bookings).Error
	return bookings, translate(err, "Booking")
}

func (s *Store) ListGuideBookingsByTourist(ctx context.Context, touristID uint) ([]models.GuideBooking, error) {
	var bookings []models.GuideBooking
	err := s.db.WithContext(ctx).
		Where("tourist_id = ?", touristID).
		Scopes(db.OrderByID("guide_bookings")).
		Find(&bookings).Error
	return bookings, translate(err, "Booking")
}

// ListTourBookingsByGuide returns bookings on every tour the guide owns.
func (s *Store) ListTourBookingsByGuide(ctx context.Context, guideID uint) ([]models.TourBooking, error) {
	var bookings []models.TourBooking
	err := s.db.WithContext(ctx).
		Joins("JOIN tours ON tours.id = tour_bookings.tour_id").
		Where("tours.guide_id = ?", guideID).
		Preload("Tour").
		Scopes(db.OrderByID("tour_bookings")).
		Find(&bookings).Error
	return bookings, translate(err, "Booking")
}

func (s *Store) ListTourBookingsByTourist(ctx context.Context, touristID uint) ([]models.TourBooking, error) {
	var bookings []models.TourBooking
	err := s.db.WithContext(ctx).
		Where("tourist_id = ?", touristID).
		Preload("Tour").
		Scopes(db.OrderByID("tour_bookings")).
		Find(&bookings).Error
	return bookings, translate(err, "Booking")
}

type backlogRow struct {
	GuideID uint
	Count   int64
	Oldest  time.Time
}

// StaleBacklog groups unconfirmed bookings created before the cutoff by the
// guide who has to act on them.
func (s *Store) StaleBacklog(ctx context.Context, before time.Time) ([]models.GuideBacklog, error) {
	var guideRows, tourRows []backlogRow

	err := s.db.WithContext(ctx).
		Model(&models.GuideBooking{}).
		Select("guide_bookings.guide_id AS guide_id, COUNT(*) AS count, MIN(guide_bookings.created_at) AS oldest").
		Scopes(db.Unconfirmed("guide_bookings")).
		Where("guide_bookings.created_at < ?", before).
		Group("guide_bookings.guide_id").
		Scan(&guideRows).Error
	if err != nil {
		return nil, translate(err, "Booking")
	}

	err = s.db.WithContext(ctx).
		Model(&models.TourBooking{}).
		Select("tours.guide_id AS guide_id, COUNT(*) AS count, MIN(tour_bookings.created_at) AS oldest").
		Joins("JOIN tours ON tours.id = tour_bookings.tour_id").
		Scopes(db.Unconfirmed("tour_bookings")).
		Where("tour_bookings.created_at < ?", before).
		Group("tours.guide_id").
		Scan(&tourRows).Error
	if err != nil {
		return nil, translate(err, "Booking")
	}

	byGuide := make(map[uint]*models.GuideBacklog)
	entry := func(id uint, oldest time.Time) *models.GuideBacklog {
		b, ok := byGuide[id]
		if !ok {
			b = &models.GuideBacklog{GuideID: id, OldestWaiting: oldest}
			byGuide[id] = b
		}
		if oldest.Before(b.OldestWaiting) {
			b.OldestWaiting = oldest
		}
		return b
	}
	for _, r := range guideRows {
		entry(r.GuideID, r.Oldest).GuideCount += r.Count
	}
	for _, r := range tourRows {
		entry(r.GuideID, r.Oldest).TourCount += r.Count
	}

	backlog := make([]models.GuideBacklog, 0, len(byGuide))
	for _, b := range byGuide {
		backlog = append(backlog, *b)
	}
	sort.Slice(backlog, func(i, j int) bool { return backlog[i].GuideID < backlog[j].GuideID })
	return backlog, nil
}
