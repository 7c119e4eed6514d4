package store

import (
	"context"
	"errors"

	"github.com/meinhoongagan/tourbook/db"
	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) CreateTour(ctx context.Context, tour *models.Tour) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Guide", "Photos", "Destinations.*", "Languages.*").Create(tour).Error
	})
	return translate(err, "Tour")
}

func (s *Store) FindTour(ctx context.Context, id uint) (*models.Tour, error) {
	var tour models.Tour
	if err := s.tourQuery(ctx).First(&tour, id).Error; err != nil {
		return nil, translate(err, "Tour")
	}
	return &tour, nil
}

func (s *Store) ListTours(ctx context.Context, f models.TourFilter) ([]models.Tour, error) {
	q := s.tourQuery(ctx)
	if f.GuideID != nil {
		q = q.Where("tours.guide_id = ?", *f.GuideID)
	}
	if f.MinPrice != nil {
		q = q.Where("tours.price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("tours.price <= ?", *f.MaxPrice)
	}
	if f.DateFrom != nil {
		q = q.Where("tours.date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("tours.date <= ?", *f.DateTo)
	}
	if f.LanguageID != nil {
		q = q.Where("tours.id IN (?)", s.db.Table("tour_languages").Select("tour_id").Where("language_id = ?", *f.LanguageID))
	}
	if f.AddressID != nil {
		q = q.Where("tours.id IN (?)", s.db.Table("tour_destinations").Select("tour_id").Where("address_id = ?", *f.AddressID))
	}

	var tours []models.Tour
	err := q.Scopes(db.OrderByID("tours"), db.Paginate(f.Skip, f.Limit)).Find(&tours).Error
	return tours, translate(err, "Tour")
}

func (s *Store) UpdateTour(ctx context.Context, tour *models.Tour) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Tour{ID: tour.ID}).
			Select("title", "date", "departure_time", "return_time", "duration", "guest_count",
				"price", "price_type", "payment_type", "dress_code", "included", "not_included",
				"about", "updated_at").
			Updates(tour)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := replaceLinks(tx, "tour_destinations", "tour_id", tour.ID, "address_id", addressIDs(tour.Destinations)); err != nil {
			return err
		}
		return replaceLinks(tx, "tour_languages", "tour_id", tour.ID, "language_id", languageIDs(tour.Languages))
	})
	return translate(err, "Tour")
}

// DeleteTour removes a tour with its photos and links. Tours that still have
// bookings are kept.
func (s *Store) DeleteTour(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"tour_destinations", "tour_languages", "tour_photos"} {
			if err := tx.Exec("DELETE FROM "+table+" WHERE tour_id = ?", id).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&models.Tour{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return utils.WrapError(utils.ErrConflict, "Tour has bookings and cannot be deleted.", err)
	}
	return translate(err, "Tour")
}

// AddTourPhoto appends a photo at the end of the tour's sequence. The tour row
// is locked so concurrent uploads get distinct positions.
func (s *Store) AddTourPhoto(ctx context.Context, tourID uint, url string) (*models.TourPhoto, error) {
	photo := &models.TourPhoto{TourID: tourID, URL: url}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tour models.Tour
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&tour, tourID).Error; err != nil {
			return err
		}
		var next int
		if err := tx.Model(&models.TourPhoto{}).
			Where("tour_id = ?", tourID).
			Select("COALESCE(MAX(position), -1) + 1").
			Scan(&next).Error; err != nil {
			return err
		}
		photo.Position = next
		return tx.Create(photo).Error
	})
	if err != nil {
		return nil, translate(err, "Tour")
	}
	return photo, nil
}

func (s *Store) tourQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.Tour{}).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("tour_photos.position ASC")
		}).
		Preload("Destinations").
		Preload("Languages")
}
