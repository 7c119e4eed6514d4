package db

import (
	"fmt"
	"log"

	"github.com/meinhoongagan/tourbook/models"
	"gorm.io/gorm"
)

// Migrate creates or updates every table, including the unique index that
// enforces one resume per guide.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Region{},
		&models.City{},
		&models.Address{},
		&models.Language{},
		&models.User{},
		&models.Resume{},
		&models.Tour{},
		&models.TourPhoto{},
		&models.Review{},
		&models.TourReview{},
		&models.GuideBooking{},
		&models.TourBooking{},
	)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	log.Println("Migrations applied successfully")
	return nil
}
