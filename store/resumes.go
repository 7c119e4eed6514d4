package store

import (
	"context"

	"github.com/meinhoongagan/tourbook/db"
	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/utils"
	"gorm.io/gorm"
)

const averageRatingExpr = "COALESCE((SELECT AVG(reviews.rating) FROM reviews WHERE reviews.resume_id = resumes.id), 0)"

func (s *Store) GuideHasResume(ctx context.Context, guideID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Resume{}).
		Where("guide_id = ?", guideID).
		Count(&count).Error
	if err != nil {
		return false, translate(err, "Resume")
	}
	return count > 0, nil
}

// CreateResume inserts the resume and its language/address links in one
// transaction. The unique index on guide_id settles concurrent attempts.
func (s *Store) CreateResume(ctx context.Context, resume *models.Resume) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Resume{}).Where("guide_id = ?", resume.GuideID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return utils.Conflict("A resume already exists for this guide user.")
		}
		return tx.Omit("Guide", "Languages.*", "Addresses.*").Create(resume).Error
	})
	return translate(err, "Resume")
}

func (s *Store) FindResume(ctx context.Context, id uint) (*models.Resume, error) {
	var resume models.Resume
	if err := s.resumeQuery(ctx).First(&resume, id).Error; err != nil {
		return nil, translate(err, "Resume")
	}
	return &resume, nil
}

func (s *Store) FindResumeByGuide(ctx context.Context, guideID uint) (*models.Resume, error) {
	var resume models.Resume
	if err := s.resumeQuery(ctx).Where("guide_id = ?", guideID).First(&resume).Error; err != nil {
		return nil, translate(err, "Resume")
	}
	return &resume, nil
}

func (s *Store) ListResumes(ctx context.Context, f models.ResumeFilter) ([]models.Resume, error) {
	q := s.resumeQuery(ctx)
	if f.GuideID != nil {
		q = q.Where("resumes.guide_id = ?", *f.GuideID)
	}
	if f.PriceType != "" {
		q = q.Where("resumes.price_type = ?", f.PriceType)
	}
	if f.MinPrice != nil {
		q = q.Where("resumes.price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("resumes.price <= ?", *f.MaxPrice)
	}
	if f.MinRating != nil {
		q = q.Where(averageRatingExpr+" >= ?", *f.MinRating)
	}
	if f.MaxRating != nil {
		q = q.Where(averageRatingExpr+" <= ?", *f.MaxRating)
	}
	if len(f.LanguageIDs) > 0 {
		q = q.Where("resumes.id IN (?)", s.db.Table("resume_languages").Select("resume_id").Where("language_id IN ?", f.LanguageIDs))
	}
	if len(f.AddressIDs) > 0 {
		q = q.Where("resumes.id IN (?)", s.db.Table("resume_addresses").Select("resume_id").Where("address_id IN ?", f.AddressIDs))
	}

	var resumes []models.Resume
	err := q.Scopes(db.OrderByID("resumes"), db.Paginate(f.Skip, f.Limit)).Find(&resumes).Error
	return resumes, translate(err, "Resume")
}

// UpdateResume rewrites the editable fields and both link sets atomically.
func (s *Store) UpdateResume(ctx context.Context, resume *models.Resume) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Resume{ID: resume.ID}).
			Select("bio", "experience_start_date", "price", "price_type", "updated_at").
			Updates(resume)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := replaceLinks(tx, "resume_languages", "resume_id", resume.ID, "language_id", languageIDs(resume.Languages)); err != nil {
			return err
		}
		return replaceLinks(tx, "resume_addresses", "resume_id", resume.ID, "address_id", addressIDs(resume.Addresses))
	})
	return translate(err, "Resume")
}

func (s *Store) DeleteResume(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM resume_languages WHERE resume_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM resume_addresses WHERE resume_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Resume{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err, "Resume")
}

func (s *Store) resumeQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.Resume{}).
		Preload("Guide").
		Preload("Languages").
		Preload("Addresses")
}

func languageIDs(langs []models.Language) []uint {
	ids := make([]uint, 0, len(langs))
	for _, l := range langs {
		ids = append(ids, l.ID)
	}
	return ids
}

func addressIDs(addrs []models.Address) []uint {
	ids := make([]uint, 0, len(addrs))
	for _, a := range addrs {
		ids = append(ids, a.ID)
	}
	return ids
}
