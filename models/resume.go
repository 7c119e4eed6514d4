package models

import "time"

// Resume is a guide's public profile. At most one per guide, backed by the
// unique index on guide_id.
type Resume struct {
	ID                  uint       `json:"resume_id" gorm:"primaryKey"`
	GuideID             uint       `json:"guide_id" gorm:"uniqueIndex;not null"`
	Guide               *User      `json:"-" gorm:"foreignKey:GuideID;constraint:OnDelete:CASCADE"`
	Bio                 string     `json:"bio" gorm:"type:text"`
	ExperienceStartDate *Date      `json:"experience_start_date" gorm:"type:date"`
	Price               float64    `json:"price"`
	PriceType           string     `json:"price_type" gorm:"type:varchar(50)"`
	Languages           []Language `json:"languages" gorm:"many2many:resume_languages;"`
	Addresses           []Address  `json:"addresses" gorm:"many2many:resume_addresses;"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type ResumeFilter struct {
	Skip        int
	Limit       int
	GuideID     *uint
	MinPrice    *float64
	MaxPrice    *float64
	PriceType   string
	MinRating   *float64
	MaxRating   *float64
	LanguageIDs []uint
	AddressIDs  []uint
}
