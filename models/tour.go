package models

import "time"

type Tour struct {
	ID            uint        `json:"tour_id" gorm:"primaryKey"`
	GuideID       uint        `json:"guide_id" gorm:"not null;index"`
	Guide         *User       `json:"-" gorm:"foreignKey:GuideID;constraint:OnDelete:CASCADE"`
	Title         string      `json:"title" gorm:"not null"`
	Date          Date        `json:"date" gorm:"type:date;not null"`
	DepartureTime string      `json:"departure_time" gorm:"type:varchar(5)"` // "HH:MM"
	ReturnTime    string      `json:"return_time" gorm:"type:varchar(5)"`    // "HH:MM"
	Duration      Duration    `json:"duration" gorm:"type:jsonb"`
	GuestCount    int         `json:"guest_count"`
	Price         float64     `json:"price"`
	PriceType     string      `json:"price_type" gorm:"type:varchar(50)"`
	PaymentType   string      `json:"payment_type" gorm:"type:varchar(50)"`
	DressCode     string      `json:"dress_code" gorm:"type:text"`
	Included      string      `json:"included" gorm:"type:text"`
	NotIncluded   string      `json:"not_included" gorm:"type:text"`
	About         string      `json:"about" gorm:"type:text"`
	Photos        []TourPhoto `json:"photos" gorm:"foreignKey:TourID;constraint:OnDelete:CASCADE"`
	Destinations  []Address   `json:"destinations" gorm:"many2many:tour_destinations;"`
	Languages     []Language  `json:"languages" gorm:"many2many:tour_languages;"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// TourPhoto keeps the photo sequence of a tour ordered by Position.
type TourPhoto struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	TourID   uint   `json:"tour_id" gorm:"not null;index"`
	Position int    `json:"position" gorm:"not null"`
	URL      string `json:"url" gorm:"not null"`
}

type TourFilter struct {
	Skip       int
	Limit      int
	GuideID    *uint
	MinPrice   *float64
	MaxPrice   *float64
	DateFrom   *Date
	DateTo     *Date
	LanguageID *uint
	AddressID  *uint
}
