package models

type Region struct {
	ID   uint   `json:"region_id" gorm:"primaryKey"`
	Name string `json:"region" gorm:"uniqueIndex;not null"`
}

type City struct {
	ID       uint    `json:"city_id" gorm:"primaryKey"`
	RegionID uint    `json:"region_id" gorm:"not null;index"`
	Region   *Region `json:"-" gorm:"foreignKey:RegionID"`
	Name     string  `json:"city" gorm:"uniqueIndex;not null"`
}

type Address struct {
	ID       uint    `json:"address_id" gorm:"primaryKey"`
	RegionID uint    `json:"region_id" gorm:"not null"`
	Region   *Region `json:"region,omitempty" gorm:"foreignKey:RegionID"`
	CityID   uint    `json:"city_id" gorm:"not null"`
	City     *City   `json:"city,omitempty" gorm:"foreignKey:CityID"`
}

type Language struct {
	ID   uint   `json:"language_id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}
