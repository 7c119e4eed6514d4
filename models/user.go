package models

import (
	"time"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Password     string    `json:"-" gorm:"column:password_hash;not null"`
	Role         Role      `json:"role" gorm:"type:varchar(16);not null"`
	AddressID    *uint     `json:"address_id"`
	Address      *Address  `json:"address,omitempty" gorm:"foreignKey:AddressID"`
	ProfileImage string    `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) IsGuide() bool {
	return u != nil && u.Role == RoleGuide
}

func (u *User) IsTourist() bool {
	return u != nil && u.Role == RoleTourist
}
