package db

import "gorm.io/gorm"

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Paginate applies skip/limit, falling back to DefaultLimit and capping at MaxLimit.
func Paginate(skip, limit int) func(db *gorm.DB) *gorm.DB {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(skip).Limit(limit)
	}
}

func WithID(id uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func WithIDs(ids ...uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN (?)", ids)
	}
}

// Unconfirmed keeps bookings still in the requested state.
func Unconfirmed(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".confirmed = ?", false)
	}
}

// OrderByID gives list queries a stable order.
func OrderByID(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".id ASC")
	}
}
