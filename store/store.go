// Package store is the relational store client. Every method takes the
// request context and translates GORM errors into the application taxonomy.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/meinhoongagan/tourbook/utils"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func translate(err error, entity string) error {
	if err == nil {
		return nil
	}
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return utils.WrapError(utils.ErrNotFound, entity+" not found.", err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return utils.WrapError(utils.ErrConflict, entity+" already exists.", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return utils.WrapError(utils.ErrValidation, "Invalid reference for "+strings.ToLower(entity)+".", err)
	default:
		return fmt.Errorf("%s: %w", strings.ToLower(entity), err)
	}
}

// replaceLinks rewrites the rows of a many-to-many join table for one owner.
func replaceLinks(tx *gorm.DB, table, ownerCol string, ownerID uint, refCol string, refIDs []uint) error {
	if err := tx.Exec("DELETE FROM "+table+" WHERE "+ownerCol+" = ?", ownerID).Error; err != nil {
		return err
	}
	if len(refIDs) == 0 {
		return nil
	}
	rows := make([]map[string]interface{}, 0, len(refIDs))
	for _, id := range refIDs {
		rows = append(rows, map[string]interface{}{ownerCol: ownerID, refCol: id})
	}
	return tx.Table(table).Create(&rows).Error
}
