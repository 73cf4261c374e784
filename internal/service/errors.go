package service

import (
	"errors"

	"github.com/lshigami/pesomatch/internal/apperror"
	"gorm.io/gorm"
)

// lookupError maps a failed single-record lookup to NotFoundError or
// PersistenceError.
func lookupError(entity string, id any, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(entity, id)
	}
	return apperror.Persistence("load "+entity, err)
}

// storeError keeps errors that already carry a kind and wraps the rest, such
// as a failed commit, as PersistenceError.
func storeError(op string, err error) error {
	if apperror.IsValidation(err) || apperror.IsNotFound(err) || apperror.IsPersistence(err) {
		return err
	}
	return apperror.Persistence(op, err)
}
