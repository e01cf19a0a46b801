package repository

import (
	"errors"

	"gorm.io/gorm"

	apperrors "theboar/internal/errors"
)

// translateError maps GORM errors onto the domain errors every repository
// implementation reports.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrDuplicateKey
	default:
		return err
	}
}
