package repository

import (
	"errors"
	"fmt"

	"github.com/amirasaad/onboarding/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain error kinds, keeping
// the original error in the chain. Unmapped errors are returned unchanged.
func MapGormErrorToDomain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", domain.ErrAlreadyExists, err)
	default:
		return err
	}
}

// WrapError runs a GORM operation and maps its error.
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Create(&row).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}
