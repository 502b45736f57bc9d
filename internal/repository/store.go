package repository

import (
	"errors"
	"strings"

	"RiskFolio/internal/domain/repository"

	"gorm.io/gorm"
)

// mapError converts gorm errors into domain repository errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return repository.ErrDuplicate
	}
	return err
}
