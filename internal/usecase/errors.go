package usecase

import (
	"errors"
	"fmt"

	"github.com/openbooks/openbooks/internal/domain"
)

// storeError classifies an error coming back from a repository. Domain
// sentinels pass through untouched; anything else is a store failure.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrPersistence) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
}

// errorClass names the error's class for metric labels.
func errorClass(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "persistence"
	}
}
