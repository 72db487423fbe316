package usecase

import (
	"errors"

	"rajaprint-backend/internal/domain"
)

func isNotFoundErr(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
