package sqlcrepo

import (
	"errors"
	"fmt"
	"rajaprint-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// mapError translates driver errors into domain errors. what names the
// entity for not-found messages.
func mapError(err error, what string) error {
	if err == nil {
		return nil
	}
	if isNotFound(err) {
		return fmt.Errorf("%w: %s not found", domain.ErrNotFound, what)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		switch pgErr.ConstraintName {
		case "shipping_zones_name_key":
			return fmt.Errorf("%w: A shipping zone with this name already exists", domain.ErrZoneConstraint)
		case "shipping_zones_single_default":
			return fmt.Errorf("%w: another zone is already the default", domain.ErrZoneConstraint)
		}
		return fmt.Errorf("%w: %s already exists", domain.ErrValidation, what)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s is still referenced", domain.ErrZoneConstraint, what)
	case pgCheckViolation:
		if pgErr.ConstraintName == "shipping_zones_reachable" {
			return fmt.Errorf("%w: At least one city or a province/region must be specified for the zone", domain.ErrZoneConstraint)
		}
		return fmt.Errorf("%w: %s violates %s", domain.ErrValidation, what, pgErr.ConstraintName)
	}
	return err
}
