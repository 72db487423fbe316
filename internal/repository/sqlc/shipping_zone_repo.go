package sqlcrepo

import (
	"context"
	"rajaprint-backend/db/sqlc"
	"rajaprint-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// defaultZoneLockKey serialises every writer that touches is_default.
const defaultZoneLockKey int64 = 0x7368697064656631

type shippingZoneRepository struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
	tm      domain.TransactionManager
}

func NewShippingZoneRepository(db *pgxpool.Pool) domain.ShippingZoneRepository {
	return &shippingZoneRepository{
		db:      db,
		queries: sqlc.New(db),
		tm:      NewTransactionManager(db),
	}
}

// --- Mappers ---

func sqlcZoneToDomain(z sqlc.ShippingZone) domain.ShippingZone {
	cities := z.Cities
	if cities == nil {
		cities = []string{}
	}
	return domain.ShippingZone{
		ID:                    uuidToString(z.ID),
		Name:                  z.Name,
		Cities:                cities,
		Country:               z.Country,
		Province:              z.Province,
		BasePrice:             numericToFloat64(z.BasePrice),
		BaseWeightKg:          numericToFloat64(z.BaseWeightKg),
		PricePerExtraKg:       numericToFloat64(z.PricePerExtraKg),
		DeliveryTimeMin:       int(z.DeliveryTimeMin),
		DeliveryTimeMax:       int(z.DeliveryTimeMax),
		FreeShippingThreshold: numericToFloat64Ptr(z.FreeShippingThreshold),
		IsActive:              z.IsActive,
		IsDefault:             z.IsDefault,
		Priority:              int(z.Priority),
		CreatedAt:             pgtimeToTime(z.CreatedAt),
		UpdatedAt:             pgtimeToTime(z.UpdatedAt),
	}
}

func sqlcZonesToDomain(zones []sqlc.ShippingZone) []domain.ShippingZone {
	result := make([]domain.ShippingZone, len(zones))
	for i, z := range zones {
		result[i] = sqlcZoneToDomain(z)
	}
	return result
}

// citiesParam keeps the column NOT NULL; pgx encodes a nil slice as NULL.
func citiesParam(cities []string) []string {
	if cities == nil {
		return []string{}
	}
	return cities
}

// --- Reads ---

func (r *shippingZoneRepository) ActiveByPriority(ctx context.Context) ([]domain.ShippingZone, error) {
	zones, err := GetQueriesFromContext(ctx, r.queries).ListActiveShippingZones(ctx)
	if err != nil {
		return nil, err
	}
	return sqlcZonesToDomain(zones), nil
}

func (r *shippingZoneRepository) FindDefault(ctx context.Context) (*domain.ShippingZone, error) {
	z, err := GetQueriesFromContext(ctx, r.queries).GetDefaultShippingZone(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	zone := sqlcZoneToDomain(z)
	return &zone, nil
}

func (r *shippingZoneRepository) List(ctx context.Context) ([]domain.ShippingZone, error) {
	zones, err := GetQueriesFromContext(ctx, r.queries).ListShippingZones(ctx)
	if err != nil {
		return nil, err
	}
	return sqlcZonesToDomain(zones), nil
}

func (r *shippingZoneRepository) GetByID(ctx context.Context, id string) (*domain.ShippingZone, error) {
	z, err := GetQueriesFromContext(ctx, r.queries).GetShippingZoneByID(ctx, stringToUUID(id))
	if err != nil {
		return nil, mapError(err, "shipping zone")
	}
	zone := sqlcZoneToDomain(z)
	return &zone, nil
}

// --- Writes ---

func (r *shippingZoneRepository) Create(ctx context.Context, zone *domain.ShippingZone) error {
	return r.tm.Do(ctx, func(ctx context.Context) error {
		q := GetQueriesFromContext(ctx, r.queries)

		z, err := q.CreateShippingZone(ctx, sqlc.CreateShippingZoneParams{
			Name:                  zone.Name,
			Cities:                citiesParam(zone.Cities),
			Country:               zone.Country,
			Province:              zone.Province,
			BasePrice:             float64ToNumeric(zone.BasePrice),
			BaseWeightKg:          float64ToNumeric(zone.BaseWeightKg),
			PricePerExtraKg:       float64ToNumeric(zone.PricePerExtraKg),
			DeliveryTimeMin:       int32(zone.DeliveryTimeMin),
			DeliveryTimeMax:       int32(zone.DeliveryTimeMax),
			FreeShippingThreshold: float64PtrToNumeric(zone.FreeShippingThreshold),
			IsActive:              zone.IsActive,
			Priority:              int32(zone.Priority),
		})
		if err != nil {
			return mapError(err, "shipping zone")
		}

		if zone.IsDefault {
			if z, err = r.makeDefault(ctx, q, z.ID); err != nil {
				return err
			}
		}
		*zone = sqlcZoneToDomain(z)
		return nil
	})
}

func (r *shippingZoneRepository) Update(ctx context.Context, zone *domain.ShippingZone) error {
	return r.tm.Do(ctx, func(ctx context.Context) error {
		q := GetQueriesFromContext(ctx, r.queries)

		z, err := q.UpdateShippingZone(ctx, sqlc.UpdateShippingZoneParams{
			ID:                    stringToUUID(zone.ID),
			Name:                  zone.Name,
			Cities:                citiesParam(zone.Cities),
			Country:               zone.Country,
			Province:              zone.Province,
			BasePrice:             float64ToNumeric(zone.BasePrice),
			BaseWeightKg:          float64ToNumeric(zone.BaseWeightKg),
			PricePerExtraKg:       float64ToNumeric(zone.PricePerExtraKg),
			DeliveryTimeMin:       int32(zone.DeliveryTimeMin),
			DeliveryTimeMax:       int32(zone.DeliveryTimeMax),
			FreeShippingThreshold: float64PtrToNumeric(zone.FreeShippingThreshold),
			IsActive:              zone.IsActive,
			Priority:              int32(zone.Priority),
			KeepDefault:           zone.IsDefault,
		})
		if err != nil {
			return mapError(err, "shipping zone")
		}

		if zone.IsDefault && !z.IsDefault {
			if z, err = r.makeDefault(ctx, q, z.ID); err != nil {
				return err
			}
		}
		*zone = sqlcZoneToDomain(z)
		return nil
	})
}

func (r *shippingZoneRepository) SetActive(ctx context.Context, id string, active bool) (*domain.ShippingZone, error) {
	z, err := GetQueriesFromContext(ctx, r.queries).SetShippingZoneActive(ctx, sqlc.SetShippingZoneActiveParams{
		ID:       stringToUUID(id),
		IsActive: active,
	})
	if err != nil {
		return nil, mapError(err, "shipping zone")
	}
	zone := sqlcZoneToDomain(z)
	return &zone, nil
}

func (r *shippingZoneRepository) SetDefault(ctx context.Context, id string) (*domain.ShippingZone, error) {
	var zone domain.ShippingZone
	err := r.tm.Do(ctx, func(ctx context.Context) error {
		z, err := r.makeDefault(ctx, GetQueriesFromContext(ctx, r.queries), stringToUUID(id))
		if err != nil {
			return err
		}
		zone = sqlcZoneToDomain(z)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

// makeDefault must run inside a transaction. The advisory lock orders
// concurrent callers so the clear-then-mark pair never interleaves.
func (r *shippingZoneRepository) makeDefault(ctx context.Context, q *sqlc.Queries, id pgtype.UUID) (sqlc.ShippingZone, error) {
	if err := q.LockShippingZoneDefaults(ctx, defaultZoneLockKey); err != nil {
		return sqlc.ShippingZone{}, err
	}
	if _, err := q.GetShippingZoneByID(ctx, id); err != nil {
		return sqlc.ShippingZone{}, mapError(err, "shipping zone")
	}
	if err := q.ClearOtherDefaultShippingZones(ctx, id); err != nil {
		return sqlc.ShippingZone{}, err
	}
	z, err := q.MarkShippingZoneDefault(ctx, id)
	if err != nil {
		return sqlc.ShippingZone{}, mapError(err, "shipping zone")
	}
	return z, nil
}

func (r *shippingZoneRepository) Delete(ctx context.Context, id string) error {
	n, err := GetQueriesFromContext(ctx, r.queries).DeleteShippingZone(ctx, stringToUUID(id))
	if err != nil {
		return mapError(err, "shipping zone")
	}
	if n == 0 {
		return mapError(pgx.ErrNoRows, "shipping zone")
	}
	return nil
}
