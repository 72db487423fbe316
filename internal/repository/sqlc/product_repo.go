package sqlcrepo

import (
	"context"
	"fmt"
	"rajaprint-backend/db/sqlc"
	"rajaprint-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productRepository struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
}

func NewProductRepository(db *pgxpool.Pool) domain.ProductRepository {
	return &productRepository{
		db:      db,
		queries: sqlc.New(db),
	}
}

func sqlcProductToDomain(p sqlc.Product) domain.Product {
	return domain.Product{
		ID:        uuidToString(p.ID),
		Name:      p.Name,
		Price:     numericToFloat64(p.Price),
		WeightKg:  numericToFloat64(p.WeightKg),
		Stock:     int(p.Stock),
		IsActive:  p.IsActive,
		CreatedAt: pgtimeToTime(p.CreatedAt),
		UpdatedAt: pgtimeToTime(p.UpdatedAt),
	}
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	p, err := GetQueriesFromContext(ctx, r.queries).GetProductByID(ctx, stringToUUID(id))
	if err != nil {
		return nil, mapError(err, "product")
	}
	product := sqlcProductToDomain(p)
	return &product, nil
}

// DecrementStock reserves quantity units. The guard lives in the UPDATE so
// two checkouts can't oversell the last unit.
func (r *productRepository) DecrementStock(ctx context.Context, id string, quantity int) error {
	n, err := GetQueriesFromContext(ctx, r.queries).DecrementProductStock(ctx, sqlc.DecrementProductStockParams{
		Quantity: int32(quantity),
		ID:       stringToUUID(id),
	})
	if err != nil {
		return mapError(err, "product")
	}
	if n == 0 {
		return fmt.Errorf("%w: insufficient stock for product %s", domain.ErrValidation, id)
	}
	return nil
}
