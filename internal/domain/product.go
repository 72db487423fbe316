package domain

import (
	"context"
	"time"
)

type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	WeightKg  float64   `json:"weightKg"`
	Stock     int       `json:"stock"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ShippingWeight returns the unit weight used for quotes.
func (p Product) ShippingWeight() float64 {
	if p.WeightKg <= 0 {
		return DefaultProductWeightKg
	}
	return p.WeightKg
}

type ProductRepository interface {
	GetProductByID(ctx context.Context, id string) (*Product, error)
	// DecrementStock fails with ErrValidation when stock would go negative.
	DecrementStock(ctx context.Context, id string, quantity int) error
}
