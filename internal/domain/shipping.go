package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Provinces
const (
	ProvincePunjab          = "Punjab"
	ProvinceSindh           = "Sindh"
	ProvinceKPK             = "KPK"
	ProvinceBalochistan     = "Balochistan"
	ProvinceGilgitBaltistan = "Gilgit-Baltistan"
	ProvinceAJK             = "AJK"
)

var Provinces = []string{
	ProvincePunjab,
	ProvinceSindh,
	ProvinceKPK,
	ProvinceBalochistan,
	ProvinceGilgitBaltistan,
	ProvinceAJK,
}

// Zone defaults applied when an admin payload leaves a field out.
const (
	DefaultZoneCountry         = "Pakistan"
	DefaultZoneBaseWeightKg    = 1.0
	DefaultZoneDeliveryTimeMin = 2
	DefaultZoneDeliveryTimeMax = 5
	DefaultZonePriority        = 50
)

// DefaultProductWeightKg is used for products without a recorded weight.
const DefaultProductWeightKg = 0.5

type ShippingZone struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Cities                []string  `json:"cities"`
	Country               string    `json:"country"`
	Province              *string   `json:"province"`
	BasePrice             float64   `json:"basePrice"`
	BaseWeightKg          float64   `json:"baseWeightKg"`
	PricePerExtraKg       float64   `json:"pricePerExtraKg"`
	DeliveryTimeMin       int       `json:"deliveryTimeMin"`
	DeliveryTimeMax       int       `json:"deliveryTimeMax"`
	FreeShippingThreshold *float64  `json:"freeShippingThreshold"`
	IsActive              bool      `json:"isActive"`
	IsDefault             bool      `json:"isDefault"`
	Priority              int       `json:"priority"` // lower is matched first
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// DeliveryTime renders the zone's day range, e.g. "2-5 days".
func (z ShippingZone) DeliveryTime() string {
	return fmt.Sprintf("%d-%d days", z.DeliveryTimeMin, z.DeliveryTimeMax)
}

// HasProvince reports whether the zone carries a province tag.
func (z ShippingZone) HasProvince() bool {
	return z.Province != nil && strings.TrimSpace(*z.Province) != ""
}

// Normalize trims text fields and drops blank city entries.
func (z *ShippingZone) Normalize() {
	z.Name = strings.TrimSpace(z.Name)
	z.Country = strings.TrimSpace(z.Country)

	cities := make([]string, 0, len(z.Cities))
	for _, c := range z.Cities {
		if c = strings.TrimSpace(c); c != "" {
			cities = append(cities, c)
		}
	}
	z.Cities = cities

	if z.Province != nil {
		p := strings.TrimSpace(*z.Province)
		if p == "" {
			z.Province = nil
		} else {
			z.Province = &p
		}
	}
}

// Validate checks the zone-definition rules that must hold before any write.
// Name uniqueness is enforced by the store.
func (z ShippingZone) Validate() error {
	if strings.TrimSpace(z.Name) == "" {
		return fmt.Errorf("%w: Zone name is required", ErrValidation)
	}

	hasCity := false
	for _, c := range z.Cities {
		if strings.TrimSpace(c) != "" {
			hasCity = true
			break
		}
	}
	if !hasCity && !z.HasProvince() {
		return fmt.Errorf("%w: At least one city or a province/region must be specified for the zone", ErrZoneConstraint)
	}

	if z.HasProvince() && !IsValidProvince(*z.Province) {
		return fmt.Errorf("%w: province must be one of %s", ErrValidation, strings.Join(Provinces, ", "))
	}
	if strings.TrimSpace(z.Country) == "" {
		return fmt.Errorf("%w: country is required", ErrValidation)
	}

	if z.BasePrice < 0 {
		return fmt.Errorf("%w: basePrice must not be negative", ErrValidation)
	}
	if z.BaseWeightKg < 0 {
		return fmt.Errorf("%w: baseWeightKg must not be negative", ErrValidation)
	}
	if z.PricePerExtraKg < 0 {
		return fmt.Errorf("%w: pricePerExtraKg must not be negative", ErrValidation)
	}
	if z.FreeShippingThreshold != nil && *z.FreeShippingThreshold < 0 {
		return fmt.Errorf("%w: freeShippingThreshold must not be negative", ErrValidation)
	}
	if z.DeliveryTimeMin < 0 || z.DeliveryTimeMax < 0 {
		return fmt.Errorf("%w: delivery time must not be negative", ErrValidation)
	}
	if z.DeliveryTimeMin > z.DeliveryTimeMax {
		return fmt.Errorf("%w: deliveryTimeMin must not exceed deliveryTimeMax", ErrValidation)
	}
	return nil
}

// IsValidProvince matches the closed province set case-insensitively.
func IsValidProvince(p string) bool {
	for _, v := range Provinces {
		if strings.EqualFold(v, strings.TrimSpace(p)) {
			return true
		}
	}
	return false
}

// ShippingQuote is the computed price breakdown for one destination and cart.
type ShippingQuote struct {
	ZoneID              string  `json:"zoneId"`
	ZoneName            string  `json:"zoneName"`
	TotalWeight         float64 `json:"totalWeight"`
	BasePrice           float64 `json:"basePrice"`
	ExtraWeightCharge   float64 `json:"extraWeightCharge"`
	ShippingCost        float64 `json:"shippingCost"`
	Subtotal            float64 `json:"subtotal"`
	Total               float64 `json:"total"`
	DeliveryTime        string  `json:"deliveryTime"`
	FreeShippingApplied bool    `json:"freeShippingApplied"`
	ShippingMessage     string  `json:"shippingMessage"`
}

// ToggleResult reports the outcome of enabling/disabling a zone. When
// RequiresConfirmation is set nothing was changed.
type ToggleResult struct {
	Zone                 *ShippingZone `json:"zone,omitempty"`
	RequiresConfirmation bool          `json:"requiresConfirmation"`
	PendingOrders        int64         `json:"pendingOrdersCount"`
	CancelledOrders      int64         `json:"cancelledOrdersCount"`
}

// --- Interfaces ---

type ShippingZoneRepository interface {
	// ActiveByPriority returns active zones by ascending priority, then creation order.
	ActiveByPriority(ctx context.Context) ([]ShippingZone, error)
	// FindDefault returns the active default zone, or nil when none is set.
	FindDefault(ctx context.Context) (*ShippingZone, error)

	List(ctx context.Context) ([]ShippingZone, error)
	GetByID(ctx context.Context, id string) (*ShippingZone, error)
	Create(ctx context.Context, zone *ShippingZone) error
	Update(ctx context.Context, zone *ShippingZone) error
	SetActive(ctx context.Context, id string, active bool) (*ShippingZone, error)
	// SetDefault makes id the only default zone in one atomic step.
	SetDefault(ctx context.Context, id string) (*ShippingZone, error)
	Delete(ctx context.Context, id string) error
}
