package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"rajaprint-backend/config"
	"rajaprint-backend/internal/domain"
	"rajaprint-backend/internal/shipping"
	"rajaprint-backend/pkg/cache"
	"rajaprint-backend/pkg/logger"
	"rajaprint-backend/pkg/utils"
)

type ShippingUsecase struct {
	zones       domain.ShippingZoneRepository
	registry    *ZoneRegistry
	resolver    *shipping.Resolver
	productRepo domain.ProductRepository
	orderRepo   domain.OrderRepository
	txManager   domain.TransactionManager
	cfg         *config.Config
}

func NewShippingUsecase(zones domain.ShippingZoneRepository, productRepo domain.ProductRepository, orderRepo domain.OrderRepository, txManager domain.TransactionManager, c cache.CacheService, cfg *config.Config) *ShippingUsecase {
	registry := NewZoneRegistry(zones, c, cfg.CacheZoneTTL)
	return &ShippingUsecase{
		zones:       zones,
		registry:    registry,
		resolver:    shipping.NewResolver(registry, shipping.NewMatcher(cfg.FuzzyThreshold), shipping.DefaultProvinces()),
		productRepo: productRepo,
		orderRepo:   orderRepo,
		txManager:   txManager,
		cfg:         cfg,
	}
}

// --- Quote ---

type QuoteItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type QuoteRequest struct {
	Items   []QuoteItem `json:"items"`
	City    string      `json:"city"`
	Country string      `json:"country"`
}

// QuoteLine is one priced cart line. Weight is the line total.
type QuoteLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Weight    float64 `json:"weight"`
	Price     float64 `json:"price"`
}

type QuoteResult struct {
	domain.ShippingQuote
	City      string      `json:"city"`
	Country   string      `json:"country"`
	MatchedBy string      `json:"matchedBy"`
	Items     []QuoteLine `json:"items"`
}

func (req QuoteRequest) validate(maxQuantity int) error {
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: No items provided", domain.ErrValidation)
	}
	if strings.TrimSpace(req.City) == "" || strings.TrimSpace(req.Country) == "" {
		return fmt.Errorf("%w: City and country are required", domain.ErrValidation)
	}
	for _, item := range req.Items {
		if _, err := uuid.Parse(item.ProductID); err != nil {
			return fmt.Errorf("%w: Invalid product ID: %s", domain.ErrValidation, item.ProductID)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
		}
		if maxQuantity > 0 && item.Quantity > maxQuantity {
			return fmt.Errorf("%w: quantity exceeds maximum allowed (%d)", domain.ErrValidation, maxQuantity)
		}
	}
	return nil
}

// Quote prices the cart for the destination. A destination no zone
// serves yields domain.ErrDeliveryUnavailable.
func (u *ShippingUsecase) Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	if err := req.validate(u.cfg.MaxCartQuantity); err != nil {
		return nil, err
	}

	lines := make([]QuoteLine, 0, len(req.Items))
	var totalWeight, subtotal float64
	for _, item := range req.Items {
		product, err := u.productRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			if isNotFoundErr(err) {
				return nil, fmt.Errorf("%w: Product not found: %s", domain.ErrNotFound, item.ProductID)
			}
			return nil, err
		}
		weight := product.ShippingWeight() * float64(item.Quantity)
		totalWeight += weight
		subtotal += product.Price * float64(item.Quantity)
		lines = append(lines, QuoteLine{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			Weight:    weight,
			Price:     product.Price,
		})
	}

	match, err := u.resolver.Resolve(ctx, req.City, req.Country)
	if err != nil {
		return nil, err
	}
	if !match.Found() {
		logger.WithContext(ctx).Info().
			Str("city", req.City).
			Str("country", match.Country).
			Msg("Quote requested for unserved destination")
		return nil, fmt.Errorf("%w: %s", domain.ErrDeliveryUnavailable, domain.MsgDeliveryUnavailable)
	}

	quote := shipping.ComputeQuote(*match.Zone, totalWeight, subtotal)
	quote.TotalWeight = utils.RoundMoney(quote.TotalWeight)

	return &QuoteResult{
		ShippingQuote: quote,
		City:          match.City,
		Country:       match.Country,
		MatchedBy:     match.Tier.String(),
		Items:         lines,
	}, nil
}

// --- Availability ---

type Availability struct {
	Available    bool   `json:"available"`
	ZoneName     string `json:"zoneName,omitempty"`
	DeliveryTime string `json:"deliveryTime,omitempty"`
	Message      string `json:"message"`
}

func (u *ShippingUsecase) CheckAvailability(ctx context.Context, city, country string) (*Availability, error) {
	match, err := u.resolver.Resolve(ctx, city, country)
	if err != nil {
		return nil, err
	}
	if !match.Found() {
		return &Availability{Available: false, Message: domain.MsgAvailabilityUnavailable}, nil
	}

	msg := domain.MsgDeliveryAvailable
	if match.Zone.IsDefault {
		msg = domain.MsgDeliveryAvailableRemote
	}
	return &Availability{
		Available:    true,
		ZoneName:     match.Zone.Name,
		DeliveryTime: match.Zone.DeliveryTime(),
		Message:      msg,
	}, nil
}

// --- Enums ---

// Enums returns the public lookup payload, cached like the rest of the
// zone read side and dropped on every zone write.
func (u *ShippingUsecase) Enums(ctx context.Context) (*domain.Enums, error) {
	return rememberCurrent(ctx, u.registry, cacheKeyEnums, u.cfg.CacheEnumsTTL, func(ctx context.Context) (*domain.Enums, error) {
		zones, err := u.registry.ActiveByPriority(ctx)
		if err != nil {
			return nil, err
		}
		summaries := make([]domain.ZoneSummary, len(zones))
		for i, z := range zones {
			summaries[i] = domain.ZoneSummary{
				ID:           z.ID,
				Name:         z.Name,
				Country:      z.Country,
				DeliveryTime: z.DeliveryTime(),
				IsDefault:    z.IsDefault,
			}
		}
		return &domain.Enums{
			OrderStatuses:  domain.OrderStatuses,
			PaymentMethods: domain.PaymentMethods,
			Provinces:      domain.Provinces,
			ShippingZones:  summaries,
		}, nil
	})
}

// --- Admin ---

// ZoneInput is an admin zone payload. Nil fields are left unchanged on
// update and take the zone defaults on create.
type ZoneInput struct {
	Name                  *string  `json:"name"`
	Cities                []string `json:"cities"`
	Country               *string  `json:"country"`
	Province              *string  `json:"province"` // "" clears
	BasePrice             *float64 `json:"basePrice"`
	BaseWeightKg          *float64 `json:"baseWeightKg"`
	PricePerExtraKg       *float64 `json:"pricePerExtraKg"`
	DeliveryTimeMin       *int     `json:"deliveryTimeMin"`
	DeliveryTimeMax       *int     `json:"deliveryTimeMax"`
	FreeShippingThreshold *float64 `json:"freeShippingThreshold"`
	IsActive              *bool    `json:"isActive"`
	IsDefault             *bool    `json:"isDefault"`
	Priority              *int     `json:"priority"`
}

func (in ZoneInput) applyTo(z *domain.ShippingZone) {
	if in.Name != nil {
		z.Name = *in.Name
	}
	if in.Cities != nil {
		z.Cities = in.Cities
	}
	if in.Country != nil {
		z.Country = *in.Country
	}
	if in.Province != nil {
		p := *in.Province
		z.Province = &p
	}
	if in.BasePrice != nil {
		z.BasePrice = *in.BasePrice
	}
	if in.BaseWeightKg != nil {
		z.BaseWeightKg = *in.BaseWeightKg
	}
	if in.PricePerExtraKg != nil {
		z.PricePerExtraKg = *in.PricePerExtraKg
	}
	if in.DeliveryTimeMin != nil {
		z.DeliveryTimeMin = *in.DeliveryTimeMin
	}
	if in.DeliveryTimeMax != nil {
		z.DeliveryTimeMax = *in.DeliveryTimeMax
	}
	if in.FreeShippingThreshold != nil {
		t := *in.FreeShippingThreshold
		z.FreeShippingThreshold = &t
	}
	if in.IsActive != nil {
		z.IsActive = *in.IsActive
	}
	if in.IsDefault != nil {
		z.IsDefault = *in.IsDefault
	}
	if in.Priority != nil {
		z.Priority = *in.Priority
	}
}

func newZoneFromInput(in ZoneInput) domain.ShippingZone {
	zone := domain.ShippingZone{
		Cities:          []string{},
		Country:         domain.DefaultZoneCountry,
		BaseWeightKg:    domain.DefaultZoneBaseWeightKg,
		DeliveryTimeMin: domain.DefaultZoneDeliveryTimeMin,
		DeliveryTimeMax: domain.DefaultZoneDeliveryTimeMax,
		IsActive:        true,
		Priority:        domain.DefaultZonePriority,
	}
	in.applyTo(&zone)
	return zone
}

func (u *ShippingUsecase) ListZones(ctx context.Context) ([]domain.ShippingZone, error) {
	return u.zones.List(ctx)
}

func (u *ShippingUsecase) GetZone(ctx context.Context, id string) (*domain.ShippingZone, error) {
	return u.zones.GetByID(ctx, id)
}

func (u *ShippingUsecase) CreateZone(ctx context.Context, in ZoneInput) (*domain.ShippingZone, error) {
	if in.BasePrice == nil {
		return nil, fmt.Errorf("%w: basePrice is required", domain.ErrValidation)
	}
	zone := newZoneFromInput(in)
	zone.Normalize()
	if err := zone.Validate(); err != nil {
		return nil, err
	}

	if err := u.zones.Create(ctx, &zone); err != nil {
		return nil, err
	}
	u.registry.Invalidate()

	logger.WithContext(ctx).Info().
		Str("zone_id", zone.ID).
		Str("zone", zone.Name).
		Bool("default", zone.IsDefault).
		Msg("Shipping zone created")
	return &zone, nil
}

func (u *ShippingUsecase) UpdateZone(ctx context.Context, id string, in ZoneInput) (*domain.ShippingZone, error) {
	zone, err := u.zones.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.applyTo(zone)
	zone.Normalize()
	if err := zone.Validate(); err != nil {
		return nil, err
	}

	if err := u.zones.Update(ctx, zone); err != nil {
		return nil, err
	}
	u.registry.Invalidate()

	logger.WithContext(ctx).Info().
		Str("zone_id", zone.ID).
		Str("zone", zone.Name).
		Msg("Shipping zone updated")
	return zone, nil
}

// ToggleZone flips a zone's active flag. Disabling a zone that still has
// open orders needs force; without it nothing changes and the result asks
// for confirmation. A forced disable cancels those orders in the same
// transaction.
func (u *ShippingUsecase) ToggleZone(ctx context.Context, id string, force bool, actorID string) (*domain.ToggleResult, error) {
	zone, err := u.zones.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &domain.ToggleResult{}
	if zone.IsActive {
		pending, err := u.orderRepo.CountByZoneAndStatus(ctx, id, domain.OpenOrderStatuses)
		if err != nil {
			return nil, err
		}
		result.PendingOrders = pending
		if pending > 0 && !force {
			result.RequiresConfirmation = true
			return result, nil
		}
	}

	err = u.txManager.Do(ctx, func(txCtx context.Context) error {
		updated, err := u.zones.SetActive(txCtx, id, !zone.IsActive)
		if err != nil {
			return err
		}
		result.Zone = updated

		if updated.IsActive || !force {
			return nil
		}

		reason := domain.MsgZoneDisabledCancelPrefix + updated.Name
		cancelled, err := u.orderRepo.CancelByZone(txCtx, id, domain.OpenOrderStatuses, reason)
		if err != nil {
			return fmt.Errorf("cancel orders of zone %s: %w", id, err)
		}
		for _, c := range cancelled {
			prev := c.PreviousStatus
			history := domain.OrderHistory{
				OrderID:        c.ID,
				PreviousStatus: &prev,
				NewStatus:      domain.OrderStatusCancelled,
				Reason:         &reason,
				CreatedBy:      optionalID(actorID),
			}
			if err := u.orderRepo.CreateOrderHistory(txCtx, &history); err != nil {
				return fmt.Errorf("failed to record history: %w", err)
			}
		}
		result.CancelledOrders = int64(len(cancelled))
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.registry.Invalidate()

	logger.WithContext(ctx).Info().
		Str("zone_id", id).
		Bool("active", result.Zone.IsActive).
		Int64("cancelled_orders", result.CancelledOrders).
		Msg("Shipping zone toggled")
	return result, nil
}

// DeleteZone removes a zone no order has ever referenced.
func (u *ShippingUsecase) DeleteZone(ctx context.Context, id string) error {
	if _, err := u.zones.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := u.orderRepo.CountByZone(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: Cannot delete zone. It has %d order(s) associated with it. Consider disabling it instead.", domain.ErrZoneConstraint, count)
	}

	if err := u.zones.Delete(ctx, id); err != nil {
		return err
	}
	u.registry.Invalidate()

	logger.WithContext(ctx).Info().Str("zone_id", id).Msg("Shipping zone deleted")
	return nil
}

func (u *ShippingUsecase) SetDefaultZone(ctx context.Context, id string) (*domain.ShippingZone, error) {
	zone, err := u.zones.SetDefault(ctx, id)
	if err != nil {
		return nil, err
	}
	u.registry.Invalidate()

	logger.WithContext(ctx).Info().
		Str("zone_id", zone.ID).
		Str("zone", zone.Name).
		Msg("Default shipping zone changed")
	return zone, nil
}
