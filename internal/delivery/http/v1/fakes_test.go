package v1

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"rajaprint-backend/internal/domain"
)

// memStore is an in-memory stand-in for the Postgres repositories.
type memStore struct {
	mu       sync.Mutex
	zones    map[string]domain.ShippingZone
	products map[string]domain.Product
	orders   map[string]domain.Order
	history  []domain.OrderHistory
}

func newMemStore() *memStore {
	return &memStore{
		zones:    map[string]domain.ShippingZone{},
		products: map[string]domain.Product{},
		orders:   map[string]domain.Order{},
	}
}

func (s *memStore) addZone(z domain.ShippingZone) domain.ShippingZone {
	s.mu.Lock()
	defer s.mu.Unlock()
	if z.ID == "" {
		z.ID = uuid.NewString()
	}
	s.zones[z.ID] = z
	return z
}

func (s *memStore) addProduct(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *memStore) addOrder(o domain.Order) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.OrderNumber = domain.OrderNumberFromID(o.ID)
	s.orders[o.ID] = o
	return o
}

// --- zones ---

type memZones struct{ s *memStore }

func (r memZones) sorted(filter func(domain.ShippingZone) bool, less func(a, b domain.ShippingZone) bool) []domain.ShippingZone {
	out := []domain.ShippingZone{}
	for _, z := range r.s.zones {
		if filter(z) {
			out = append(out, z)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func (r memZones) ActiveByPriority(ctx context.Context) ([]domain.ShippingZone, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(
		func(z domain.ShippingZone) bool { return z.IsActive },
		func(a, b domain.ShippingZone) bool { return a.Priority < b.Priority },
	), nil
}

func (r memZones) FindDefault(ctx context.Context) (*domain.ShippingZone, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, z := range r.s.zones {
		if z.IsDefault && z.IsActive {
			return &z, nil
		}
	}
	return nil, nil
}

func (r memZones) List(ctx context.Context) ([]domain.ShippingZone, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(
		func(domain.ShippingZone) bool { return true },
		func(a, b domain.ShippingZone) bool {
			if a.Priority != b.Priority {
				return a.Priority > b.Priority
			}
			return a.Name < b.Name
		},
	), nil
}

func (r memZones) GetByID(ctx context.Context, id string) (*domain.ShippingZone, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	z, ok := r.s.zones[id]
	if !ok {
		return nil, fmt.Errorf("%w: shipping zone not found", domain.ErrNotFound)
	}
	return &z, nil
}

func (r memZones) checkName(zone *domain.ShippingZone) error {
	for id, z := range r.s.zones {
		if id != zone.ID && strings.EqualFold(z.Name, zone.Name) {
			return fmt.Errorf("%w: A shipping zone with this name already exists", domain.ErrZoneConstraint)
		}
	}
	return nil
}

func (r memZones) clearDefaults(except string) {
	for id, z := range r.s.zones {
		if id != except && z.IsDefault {
			z.IsDefault = false
			r.s.zones[id] = z
		}
	}
}

func (r memZones) Create(ctx context.Context, zone *domain.ShippingZone) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkName(zone); err != nil {
		return err
	}
	zone.ID = uuid.NewString()
	zone.CreatedAt = time.Now()
	zone.UpdatedAt = zone.CreatedAt
	if zone.IsDefault {
		r.clearDefaults(zone.ID)
	}
	r.s.zones[zone.ID] = *zone
	return nil
}

func (r memZones) Update(ctx context.Context, zone *domain.ShippingZone) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.zones[zone.ID]; !ok {
		return fmt.Errorf("%w: shipping zone not found", domain.ErrNotFound)
	}
	if err := r.checkName(zone); err != nil {
		return err
	}
	if zone.IsDefault {
		r.clearDefaults(zone.ID)
	}
	zone.UpdatedAt = time.Now()
	r.s.zones[zone.ID] = *zone
	return nil
}

func (r memZones) SetActive(ctx context.Context, id string, active bool) (*domain.ShippingZone, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	z, ok := r.s.zones[id]
	if !ok {
		return nil, fmt.Errorf("%w: shipping zone not found", domain.ErrNotFound)
	}
	z.IsActive = active
	r.s.zones[id] = z
	return &z, nil
}

func (r memZones) SetDefault(ctx context.Context, id string) (*domain.ShippingZone, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	z, ok := r.s.zones[id]
	if !ok {
		return nil, fmt.Errorf("%w: shipping zone not found", domain.ErrNotFound)
	}
	r.clearDefaults(id)
	z.IsDefault = true
	r.s.zones[id] = z
	return &z, nil
}

func (r memZones) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.zones[id]; !ok {
		return fmt.Errorf("%w: shipping zone not found", domain.ErrNotFound)
	}
	delete(r.s.zones, id)
	return nil
}

// --- products ---

type memProducts struct{ s *memStore }

func (r memProducts) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, fmt.Errorf("%w: product not found", domain.ErrNotFound)
	}
	return &p, nil
}

func (r memProducts) DecrementStock(ctx context.Context, id string, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok || p.Stock < quantity {
		return fmt.Errorf("%w: insufficient stock for product %s", domain.ErrValidation, id)
	}
	p.Stock -= quantity
	r.s.products[id] = p
	return nil
}

// --- orders ---

type memOrders struct{ s *memStore }

func (r memOrders) CreateOrder(ctx context.Context, order *domain.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	order.ID = uuid.NewString()
	order.OrderNumber = domain.OrderNumberFromID(order.ID)
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	r.s.orders[order.ID] = *order
	return nil
}

func (r memOrders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: order not found", domain.ErrNotFound)
	}
	return &o, nil
}

func (r memOrders) GetAll(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Order{}
	for _, o := range r.s.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.ZoneID != "" && (o.ShippingDetails == nil || o.ShippingDetails.ZoneID != filter.ZoneID) {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderNumber < out[j].OrderNumber })
	total := int64(len(out))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(out) {
		return []domain.Order{}, total, nil
	}
	end := start + filter.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (r memOrders) UpdateStatus(ctx context.Context, id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return fmt.Errorf("%w: order not found", domain.ErrNotFound)
	}
	o.Status = status
	r.s.orders[id] = o
	return nil
}

func (r memOrders) zoneOrders(zoneID string, statuses []string) []domain.Order {
	var out []domain.Order
	for _, o := range r.s.orders {
		if o.ShippingDetails == nil || o.ShippingDetails.ZoneID != zoneID {
			continue
		}
		if statuses == nil {
			out = append(out, o)
			continue
		}
		for _, s := range statuses {
			if o.Status == s {
				out = append(out, o)
				break
			}
		}
	}
	return out
}

func (r memOrders) CountByZone(ctx context.Context, zoneID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.zoneOrders(zoneID, nil))), nil
}

func (r memOrders) CountByZoneAndStatus(ctx context.Context, zoneID string, statuses []string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.zoneOrders(zoneID, statuses))), nil
}

func (r memOrders) CancelByZone(ctx context.Context, zoneID string, statuses []string, reason string) ([]domain.CancelledOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.CancelledOrder
	for _, o := range r.zoneOrders(zoneID, statuses) {
		out = append(out, domain.CancelledOrder{ID: o.ID, PreviousStatus: o.Status})
		o.Status = domain.OrderStatusCancelled
		o.CancelReason = reason
		r.s.orders[o.ID] = o
	}
	return out, nil
}

func (r memOrders) CreateOrderHistory(ctx context.Context, h *domain.OrderHistory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h.ID = uuid.NewString()
	h.CreatedAt = time.Now()
	r.s.history = append(r.s.history, *h)
	return nil
}

func (r memOrders) GetOrderHistory(ctx context.Context, orderID string) ([]domain.OrderHistory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.OrderHistory{}
	for _, h := range r.s.history {
		if h.OrderID == orderID {
			out = append(out, h)
		}
	}
	return out, nil
}

// inlineTx runs fn directly; the in-memory store has no rollback.
type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
