package usecase

import (
	"context"

	"rajaprint-backend/internal/domain"
)

type mockZoneRepo struct {
	ActiveByPriorityFunc func(ctx context.Context) ([]domain.ShippingZone, error)
	FindDefaultFunc      func(ctx context.Context) (*domain.ShippingZone, error)
	ListFunc             func(ctx context.Context) ([]domain.ShippingZone, error)
	GetByIDFunc          func(ctx context.Context, id string) (*domain.ShippingZone, error)
	CreateFunc           func(ctx context.Context, zone *domain.ShippingZone) error
	UpdateFunc           func(ctx context.Context, zone *domain.ShippingZone) error
	SetActiveFunc        func(ctx context.Context, id string, active bool) (*domain.ShippingZone, error)
	SetDefaultFunc       func(ctx context.Context, id string) (*domain.ShippingZone, error)
	DeleteFunc           func(ctx context.Context, id string) error

	activeCalls int
}

func (m *mockZoneRepo) ActiveByPriority(ctx context.Context) ([]domain.ShippingZone, error) {
	m.activeCalls++
	if m.ActiveByPriorityFunc == nil {
		return nil, nil
	}
	return m.ActiveByPriorityFunc(ctx)
}

func (m *mockZoneRepo) FindDefault(ctx context.Context) (*domain.ShippingZone, error) {
	if m.FindDefaultFunc == nil {
		return nil, nil
	}
	return m.FindDefaultFunc(ctx)
}

func (m *mockZoneRepo) List(ctx context.Context) ([]domain.ShippingZone, error) {
	return m.ListFunc(ctx)
}

func (m *mockZoneRepo) GetByID(ctx context.Context, id string) (*domain.ShippingZone, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockZoneRepo) Create(ctx context.Context, zone *domain.ShippingZone) error {
	return m.CreateFunc(ctx, zone)
}

func (m *mockZoneRepo) Update(ctx context.Context, zone *domain.ShippingZone) error {
	return m.UpdateFunc(ctx, zone)
}

func (m *mockZoneRepo) SetActive(ctx context.Context, id string, active bool) (*domain.ShippingZone, error) {
	return m.SetActiveFunc(ctx, id, active)
}

func (m *mockZoneRepo) SetDefault(ctx context.Context, id string) (*domain.ShippingZone, error) {
	return m.SetDefaultFunc(ctx, id)
}

func (m *mockZoneRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type mockProductRepo struct {
	GetProductByIDFunc func(ctx context.Context, id string) (*domain.Product, error)
	DecrementStockFunc func(ctx context.Context, id string, quantity int) error

	lookups int
}

func (m *mockProductRepo) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	m.lookups++
	return m.GetProductByIDFunc(ctx, id)
}

func (m *mockProductRepo) DecrementStock(ctx context.Context, id string, quantity int) error {
	if m.DecrementStockFunc == nil {
		return nil
	}
	return m.DecrementStockFunc(ctx, id, quantity)
}

type mockOrderRepo struct {
	CreateOrderFunc          func(ctx context.Context, order *domain.Order) error
	GetByIDFunc              func(ctx context.Context, id string) (*domain.Order, error)
	GetAllFunc               func(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error)
	UpdateStatusFunc         func(ctx context.Context, id, status string) error
	CountByZoneFunc          func(ctx context.Context, zoneID string) (int64, error)
	CountByZoneAndStatusFunc func(ctx context.Context, zoneID string, statuses []string) (int64, error)
	CancelByZoneFunc         func(ctx context.Context, zoneID string, statuses []string, reason string) ([]domain.CancelledOrder, error)
	GetOrderHistoryFunc      func(ctx context.Context, orderID string) ([]domain.OrderHistory, error)

	history []domain.OrderHistory
}

func (m *mockOrderRepo) CreateOrder(ctx context.Context, order *domain.Order) error {
	return m.CreateOrderFunc(ctx, order)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockOrderRepo) GetAll(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	return m.GetAllFunc(ctx, filter)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return m.UpdateStatusFunc(ctx, id, status)
}

func (m *mockOrderRepo) CountByZone(ctx context.Context, zoneID string) (int64, error) {
	return m.CountByZoneFunc(ctx, zoneID)
}

func (m *mockOrderRepo) CountByZoneAndStatus(ctx context.Context, zoneID string, statuses []string) (int64, error) {
	return m.CountByZoneAndStatusFunc(ctx, zoneID, statuses)
}

func (m *mockOrderRepo) CancelByZone(ctx context.Context, zoneID string, statuses []string, reason string) ([]domain.CancelledOrder, error) {
	return m.CancelByZoneFunc(ctx, zoneID, statuses, reason)
}

func (m *mockOrderRepo) CreateOrderHistory(ctx context.Context, history *domain.OrderHistory) error {
	m.history = append(m.history, *history)
	return nil
}

func (m *mockOrderRepo) GetOrderHistory(ctx context.Context, orderID string) ([]domain.OrderHistory, error) {
	return m.GetOrderHistoryFunc(ctx, orderID)
}

// mockTxManager runs fn inline and records whether it committed.
type mockTxManager struct {
	calls     int
	committed int
}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	m.committed++
	return nil
}
