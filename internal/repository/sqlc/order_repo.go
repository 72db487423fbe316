package sqlcrepo

import (
	"context"
	"fmt"
	"rajaprint-backend/db/sqlc"
	"rajaprint-backend/internal/domain"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type orderRepository struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
	tm      domain.TransactionManager
}

func NewOrderRepository(db *pgxpool.Pool) domain.OrderRepository {
	return &orderRepository{
		db:      db,
		queries: sqlc.New(db),
		tm:      NewTransactionManager(db),
	}
}

// --- Mappers ---

func sqlcOrderToDomain(o sqlc.Order, items []sqlc.OrderItem) (*domain.Order, error) {
	order := &domain.Order{
		ID:            uuidToString(o.ID),
		UserID:        uuidToStringPtr(o.UserID),
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		ItemsPrice:    numericToFloat64(o.ItemsPrice),
		ShippingPrice: numericToFloat64(o.ShippingPrice),
		TaxPrice:      numericToFloat64(o.TaxPrice),
		TotalPrice:    numericToFloat64(o.TotalPrice),
		Status:        o.Status,
		CancelReason:  o.CancelReason,
		PaymentMethod: o.PaymentMethod,
		OrderNotes:    o.OrderNotes,
		CreatedAt:     pgtimeToTime(o.CreatedAt),
		UpdatedAt:     pgtimeToTime(o.UpdatedAt),
	}
	order.OrderNumber = domain.OrderNumberFromID(order.ID)

	if len(o.ShippingAddress) > 0 {
		if err := json.Unmarshal(o.ShippingAddress, &order.ShippingAddress); err != nil {
			return nil, fmt.Errorf("decode shipping address of order %s: %w", order.ID, err)
		}
	}
	if len(o.ShippingDetails) > 0 {
		var details domain.ShippingDetails
		if err := json.Unmarshal(o.ShippingDetails, &details); err != nil {
			return nil, fmt.Errorf("decode shipping details of order %s: %w", order.ID, err)
		}
		order.ShippingDetails = &details
	}

	order.Items = make([]domain.OrderItem, len(items))
	for i, item := range items {
		order.Items[i] = domain.OrderItem{
			ProductID: uuidToString(item.ProductID),
			Name:      item.Name,
			Quantity:  int(item.Quantity),
			Price:     numericToFloat64(item.Price),
			WeightKg:  numericToFloat64(item.WeightKg),
		}
	}
	return order, nil
}

func sqlcHistoryToDomain(h sqlc.OrderHistory) domain.OrderHistory {
	return domain.OrderHistory{
		ID:             uuidToString(h.ID),
		OrderID:        uuidToString(h.OrderID),
		PreviousStatus: h.PreviousStatus,
		NewStatus:      h.NewStatus,
		Reason:         h.Reason,
		CreatedBy:      uuidToStringPtr(h.CreatedBy),
		CreatedAt:      pgtimeToTime(h.CreatedAt),
	}
}

// --- Orders ---

// CreateOrder stores the order and its lines in one transaction and
// fills in the generated fields.
func (r *orderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	address, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return err
	}
	var details []byte
	var zoneID string
	if order.ShippingDetails != nil {
		if details, err = json.Marshal(order.ShippingDetails); err != nil {
			return err
		}
		zoneID = order.ShippingDetails.ZoneID
	}

	return r.tm.Do(ctx, func(ctx context.Context) error {
		q := GetQueriesFromContext(ctx, r.queries)

		o, err := q.CreateOrder(ctx, sqlc.CreateOrderParams{
			UserID:          stringPtrToUUID(order.UserID),
			CustomerName:    order.CustomerName,
			CustomerEmail:   order.CustomerEmail,
			CustomerPhone:   order.CustomerPhone,
			ShippingAddress: address,
			ShippingZoneID:  stringToUUID(zoneID),
			ShippingDetails: details,
			ItemsPrice:      float64ToNumeric(order.ItemsPrice),
			ShippingPrice:   float64ToNumeric(order.ShippingPrice),
			TaxPrice:        float64ToNumeric(order.TaxPrice),
			TotalPrice:      float64ToNumeric(order.TotalPrice),
			Status:          order.Status,
			PaymentMethod:   order.PaymentMethod,
			OrderNotes:      order.OrderNotes,
		})
		if err != nil {
			return mapError(err, "order")
		}

		for _, item := range order.Items {
			err := q.CreateOrderItem(ctx, sqlc.CreateOrderItemParams{
				OrderID:   o.ID,
				ProductID: stringToUUID(item.ProductID),
				Name:      item.Name,
				Quantity:  int32(item.Quantity),
				Price:     float64ToNumeric(item.Price),
				WeightKg:  float64ToNumeric(item.WeightKg),
			})
			if err != nil {
				return mapError(err, "order item")
			}
		}

		order.ID = uuidToString(o.ID)
		order.OrderNumber = domain.OrderNumberFromID(order.ID)
		order.CancelReason = o.CancelReason
		order.CreatedAt = pgtimeToTime(o.CreatedAt)
		order.UpdatedAt = pgtimeToTime(o.UpdatedAt)
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	q := GetQueriesFromContext(ctx, r.queries)

	o, err := q.GetOrderByID(ctx, stringToUUID(id))
	if err != nil {
		return nil, mapError(err, "order")
	}
	items, err := q.GetOrderItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	return sqlcOrderToDomain(o, items)
}

func (r *orderRepository) GetAll(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	q := GetQueriesFromContext(ctx, r.queries)

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	zoneID := stringToUUID(filter.ZoneID)
	if filter.ZoneID != "" && !zoneID.Valid {
		return []domain.Order{}, 0, nil
	}

	total, err := q.CountOrders(ctx, sqlc.CountOrdersParams{
		Status: strPtr(filter.Status),
		ZoneID: zoneID,
		Search: strPtr(filter.Search),
	})
	if err != nil {
		return nil, 0, err
	}

	rows, err := q.ListOrders(ctx, sqlc.ListOrdersParams{
		Status: strPtr(filter.Status),
		ZoneID: zoneID,
		Search: strPtr(filter.Search),
		Limit:  int32(limit),
		Offset: int32((page - 1) * limit),
	})
	if err != nil {
		return nil, 0, err
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, o := range rows {
		items, err := q.GetOrderItems(ctx, o.ID)
		if err != nil {
			return nil, 0, err
		}
		order, err := sqlcOrderToDomain(o, items)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *order)
	}
	return orders, total, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	n, err := GetQueriesFromContext(ctx, r.queries).UpdateOrderStatus(ctx, sqlc.UpdateOrderStatusParams{
		ID:     stringToUUID(id),
		Status: status,
	})
	if err != nil {
		return mapError(err, "order")
	}
	if n == 0 {
		return mapError(pgx.ErrNoRows, "order")
	}
	return nil
}

// --- Zone references ---

func (r *orderRepository) CountByZone(ctx context.Context, zoneID string) (int64, error) {
	return GetQueriesFromContext(ctx, r.queries).CountOrdersByZone(ctx, stringToUUID(zoneID))
}

func (r *orderRepository) CountByZoneAndStatus(ctx context.Context, zoneID string, statuses []string) (int64, error) {
	return GetQueriesFromContext(ctx, r.queries).CountOrdersByZoneAndStatus(ctx, sqlc.CountOrdersByZoneAndStatusParams{
		ShippingZoneID: stringToUUID(zoneID),
		Statuses:       statuses,
	})
}

// CancelByZone cancels every order of the zone whose status is in
// statuses and reports what each one was before.
func (r *orderRepository) CancelByZone(ctx context.Context, zoneID string, statuses []string, reason string) ([]domain.CancelledOrder, error) {
	rows, err := GetQueriesFromContext(ctx, r.queries).CancelOrdersByZone(ctx, sqlc.CancelOrdersByZoneParams{
		ZoneID:   stringToUUID(zoneID),
		Statuses: statuses,
		Reason:   reason,
	})
	if err != nil {
		return nil, err
	}

	cancelled := make([]domain.CancelledOrder, len(rows))
	for i, row := range rows {
		cancelled[i] = domain.CancelledOrder{
			ID:             uuidToString(row.ID),
			PreviousStatus: row.PreviousStatus,
		}
	}
	return cancelled, nil
}

// --- History ---

func (r *orderRepository) CreateOrderHistory(ctx context.Context, history *domain.OrderHistory) error {
	err := GetQueriesFromContext(ctx, r.queries).CreateOrderHistory(ctx, sqlc.CreateOrderHistoryParams{
		OrderID:        stringToUUID(history.OrderID),
		PreviousStatus: history.PreviousStatus,
		NewStatus:      history.NewStatus,
		Reason:         history.Reason,
		CreatedBy:      stringPtrToUUID(history.CreatedBy),
	})
	return mapError(err, "order history")
}

func (r *orderRepository) GetOrderHistory(ctx context.Context, orderID string) ([]domain.OrderHistory, error) {
	rows, err := GetQueriesFromContext(ctx, r.queries).GetOrderHistory(ctx, stringToUUID(orderID))
	if err != nil {
		return nil, err
	}
	history := make([]domain.OrderHistory, len(rows))
	for i, h := range rows {
		history[i] = sqlcHistoryToDomain(h)
	}
	return history, nil
}
