package domain

import (
	"context"
	"strings"
	"time"
)

type OrderFilter struct {
	Page   int
	Limit  int
	Status string
	ZoneID string
	Search string
}

// --- Order Entities ---

type ShippingAddress struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
}

// ShippingDetails is the quote snapshot stored with an order.
type ShippingDetails struct {
	ZoneID              string  `json:"zoneId"`
	ZoneName            string  `json:"zoneName"`
	DeliveryTime        string  `json:"deliveryTime"`
	TotalWeight         float64 `json:"totalWeight"`
	BaseShippingPrice   float64 `json:"baseShippingPrice"`
	ExtraWeightCharge   float64 `json:"extraWeightCharge"`
	FreeShippingApplied bool    `json:"freeShippingApplied"`
	ShippingMessage     string  `json:"shippingMessage"`
}

type Order struct {
	ID              string           `json:"id"`
	OrderNumber     string           `json:"orderNumber"`
	UserID          *string          `json:"userId"` // nil for guest checkout
	CustomerName    string           `json:"customerName"`
	CustomerEmail   string           `json:"customerEmail"`
	CustomerPhone   string           `json:"customerPhone"`
	ShippingAddress ShippingAddress  `json:"shippingAddress"`
	ShippingDetails *ShippingDetails `json:"shippingDetails"`
	Items           []OrderItem      `json:"items"`
	ItemsPrice      float64          `json:"itemsPrice"`
	ShippingPrice   float64          `json:"shippingPrice"`
	TaxPrice        float64          `json:"taxPrice"`
	TotalPrice      float64          `json:"totalPrice"`
	Status          string           `json:"status"` // pending, processing, shipped, delivered, cancelled
	CancelReason    string           `json:"cancelReason"`
	PaymentMethod   string           `json:"paymentMethod"`
	OrderNotes      string           `json:"orderNotes"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`    // Price at time of purchase
	WeightKg  float64 `json:"weightKg"` // Line weight (unit weight x quantity)
}

type OrderHistory struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"orderId"`
	PreviousStatus *string   `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	Reason         *string   `json:"reason"`
	CreatedBy      *string   `json:"createdBy"` // UserID
	CreatedAt      time.Time `json:"createdAt"`
}

// CancelledOrder is one order closed by a bulk zone cancellation.
type CancelledOrder struct {
	ID             string
	PreviousStatus string
}

// OrderNumberFromID derives the customer-facing number, e.g. ORD-1A2B3C4D.
func OrderNumberFromID(id string) string {
	compact := strings.ReplaceAll(id, "-", "")
	if len(compact) > 8 {
		compact = compact[len(compact)-8:]
	}
	return "ORD-" + strings.ToUpper(compact)
}

// --- Interfaces ---

type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	GetAll(ctx context.Context, filter OrderFilter) ([]Order, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error

	// Zone references
	CountByZone(ctx context.Context, zoneID string) (int64, error)
	CountByZoneAndStatus(ctx context.Context, zoneID string, statuses []string) (int64, error)
	CancelByZone(ctx context.Context, zoneID string, statuses []string, reason string) ([]CancelledOrder, error)

	// History
	CreateOrderHistory(ctx context.Context, history *OrderHistory) error
	GetOrderHistory(ctx context.Context, orderID string) ([]OrderHistory, error)
}
