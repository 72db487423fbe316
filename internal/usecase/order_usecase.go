package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"rajaprint-backend/internal/domain"
	"rajaprint-backend/pkg/logger"
	"rajaprint-backend/pkg/utils"
)

type OrderUsecase struct {
	orderRepo   domain.OrderRepository
	productRepo domain.ProductRepository
	shipping    *ShippingUsecase
	txManager   domain.TransactionManager
}

func NewOrderUsecase(repo domain.OrderRepository, pRepo domain.ProductRepository, shipping *ShippingUsecase, txManager domain.TransactionManager) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:   repo,
		productRepo: pRepo,
		shipping:    shipping,
		txManager:   txManager,
	}
}

type PlaceOrderRequest struct {
	CustomerName    string                 `json:"customerName"`
	CustomerEmail   string                 `json:"customerEmail"`
	CustomerPhone   string                 `json:"customerPhone"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	Items           []QuoteItem            `json:"items"`
	PaymentMethod   string                 `json:"paymentMethod"`
	OrderNotes      string                 `json:"orderNotes"`
}

func (req *PlaceOrderRequest) normalize() error {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerEmail = strings.ToLower(strings.TrimSpace(req.CustomerEmail))
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.ShippingAddress.City = strings.TrimSpace(req.ShippingAddress.City)
	req.ShippingAddress.Country = strings.TrimSpace(req.ShippingAddress.Country)

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(req.CustomerEmail); err != nil {
		return fmt.Errorf("%w: a valid customer email is required", domain.ErrValidation)
	}
	if strings.TrimSpace(req.ShippingAddress.AddressLine1) == "" {
		return fmt.Errorf("%w: shipping address is required", domain.ErrValidation)
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = domain.PaymentMethodCard
	}
	if !domain.IsValidPaymentMethod(req.PaymentMethod) {
		return fmt.Errorf("%w: unsupported payment method %q", domain.ErrValidation, req.PaymentMethod)
	}
	return nil
}

// PlaceOrder prices the cart server-side, then stores the order and
// reserves stock in one transaction. userID is empty for guests.
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID string, req PlaceOrderRequest) (*domain.Order, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}

	quote, err := u.shipping.Quote(ctx, QuoteRequest{
		Items:   req.Items,
		City:    req.ShippingAddress.City,
		Country: req.ShippingAddress.Country,
	})
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, len(quote.Items))
	for i, line := range quote.Items {
		items[i] = domain.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
			WeightKg:  line.Weight,
		}
	}

	itemsPrice := utils.RoundMoney(quote.Subtotal)
	shippingPrice := utils.RoundMoney(quote.ShippingCost)

	order := &domain.Order{
		UserID:          optionalID(userID),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		ShippingDetails: &domain.ShippingDetails{
			ZoneID:              quote.ZoneID,
			ZoneName:            quote.ZoneName,
			DeliveryTime:        quote.DeliveryTime,
			TotalWeight:         quote.TotalWeight,
			BaseShippingPrice:   quote.BasePrice,
			ExtraWeightCharge:   quote.ExtraWeightCharge,
			FreeShippingApplied: quote.FreeShippingApplied,
			ShippingMessage:     quote.ShippingMessage,
		},
		Items:         items,
		ItemsPrice:    itemsPrice,
		ShippingPrice: shippingPrice,
		TotalPrice:    utils.RoundMoney(itemsPrice + shippingPrice),
		Status:        domain.OrderStatusPending,
		PaymentMethod: req.PaymentMethod,
		OrderNotes:    strings.TrimSpace(req.OrderNotes),
	}

	err = u.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := u.orderRepo.CreateOrder(txCtx, order); err != nil {
			return err
		}

		for _, item := range order.Items {
			if err := u.productRepo.DecrementStock(txCtx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		reason := "Order placed"
		return u.orderRepo.CreateOrderHistory(txCtx, &domain.OrderHistory{
			OrderID:   order.ID,
			NewStatus: domain.OrderStatusPending,
			Reason:    &reason,
			CreatedBy: order.UserID,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).Info().
		Str("order_id", order.ID).
		Str("order_number", order.OrderNumber).
		Str("zone", quote.ZoneName).
		Float64("total", order.TotalPrice).
		Msg("Order placed")
	return order, nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return u.orderRepo.GetByID(ctx, id)
}

func (u *OrderUsecase) GetAllOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	if filter.Status != "" && !domain.IsValidOrderStatus(filter.Status) {
		return nil, 0, fmt.Errorf("%w: unknown order status %q", domain.ErrValidation, filter.Status)
	}
	return u.orderRepo.GetAll(ctx, filter)
}

func (u *OrderUsecase) GetOrderHistory(ctx context.Context, orderID string) ([]domain.OrderHistory, error) {
	return u.orderRepo.GetOrderHistory(ctx, orderID)
}

func (u *OrderUsecase) UpdateOrderStatus(ctx context.Context, orderID, newStatus, note, actorID string) error {
	if !domain.IsValidOrderStatus(newStatus) {
		return fmt.Errorf("%w: unknown order status %q", domain.ErrValidation, newStatus)
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	oldStatus := order.Status

	if err := validateOrderTransition(oldStatus, newStatus); err != nil {
		return err
	}

	err = u.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := u.orderRepo.UpdateStatus(txCtx, orderID, newStatus); err != nil {
			return err
		}

		reason := strings.TrimSpace(note)
		if reason == "" {
			reason = fmt.Sprintf("System: Status changed from %s to %s", oldStatus, newStatus)
		}
		history := domain.OrderHistory{
			OrderID:        orderID,
			PreviousStatus: &oldStatus,
			NewStatus:      newStatus,
			Reason:         &reason,
			CreatedBy:      optionalID(actorID),
		}
		if err := u.orderRepo.CreateOrderHistory(txCtx, &history); err != nil {
			return fmt.Errorf("failed to record history: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).Info().
		Str("order_id", orderID).
		Str("from", oldStatus).
		Str("to", newStatus).
		Msg("Order status updated")
	return nil
}

// Statuses only move forward. Cancelled is terminal.
var statusWeights = map[string]int{
	domain.OrderStatusPending:    10,
	domain.OrderStatusProcessing: 20,
	domain.OrderStatusShipped:    30,
	domain.OrderStatusDelivered:  40,
	domain.OrderStatusCancelled:  80,
}

func validateOrderTransition(current, next string) error {
	if current == next {
		return fmt.Errorf("%w: order is already %s", domain.ErrValidation, current)
	}
	currentWeight, okCurrent := statusWeights[current]
	nextWeight, okNext := statusWeights[next]
	// unknown legacy statuses may be corrected freely
	if !okCurrent || !okNext {
		return nil
	}
	if nextWeight < currentWeight {
		return fmt.Errorf("%w: invalid transition: cannot go backward from '%s' to '%s'", domain.ErrValidation, current, next)
	}
	return nil
}
