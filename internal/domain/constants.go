package domain

// Order Statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment Methods
const (
	PaymentMethodCard         = "card"
	PaymentMethodPaypal       = "paypal"
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
)

// List Exports for API
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// OpenOrderStatuses are the statuses that still depend on their shipping zone.
var OpenOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
}

var PaymentMethods = []string{
	PaymentMethodCard,
	PaymentMethodPaypal,
	PaymentMethodCash,
	PaymentMethodBankTransfer,
}

func IsValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func IsValidPaymentMethod(s string) bool {
	for _, v := range PaymentMethods {
		if v == s {
			return true
		}
	}
	return false
}
