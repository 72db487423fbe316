package domain

// Enums is the public lookup payload served to storefront clients.
type Enums struct {
	OrderStatuses  []string      `json:"orderStatuses"`
	PaymentMethods []string      `json:"paymentMethods"`
	Provinces      []string      `json:"provinces"`
	ShippingZones  []ZoneSummary `json:"shippingZones"`
}

// ZoneSummary is the public view of an active zone. Pricing stays admin-only.
type ZoneSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Country      string `json:"country"`
	DeliveryTime string `json:"deliveryTime"`
	IsDefault    bool   `json:"isDefault"`
}
