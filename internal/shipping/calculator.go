package shipping

import (
	"math"

	"rajaprint-backend/internal/domain"
)

// ComputeQuote prices a shipment of totalWeight kg worth subtotal in zone.
// Weight above the zone's base allowance is billed per started kilogram.
// Amounts are not rounded.
func ComputeQuote(zone domain.ShippingZone, totalWeight, subtotal float64) domain.ShippingQuote {
	cost := zone.BasePrice
	extraCharge := 0.0
	if totalWeight > zone.BaseWeightKg {
		extraCharge = math.Ceil(totalWeight-zone.BaseWeightKg) * zone.PricePerExtraKg
		cost += extraCharge
	}

	free := freeShippingApplies(zone, subtotal)
	if free {
		cost = 0
	}

	return domain.ShippingQuote{
		ZoneID:              zone.ID,
		ZoneName:            zone.Name,
		TotalWeight:         totalWeight,
		BasePrice:           zone.BasePrice,
		ExtraWeightCharge:   extraCharge,
		ShippingCost:        cost,
		Subtotal:            subtotal,
		Total:               subtotal + cost,
		DeliveryTime:        zone.DeliveryTime(),
		FreeShippingApplied: free,
		ShippingMessage:     shippingMessage(zone, free, extraCharge),
	}
}

// A zero threshold means the zone has no free-shipping offer.
func freeShippingApplies(zone domain.ShippingZone, subtotal float64) bool {
	return zone.FreeShippingThreshold != nil &&
		*zone.FreeShippingThreshold > 0 &&
		subtotal >= *zone.FreeShippingThreshold
}

func shippingMessage(zone domain.ShippingZone, free bool, extraCharge float64) string {
	switch {
	case free:
		return domain.MsgShippingFree
	case zone.IsDefault:
		return domain.MsgShippingRemote
	case extraCharge > 0:
		return domain.MsgShippingExtraWeight
	default:
		return domain.MsgShippingStandard
	}
}
