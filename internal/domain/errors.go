package domain

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("not found")
	ErrZoneConstraint      = errors.New("zone constraint violated")
	ErrDeliveryUnavailable = errors.New("delivery unavailable")
	ErrUnauthorized        = errors.New("unauthorized")
)

// Messages surfaced verbatim to API callers.
const (
	MsgDeliveryUnavailable      = "Delivery not available in this area. Please contact support."
	MsgAvailabilityUnavailable  = "Delivery not available in this area"
	MsgDeliveryAvailable        = "Delivery available"
	MsgDeliveryAvailableRemote  = "Delivery available (remote area)"
	MsgShippingFree             = "Free shipping applied"
	MsgShippingRemote           = "Remote area charges applied"
	MsgShippingExtraWeight      = "Extra weight charges included"
	MsgShippingStandard         = "Standard shipping"
	MsgZoneDisabledCancelPrefix = "Delivery service disabled in "
)
