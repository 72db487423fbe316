package v1

import (
	"errors"
	"net/http"

	"rajaprint-backend/internal/domain"
	"rajaprint-backend/internal/usecase"
	"rajaprint-backend/pkg/utils"
)

type ShippingHandler struct {
	shippingUC *usecase.ShippingUsecase
}

func NewShippingHandler(uc *usecase.ShippingUsecase) *ShippingHandler {
	return &ShippingHandler{shippingUC: uc}
}

// POST /api/v1/shipping/calculate
func (h *ShippingHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req usecase.QuoteRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quote, err := h.shippingUC.Quote(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrDeliveryUnavailable) {
			utils.WriteError(w, http.StatusBadRequest, domain.MsgDeliveryUnavailable)
			return
		}
		writeUsecaseError(w, r, err, "Failed to calculate shipping")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, quote.ShippingMessage, quote)
}

// GET /api/v1/shipping/check-availability?city=&country=
func (h *ShippingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	country := r.URL.Query().Get("country")
	if city == "" || country == "" {
		utils.WriteError(w, http.StatusBadRequest, "City and country are required")
		return
	}

	availability, err := h.shippingUC.CheckAvailability(r.Context(), city, country)
	if err != nil {
		writeUsecaseError(w, r, err, "Failed to check availability")
		return
	}

	// An unserved destination is a normal answer, not an error status.
	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: availability.Available,
		Message: availability.Message,
		Data:    availability,
	})
}
