package v1

import (
	"net/http"

	"rajaprint-backend/internal/usecase"
	"rajaprint-backend/pkg/logger"
	"rajaprint-backend/pkg/utils"
)

type OrderHandler struct {
	orderUC *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUC: uc}
}

// POST /api/v1/orders
// Guests may check out; a signed-in customer's id is attached to the order.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req usecase.PlaceOrderRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderUC.PlaceOrder(r.Context(), currentUserID(r), req)
	if err != nil {
		logger.WithContext(r.Context()).Warn().Err(err).Msg("Order placement failed")
		writeUsecaseError(w, r, err, "Failed to place order")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, "Order placed successfully", order)
}
