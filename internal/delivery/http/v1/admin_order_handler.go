package v1

import (
	"net/http"

	"rajaprint-backend/internal/domain"
	"rajaprint-backend/internal/usecase"
	"rajaprint-backend/pkg/utils"
)

type AdminOrderHandler struct {
	orderUC *usecase.OrderUsecase
}

func NewAdminOrderHandler(uc *usecase.OrderUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{orderUC: uc}
}

// GET /api/v1/admin/orders?page=&limit=&status=&zoneId=&search=
func (h *AdminOrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := utils.ParseInt(q.Get("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := utils.ParseInt(q.Get("limit"), 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filter := domain.OrderFilter{
		Page:   page,
		Limit:  limit,
		Status: q.Get("status"),
		ZoneID: q.Get("zoneId"),
		Search: q.Get("search"),
	}

	orders, total, err := h.orderUC.GetAllOrders(r.Context(), filter)
	if err != nil {
		writeUsecaseError(w, r, err, "Failed to fetch orders")
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    orders,
		Meta:    domain.NewPagination(page, limit, total),
	})
}

// GET /api/v1/admin/orders/{id}
func (h *AdminOrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderUC.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUsecaseError(w, r, err, "Failed to fetch order")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", order)
}

// GET /api/v1/admin/orders/{id}/history
func (h *AdminOrderHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.orderUC.GetOrderHistory(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUsecaseError(w, r, err, "Failed to fetch order history")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", history)
}

// PATCH /api/v1/admin/orders/{id}/status
func (h *AdminOrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
		Note   string `json:"note"`
	}
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := currentUser(r)
	if user == nil {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.orderUC.UpdateOrderStatus(r.Context(), r.PathValue("id"), req.Status, req.Note, user.ID); err != nil {
		writeUsecaseError(w, r, err, "Failed to update order status")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Order status updated", nil)
}
