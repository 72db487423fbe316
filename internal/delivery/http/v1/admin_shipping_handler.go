package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"rajaprint-backend/internal/domain"
	"rajaprint-backend/internal/usecase"
	"rajaprint-backend/pkg/utils"
)

type AdminShippingHandler struct {
	shippingUC *usecase.ShippingUsecase
}

func NewAdminShippingHandler(uc *usecase.ShippingUsecase) *AdminShippingHandler {
	return &AdminShippingHandler{shippingUC: uc}
}

// GET /api/v1/admin/shipping/zones
func (h *AdminShippingHandler) ListZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.shippingUC.ListZones(r.Context())
	if err != nil {
		writeUsecaseError(w, r, err, "Failed to fetch shipping zones")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", zones)
}

// GET /api/v1/admin/shipping/zones/{id}
func (h *AdminShippingHandler) GetZone(w http.ResponseWriter, r *http.Request) {
	zone, err := h.shippingUC.GetZone(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUsecaseError(w, r, err, "Failed to fetch shipping zone")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", zone)
}

// POST /api/v1/admin/shipping/zones
func (h *AdminShippingHandler) CreateZone(w http.ResponseWriter, r *http.Request) {
	var in usecase.ZoneInput
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	zone, err := h.shippingUC.CreateZone(r.Context(), in)
	if err != nil {
		writeUsecaseError(w, r, err, "Failed to create shipping zone")
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, "Shipping zone created successfully", zone)
}

// PUT /api/v1/admin/shipping/zones/{id}
func (h *AdminShippingHandler) UpdateZone(w http.ResponseWriter, r *http.Request) {
	var in usecase.ZoneInput
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	zone, err := h.shippingUC.UpdateZone(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeUsecaseError(w, r, err, "Failed to update shipping zone")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Shipping zone updated successfully", zone)
}

// PATCH /api/v1/admin/shipping/zones/{id}/toggle
func (h *AdminShippingHandler) ToggleZone(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Force bool `json:"force"`
	}
	// The body is optional; an empty one (chunked or not) means force=false.
	if err := utils.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.shippingUC.ToggleZone(r.Context(), r.PathValue("id"), req.Force, currentUserID(r))
	if err != nil {
		writeUsecaseError(w, r, err, "Failed to toggle shipping zone")
		return
	}

	if result.RequiresConfirmation {
		utils.WriteJSON(w, http.StatusOK, domain.Response{
			Success: false,
			Message: fmt.Sprintf("This zone has %d pending order(s). Do you want to proceed?", result.PendingOrders),
			Data:    result,
		})
		return
	}

	msg := "Zone disabled successfully"
	if result.Zone.IsActive {
		msg = "Zone enabled successfully"
	}
	utils.WriteSuccess(w, http.StatusOK, msg, result)
}

// PATCH /api/v1/admin/shipping/zones/{id}/default
func (h *AdminShippingHandler) SetDefaultZone(w http.ResponseWriter, r *http.Request) {
	zone, err := h.shippingUC.SetDefaultZone(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUsecaseError(w, r, err, "Failed to set default shipping zone")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Default shipping zone updated", zone)
}

// DELETE /api/v1/admin/shipping/zones/{id}
func (h *AdminShippingHandler) DeleteZone(w http.ResponseWriter, r *http.Request) {
	if err := h.shippingUC.DeleteZone(r.Context(), r.PathValue("id")); err != nil {
		writeUsecaseError(w, r, err, "Failed to delete shipping zone")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Shipping zone deleted successfully", nil)
}
