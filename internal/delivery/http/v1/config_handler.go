package v1

import (
	"fmt"
	"net/http"
	"time"

	"rajaprint-backend/internal/usecase"
	"rajaprint-backend/pkg/utils"
)

type ConfigHandler struct {
	shippingUC *usecase.ShippingUsecase
	maxAge     time.Duration
}

func NewConfigHandler(uc *usecase.ShippingUsecase, maxAge time.Duration) *ConfigHandler {
	return &ConfigHandler{shippingUC: uc, maxAge: maxAge}
}

// GET /api/v1/config/enums
func (h *ConfigHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	enums, err := h.shippingUC.Enums(r.Context())
	if err != nil {
		writeUsecaseError(w, r, err, "Failed to load configuration")
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.maxAge.Seconds())))
	utils.WriteSuccess(w, http.StatusOK, "", enums)
}
