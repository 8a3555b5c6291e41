package adaptor

import (
	"encoding/json"
	"net/http"

	"salon-booking/internal/dto/request"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	service usecase.CheckoutService
	log     *zap.Logger
}

func NewCheckoutHandler(service usecase.CheckoutService, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		log:     log,
	}
}

// ListOpen handles GET /api/admin/checkout/open
func (h *CheckoutHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.service.ListOpen(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list open appointments")
		return
	}

	utils.ResponseSuccess(w, "success", appointments)
}

// Preview handles POST /api/admin/checkout/preview
func (h *CheckoutHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req request.CheckoutPreviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	totals, err := h.service.Preview(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "preview checkout")
		return
	}

	utils.ResponseSuccess(w, "success", totals)
}

// Finalize handles POST /api/admin/checkout
func (h *CheckoutHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	var req request.FinalizeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	sale, err := h.service.Finalize(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "finalize checkout")
		return
	}

	utils.ResponseCreated(w, "Appointment finalized", sale)
}

// Reverse handles DELETE /api/admin/sales/{id}
func (h *CheckoutHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reverse(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "reverse sale")
		return
	}

	utils.ResponseSuccess(w, "Sale reversed", nil)
}
