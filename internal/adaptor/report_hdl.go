package adaptor

import (
	"net/http"

	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log,
	}
}

// Sales handles GET /api/admin/reports/sales?period=&from=&to=&collaborator_id=
func (h *ReportHandler) Sales(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	report, err := h.service.SalesReport(
		r.Context(),
		query.Get("period"),
		query.Get("from"),
		query.Get("to"),
		query.Get("collaborator_id"),
	)
	if err != nil {
		handleServiceError(w, h.log, err, "sales report")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}
