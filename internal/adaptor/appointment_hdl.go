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

type AppointmentHandler struct {
	service usecase.AppointmentService
	log     *zap.Logger
}

func NewAppointmentHandler(service usecase.AppointmentService, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		service: service,
		log:     log,
	}
}

// CreatePublicBooking handles POST /api/booking (public)
func (h *AppointmentHandler) CreatePublicBooking(w http.ResponseWriter, r *http.Request) {
	var req request.PublicBookingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	appointment, err := h.service.CreatePublicBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking request received", appointment)
}

// Create handles POST /api/admin/appointments
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.AdminAppointmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	appointment, err := h.service.CreateAdminAppointment(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create appointment")
		return
	}

	utils.ResponseCreated(w, "Appointment created", appointment)
}

// GetAll handles GET /api/admin/appointments
func (h *AppointmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 50),
	}

	appointments, err := h.service.GetAppointments(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list appointments")
		return
	}

	utils.ResponseSuccess(w, "success", appointments)
}

// GetByID handles GET /api/admin/appointments/{id}
func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	appointment, err := h.service.GetAppointmentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get appointment")
		return
	}

	utils.ResponseSuccess(w, "success", appointment)
}

// GetSchedule handles GET /api/admin/schedule?collaborator_id=&date=
func (h *AppointmentHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	collaboratorID := query.Get("collaborator_id")
	date := query.Get("date")
	if collaboratorID == "" || date == "" {
		utils.ResponseBadRequest(w, "collaborator_id and date are required", nil)
		return
	}

	schedule, err := h.service.GetSchedule(r.Context(), collaboratorID, date)
	if err != nil {
		handleServiceError(w, h.log, err, "get schedule")
		return
	}

	utils.ResponseSuccess(w, "success", schedule)
}

// UpdateStatus handles PATCH /api/admin/appointments/{id}/status
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateAppointmentStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &req); err != nil {
		handleServiceError(w, h.log, err, "update appointment status")
		return
	}

	utils.ResponseSuccess(w, "Appointment status updated", nil)
}

// Delete handles DELETE /api/admin/appointments/{id}
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete appointment")
		return
	}

	utils.ResponseSuccess(w, "Appointment deleted", nil)
}

// WhatsAppConfirmation handles POST /api/admin/appointments/{id}/whatsapp
func (h *AppointmentHandler) WhatsAppConfirmation(w http.ResponseWriter, r *http.Request) {
	link, err := h.service.BuildWhatsAppConfirmation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "build whatsapp confirmation")
		return
	}

	utils.ResponseSuccess(w, "success", link)
}
