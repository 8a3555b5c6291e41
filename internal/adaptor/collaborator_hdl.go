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

type CollaboratorHandler struct {
	service usecase.CollaboratorService
	log     *zap.Logger
}

func NewCollaboratorHandler(service usecase.CollaboratorService, log *zap.Logger) *CollaboratorHandler {
	return &CollaboratorHandler{
		service: service,
		log:     log,
	}
}

// GetPublic handles GET /api/collaborators (public booking page)
func (h *CollaboratorHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	collaborators, err := h.service.GetPublic(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list collaborators")
		return
	}

	utils.ResponseSuccess(w, "success", collaborators)
}

// GetAll handles GET /api/admin/collaborators
func (h *CollaboratorHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	collaborators, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list collaborators")
		return
	}

	utils.ResponseSuccess(w, "success", collaborators)
}

// Create handles POST /api/admin/collaborators
func (h *CollaboratorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCollaboratorRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	collaborator, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create collaborator")
		return
	}

	utils.ResponseCreated(w, "Collaborator created", collaborator)
}

// Update handles PUT /api/admin/collaborators/{id}
func (h *CollaboratorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateCollaboratorRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	collaborator, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update collaborator")
		return
	}

	utils.ResponseSuccess(w, "Collaborator updated", collaborator)
}

// Delete handles DELETE /api/admin/collaborators/{id}
func (h *CollaboratorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete collaborator")
		return
	}

	utils.ResponseSuccess(w, "Collaborator deleted", nil)
}
