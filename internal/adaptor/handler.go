package adaptor

import (
	"net/http"
	"strings"

	"salon-booking/internal/notifier"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Appointment  *AppointmentHandler
	Checkout     *CheckoutHandler
	Catalog      *CatalogHandler
	Product      *ProductHandler
	Customer     *CustomerHandler
	Collaborator *CollaboratorHandler
	Report       *ReportHandler
	Notification *NotificationHandler
}

func NewHandler(service *usecase.Service, hub *notifier.Hub, queue *notifier.Queue, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Appointment:  NewAppointmentHandler(service.Appointment, log),
		Checkout:     NewCheckoutHandler(service.Checkout, log),
		Catalog:      NewCatalogHandler(service.Catalog, log),
		Product:      NewProductHandler(service.Product, log),
		Customer:     NewCustomerHandler(service.Customer, log),
		Collaborator: NewCollaboratorHandler(service.Collaborator, log),
		Report:       NewReportHandler(service.Report, log),
		Notification: NewNotificationHandler(service.Notification, hub, queue, log),
	}
}

// handleServiceError maps service-level error messages to HTTP
// statuses and the uniform response envelope.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	// Credential errors carry "invalid" too, so they must be matched
	// before the generic bad-input case.
	case strings.Contains(errMsg, "credentials"),
		strings.Contains(errMsg, "deactivated"):
		log.Warn(operation+" failed - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		log.Warn(operation+" failed - bad input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "conflict"):
		log.Warn(operation+" failed - time conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "already"),
		strings.Contains(errMsg, "out of stock"),
		strings.Contains(errMsg, "was rejected"),
		strings.Contains(errMsg, "cannot"):
		log.Warn(operation+" failed - invalid state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	default:
		log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
