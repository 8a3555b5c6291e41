package usecase

import (
	"salon-booking/internal/data/repository"
	"salon-booking/pkg/database"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Appointment  AppointmentService
	Checkout     CheckoutService
	Catalog      CatalogService
	Product      ProductService
	Customer     CustomerService
	Collaborator CollaboratorService
	Report       ReportService
	Notification NotificationService
}

func NewService(repo *repository.Repository, db database.PgxIface, config *utils.Config, log *zap.Logger) *Service {
	notifications := NewNotificationService(repo, log)

	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Appointment:  NewAppointmentService(repo, db, config, notifications, log),
		Checkout:     NewCheckoutService(repo, db, notifications, log),
		Catalog:      NewCatalogService(repo.Service, log),
		Product:      NewProductService(repo.Product, log),
		Customer:     NewCustomerService(repo.Customer, log),
		Collaborator: NewCollaboratorService(repo, log),
		Report:       NewReportService(repo, log),
		Notification: notifications,
	}
}
