package repository

import (
	"salon-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Customer     CustomerRepository
	Service      ServiceRepository
	Product      ProductRepository
	Appointment  AppointmentRepository
	Sale         SaleRepository
	Notification NotificationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Customer:     NewCustomerRepository(db, log),
		Service:      NewServiceRepository(db, log),
		Product:      NewProductRepository(db, log),
		Appointment:  NewAppointmentRepository(db, log),
		Sale:         NewSaleRepository(db, log),
		Notification: NewNotificationRepository(db, log),
	}
}
