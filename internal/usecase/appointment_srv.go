package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/request"
	"salon-booking/internal/dto/response"
	"salon-booking/pkg/database"
	"salon-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type AppointmentService interface {
	// CreatePublicBooking serves the unauthenticated booking page. The
	// result is a pending appointment plus a staff notification.
	CreatePublicBooking(ctx context.Context, req *request.PublicBookingRequest) (*response.AppointmentResponse, error)

	// CreateAdminAppointment books for a registered customer with
	// itemized catalog services and lands directly in confirmed.
	CreateAdminAppointment(ctx context.Context, req *request.AdminAppointmentRequest) (*response.AppointmentResponse, error)

	GetAppointments(ctx context.Context, req *request.PaginatedRequest) ([]*response.AppointmentResponse, error)
	GetAppointmentByID(ctx context.Context, id string) (*response.AppointmentResponse, error)
	GetSchedule(ctx context.Context, collaboratorID, date string) (*response.ScheduleResponse, error)
	UpdateStatus(ctx context.Context, id string, req *request.UpdateAppointmentStatusRequest) error
	Delete(ctx context.Context, id string) error
	BuildWhatsAppConfirmation(ctx context.Context, id string) (*response.WhatsAppLinkResponse, error)
}

type appointmentService struct {
	repo          *repository.Repository
	db            database.PgxIface
	config        *utils.Config
	notifications NotificationService
	log           *zap.Logger
}

func NewAppointmentService(
	repo *repository.Repository,
	db database.PgxIface,
	config *utils.Config,
	notifications NotificationService,
	log *zap.Logger,
) AppointmentService {
	return &appointmentService{
		repo:          repo,
		db:            db,
		config:        config,
		notifications: notifications,
		log:           log.With(zap.String("service", "appointment")),
	}
}

func conflictError(conflict *entity.Appointment) error {
	return fmt.Errorf("time conflict: collaborator is booked until %s", FormatMinutes(conflict.EndMin()))
}

// createConflictChecked inserts the appointment after re-running the
// overlap check against FOR UPDATE rows. The database exclusion
// constraint backs this up for writers that race past both checks.
func (s *appointmentService) createConflictChecked(ctx context.Context, appointment *entity.Appointment) error {
	// Fast path: reject obvious conflicts before opening a transaction.
	existing, err := s.repo.Appointment.FindByCollaboratorAndDate(ctx, appointment.CollaboratorID, appointment.Date)
	if err != nil {
		return fmt.Errorf("failed to load collaborator schedule")
	}
	if conflict := FindConflict(appointment.CollaboratorID, appointment.Date, appointment.StartMin, appointment.DurationMin, existing); conflict != nil {
		return conflictError(conflict)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("failed to create appointment")
	}
	defer tx.Rollback(ctx)

	txRepo := s.repo.Appointment.WithTx(tx)

	locked, err := txRepo.LockDay(ctx, appointment.CollaboratorID, appointment.Date)
	if err != nil {
		return fmt.Errorf("failed to load collaborator schedule")
	}
	if conflict := FindConflict(appointment.CollaboratorID, appointment.Date, appointment.StartMin, appointment.DurationMin, locked); conflict != nil {
		return conflictError(conflict)
	}

	if err := txRepo.Create(ctx, appointment); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
			return fmt.Errorf("time conflict: slot was taken by a concurrent booking")
		}
		return fmt.Errorf("failed to create appointment")
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit appointment", zap.Error(err))
		return fmt.Errorf("failed to create appointment")
	}

	return nil
}

func (s *appointmentService) CreatePublicBooking(ctx context.Context, req *request.PublicBookingRequest) (*response.AppointmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Public booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	collaboratorID, err := uuid.Parse(req.CollaboratorID)
	if err != nil {
		return nil, fmt.Errorf("invalid collaborator ID format %s: %w", req.CollaboratorID, err)
	}

	collaborator, err := s.repo.User.FindByID(ctx, collaboratorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find collaborator")
	}
	if collaborator == nil || !collaborator.IsActive {
		return nil, fmt.Errorf("collaborator not found")
	}

	startMin, err := MinutesOfDay(req.Time)
	if err != nil {
		return nil, fmt.Errorf("invalid time format")
	}

	phone := utils.NormalizePhone(req.Phone, s.config.Salon.CountryCallingCode)

	now := time.Now()
	appointment := &entity.Appointment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ClientName:     req.ClientName,
		ClientPhone:    phone,
		CollaboratorID: collaboratorID,
		Service:        req.Service,
		Date:           req.Date,
		Time:           req.Time,
		DurationMin:    entity.DefaultDurationMin,
		StartMin:       startMin,
		Status:         entity.AppointmentStatusPending,
	}

	if err := s.createConflictChecked(ctx, appointment); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("%s requested %s on %s at %s with %s",
		req.ClientName, req.Service, req.Date, req.Time, collaborator.Name)
	if err := s.notifications.Publish(ctx, "New booking request", message, entity.NotificationInfo, nil, &phone); err != nil {
		s.log.Warn("Failed to publish booking notification", zap.Error(err))
	}

	s.log.Info("Public booking created",
		zap.String("appointment_id", appointment.ID.String()),
		zap.String("collaborator_id", collaboratorID.String()),
		zap.String("date", req.Date),
		zap.String("time", req.Time))

	return response.AppointmentToResponse(appointment), nil
}

func (s *appointmentService) CreateAdminAppointment(ctx context.Context, req *request.AdminAppointmentRequest) (*response.AppointmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Admin appointment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", req.CustomerID, err)
	}
	collaboratorID, err := uuid.Parse(req.CollaboratorID)
	if err != nil {
		return nil, fmt.Errorf("invalid collaborator ID format %s: %w", req.CollaboratorID, err)
	}

	customer, err := s.repo.Customer.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer")
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	collaborator, err := s.repo.User.FindByID(ctx, collaboratorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find collaborator")
	}
	if collaborator == nil || !collaborator.IsActive {
		return nil, fmt.Errorf("collaborator not found")
	}

	startMin, err := MinutesOfDay(req.Time)
	if err != nil {
		return nil, fmt.Errorf("invalid time format")
	}

	// Snapshot the selected catalog entries so later price or duration
	// edits do not rewrite past bookings.
	var (
		lines       []entity.ServiceLine
		totalValue  int64
		totalLength int
	)
	for _, rawID := range req.ServiceIDs {
		serviceID, err := uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("invalid service ID format %s: %w", rawID, err)
		}

		service, err := s.repo.Service.FindByID(ctx, serviceID)
		if err != nil {
			return nil, fmt.Errorf("failed to find service")
		}
		if service == nil {
			return nil, fmt.Errorf("service %s not found", rawID)
		}

		lines = append(lines, entity.ServiceLine{
			Name:        service.Name,
			PriceCents:  service.PriceCents,
			DurationMin: service.DurationMin,
		})
		totalValue += service.PriceCents
		totalLength += service.DurationMin
	}
	if totalLength <= 0 {
		totalLength = entity.DefaultDurationMin
	}

	now := time.Now()
	appointment := &entity.Appointment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID:        &customerID,
		ClientName:        customer.Name,
		ClientPhone:       utils.NormalizePhone(customer.Phone, s.config.Salon.CountryCallingCode),
		CollaboratorID:    collaboratorID,
		Services:          lines,
		Date:              req.Date,
		Time:              req.Time,
		DurationMin:       totalLength,
		StartMin:          startMin,
		ServiceValueCents: totalValue,
		Status:            entity.AppointmentStatusConfirmed,
	}

	if err := s.createConflictChecked(ctx, appointment); err != nil {
		return nil, err
	}

	s.log.Info("Admin appointment created",
		zap.String("appointment_id", appointment.ID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("collaborator_id", collaboratorID.String()),
		zap.Int("services", len(lines)))

	return response.AppointmentToResponse(appointment), nil
}

func (s *appointmentService) GetAppointments(ctx context.Context, req *request.PaginatedRequest) ([]*response.AppointmentResponse, error) {
	appointments, err := s.repo.Appointment.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments")
	}

	resp := make([]*response.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		resp = append(resp, response.AppointmentToResponse(a))
	}

	return resp, nil
}

func (s *appointmentService) GetAppointmentByID(ctx context.Context, id string) (*response.AppointmentResponse, error) {
	appointmentID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid appointment ID format %s: %w", id, err)
	}

	appointment, err := s.repo.Appointment.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find appointment")
	}
	if appointment == nil {
		return nil, fmt.Errorf("appointment not found")
	}

	return response.AppointmentToResponse(appointment), nil
}

// GetSchedule renders a collaborator's day as fixed-width slots for
// the dashboard grid.
func (s *appointmentService) GetSchedule(ctx context.Context, collaboratorID, date string) (*response.ScheduleResponse, error) {
	collabUUID, err := uuid.Parse(collaboratorID)
	if err != nil {
		return nil, fmt.Errorf("invalid collaborator ID format %s: %w", collaboratorID, err)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date format")
	}

	appointments, err := s.repo.Appointment.FindByCollaboratorAndDate(ctx, collabUUID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load collaborator schedule")
	}

	salon := s.config.Salon
	var slots []response.ScheduleSlot
	for start := salon.OpenMinute; start < salon.CloseMinute; start += salon.SlotMinutes {
		state, match := ClassifySlot(collabUUID, date, start, salon.SlotMinutes, appointments)

		slot := response.ScheduleSlot{
			Time:  FormatMinutes(start),
			State: string(state),
		}
		if match != nil {
			slot.Appointment = response.AppointmentToResponse(match)
		}
		slots = append(slots, slot)
	}

	return &response.ScheduleResponse{
		CollaboratorID: collaboratorID,
		Date:           date,
		Slots:          slots,
	}, nil
}

func (s *appointmentService) UpdateStatus(ctx context.Context, id string, req *request.UpdateAppointmentStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	appointmentID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid appointment ID format %s: %w", id, err)
	}

	appointment, err := s.repo.Appointment.FindByID(ctx, appointmentID)
	if err != nil {
		return fmt.Errorf("failed to find appointment")
	}
	if appointment == nil {
		return fmt.Errorf("appointment not found")
	}
	if appointment.Status == entity.AppointmentStatusFinalized {
		return fmt.Errorf("appointment already finalized")
	}

	status := entity.AppointmentStatus(req.Status)
	if err := s.repo.Appointment.UpdateStatus(ctx, appointmentID, status); err != nil {
		return fmt.Errorf("failed to update appointment status")
	}

	s.log.Info("Appointment status updated",
		zap.String("appointment_id", id),
		zap.String("status", req.Status))

	return nil
}

func (s *appointmentService) Delete(ctx context.Context, id string) error {
	appointmentID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid appointment ID format %s: %w", id, err)
	}

	if err := s.repo.Appointment.Delete(ctx, appointmentID); err != nil {
		return fmt.Errorf("appointment not found")
	}

	return nil
}

// BuildWhatsAppConfirmation returns a wa.me deep link prefilled with a
// confirmation message and records that the client was contacted.
func (s *appointmentService) BuildWhatsAppConfirmation(ctx context.Context, id string) (*response.WhatsAppLinkResponse, error) {
	appointmentID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid appointment ID format %s: %w", id, err)
	}

	appointment, err := s.repo.Appointment.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find appointment")
	}
	if appointment == nil {
		return nil, fmt.Errorf("appointment not found")
	}
	if appointment.ClientPhone == "" {
		return nil, fmt.Errorf("appointment has no phone number")
	}

	message := fmt.Sprintf("Hello %s! Your appointment at %s is confirmed for %s at %s. See you soon!",
		appointment.ClientName, s.config.Salon.Name, appointment.Date, appointment.Time)
	link := utils.BuildWhatsAppLink(appointment.ClientPhone, s.config.Salon.CountryCallingCode, message)

	if err := s.repo.Appointment.MarkWhatsAppConfirmed(ctx, appointmentID); err != nil {
		s.log.Warn("Failed to mark appointment whatsapp-confirmed",
			zap.Error(err), zap.String("appointment_id", id))
	}

	return &response.WhatsAppLinkResponse{
		AppointmentID: id,
		Link:          link,
	}, nil
}
