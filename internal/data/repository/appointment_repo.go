package repository

import (
	"context"
	"fmt"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Appointment, error)
	FindByCollaboratorAndDate(ctx context.Context, collaboratorID uuid.UUID, date string) ([]*entity.Appointment, error)
	FindOpen(ctx context.Context) ([]*entity.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error

	// MarkFinalized flips an open appointment to finalized. It fails
	// when the row is already finalized (or rejected), so two
	// concurrent checkouts cannot both close the same appointment.
	MarkFinalized(ctx context.Context, id uuid.UUID) error
	MarkWhatsAppConfirmed(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error

	// LockDay reads a collaborator's day with FOR UPDATE so the
	// conflict re-check and the insert happen against a stable view.
	LockDay(ctx context.Context, collaboratorID uuid.UUID, date string) ([]*entity.Appointment, error)

	WithTx(tx pgx.Tx) AppointmentRepository
}

type appointmentRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewAppointmentRepository(db database.PgxIface, log *zap.Logger) AppointmentRepository {
	return &appointmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "appointment")),
	}
}

func (r *appointmentRepository) WithTx(tx pgx.Tx) AppointmentRepository {
	return &appointmentRepository{db: tx, log: r.log}
}

const appointmentColumns = `id, customer_id, client_name, client_phone, collaborator_id, service,
	       services_list, date, time, duration_min, start_min, service_value_cents,
	       status, confirmed_whatsapp, created_at, updated_at`

func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var a entity.Appointment
	err := row.Scan(
		&a.ID,
		&a.CustomerID,
		&a.ClientName,
		&a.ClientPhone,
		&a.CollaboratorID,
		&a.Service,
		&a.Services,
		&a.Date,
		&a.Time,
		&a.DurationMin,
		&a.StartMin,
		&a.ServiceValueCents,
		&a.Status,
		&a.ConfirmedWhatsApp,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, customer_id, client_name, client_phone, collaborator_id,
		                          service, services_list, date, time, duration_min,
		                          start_min, service_value_cents, status, confirmed_whatsapp,
		                          created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		appointment.ID,
		appointment.CustomerID,
		appointment.ClientName,
		appointment.ClientPhone,
		appointment.CollaboratorID,
		appointment.Service,
		appointment.Services,
		appointment.Date,
		appointment.Time,
		appointment.DurationMin,
		appointment.StartMin,
		appointment.ServiceValueCents,
		appointment.Status,
		appointment.ConfirmedWhatsApp,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create appointment",
			zap.Error(err),
			zap.String("collaborator_id", appointment.CollaboratorID.String()),
			zap.String("date", appointment.Date),
			zap.String("time", appointment.Time),
		)
		return fmt.Errorf("create appointment for %s %s: %w", appointment.Date, appointment.Time, err)
	}

	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	appointment, err := scanAppointment(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find appointment by ID",
			zap.Error(err),
			zap.String("appointment_id", id.String()),
		)
		return nil, fmt.Errorf("find appointment by ID %s: %w", id.String(), err)
	}

	return appointment, nil
}

func (r *appointmentRepository) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Appointment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []*entity.Appointment
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment row: %w", err)
		}
		appointments = append(appointments, appointment)
	}

	return appointments, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		ORDER BY date, time
		LIMIT $1 OFFSET $2
	`

	appointments, err := r.queryMany(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find appointments", zap.Error(err))
		return nil, fmt.Errorf("find appointments: %w", err)
	}

	return appointments, nil
}

func (r *appointmentRepository) FindByCollaboratorAndDate(ctx context.Context, collaboratorID uuid.UUID, date string) ([]*entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE collaborator_id = $1 AND date = $2
		ORDER BY start_min
	`

	appointments, err := r.queryMany(ctx, query, collaboratorID, date)
	if err != nil {
		r.log.Error("Failed to find appointments for day",
			zap.Error(err),
			zap.String("collaborator_id", collaboratorID.String()),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("find appointments for %s on %s: %w", collaboratorID.String(), date, err)
	}

	return appointments, nil
}

// FindOpen returns appointments awaiting checkout (pending or
// confirmed), earliest first.
func (r *appointmentRepository) FindOpen(ctx context.Context) ([]*entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE status IN ('pending', 'confirmed')
		ORDER BY date, time
	`

	appointments, err := r.queryMany(ctx, query)
	if err != nil {
		r.log.Error("Failed to find open appointments", zap.Error(err))
		return nil, fmt.Errorf("find open appointments: %w", err)
	}

	return appointments, nil
}

func (r *appointmentRepository) LockDay(ctx context.Context, collaboratorID uuid.UUID, date string) ([]*entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE collaborator_id = $1 AND date = $2
		ORDER BY start_min
		FOR UPDATE
	`

	appointments, err := r.queryMany(ctx, query, collaboratorID, date)
	if err != nil {
		r.log.Error("Failed to lock appointments for day",
			zap.Error(err),
			zap.String("collaborator_id", collaboratorID.String()),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("lock appointments for %s on %s: %w", collaboratorID.String(), date, err)
	}

	return appointments, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error {
	query := `UPDATE appointments SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update appointment status",
			zap.Error(err),
			zap.String("appointment_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update appointment %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("appointment %s not found", id.String())
	}

	return nil
}

func (r *appointmentRepository) MarkFinalized(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE appointments
		SET status = 'finalized', updated_at = NOW()
		WHERE id = $1 AND status IN ('pending', 'confirmed')
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to finalize appointment",
			zap.Error(err),
			zap.String("appointment_id", id.String()),
		)
		return fmt.Errorf("finalize appointment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("appointment %s already finalized", id.String())
	}

	return nil
}

func (r *appointmentRepository) MarkWhatsAppConfirmed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE appointments SET confirmed_whatsapp = TRUE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark appointment whatsapp-confirmed",
			zap.Error(err),
			zap.String("appointment_id", id.String()),
		)
		return fmt.Errorf("mark appointment %s whatsapp-confirmed: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("appointment %s not found", id.String())
	}

	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM appointments WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete appointment",
			zap.Error(err),
			zap.String("appointment_id", id.String()),
		)
		return fmt.Errorf("delete appointment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("appointment %s not found", id.String())
	}

	r.log.Info("Appointment deleted", zap.String("appointment_id", id.String()))
	return nil
}
