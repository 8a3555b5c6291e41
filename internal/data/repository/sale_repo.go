package repository

import (
	"context"
	"fmt"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SaleWithRate pairs a sale with the performing collaborator's current
// commission rate and name, joined at query time. Commission is NOT
// snapshotted on the sale record, so report figures follow rate edits.
type SaleWithRate struct {
	entity.Sale
	CollaboratorName string
	CommissionRate   float64
}

type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	FindByPeriod(ctx context.Context, from, to time.Time, collaboratorID *uuid.UUID) ([]*SaleWithRate, error)
	Delete(ctx context.Context, id uuid.UUID) error

	WithTx(tx pgx.Tx) SaleRepository
}

type saleRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewSaleRepository(db database.PgxIface, log *zap.Logger) SaleRepository {
	return &saleRepository{
		db:  db,
		log: log.With(zap.String("repository", "sale")),
	}
}

func (r *saleRepository) WithTx(tx pgx.Tx) SaleRepository {
	return &saleRepository{db: tx, log: r.log}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, appointment_id, collaborator_id, product_ids,
		                   service_value_cents, products_value_cents, total_value_cents,
		                   discount_value_cents, discount_percent, final_value_cents,
		                   payment_method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		sale.ID,
		sale.AppointmentID,
		sale.CollaboratorID,
		sale.ProductIDs,
		sale.ServiceValueCents,
		sale.ProductsValueCents,
		sale.TotalValueCents,
		sale.DiscountValueCents,
		sale.DiscountPercent,
		sale.FinalValueCents,
		sale.PaymentMethod,
		sale.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create sale",
			zap.Error(err),
			zap.String("appointment_id", sale.AppointmentID.String()),
		)
		return fmt.Errorf("create sale for appointment %s: %w", sale.AppointmentID.String(), err)
	}

	return nil
}

func (r *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	query := `
		SELECT id, appointment_id, collaborator_id, product_ids,
		       service_value_cents, products_value_cents, total_value_cents,
		       discount_value_cents, discount_percent, final_value_cents,
		       payment_method, created_at
		FROM sales
		WHERE id = $1
	`

	var sale entity.Sale
	err := r.db.QueryRow(ctx, query, id).Scan(
		&sale.ID,
		&sale.AppointmentID,
		&sale.CollaboratorID,
		&sale.ProductIDs,
		&sale.ServiceValueCents,
		&sale.ProductsValueCents,
		&sale.TotalValueCents,
		&sale.DiscountValueCents,
		&sale.DiscountPercent,
		&sale.FinalValueCents,
		&sale.PaymentMethod,
		&sale.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find sale by ID",
			zap.Error(err),
			zap.String("sale_id", id.String()),
		)
		return nil, fmt.Errorf("find sale by ID %s: %w", id.String(), err)
	}

	return &sale, nil
}

func (r *saleRepository) FindByPeriod(ctx context.Context, from, to time.Time, collaboratorID *uuid.UUID) ([]*SaleWithRate, error) {
	query := `
		SELECT s.id, s.appointment_id, s.collaborator_id, s.product_ids,
		       s.service_value_cents, s.products_value_cents, s.total_value_cents,
		       s.discount_value_cents, s.discount_percent, s.final_value_cents,
		       s.payment_method, s.created_at,
		       COALESCE(u.name, ''), COALESCE(u.commission_rate, 50)
		FROM sales s
		LEFT JOIN users u ON u.id = s.collaborator_id
		WHERE s.created_at >= $1 AND s.created_at <= $2
		  AND ($3::uuid IS NULL OR s.collaborator_id = $3)
		ORDER BY s.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, from, to, collaboratorID)
	if err != nil {
		r.log.Error("Failed to find sales by period",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("find sales by period: %w", err)
	}
	defer rows.Close()

	var sales []*SaleWithRate
	for rows.Next() {
		var sale SaleWithRate
		err := rows.Scan(
			&sale.ID,
			&sale.AppointmentID,
			&sale.CollaboratorID,
			&sale.ProductIDs,
			&sale.ServiceValueCents,
			&sale.ProductsValueCents,
			&sale.TotalValueCents,
			&sale.DiscountValueCents,
			&sale.DiscountPercent,
			&sale.FinalValueCents,
			&sale.PaymentMethod,
			&sale.CreatedAt,
			&sale.CollaboratorName,
			&sale.CommissionRate,
		)
		if err != nil {
			r.log.Error("Failed to scan sale row", zap.Error(err))
			return nil, fmt.Errorf("scan sale row: %w", err)
		}
		sales = append(sales, &sale)
	}

	return sales, nil
}

func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM sales WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete sale",
			zap.Error(err),
			zap.String("sale_id", id.String()),
		)
		return fmt.Errorf("delete sale %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("sale %s not found", id.String())
	}

	r.log.Info("Sale deleted", zap.String("sale_id", id.String()))
	return nil
}
