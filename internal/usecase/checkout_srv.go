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

type CheckoutService interface {
	// ListOpen returns the appointments still awaiting checkout.
	ListOpen(ctx context.Context) ([]*response.AppointmentResponse, error)

	// Preview computes totals without writing anything.
	Preview(ctx context.Context, req *request.CheckoutPreviewRequest) (*response.TotalsResponse, error)

	// Finalize records the sale, closes the appointment and debits
	// consumed stock, all in one transaction.
	Finalize(ctx context.Context, req *request.FinalizeRequest) (*response.SaleResponse, error)

	// Reverse deletes a sale and reopens its appointment as confirmed.
	// Consumed stock is not returned.
	Reverse(ctx context.Context, saleID string) error
}

type checkoutService struct {
	repo          *repository.Repository
	db            database.PgxIface
	notifications NotificationService
	log           *zap.Logger
}

func NewCheckoutService(
	repo *repository.Repository,
	db database.PgxIface,
	notifications NotificationService,
	log *zap.Logger,
) CheckoutService {
	return &checkoutService{
		repo:          repo,
		db:            db,
		notifications: notifications,
		log:           log.With(zap.String("service", "checkout")),
	}
}

func (s *checkoutService) ListOpen(ctx context.Context) ([]*response.AppointmentResponse, error) {
	appointments, err := s.repo.Appointment.FindOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open appointments")
	}

	resp := make([]*response.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		resp = append(resp, response.AppointmentToResponse(a))
	}

	return resp, nil
}

type checkoutContext struct {
	appointment  *entity.Appointment
	serviceValue int64
	products     []*entity.Product
	productIDs   []uuid.UUID
	totals       Totals
}

// serviceBaseValue resolves the billable service portion: the
// operator's counter price when given, otherwise the booking snapshot.
// Public bookings have no snapshot, so billing their service revenue
// requires the override.
func serviceBaseValue(appointment *entity.Appointment, override *int64) int64 {
	if override != nil {
		return *override
	}
	return appointment.ServiceValueCents
}

func (s *checkoutService) load(ctx context.Context, req *request.CheckoutPreviewRequest) (*checkoutContext, error) {
	appointmentID, err := uuid.Parse(req.AppointmentID)
	if err != nil {
		return nil, fmt.Errorf("invalid appointment ID format %s: %w", req.AppointmentID, err)
	}

	appointment, err := s.repo.Appointment.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find appointment")
	}
	if appointment == nil {
		return nil, fmt.Errorf("appointment not found")
	}
	if appointment.Status == entity.AppointmentStatusFinalized {
		return nil, fmt.Errorf("appointment already finalized")
	}
	if appointment.Status == entity.AppointmentStatusRejected {
		return nil, fmt.Errorf("appointment was rejected")
	}

	var (
		products      []*entity.Product
		productIDs    []uuid.UUID
		productPrices []int64
	)
	for _, rawID := range req.ProductIDs {
		productID, err := uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("invalid product ID format %s: %w", rawID, err)
		}

		product, err := s.repo.Product.FindByID(ctx, productID)
		if err != nil {
			return nil, fmt.Errorf("failed to find product")
		}
		if product == nil {
			return nil, fmt.Errorf("product %s not found", rawID)
		}
		if product.Quantity < 1 {
			return nil, fmt.Errorf("product %s is out of stock", product.Name)
		}

		products = append(products, product)
		productIDs = append(productIDs, productID)
		productPrices = append(productPrices, product.PriceCents)
	}

	// The commission rate is read from the collaborator at checkout
	// time, falling back to the default split when the account is gone.
	commissionRate := 50.0
	collaborator, err := s.repo.User.FindByID(ctx, appointment.CollaboratorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find collaborator")
	}
	if collaborator != nil {
		commissionRate = collaborator.CommissionRate
	}

	discountType := DiscountValue
	if req.DiscountType == string(DiscountPercent) {
		discountType = DiscountPercent
	}

	serviceValue := serviceBaseValue(appointment, req.ServiceValueCents)
	totals := ComputeTotals(serviceValue, productPrices, req.Discount, discountType, commissionRate)

	return &checkoutContext{
		appointment:  appointment,
		serviceValue: serviceValue,
		products:     products,
		productIDs:   productIDs,
		totals:       totals,
	}, nil
}

func totalsToResponse(serviceValue int64, t Totals) *response.TotalsResponse {
	return &response.TotalsResponse{
		ServiceValueCents:  serviceValue,
		ProductsValueCents: t.ProductsValue,
		SubtotalCents:      t.Subtotal,
		DiscountCents:      t.DiscountAmount,
		FinalValueCents:    t.FinalValue,
		CommissionCents:    t.Commission,
		MarginCents:        t.Margin,
		FinalValue:         utils.FormatBRL(t.FinalValue),
		Commission:         utils.FormatBRL(t.Commission),
		Margin:             utils.FormatBRL(t.Margin),
	}
}

func (s *checkoutService) Preview(ctx context.Context, req *request.CheckoutPreviewRequest) (*response.TotalsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	checkout, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}

	return totalsToResponse(checkout.serviceValue, checkout.totals), nil
}

func (s *checkoutService) Finalize(ctx context.Context, req *request.FinalizeRequest) (*response.SaleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Finalize validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	checkout, err := s.load(ctx, &req.CheckoutPreviewRequest)
	if err != nil {
		return nil, err
	}
	appointment := checkout.appointment
	totals := checkout.totals

	var discountPercent float64
	if req.DiscountType == string(DiscountPercent) {
		discountPercent = req.Discount
	}

	sale := &entity.Sale{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		AppointmentID:      appointment.ID,
		CollaboratorID:     appointment.CollaboratorID,
		ProductIDs:         checkout.productIDs,
		ServiceValueCents:  checkout.serviceValue,
		ProductsValueCents: totals.ProductsValue,
		TotalValueCents:    totals.Subtotal,
		DiscountValueCents: totals.DiscountAmount,
		DiscountPercent:    discountPercent,
		FinalValueCents:    totals.FinalValue,
		PaymentMethod:      req.PaymentMethod,
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return nil, fmt.Errorf("failed to finalize appointment")
	}
	defer tx.Rollback(ctx)

	// Each appointment carries at most one sale; a second concurrent
	// finalize trips the unique constraint instead of double-billing.
	if err := s.repo.Sale.WithTx(tx).Create(ctx, sale); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("appointment already finalized")
		}
		return nil, fmt.Errorf("failed to record sale")
	}

	if err := s.repo.Appointment.WithTx(tx).MarkFinalized(ctx, appointment.ID); err != nil {
		return nil, fmt.Errorf("appointment already finalized")
	}

	txProducts := s.repo.Product.WithTx(tx)
	for _, product := range checkout.products {
		if err := txProducts.DecrementStock(ctx, product.ID, 1); err != nil {
			return nil, fmt.Errorf("product %s is out of stock", product.Name)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit checkout", zap.Error(err))
		return nil, fmt.Errorf("failed to finalize appointment")
	}

	amount := totals.FinalValue
	message := fmt.Sprintf("%s paid %s via %s", appointment.ClientName, utils.FormatBRL(amount), req.PaymentMethod)
	if err := s.notifications.Publish(ctx, "Sale finalized", message, entity.NotificationSuccess, &amount, nil); err != nil {
		s.log.Warn("Failed to publish sale notification", zap.Error(err))
	}

	s.log.Info("Appointment finalized",
		zap.String("appointment_id", appointment.ID.String()),
		zap.String("sale_id", sale.ID.String()),
		zap.Int64("final_value_cents", totals.FinalValue),
		zap.String("payment_method", req.PaymentMethod))

	return response.SaleToResponse(sale), nil
}

func (s *checkoutService) Reverse(ctx context.Context, saleID string) error {
	saleUUID, err := uuid.Parse(saleID)
	if err != nil {
		return fmt.Errorf("invalid sale ID format %s: %w", saleID, err)
	}

	sale, err := s.repo.Sale.FindByID(ctx, saleUUID)
	if err != nil {
		return fmt.Errorf("failed to find sale")
	}
	if sale == nil {
		return fmt.Errorf("sale not found")
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("failed to reverse sale")
	}
	defer tx.Rollback(ctx)

	if err := s.repo.Sale.WithTx(tx).Delete(ctx, saleUUID); err != nil {
		return fmt.Errorf("failed to reverse sale")
	}

	if err := s.repo.Appointment.WithTx(tx).UpdateStatus(ctx, sale.AppointmentID, entity.AppointmentStatusConfirmed); err != nil {
		return fmt.Errorf("failed to reopen appointment")
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit reversal", zap.Error(err))
		return fmt.Errorf("failed to reverse sale")
	}

	amount := sale.FinalValueCents
	message := fmt.Sprintf("Sale of %s was reversed", utils.FormatBRL(amount))
	if err := s.notifications.Publish(ctx, "Sale reversed", message, entity.NotificationWarning, &amount, nil); err != nil {
		s.log.Warn("Failed to publish reversal notification", zap.Error(err))
	}

	s.log.Info("Sale reversed",
		zap.String("sale_id", saleID),
		zap.String("appointment_id", sale.AppointmentID.String()))

	return nil
}
