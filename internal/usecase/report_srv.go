package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReportService interface {
	// SalesReport lists sales for a period, optionally narrowed to one
	// collaborator, with revenue, commission and margin totals.
	SalesReport(ctx context.Context, period, from, to, collaboratorID string) (*response.SalesReportResponse, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
		now:  time.Now,
	}
}

// resolvePeriod maps the named period to a concrete [from, to] range.
// "custom" requires both bounds as "2006-01-02"; the upper bound is
// pushed to end of day so same-day sales are included.
func resolvePeriod(now time.Time, period, fromStr, toStr string) (time.Time, time.Time, error) {
	endOfDay := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
	}

	switch period {
	case "", "month":
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return from, now, nil
	case "last_month":
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		from := first.AddDate(0, -1, 0)
		return from, first.Add(-time.Second), nil
	case "year":
		from := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return from, now, nil
	case "custom":
		from, err := time.ParseInLocation("2006-01-02", fromStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date %q", fromStr)
		}
		to, err := time.ParseInLocation("2006-01-02", toStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date %q", toStr)
		}
		if to.Before(from) {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid period: to is before from")
		}
		return from, endOfDay(to), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("invalid period %q", period)
	}
}

// saleCommission computes the payout for one sale at the
// collaborator's current rate. Commission applies to the service
// portion; rows recorded before itemized services fall back to the
// final value.
func saleCommission(sale *repository.SaleWithRate) (commission, margin int64) {
	base := sale.ServiceValueCents
	if base == 0 {
		base = sale.FinalValueCents
	}

	commission = int64(math.Round(float64(base) * sale.CommissionRate / 100))
	margin = sale.FinalValueCents - commission
	return commission, margin
}

func (s *reportService) SalesReport(ctx context.Context, period, from, to, collaboratorID string) (*response.SalesReportResponse, error) {
	fromTime, toTime, err := resolvePeriod(s.now(), period, from, to)
	if err != nil {
		return nil, err
	}

	var collabFilter *uuid.UUID
	if collaboratorID != "" {
		parsed, err := uuid.Parse(collaboratorID)
		if err != nil {
			return nil, fmt.Errorf("invalid collaborator ID format %s: %w", collaboratorID, err)
		}
		collabFilter = &parsed
	}

	sales, err := s.repo.Sale.FindByPeriod(ctx, fromTime, toTime, collabFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales report")
	}

	var revenue, commission, margin int64
	rows := make([]*response.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		saleCommissionCents, saleMarginCents := saleCommission(sale)
		revenue += sale.FinalValueCents
		commission += saleCommissionCents
		margin += saleMarginCents

		row := response.SaleToResponse(&sale.Sale)
		row.CollaboratorName = sale.CollaboratorName
		row.CommissionCents = saleCommissionCents
		row.MarginCents = saleMarginCents
		rows = append(rows, row)
	}

	s.log.Info("Sales report generated",
		zap.String("period", period),
		zap.Int("sales", len(rows)),
		zap.Int64("revenue_cents", revenue))

	return &response.SalesReportResponse{
		From:   fromTime.Format("2006-01-02"),
		To:     toTime.Format("2006-01-02"),
		Sales:  rows,
		Totals: response.NewReportTotals(revenue, commission, margin, len(rows)),
	}, nil
}
