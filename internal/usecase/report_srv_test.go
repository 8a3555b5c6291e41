package usecase

import (
	"testing"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		period   string
		from     string
		to       string
		wantFrom time.Time
		wantTo   time.Time
		wantErr  bool
	}{
		{
			name:     "current month by default",
			period:   "",
			wantFrom: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   now,
		},
		{
			name:     "month",
			period:   "month",
			wantFrom: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   now,
		},
		{
			name:     "last month",
			period:   "last_month",
			wantFrom: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC),
		},
		{
			name:     "year",
			period:   "year",
			wantFrom: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   now,
		},
		{
			name:     "custom range includes the whole last day",
			period:   "custom",
			from:     "2025-01-10",
			to:       "2025-01-20",
			wantFrom: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, time.January, 20, 23, 59, 59, 0, time.UTC),
		},
		{
			name:    "custom with reversed bounds",
			period:  "custom",
			from:    "2025-02-10",
			to:      "2025-01-10",
			wantErr: true,
		},
		{
			name:    "custom with malformed date",
			period:  "custom",
			from:    "10/01/2025",
			to:      "2025-01-20",
			wantErr: true,
		},
		{
			name:    "unknown period",
			period:  "quarter",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := resolvePeriod(now, tt.period, tt.from, tt.to)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func TestSaleCommission(t *testing.T) {
	sale := func(serviceCents, finalCents int64, rate float64) *repository.SaleWithRate {
		return &repository.SaleWithRate{
			Sale: entity.Sale{
				ServiceValueCents: serviceCents,
				FinalValueCents:   finalCents,
			},
			CommissionRate: rate,
		}
	}

	t.Run("commission on service portion only", func(t *testing.T) {
		commission, margin := saleCommission(sale(10000, 12500, 50))
		assert.Equal(t, int64(5000), commission)
		assert.Equal(t, int64(7500), margin)
	})

	t.Run("legacy rows fall back to final value", func(t *testing.T) {
		commission, margin := saleCommission(sale(0, 8000, 40))
		assert.Equal(t, int64(3200), commission)
		assert.Equal(t, int64(4800), margin)
	})

	t.Run("fractional rate rounds to nearest cent", func(t *testing.T) {
		commission, _ := saleCommission(sale(999, 999, 33.5))
		assert.Equal(t, int64(335), commission)
	})

	t.Run("zero rate leaves full margin", func(t *testing.T) {
		commission, margin := saleCommission(sale(5000, 6000, 0))
		assert.Equal(t, int64(0), commission)
		assert.Equal(t, int64(6000), margin)
	})
}
