package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals_FlatDiscount(t *testing.T) {
	// R$100 service, R$20 + R$15 products, R$10 off, 50% commission.
	got := ComputeTotals(10000, []int64{2000, 1500}, 1000, DiscountValue, 50)

	assert.Equal(t, int64(3500), got.ProductsValue)
	assert.Equal(t, int64(13500), got.Subtotal)
	assert.Equal(t, int64(1000), got.DiscountAmount)
	assert.Equal(t, int64(12500), got.FinalValue)
	assert.Equal(t, int64(5000), got.Commission)
	assert.Equal(t, int64(7500), got.Margin)
}

func TestComputeTotals_PercentDiscount(t *testing.T) {
	// R$50 service, no products, 80% off, 40% commission.
	got := ComputeTotals(5000, nil, 80, DiscountPercent, 40)

	assert.Equal(t, int64(5000), got.Subtotal)
	assert.Equal(t, int64(4000), got.DiscountAmount)
	assert.Equal(t, int64(1000), got.FinalValue)
	assert.Equal(t, int64(2000), got.Commission)
}

func TestComputeTotals_FractionalPercentDiscount(t *testing.T) {
	// 12.5% of R$100 subtotal rounds to whole cents.
	got := ComputeTotals(10000, nil, 12.5, DiscountPercent, 50)

	assert.Equal(t, int64(1250), got.DiscountAmount)
	assert.Equal(t, int64(8750), got.FinalValue)

	// 0.1% of R$3.33 rounds to the nearest cent, not truncates.
	got = ComputeTotals(333, nil, 0.1, DiscountPercent, 0)
	assert.Equal(t, int64(0), got.DiscountAmount)

	got = ComputeTotals(333000, nil, 0.1, DiscountPercent, 0)
	assert.Equal(t, int64(333), got.DiscountAmount)
}

func TestComputeTotals_FloorsAtZero(t *testing.T) {
	got := ComputeTotals(10000, []int64{2000, 1500}, 20000, DiscountValue, 50)
	assert.Equal(t, int64(0), got.FinalValue)

	got = ComputeTotals(10000, nil, 150, DiscountPercent, 0)
	assert.Equal(t, int64(0), got.FinalValue)
}

func TestComputeTotals_NoFlooringWhenDiscountFits(t *testing.T) {
	cases := []struct {
		service  int64
		products []int64
		discount float64
	}{
		{10000, nil, 0},
		{10000, []int64{500}, 10500},
		{0, []int64{2500}, 2500},
		{7300, []int64{100, 100, 100}, 1},
	}

	for _, tt := range cases {
		got := ComputeTotals(tt.service, tt.products, tt.discount, DiscountValue, 30)
		assert.Equal(t, got.Subtotal-got.DiscountAmount, got.FinalValue)
	}
}

func TestComputeTotals_CommissionBoundedByServiceValue(t *testing.T) {
	for _, rate := range []float64{0, 12.5, 50, 99.9, 100} {
		got := ComputeTotals(12345, []int64{999}, 0, DiscountValue, rate)
		assert.LessOrEqual(t, got.Commission, int64(12345), "rate %v", rate)
	}
}

func TestComputeTotals_CommissionIgnoresProductsAndDiscount(t *testing.T) {
	// Discounts are never apportioned against the service share: the
	// commission base stays the full service value.
	discounted := ComputeTotals(10000, []int64{4000}, 5000, DiscountValue, 50)
	plain := ComputeTotals(10000, nil, 0, DiscountValue, 50)

	assert.Equal(t, plain.Commission, discounted.Commission)
}

func TestComputeTotals_Idempotent(t *testing.T) {
	a := ComputeTotals(10000, []int64{2000, 1500}, 10, DiscountPercent, 45)
	b := ComputeTotals(10000, []int64{2000, 1500}, 10, DiscountPercent, 45)
	assert.Equal(t, a, b)
}

func TestComputeTotals_ExactCentsAcrossManyProducts(t *testing.T) {
	// 0.10 added many times drifts under binary floats; cents stay
	// exact.
	products := make([]int64, 100)
	for i := range products {
		products[i] = 10
	}
	got := ComputeTotals(0, products, 0, DiscountValue, 0)
	assert.Equal(t, int64(1000), got.ProductsValue)
}
