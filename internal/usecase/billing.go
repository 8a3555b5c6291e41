package usecase

import (
	"math"
)

// Money is integer cents end to end; two-decimal rendering happens only
// at presentation time.

type DiscountType string

const (
	DiscountValue   DiscountType = "value"
	DiscountPercent DiscountType = "percent"
)

// Totals is the full accounting split for one checkout.
type Totals struct {
	ProductsValue  int64
	Subtotal       int64
	DiscountAmount int64
	FinalValue     int64
	Commission     int64
	Margin         int64
}

// ComputeTotals prices a finalization. discount is cents for
// DiscountValue and a percentage of the subtotal (fractions allowed)
// for DiscountPercent. The final value floors at zero: a discount
// above the subtotal waives the charge rather than going negative.
// Commission applies to the service portion only; product revenue is
// fully retained by the salon, so the margin is final value minus
// commission.
func ComputeTotals(serviceValue int64, productPrices []int64, discount float64, discountType DiscountType, commissionRate float64) Totals {
	var productsValue int64
	for _, price := range productPrices {
		productsValue += price
	}

	subtotal := serviceValue + productsValue

	discountAmount := int64(math.Round(discount))
	if discountType == DiscountPercent {
		discountAmount = int64(math.Round(float64(subtotal) * discount / 100))
	}

	finalValue := subtotal - discountAmount
	if finalValue < 0 {
		finalValue = 0
	}

	commission := int64(math.Round(float64(serviceValue) * commissionRate / 100))

	return Totals{
		ProductsValue:  productsValue,
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		FinalValue:     finalValue,
		Commission:     commission,
		Margin:         finalValue - commission,
	}
}
