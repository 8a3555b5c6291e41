package usecase

import (
	"testing"

	"salon-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestServiceBaseValue_DefaultsToSnapshot(t *testing.T) {
	appointment := &entity.Appointment{ServiceValueCents: 8000}

	assert.Equal(t, int64(8000), serviceBaseValue(appointment, nil))
}

func TestServiceBaseValue_OverrideWins(t *testing.T) {
	appointment := &entity.Appointment{ServiceValueCents: 8000}
	override := int64(12000)

	assert.Equal(t, int64(12000), serviceBaseValue(appointment, &override))
}

func TestServiceBaseValue_OverridePricesPublicBooking(t *testing.T) {
	// Public bookings carry no price snapshot; the counter price entered
	// at checkout must become the billable service value.
	appointment := &entity.Appointment{ServiceValueCents: 0}
	override := int64(4500)

	assert.Equal(t, int64(4500), serviceBaseValue(appointment, &override))

	got := ComputeTotals(serviceBaseValue(appointment, &override), nil, 0, DiscountValue, 50)
	assert.Equal(t, int64(4500), got.FinalValue)
	assert.Equal(t, int64(2250), got.Commission)
}

func TestServiceBaseValue_ExplicitZeroWaivesService(t *testing.T) {
	appointment := &entity.Appointment{ServiceValueCents: 8000}
	override := int64(0)

	assert.Equal(t, int64(0), serviceBaseValue(appointment, &override))
}
