package usecase

import (
	"testing"

	"salon-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeAppointment(collab uuid.UUID, date, clock string, duration int, status entity.AppointmentStatus) *entity.Appointment {
	start, err := MinutesOfDay(clock)
	if err != nil {
		panic(err)
	}
	return &entity.Appointment{
		Base:           entity.Base{ID: uuid.New()},
		CollaboratorID: collab,
		Date:           date,
		Time:           clock,
		StartMin:       start,
		DurationMin:    duration,
		Status:         status,
	}
}

func TestMinutesOfDay(t *testing.T) {
	cases := []struct {
		clock string
		want  int
		ok    bool
	}{
		{"00:00", 0, true},
		{"08:30", 510, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"10:75", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range cases {
		got, err := MinutesOfDay(tt.clock)
		if !tt.ok {
			assert.Error(t, err, tt.clock)
			continue
		}
		require.NoError(t, err, tt.clock)
		assert.Equal(t, tt.want, got, tt.clock)
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "11:00", FormatMinutes(660))
	assert.Equal(t, "08:05", FormatMinutes(485))
}

func TestFindConflict_Overlap(t *testing.T) {
	collab := uuid.New()
	date := "2026-09-01"

	// 10:00 for 60 minutes, confirmed. A 10:30/30min request collides
	// and the blocking appointment ends at 11:00.
	existing := []*entity.Appointment{
		makeAppointment(collab, date, "10:00", 60, entity.AppointmentStatusConfirmed),
	}

	start, _ := MinutesOfDay("10:30")
	conflict := FindConflict(collab, date, start, 30, existing)
	require.NotNil(t, conflict)
	assert.Equal(t, "11:00", FormatMinutes(conflict.EndMin()))
}

func TestFindConflict_OneMinuteOverlap(t *testing.T) {
	collab := uuid.New()
	date := "2026-09-01"

	existing := []*entity.Appointment{
		makeAppointment(collab, date, "09:00", 60, entity.AppointmentStatusConfirmed),
	}

	start, _ := MinutesOfDay("09:59")
	conflict := FindConflict(collab, date, start, 30, existing)
	assert.NotNil(t, conflict)
}

func TestFindConflict_ExactAbutmentIsFree(t *testing.T) {
	collab := uuid.New()
	date := "2026-09-01"

	existing := []*entity.Appointment{
		makeAppointment(collab, date, "09:00", 60, entity.AppointmentStatusConfirmed),
	}

	// Half-open intervals: starting exactly when the previous one ends
	// is allowed, and so is ending exactly when it starts.
	start, _ := MinutesOfDay("10:00")
	assert.Nil(t, FindConflict(collab, date, start, 60, existing))

	start, _ = MinutesOfDay("08:00")
	assert.Nil(t, FindConflict(collab, date, start, 60, existing))
}

func TestFindConflict_SkipsRejectedOtherDayOtherCollaborator(t *testing.T) {
	collab := uuid.New()
	other := uuid.New()
	date := "2026-09-01"

	existing := []*entity.Appointment{
		makeAppointment(collab, date, "10:00", 60, entity.AppointmentStatusRejected),
		makeAppointment(collab, "2026-09-02", "10:00", 60, entity.AppointmentStatusConfirmed),
		makeAppointment(other, date, "10:00", 60, entity.AppointmentStatusConfirmed),
	}

	start, _ := MinutesOfDay("10:00")
	assert.Nil(t, FindConflict(collab, date, start, 60, existing))
}

func TestFindConflict_MissingDurationDefaultsToHour(t *testing.T) {
	collab := uuid.New()
	date := "2026-09-01"

	existing := []*entity.Appointment{
		makeAppointment(collab, date, "10:00", 0, entity.AppointmentStatusPending),
	}

	start, _ := MinutesOfDay("10:45")
	assert.NotNil(t, FindConflict(collab, date, start, 30, existing))

	// Candidate duration defaults too.
	start, _ = MinutesOfDay("09:30")
	assert.NotNil(t, FindConflict(collab, date, start, 0, existing))
}

func TestFindConflict_ReturnsEarliestInOrder(t *testing.T) {
	collab := uuid.New()
	date := "2026-09-01"

	first := makeAppointment(collab, date, "09:00", 60, entity.AppointmentStatusConfirmed)
	second := makeAppointment(collab, date, "10:00", 60, entity.AppointmentStatusConfirmed)
	existing := []*entity.Appointment{first, second}

	// A 09:30-10:30 candidate overlaps both; iteration order wins.
	start, _ := MinutesOfDay("09:30")
	conflict := FindConflict(collab, date, start, 60, existing)
	require.NotNil(t, conflict)
	assert.Equal(t, first.ID, conflict.ID)
}

func TestClassifySlot(t *testing.T) {
	collab := uuid.New()
	date := "2026-09-01"

	existing := []*entity.Appointment{
		makeAppointment(collab, date, "08:00", 60, entity.AppointmentStatusPending),
		makeAppointment(collab, date, "10:00", 90, entity.AppointmentStatusConfirmed),
		makeAppointment(collab, date, "14:00", 60, entity.AppointmentStatusFinalized),
	}

	cases := []struct {
		slot string
		want SlotState
	}{
		{"08:00", SlotPending},
		{"09:00", SlotFree},
		{"10:00", SlotOccupied},
		{"11:00", SlotOccupied}, // 90-minute appointment spills into the next cell
		{"12:00", SlotFree},
		{"14:00", SlotFinalized},
	}

	for _, tt := range cases {
		start, err := MinutesOfDay(tt.slot)
		require.NoError(t, err)
		state, _ := ClassifySlot(collab, date, start, 60, existing)
		assert.Equal(t, tt.want, state, tt.slot)
	}
}
