package usecase

import (
	"fmt"

	"salon-booking/internal/data/entity"

	"github.com/google/uuid"
)

// Appointment intervals are half-open [start, start+duration): an
// appointment ending exactly when another begins is not a conflict.

// MinutesOfDay parses "HH:MM" into minutes since midnight.
func MinutesOfDay(clock string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	return h*60 + m, nil
}

// FormatMinutes renders minutes since midnight as "HH:MM".
func FormatMinutes(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// FindConflict returns the first existing appointment whose interval
// overlaps the candidate, or nil. Only appointments of the same
// collaborator, on the same date and not rejected count; a missing
// duration falls back to 60 minutes. Pass existing ordered by start
// time so the first conflict is also the earliest. Pure; callers must
// fetch a fresh set right before checking.
func FindConflict(collaboratorID uuid.UUID, date string, startMin, durationMin int, existing []*entity.Appointment) *entity.Appointment {
	if durationMin <= 0 {
		durationMin = entity.DefaultDurationMin
	}
	endMin := startMin + durationMin

	for _, a := range existing {
		if a.CollaboratorID != collaboratorID || a.Date != date {
			continue
		}
		if a.Status == entity.AppointmentStatusRejected {
			continue
		}
		if startMin < a.EndMin() && endMin > a.StartMin {
			return a
		}
	}

	return nil
}

type SlotState string

const (
	SlotFree      SlotState = "free"
	SlotPending   SlotState = "pending"
	SlotOccupied  SlotState = "occupied"
	SlotFinalized SlotState = "finalized"
)

// ClassifySlot runs the same overlap test against a fixed-width display
// slot and buckets it by the matched appointment's status.
func ClassifySlot(collaboratorID uuid.UUID, date string, slotStartMin, slotWidthMin int, existing []*entity.Appointment) (SlotState, *entity.Appointment) {
	match := FindConflict(collaboratorID, date, slotStartMin, slotWidthMin, existing)
	if match == nil {
		return SlotFree, nil
	}

	switch match.Status {
	case entity.AppointmentStatusFinalized:
		return SlotFinalized, match
	case entity.AppointmentStatusPending, "":
		return SlotPending, match
	default:
		return SlotOccupied, match
	}
}
