package contract

import (
	"context"

	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
)

// CreateShiftInput is the normalized input for creating a shift.
type CreateShiftInput struct {
	OwnerID   string `validate:"required"`
	ShiftDate string `validate:"required"` // DD/MM
	ShiftTime string `validate:"required"` // HH:MM
	Location  string `validate:"required,max=100"`
}

// ShiftStatus is a shift enriched with its resolved timestamp and
// remaining-time classification, for status displays.
type ShiftStatus struct {
	Shift          *entity.Shift
	ResolvedYear   int // shown so users can spot wrong year inference
	HoursRemaining float64
	Status         string
}

// OwnerStats summarizes an owner's shifts for the REST facade.
type OwnerStats struct {
	Total    int `json:"total_shifts"`
	Today    int `json:"shifts_today"`
	Tomorrow int `json:"shifts_tomorrow"`
}

// ShiftService defines the contract for shift management
type ShiftService interface {
	CreateShift(input CreateShiftInput) (*entity.Shift, int, error)
	ShiftsToday(ownerID string) ([]*entity.Shift, error)
	ShiftsTomorrow(ownerID string) ([]*entity.Shift, error)
	UpcomingShifts(ownerID string, limit int) ([]*entity.Shift, error)
	DeleteShift(ctx context.Context, ownerID string, shiftID int64) (*entity.Shift, error)
	ShiftStatuses(ownerID string, limit int) ([]*ShiftStatus, error)
	Stats(ownerID string) (*OwnerStats, error)
}
