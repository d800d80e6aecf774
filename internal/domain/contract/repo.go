package contract

import (
	"context"

	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Shift() ShiftRepo
}

// ShiftRepo defines the contract for the shift repository
type ShiftRepo interface {
	Create(shift *entity.Shift) error
	GetByID(id int64) (*entity.Shift, error)
	// GetActiveShifts returns every active shift, for reminder evaluation.
	GetActiveShifts() ([]*entity.Shift, error)
	GetByOwnerAndDate(ownerID, date string) ([]*entity.Shift, error)
	GetUpcomingByOwner(ownerID string, limit int) ([]*entity.Shift, error)
	// MarkReminderSent sets one reminder flag. It is idempotent and a
	// no-op when the shift no longer exists or is inactive.
	MarkReminderSent(shiftID int64, threshold string) error
	// Deactivate soft-deletes a shift. Idempotent.
	Deactivate(shiftID int64) error
	CountByOwner(ownerID string) (int, error)
	CountAll() (int, error)
	// ResetReminders clears all reminder flags for an owner's active
	// shifts. Maintenance helper, not exposed as a user command.
	ResetReminders(ownerID string) error
}
