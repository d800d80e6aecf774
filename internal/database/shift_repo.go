package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
)

type shiftRepo struct {
	db dbConn
}

func newShiftRepo(db dbConn) contract.ShiftRepo {
	return &shiftRepo{db: db}
}

const shiftColumns = `
	id, owner_id, shift_date, shift_time, location,
	COALESCE(reminder_24h, 0), COALESCE(reminder_3h, 0), COALESCE(reminder_30min, 0),
	is_active, created_at
`

// upcomingOrder sorts DD/MM text dates chronologically within a year by
// rebuilding them as MMDD before comparing.
const upcomingOrder = `ORDER BY substr(shift_date, 4, 2) || substr(shift_date, 1, 2), shift_time`

func (r *shiftRepo) scanShift(row interface{ Scan(dest ...interface{}) error }) (*entity.Shift, error) {
	shift := &entity.Shift{}
	err := row.Scan(
		&shift.ID,
		&shift.OwnerID,
		&shift.ShiftDate,
		&shift.ShiftTime,
		&shift.Location,
		&shift.Reminder24h,
		&shift.Reminder3h,
		&shift.Reminder30min,
		&shift.IsActive,
		&shift.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return shift, nil
}

func (r *shiftRepo) Create(shift *entity.Shift) error {
	query := `
		INSERT INTO shifts (owner_id, shift_date, shift_time, location, is_active)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		shift.OwnerID,
		shift.ShiftDate,
		shift.ShiftTime,
		shift.Location,
		shift.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	shift.ID = id
	return nil
}

func (r *shiftRepo) GetByID(id int64) (*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = ?`

	shift, err := r.scanShift(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	return shift, nil
}

func (r *shiftRepo) GetActiveShifts() ([]*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE is_active = 1`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active shifts: %w", err)
	}
	defer rows.Close()

	return r.collectShifts(rows)
}

func (r *shiftRepo) GetByOwnerAndDate(ownerID, date string) ([]*entity.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE owner_id = ? AND shift_date = ? AND is_active = 1
		ORDER BY shift_time
	`

	rows, err := r.db.Query(query, ownerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts by date: %w", err)
	}
	defer rows.Close()

	return r.collectShifts(rows)
}

func (r *shiftRepo) GetUpcomingByOwner(ownerID string, limit int) ([]*entity.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE owner_id = ? AND is_active = 1
		` + upcomingOrder + `
		LIMIT ?
	`

	rows, err := r.db.Query(query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming shifts: %w", err)
	}
	defer rows.Close()

	return r.collectShifts(rows)
}

func (r *shiftRepo) collectShifts(rows *sql.Rows) ([]*entity.Shift, error) {
	var shifts []*entity.Shift
	for rows.Next() {
		shift, err := r.scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, shift)
	}

	return shifts, rows.Err()
}

func (r *shiftRepo) MarkReminderSent(shiftID int64, threshold string) error {
	var query string
	switch threshold {
	case domain.Reminder24h:
		query = `UPDATE shifts SET reminder_24h = 1 WHERE id = ? AND is_active = 1`
	case domain.Reminder3h:
		query = `UPDATE shifts SET reminder_3h = 1 WHERE id = ? AND is_active = 1`
	case domain.Reminder30min:
		query = `UPDATE shifts SET reminder_30min = 1 WHERE id = ? AND is_active = 1`
	default:
		return fmt.Errorf("unknown reminder threshold: %s", threshold)
	}

	// Zero rows affected is fine: the shift may have been soft-deleted
	// between the scheduler's read and this write
	if _, err := r.db.Exec(query, shiftID); err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	return nil
}

func (r *shiftRepo) Deactivate(shiftID int64) error {
	query := `UPDATE shifts SET is_active = 0 WHERE id = ?`

	if _, err := r.db.Exec(query, shiftID); err != nil {
		return fmt.Errorf("failed to deactivate shift: %w", err)
	}

	return nil
}

func (r *shiftRepo) CountByOwner(ownerID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM shifts WHERE owner_id = ? AND is_active = 1`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count shifts: %w", err)
	}

	return count, nil
}

func (r *shiftRepo) CountAll() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM shifts WHERE is_active = 1`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count shifts: %w", err)
	}

	return count, nil
}

func (r *shiftRepo) ResetReminders(ownerID string) error {
	query := `
		UPDATE shifts
		SET reminder_24h = 0, reminder_3h = 0, reminder_30min = 0
		WHERE owner_id = ? AND is_active = 1
	`

	if _, err := r.db.Exec(query, ownerID); err != nil {
		return fmt.Errorf("failed to reset reminders: %w", err)
	}

	return nil
}
