package entity

import "time"

// Shift is a scheduled on-call engagement. The date is stored as DD/MM
// only; the year is inferred at read time (see shifttime.Resolve).
type Shift struct {
	ID            int64     `json:"id" db:"id"`
	OwnerID       string    `json:"owner_id" db:"owner_id"`
	ShiftDate     string    `json:"shift_date" db:"shift_date"` // DD/MM format
	ShiftTime     string    `json:"shift_time" db:"shift_time"` // HH:MM format
	Location      string    `json:"location" db:"location"`
	Reminder24h   bool      `json:"reminder_24h" db:"reminder_24h"`
	Reminder3h    bool      `json:"reminder_3h" db:"reminder_3h"`
	Reminder30min bool      `json:"reminder_30min" db:"reminder_30min"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// ReminderSent reports whether the reminder for the given threshold
// name ("24h", "3h" or "30min") was already sent.
func (s *Shift) ReminderSent(threshold string) bool {
	switch threshold {
	case "24h":
		return s.Reminder24h
	case "3h":
		return s.Reminder3h
	case "30min":
		return s.Reminder30min
	}
	return false
}
