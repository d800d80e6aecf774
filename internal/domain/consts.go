package domain

// Reminder threshold names as stored in the shifts table columns
const (
	Reminder24h   = "24h"
	Reminder3h    = "3h"
	Reminder30min = "30min"
)

// Default reminder thresholds (in hours before the shift)
const (
	DefaultThreshold24h   = 24.0
	DefaultThreshold3h    = 3.0
	DefaultThreshold30min = 0.5
)

// Default tolerance around each threshold (in hours). A tick that lands
// inside [threshold-tolerance, threshold+tolerance] fires that reminder.
const (
	DefaultTolerance24h   = 0.5
	DefaultTolerance3h    = 0.25
	DefaultTolerance30min = 0.17
)

// DefaultPollIntervalSeconds is how often the reminder service
// re-evaluates all active shifts.
const DefaultPollIntervalSeconds = 60

// DefaultUpcomingLimit is how many shifts listing commands show by default.
const DefaultUpcomingLimit = 5

// MaxListLimit caps the "todos" listing and the REST facade limit param.
const MaxListLimit = 100
