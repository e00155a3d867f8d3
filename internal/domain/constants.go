package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultGenerateDaysAhead   = 28
	DefaultLookaheadWeeks      = 4
)

// Business validation constants
const (
	MinGenerateDaysAhead = 1
	MaxGenerateDaysAhead = 90

	MinLookaheadWeeks = 1
	MaxLookaheadWeeks = 12

	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours

	DefaultListLimit = 50
	MaxListLimit     = 200

	MaxNotesLength         = 1000
	MaxDeclineReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Notification record constants
const (
	NotificationTypeReminder = "reminder"
	NotificationChannelEmail = "email"
)

// TerminalStatuses is the set of booking statuses from which no further
// transition is permitted.
var TerminalStatuses = []BookingStatus{
	StatusDeclined,
	StatusCancelled,
	StatusCompleted,
}
