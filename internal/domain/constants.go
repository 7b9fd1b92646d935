package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Weekday boundaries (нумерация с понедельника)
const (
	MinWeekday = 0 // понедельник
	MaxWeekday = 6 // воскресенье
)

// Business validation constants
const (
	MaxNotesLength = 500
)

// ValidStatuses список допустимых статусов записи
var ValidStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusCancelled,
	StatusCompleted,
}
