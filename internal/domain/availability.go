package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AvailabilityWindow represents a recurring weekly interval during which
// a professional accepts appointments
//
// Weekday нумеруется с понедельника: 0 = понедельник ... 6 = воскресенье.
// Интервал [StartTime, EndTime) полуоткрытый. Корректность start < end
// на записи не проверяется - окно с start >= end просто не дает слотов.
type AvailabilityWindow struct {
	ID             int64
	ProfessionalID int64
	Weekday        int
	StartTime      types.TimeString
	EndTime        types.TimeString
}

// IsWellFormed returns true if the window can produce at least an empty range
func (w *AvailabilityWindow) IsWellFormed() bool {
	return w.StartTime.IsBefore(w.EndTime)
}

// WeekdayOf возвращает день недели даты в нумерации с понедельника (0-6)
func WeekdayOf(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
