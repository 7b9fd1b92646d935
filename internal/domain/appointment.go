package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a client's appointment with a professional
//
// Инвариант: тройка (professional_id, appointment_date, start_time) уникальна
// среди ВСЕХ записей независимо от статуса. Уникальность обеспечивается
// constraint-ом на уровне базы данных, это единственная защита от double-booking.
type Appointment struct {
	ID             int64
	ClientID       int64
	ProfessionalID int64
	ServiceID      int64
	Date           time.Time
	StartTime      types.TimeString

	Status AppointmentStatus

	// Denormalized data for history
	ClientName      string // Может быть пустым при недоступности ClientDirectory
	ServiceName     string
	DurationMinutes int

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsScheduled returns true if the appointment is still scheduled
func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsCompleted returns true if the appointment has been completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == StatusCompleted
}

// ClientAppointmentsFilter фильтр для получения записей клиента
type ClientAppointmentsFilter struct {
	ClientID int64              // Обязательный параметр
	Status   *AppointmentStatus // Фильтр по статусу (опционально)
}
