package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// GetClientAppointmentsRequest запрос на получение записей клиента
type GetClientAppointmentsRequest struct {
	ClientID int64   `json:"clientId"`
	Status   *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetClientAppointmentsRequest) ToDomainFilter() (domain.ClientAppointmentsFilter, error) {
	filter := domain.ClientAppointmentsFilter{
		ClientID: r.ClientID,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи на прием
type AppointmentResponse struct {
	ID             int64  `json:"id"`
	ClientID       int64  `json:"clientId"`
	ProfessionalID int64  `json:"professionalId"`
	ServiceID      int64  `json:"serviceId"`
	Date           string `json:"date"`      // "2025-10-15"
	StartTime      string `json:"startTime"` // "10:00"
	Status         string `json:"status"`

	// Денормализованные данные
	ClientName      string  `json:"clientName,omitempty"`
	ServiceName     string  `json:"serviceName"`
	DurationMinutes int     `json:"durationMinutes"`
	Notes           *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		ClientID:        a.ClientID,
		ProfessionalID:  a.ProfessionalID,
		ServiceID:       a.ServiceID,
		Date:            a.Date.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		Status:          string(a.Status),
		ClientName:      a.ClientName,
		ServiceName:     a.ServiceName,
		DurationMinutes: a.DurationMinutes,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appts)),
	}
	for _, a := range appts {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(a))
	}
	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain статус
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	for _, valid := range domain.ValidStatuses {
		if status == valid {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}
