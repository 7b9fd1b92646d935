package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи на прием
type Request struct {
	ClientID       int64            // ID клиента (из аутентификации, не из тела запроса)
	ProfessionalID int64            // ID профессионала
	ServiceID      int64            // ID услуги
	Date           time.Time        // Дата приема (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	Notes          *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID             int64            // ID созданной записи
	ClientID       int64            // ID клиента
	ProfessionalID int64            // ID профессионала
	ServiceID      int64            // ID услуги
	Date           time.Time        // Дата приема
	StartTime      types.TimeString // Время начала
	Status         string           // Статус записи

	// Денормализованные данные
	ClientName      string  // Имя клиента (пустое при деградации ClientDirectory)
	ServiceName     string  // Название услуги
	DurationMinutes int     // Длительность в минутах
	Notes           *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:              appt.ID,
		ClientID:        appt.ClientID,
		ProfessionalID:  appt.ProfessionalID,
		ServiceID:       appt.ServiceID,
		Date:            appt.Date,
		StartTime:       appt.StartTime,
		Status:          string(appt.Status),
		ClientName:      appt.ClientName,
		ServiceName:     appt.ServiceName,
		DurationMinutes: appt.DurationMinutes,
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}
