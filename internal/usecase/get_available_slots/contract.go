package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей на прием
type AppointmentRepository interface {
	// GetTakenTimes получает занятые времена профессионала на дату (все статусы)
	GetTakenTimes(ctx context.Context, professionalID int64, date time.Time) ([]types.TimeString, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	// GetByProfessionalAndWeekday получает окна доступности в порядке вставки
	GetByProfessionalAndWeekday(ctx context.Context, professionalID int64, weekday int) ([]*domain.AvailabilityWindow, error)
}

// CatalogRepository интерфейс справочника профессионалов и услуг
type CatalogRepository interface {
	GetProfessionalByID(ctx context.Context, id int64) (*domain.Professional, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
