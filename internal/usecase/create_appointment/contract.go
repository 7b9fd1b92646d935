package create_appointment

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/clientdirectory"
	"github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// AppointmentRepository интерфейс репозитория записей на прием
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// CatalogRepository интерфейс справочника услуг
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
}

// SlotsProvider интерфейс генератора доступных слотов
//
// Создание записи пересчитывает слоты тем же кодом, что и публичная
// выдача: клиентский снимок не является источником истины
type SlotsProvider interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// ClientDirectoryClient интерфейс клиента для ClientDirectory
type ClientDirectoryClient interface {
	GetClientWithGracefulDegradation(ctx context.Context, clientID int64) (*clientdirectory.ClientProfile, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
