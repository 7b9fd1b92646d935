package catalog

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// CatalogRepository интерфейс справочника профессионалов и услуг
type CatalogRepository interface {
	GetProfessionalByID(ctx context.Context, id int64) (*domain.Professional, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	ListProfessionals(ctx context.Context) ([]*domain.Professional, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
