package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

// Service сервис справочника профессионалов и услуг
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListProfessionals возвращает список всех профессионалов
func (s *Service) ListProfessionals(ctx context.Context) (*models.ProfessionalListResponse, error) {
	s.logger.Info("ListProfessionals: fetching professionals")

	professionals, err := s.catalogRepo.ListProfessionals(ctx)
	if err != nil {
		s.logger.Error("ListProfessionals: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProfessionals - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListProfessionals: successfully fetched %d professionals", len(professionals))
	return models.FromDomainProfessionalList(professionals), nil
}

// ListServices возвращает список всех услуг
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: fetching services")

	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}
