package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
)

// UseCase use case для получения доступных слотов записи
//
// Генератор слотов - чистая выборка без побочных эффектов: результат
// является снимком на момент выполнения и не несет гарантии свежести.
// Вызывающая сторона обязана переживать устаревание снимка - именно
// поэтому создание записи пересчитывает слоты заново
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	catalogRepo      CatalogRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		catalogRepo:      catalogRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%d, service=%d, date=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование профессионала
	if _, err := uc.catalogRepo.GetProfessionalByID(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. Получаем услугу - её длительность задает шаг генерации слотов
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Получаем окна доступности на день недели даты (нумерация с понедельника)
	weekday := domain.WeekdayOf(req.Date)
	windows, err := uc.availabilityRepo.GetByProfessionalAndWeekday(ctx, req.ProfessionalID, weekday)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
	}

	// 5. Получаем занятые времена на дату - независимо от статуса записи
	takenTimes, err := uc.appointmentRepo.GetTakenTimes(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get taken times: %v", err)
		return nil, fmt.Errorf("%w: failed to get taken times: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты: полуоткрытый обход каждого окна с шагом услуги
	slots := generateSlots(windows, takenSet(takenTimes), service.DurationMinutes)

	uc.logger.Info("GetAvailableSlots: generated %d slots for professional=%d, service=%d, date=%s",
		len(slots), req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}
