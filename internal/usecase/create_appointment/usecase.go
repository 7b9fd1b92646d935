package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	dirClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/clientdirectory"
	"github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// UseCase use case для создания записи на прием
//
// Защита от double-booking двухступенчатая:
//   - пересчет слотов перед записью отсекает устаревшие снимки клиента
//     без открытия транзакции;
//   - ограничение уникальности (professional_id, appointment_date, start_time)
//     в БД разрешает гонку между конкурирующими запросами: выигрывает ровно
//     один, проигравший получает ErrSlotJustTaken.
//
// Блокировок на уровне приложения нет.
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	slotsProvider   SlotsProvider
	clientDirectory ClientDirectoryClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	slotsProvider SlotsProvider,
	clientDirectory ClientDirectoryClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		slotsProvider:   slotsProvider,
		clientDirectory: clientDirectory,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи на прием
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, professional=%d, service=%d, date=%s, time=%s",
		req.ClientID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу для денормализации названия
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем профиль клиента из ClientDirectory
	// При недоступности справочника запись создается с пустым именем клиента
	clientName := ""
	profile, err := uc.clientDirectory.GetClientWithGracefulDegradation(ctx, req.ClientID)
	switch {
	case err == nil:
		clientName = profile.FullName
	case errors.Is(err, dirClient.ErrClientNotFound):
		uc.logger.Warn("CreateAppointment: client id=%d not found in directory", req.ClientID)
		return nil, ErrClientNotFound
	case errors.Is(err, dirClient.ErrServiceDegraded):
		uc.logger.Warn("CreateAppointment: client directory degraded, creating without client name: %v", err)
	default:
		uc.logger.Error("CreateAppointment: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 4. Пересчитываем доступные слоты на сервере
	slots, err := uc.slotsProvider.Execute(ctx, &get_available_slots.Request{
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, get_available_slots.ErrProfessionalNotFound):
			uc.logger.Warn("CreateAppointment: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		case errors.Is(err, get_available_slots.ErrServiceNotFound):
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		case errors.Is(err, get_available_slots.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("CreateAppointment: failed to recompute slots: %v", err)
			return nil, fmt.Errorf("%w: failed to recompute slots: %v", ErrInternal, err)
		}
	}

	// 5. Проверяем, что выбранный слот есть в пересчитанном списке.
	// Клиентский снимок мог устареть - отклоняем без открытия транзакции
	if !slots.Contains(req.StartTime) {
		uc.logger.Warn("CreateAppointment: slot %s on %s is no longer available for professional=%d",
			req.StartTime, req.Date.Format(domain.DateFormat), req.ProfessionalID)
		return nil, ErrSlotNoLongerAvailable
	}

	appt := &domain.Appointment{
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		Status:         domain.StatusScheduled,
		// Денормализация данных клиента и услуги
		ClientName:      clientName,
		ServiceName:     service.Name,
		DurationMinutes: service.DurationMinutes,
		// Заметки
		Notes: req.Notes,
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 6. Сохраняем запись в транзакции. Гонку между пересчетом и вставкой
	// разрешает ограничение уникальности в БД
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: lost the race for slot %s on %s, professional=%d",
					req.StartTime, req.Date.Format(domain.DateFormat), req.ProfessionalID)
				return ErrSlotJustTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for client=%d", result.ID, req.ClientID)

	return toResponse(result), nil
}
