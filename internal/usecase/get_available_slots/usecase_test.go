package get_available_slots

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Фейковые реализации контрактов usecase

type fakeAppointmentRepo struct {
	taken map[string][]types.TimeString // ключ "professionalID date"
}

func (f *fakeAppointmentRepo) GetTakenTimes(_ context.Context, professionalID int64, date time.Time) ([]types.TimeString, error) {
	return f.taken[takenKey(professionalID, date)], nil
}

func takenKey(professionalID int64, date time.Time) string {
	return fmt.Sprintf("%d/%s", professionalID, date.Format(domain.DateFormat))
}

type fakeAvailabilityRepo struct {
	windows map[int][]*domain.AvailabilityWindow // ключ weekday
}

func (f *fakeAvailabilityRepo) GetByProfessionalAndWeekday(_ context.Context, _ int64, weekday int) ([]*domain.AvailabilityWindow, error) {
	return f.windows[weekday], nil
}

type fakeCatalogRepo struct {
	professionals map[int64]*domain.Professional
	services      map[int64]*domain.Service
}

func (f *fakeCatalogRepo) GetProfessionalByID(_ context.Context, id int64) (*domain.Professional, error) {
	if p, ok := f.professionals[id]; ok {
		return p, nil
	}
	return nil, catalogRepo.ErrProfessionalNotFound
}

func (f *fakeCatalogRepo) GetServiceByID(_ context.Context, id int64) (*domain.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2025-10-13 - понедельник (weekday 0 в нумерации с понедельника)
var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func newTestUseCase(apptRepo *fakeAppointmentRepo, availRepo *fakeAvailabilityRepo) *UseCase {
	catalog := &fakeCatalogRepo{
		professionals: map[int64]*domain.Professional{
			1: {ID: 1, FullName: "Ana Silva", Speciality: "fisioterapia"},
		},
		services: map[int64]*domain.Service{
			10: {ID: 10, Name: "Consulta", DurationMinutes: 30},
		},
	}
	return NewUseCase(apptRepo, availRepo, catalog, nopLogger{})
}

func TestExecute_WeekdayIsMondayFirst(t *testing.T) {
	availRepo := &fakeAvailabilityRepo{
		windows: map[int][]*domain.AvailabilityWindow{
			// Окно заведено на weekday=0; понедельничная дата должна его найти
			0: {window(1, "08:00", "09:00")},
		},
	}
	uc := newTestUseCase(&fakeAppointmentRepo{}, availRepo)

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 10, Date: monday})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"08:00", "08:30"}, resp.Slots)
	assert.Equal(t, 30, resp.DurationMinutes)

	// Воскресенье (weekday 6) окон не имеет
	sunday := monday.AddDate(0, 0, 6)
	resp, err = uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 10, Date: sunday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_TakenTimesExcluded(t *testing.T) {
	availRepo := &fakeAvailabilityRepo{
		windows: map[int][]*domain.AvailabilityWindow{
			0: {window(1, "08:00", "09:00")},
		},
	}
	apptRepo := &fakeAppointmentRepo{
		taken: map[string][]types.TimeString{
			takenKey(1, monday): {"08:30"},
		},
	}
	uc := newTestUseCase(apptRepo, availRepo)

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 10, Date: monday})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"08:00"}, resp.Slots)
}

func TestExecute_IdempotentRead(t *testing.T) {
	availRepo := &fakeAvailabilityRepo{
		windows: map[int][]*domain.AvailabilityWindow{
			0: {window(1, "08:00", "10:00"), window(2, "14:00", "15:00")},
		},
	}
	uc := newTestUseCase(&fakeAppointmentRepo{}, availRepo)
	req := &Request{ProfessionalID: 1, ServiceID: 10, Date: monday}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{})

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 99, ServiceID: 10, Date: monday})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{})

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 99, Date: monday})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero professional", req: &Request{ServiceID: 10, Date: monday}},
		{name: "zero service", req: &Request{ProfessionalID: 1, Date: monday}},
		{name: "zero date", req: &Request{ProfessionalID: 1, ServiceID: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestResponse_Contains(t *testing.T) {
	resp := &Response{Slots: []types.TimeString{"08:00", "08:30"}}

	assert.True(t, resp.Contains("08:30"))
	assert.False(t, resp.Contains("09:00"))
}
