package create_appointment

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	dirClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/clientdirectory"
	"github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// fakeAppointmentRepo эмулирует ограничение уникальности
// (professional_id, appointment_date, start_time) in-memory
type fakeAppointmentRepo struct {
	mu          sync.Mutex
	slots       map[string]struct{}
	nextID      int64
	createCalls int
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{slots: make(map[string]struct{})}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.createCalls++

	key := fmt.Sprintf("%d/%s/%s", appt.ProfessionalID, appt.Date.Format(domain.DateFormat), appt.StartTime)
	if _, taken := f.slots[key]; taken {
		return nil, apptRepo.ErrSlotTaken
	}
	f.slots[key] = struct{}{}

	f.nextID++
	created := *appt
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	return &created, nil
}

type fakeCatalogRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeCatalogRepo) GetServiceByID(_ context.Context, id int64) (*domain.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

type fakeSlotsProvider struct {
	response *get_available_slots.Response
	err      error
}

func (f *fakeSlotsProvider) Execute(_ context.Context, _ *get_available_slots.Request) (*get_available_slots.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type fakeClientDirectory struct {
	profile *dirClient.ClientProfile
	err     error
}

func (f *fakeClientDirectory) GetClientWithGracefulDegradation(_ context.Context, _ int64) (*dirClient.ClientProfile, error) {
	return f.profile, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		ClientID:       7,
		ProfessionalID: 1,
		ServiceID:      10,
		Date:           testDate,
		StartTime:      "09:00",
	}
}

func newTestUseCase(repo *fakeAppointmentRepo, slots *fakeSlotsProvider, dir *fakeClientDirectory) *UseCase {
	catalog := &fakeCatalogRepo{
		services: map[int64]*domain.Service{
			10: {ID: 10, Name: "Consulta", DurationMinutes: 30},
		},
	}
	return NewUseCase(repo, catalog, slots, dir, fakeTxManager{}, nopLogger{})
}

func availableSlots(slots ...types.TimeString) *fakeSlotsProvider {
	return &fakeSlotsProvider{
		response: &get_available_slots.Response{
			Date:            testDate,
			ProfessionalID:  1,
			ServiceID:       10,
			DurationMinutes: 30,
			Slots:           slots,
		},
	}
}

func knownClient() *fakeClientDirectory {
	return &fakeClientDirectory{profile: &dirClient.ClientProfile{ID: 7, FullName: "Bruno Costa"}}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := newTestUseCase(repo, availableSlots("09:00", "09:30"), knownClient())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, "Bruno Costa", resp.ClientName)
	assert.Equal(t, "Consulta", resp.ServiceName)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("09:00"), resp.StartTime)
}

func TestExecute_StaleSlotRejectedWithoutWrite(t *testing.T) {
	repo := newFakeAppointmentRepo()
	// Пересчет больше не содержит выбранный слот
	uc := newTestUseCase(repo, availableSlots("09:30"), knownClient())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNoLongerAvailable)
	assert.Equal(t, 0, repo.createCalls, "stale slot must be rejected before any write")
}

func TestExecute_ConcurrentRequestsExactlyOneWins(t *testing.T) {
	repo := newFakeAppointmentRepo()
	slots := availableSlots("09:00", "09:30")

	// Оба запроса видят свежий снимок со свободным слотом:
	// гонку разрешает только ограничение уникальности
	ucA := newTestUseCase(repo, slots, knownClient())
	ucB := newTestUseCase(repo, slots, knownClient())

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i, uc := range []*UseCase{ucA, ucB} {
		wg.Add(1)
		go func(i int, uc *UseCase) {
			defer wg.Done()
			req := validRequest()
			req.ClientID = int64(i + 1)
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i, uc)
	}
	wg.Wait()

	var wins, losses int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case assert.ErrorIs(t, err, ErrSlotJustTaken):
			losses++
		}
	}

	assert.Equal(t, 1, wins, "exactly one request must win the slot")
	assert.Equal(t, 1, losses, "the other request must lose to the uniqueness constraint")
	assert.Equal(t, 2, repo.createCalls)
}

func TestExecute_ClientDirectoryDegraded(t *testing.T) {
	repo := newFakeAppointmentRepo()
	degraded := &fakeClientDirectory{
		err: fmt.Errorf("%w: client_id=7", dirClient.ErrServiceDegraded),
	}
	uc := newTestUseCase(repo, availableSlots("09:00"), degraded)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.ClientName, "degraded directory must not block the reservation")
}

func TestExecute_ClientNotFound(t *testing.T) {
	repo := newFakeAppointmentRepo()
	missing := &fakeClientDirectory{err: dirClient.ErrClientNotFound}
	uc := newTestUseCase(repo, availableSlots("09:00"), missing)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	repo := newFakeAppointmentRepo()
	slots := &fakeSlotsProvider{err: get_available_slots.ErrProfessionalNotFound}
	uc := newTestUseCase(repo, slots, knownClient())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := newTestUseCase(repo, availableSlots("09:00"), knownClient())

	req := validRequest()
	req.ServiceID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_Validation(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := newTestUseCase(repo, availableSlots("09:00"), knownClient())

	longNotes := strings.Repeat("a", domain.MaxNotesLength+1)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "zero client", mutate: func(req *Request) { req.ClientID = 0 }},
		{name: "zero professional", mutate: func(req *Request) { req.ProfessionalID = 0 }},
		{name: "zero service", mutate: func(req *Request) { req.ServiceID = 0 }},
		{name: "zero date", mutate: func(req *Request) { req.Date = time.Time{} }},
		{name: "empty start time", mutate: func(req *Request) { req.StartTime = "" }},
		{name: "bad start time format", mutate: func(req *Request) { req.StartTime = "9am" }},
		{name: "notes too long", mutate: func(req *Request) { req.Notes = ptr.Ptr(longNotes) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Equal(t, 0, repo.createCalls, "invalid requests must not reach the repository")
}
