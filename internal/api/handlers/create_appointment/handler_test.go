package create_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	response *createAppointment.Response
	err      error
	gotReq   *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"professionalId":1,"serviceId":10,"date":"2025-10-13","startTime":"09:00"}`

func doRequest(t *testing.T, uc *fakeUseCase, body string, clientID string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/appointments", handler.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if clientID != "" {
		req.Header.Set(middleware.HeaderClientID, clientID)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_StaleSlotMapsToConflict(t *testing.T) {
	uc := &fakeUseCase{err: createAppointment.ErrSlotNoLongerAvailable}

	rec := doRequest(t, uc, validBody, "7")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "обновите список слотов")
}

func TestHandle_RaceLostMapsToConflict(t *testing.T) {
	uc := &fakeUseCase{err: createAppointment.ErrSlotJustTaken}

	rec := doRequest(t, uc, validBody, "7")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "занят другим клиентом")
}

func TestHandle_ClientIDComesFromAuthHeader(t *testing.T) {
	uc := &fakeUseCase{err: createAppointment.ErrSlotNoLongerAvailable}

	doRequest(t, uc, validBody, "42")

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(42), uc.gotReq.ClientID)
}

func TestHandle_MissingAuthHeader(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, validBody, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.gotReq, "unauthenticated request must not reach the use case")
}

func TestHandle_NotFoundMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "client", err: createAppointment.ErrClientNotFound},
		{name: "professional", err: createAppointment.ErrProfessionalNotFound},
		{name: "service", err: createAppointment.ErrServiceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody, "7")
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestHandle_BadRequestOnMalformedBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{"date":"13.10.2025"`, "7")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
