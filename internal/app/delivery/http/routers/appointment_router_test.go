package routers

import (
	"bytes"
	"clinicsync-service/internal/app/config"
	"clinicsync-service/internal/app/delivery/http/controllers"
	"clinicsync-service/internal/app/delivery/http/middlewares"
	"clinicsync-service/internal/app/models"
	"clinicsync-service/internal/pkg/dto/requests"
	"clinicsync-service/internal/pkg/dto/responses"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) List(ctx context.Context, partition models.Partition, query *requests.ListQuery) (*responses.AppointmentList, *models.Pagination, error) {
	args := m.Called(ctx, partition, query)
	var list *responses.AppointmentList
	if args.Get(0) != nil {
		list = args.Get(0).(*responses.AppointmentList)
	}
	var pagination *models.Pagination
	if args.Get(1) != nil {
		pagination = args.Get(1).(*models.Pagination)
	}
	return list, pagination, args.Error(2)
}

func (m *MockAppointmentUsecase) SearchInput(ctx context.Context, partition models.Partition, input string) (*responses.SearchStatus, error) {
	args := m.Called(ctx, partition, input)
	var status *responses.SearchStatus
	if args.Get(0) != nil {
		status = args.Get(0).(*responses.SearchStatus)
	}
	return status, args.Error(1)
}

func (m *MockAppointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	args := m.Called(ctx, request)
	var appointment *models.Appointment
	if args.Get(0) != nil {
		appointment = args.Get(0).(*models.Appointment)
	}
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) Update(ctx context.Context, appointmentID int64, request *requests.UpdateAppointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	var appointment *models.Appointment
	if args.Get(0) != nil {
		appointment = args.Get(0).(*models.Appointment)
	}
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) Delete(ctx context.Context, appointmentID int64) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *MockAppointmentUsecase) Move(ctx context.Context, appointmentID int64, request *requests.MoveAppointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	var appointment *models.Appointment
	if args.Get(0) != nil {
		appointment = args.Get(0).(*models.Appointment)
	}
	return appointment, args.Error(1)
}

func newTestRouter(usecase *MockAppointmentUsecase, serviceToken string) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix: "api",
			Version:        "v1",
			MaxRequests:    1000,
		},
		ClinicBackend: config.ClinicBackend{
			ServiceToken: serviceToken,
		},
	}

	router := chi.NewRouter()
	appointmentController := controllers.NewAppointmentController(logger, usecase)
	testMiddlewares := middlewares.NewMiddlewares(logger, internalConfig)
	SetupRoutes(router, internalConfig, testMiddlewares, appointmentController)
	return router
}

func TestAppointmentRouter_ListEndpoint(t *testing.T) {
	usecase := new(MockAppointmentUsecase)
	usecase.On("List", mock.Anything, models.PartitionToday, mock.MatchedBy(func(query *requests.ListQuery) bool {
		return query.Search == "john" && query.Page == 2 && query.SortDir == "desc"
	})).Return(
		&responses.AppointmentList{
			Partition:    models.PartitionToday,
			Appointments: []models.Appointment{{ID: 1, PatientName: "John Doe"}},
			Counts:       map[string]int{"today": 1, "future": 0, "past": 0},
		},
		&models.Pagination{Total: 15, CurrentPage: 2, TotalPages: 2, PageSize: 10},
		nil,
	)

	router := newTestRouter(usecase, "service-token")

	req := httptest.NewRequest("GET", "/api/v1/appointments/today?search=john&page=2&sort_dir=desc", nil)
	req.Header.Set("Authorization", "Bearer caller-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response responses.ResponseDTO
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.NotNil(t, response.Pagination)
	assert.Equal(t, 15, response.Pagination.Total)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	usecase.AssertExpectations(t)
}

func TestAppointmentRouter_UnknownPartitionIsNotRouted(t *testing.T) {
	usecase := new(MockAppointmentUsecase)
	router := newTestRouter(usecase, "service-token")

	req := httptest.NewRequest("GET", "/api/v1/appointments/yesterday", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	usecase.AssertNotCalled(t, "List")
}

func TestAppointmentRouter_SearchEndpoint(t *testing.T) {
	usecase := new(MockAppointmentUsecase)
	usecase.On("SearchInput", mock.Anything, models.PartitionFuture, "joh").Return(
		&responses.SearchStatus{Pending: true, Committed: ""}, nil,
	)

	router := newTestRouter(usecase, "service-token")

	body, _ := json.Marshal(requests.SearchInput{Input: "joh"})
	req := httptest.NewRequest("PUT", "/api/v1/appointments/future/search", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusAccepted, rr.Code)
	usecase.AssertExpectations(t)
}

func TestAppointmentRouter_CreateValidation(t *testing.T) {
	usecase := new(MockAppointmentUsecase)
	router := newTestRouter(usecase, "service-token")

	// Date malformed: validation must reject before the usecase is reached.
	body := []byte(`{"patient_name": "John Doe", "contact_number": "555-0100", "date": "15-06-2024", "time": "10:00"}`)
	req := httptest.NewRequest("POST", "/api/v1/appointments", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	usecase.AssertNotCalled(t, "Create")
}

func TestAppointmentRouter_MoveEndpoint(t *testing.T) {
	usecase := new(MockAppointmentUsecase)
	usecase.On("Move", mock.Anything, int64(5), mock.MatchedBy(func(request *requests.MoveAppointment) bool {
		return request.To == "past"
	})).Return(&models.Appointment{ID: 5, Status: models.StatusCompleted}, nil)

	router := newTestRouter(usecase, "service-token")

	body := []byte(`{"to": "past"}`)
	req := httptest.NewRequest("PUT", "/api/v1/appointments/5/move", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	usecase.AssertExpectations(t)
}

func TestAppointmentRouter_DeleteEndpoint(t *testing.T) {
	usecase := new(MockAppointmentUsecase)
	usecase.On("Delete", mock.Anything, int64(7)).Return(nil)

	router := newTestRouter(usecase, "service-token")

	req := httptest.NewRequest("DELETE", "/api/v1/appointments/7", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	usecase.AssertExpectations(t)
}

func TestAppointmentRouter_NonNumericIDIsNotRouted(t *testing.T) {
	usecase := new(MockAppointmentUsecase)
	router := newTestRouter(usecase, "service-token")

	req := httptest.NewRequest("DELETE", "/api/v1/appointments/abc", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	usecase.AssertNotCalled(t, "Delete")
}

func TestAppointmentRouter_MissingCredential(t *testing.T) {
	usecase := new(MockAppointmentUsecase)
	// No caller token and no fallback service credential configured.
	router := newTestRouter(usecase, "")

	req := httptest.NewRequest("GET", "/api/v1/appointments/today", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	usecase.AssertNotCalled(t, "List")
}
