package consultations

import (
	"bytes"
	"clinicsync-service/internal/app/config"
	"clinicsync-service/internal/app/contracts"
	"clinicsync-service/internal/app/models"
	"clinicsync-service/internal/app/services/appointments"
	"clinicsync-service/internal/pkg/constvars"
	"clinicsync-service/internal/pkg/dto/requests"
	"clinicsync-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	consultationClientInstance contracts.ConsultationClient
	onceConsultationClient     sync.Once
)

type consultationClient struct {
	BaseUrl    string
	Session    contracts.SessionTokenProvider
	Log        *zap.Logger
	HTTPClient *http.Client
	limiter    *rate.Limiter
}

func NewConsultationClient(internalConfig *config.InternalConfig, session contracts.SessionTokenProvider, logger *zap.Logger) contracts.ConsultationClient {
	onceConsultationClient.Do(func() {
		backend := internalConfig.ClinicBackend
		client := &consultationClient{
			BaseUrl: backend.BaseUrl + constvars.ResourceConsultations,
			Session: session,
			Log:     logger,
			HTTPClient: &http.Client{
				Timeout: time.Duration(backend.RequestTimeoutSeconds) * time.Second,
			},
			limiter: rate.NewLimiter(rate.Limit(backend.RateLimitPerSecond), backend.RateLimitBurst),
		}
		consultationClientInstance = client
	})
	return consultationClientInstance
}

func (c *consultationClient) List(ctx context.Context, query *requests.ConsultationQuery) (*models.AppointmentPage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("consultationClient.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, query),
	)

	params := url.Values{}
	params.Set(constvars.BackendQueryParamDateFilter, query.Partition)
	params.Set(constvars.BackendQueryParamPage, strconv.Itoa(query.Page))
	params.Set(constvars.BackendQueryParamPerPage, strconv.Itoa(query.PageSize))
	params.Set(constvars.BackendQueryParamSortBy, query.SortBy)
	params.Set(constvars.BackendQueryParamSortDir, query.SortDir)
	if query.Search != "" {
		params.Set(constvars.BackendQueryParamSearch, query.Search)
	}

	endpoint := fmt.Sprintf("%s?%s", c.BaseUrl, params.Encode())
	c.Log.Info("consultationClient.List built URL",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBackendUrlKey, endpoint),
	)

	body, err := c.do(ctx, constvars.MethodGet, endpoint, nil, constvars.StatusOK)
	if err != nil {
		return nil, err
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.Log.Error("consultationClient.List error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAppointment)
	}

	page := envelope.toPage(query.PageSize)
	c.Log.Info("consultationClient.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(page.Appointments)),
	)
	return page, nil
}

func (c *consultationClient) Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("consultationClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload := map[string]interface{}{
		"patient_name":       request.PatientName,
		"contact_number":     request.ContactNumber,
		"disease":            request.Disease,
		"date":               request.Date,
		"time":               request.Time,
		"status":             constvars.ServerStatusScheduled,
		"already_registered": request.AlreadyRegistered,
	}
	if request.MeetingLink != "" {
		payload["meeting_link"] = request.MeetingLink
	}
	if len(request.SlotIDs) > 0 {
		payload["slot_ids"] = request.SlotIDs
	}

	return c.writeConsultation(ctx, constvars.MethodPost, c.BaseUrl, payload, constvars.StatusCreated)
}

func (c *consultationClient) Update(ctx context.Context, appointmentID int64, request *requests.UpdateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("consultationClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	payload := map[string]interface{}{}
	if request.PatientName != nil {
		payload["patient_name"] = *request.PatientName
	}
	if request.ContactNumber != nil {
		payload["contact_number"] = *request.ContactNumber
	}
	if request.Disease != nil {
		payload["disease"] = *request.Disease
	}
	if request.Date != nil {
		payload["date"] = *request.Date
	}
	if request.Time != nil {
		payload["time"] = *request.Time
	}
	if request.Status != nil {
		payload["status"] = appointments.ToExternalStatus(models.Status(*request.Status))
	}
	if request.MeetingLink != nil {
		payload["meeting_link"] = *request.MeetingLink
	}

	endpoint := fmt.Sprintf("%s/%d", c.BaseUrl, appointmentID)
	return c.writeConsultation(ctx, constvars.MethodPut, endpoint, payload, constvars.StatusOK)
}

func (c *consultationClient) UpdateStatus(ctx context.Context, appointmentID int64, status models.Status) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("consultationClient.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String("status", string(status)),
	)

	payload := map[string]interface{}{
		"status": appointments.ToExternalStatus(status),
	}
	endpoint := fmt.Sprintf("%s/%d", c.BaseUrl, appointmentID)
	return c.writeConsultation(ctx, constvars.MethodPut, endpoint, payload, constvars.StatusOK)
}

func (c *consultationClient) Delete(ctx context.Context, appointmentID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("consultationClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	endpoint := fmt.Sprintf("%s/%d", c.BaseUrl, appointmentID)
	_, err := c.do(ctx, constvars.MethodDelete, endpoint, nil, constvars.StatusOK, constvars.StatusNoContent)
	return err
}

func (c *consultationClient) writeConsultation(ctx context.Context, method, endpoint string, payload map[string]interface{}, wantStatus int) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	requestJSON, err := json.Marshal(payload)
	if err != nil {
		c.Log.Error("consultationClient error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	body, err := c.do(ctx, method, endpoint, bytes.NewBuffer(requestJSON), wantStatus)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data consultationItem `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.Log.Error("consultationClient error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAppointment)
	}

	appointment := envelope.Data.toModel()
	return &appointment, nil
}

func (c *consultationClient) do(ctx context.Context, method, endpoint string, body io.Reader, wantStatuses ...int) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		c.Log.Error("consultationClient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	token, err := c.Session.BearerToken(ctx)
	if err != nil {
		return nil, err
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("consultationClient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("consultationClient error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAppointment)
	}

	for _, want := range wantStatuses {
		if resp.StatusCode == want {
			return responseBody, nil
		}
	}

	var backendError struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	message := fmt.Sprintf("unexpected status %d", resp.StatusCode)
	if err := json.Unmarshal(responseBody, &backendError); err == nil {
		if backendError.Message != "" {
			message = backendError.Message
		} else if backendError.Error != "" {
			message = backendError.Error
		}
	}
	backendErr := fmt.Errorf("%s", message)
	c.Log.Error("consultationClient backend rejected request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Error(backendErr),
	)
	return nil, exceptions.ErrBackendRejected(backendErr, resp.StatusCode)
}
