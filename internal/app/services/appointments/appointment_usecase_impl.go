package appointments

import (
	"clinicsync-service/internal/app/config"
	"clinicsync-service/internal/app/contracts"
	"clinicsync-service/internal/app/models"
	"clinicsync-service/internal/pkg/constvars"
	"clinicsync-service/internal/pkg/dto/requests"
	"clinicsync-service/internal/pkg/dto/responses"
	"clinicsync-service/internal/pkg/exceptions"
	"clinicsync-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	Store              *Store
	Orchestrator       *Orchestrator
	ConsultationClient contracts.ConsultationClient
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger

	debouncers map[models.Partition]*Debouncer
	committed  sync.Map
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	store *Store,
	orchestrator *Orchestrator,
	consultationClient contracts.ConsultationClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			Store:              store,
			Orchestrator:       orchestrator,
			ConsultationClient: consultationClient,
			InternalConfig:     internalConfig,
			Log:                logger,
			debouncers:         make(map[models.Partition]*Debouncer),
		}

		quiet := time.Duration(internalConfig.Sync.DebounceQuietMs) * time.Millisecond
		for _, partition := range []models.Partition{models.PartitionToday, models.PartitionFuture, models.PartitionPast} {
			partition := partition
			instance.debouncers[partition] = NewDebouncer(quiet, internalConfig.Sync.DebounceMinLength, func(committed string) {
				instance.onSearchCommitted(partition, committed)
			})
		}

		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) onSearchCommitted(partition models.Partition, committed string) {
	uc.Log.Info("appointmentUsecase search committed",
		zap.String(constvars.LoggingPartitionKey, string(partition)),
		zap.String(constvars.LoggingSearchTextKey, committed),
	)
	uc.committed.Store(partition, committed)
	uc.Orchestrator.SetSearch(partition, committed)

	ctx, cancel := context.WithTimeout(context.Background(), uc.requestTimeout())
	defer cancel()
	if _, err := uc.Orchestrator.Sync(ctx, partition); err != nil {
		uc.Log.Error("appointmentUsecase search-triggered sync failed",
			zap.String(constvars.LoggingPartitionKey, string(partition)),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) requestTimeout() time.Duration {
	return time.Duration(uc.InternalConfig.ClinicBackend.RequestTimeoutSeconds) * time.Second
}

func (uc *appointmentUsecase) List(ctx context.Context, partition models.Partition, query *requests.ListQuery) (*responses.AppointmentList, *models.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPartitionKey, string(partition)),
		zap.Any(constvars.LoggingQueryParamsKey, query),
	)

	if !partition.Valid() {
		return nil, nil, exceptions.ErrUnknownPartition(nil, string(partition))
	}

	uc.Orchestrator.SetActive(partition, true)
	uc.Orchestrator.SetSort(partition, query.SortBy, query.SortDir)
	uc.Orchestrator.SetPageSize(partition, query.PageSize)
	if query.Search != "" {
		// An explicit search parameter is an already-committed value; the
		// debounce path is only for keystroke streams.
		uc.Orchestrator.SetSearch(partition, query.Search)
	}
	uc.Orchestrator.SetPage(partition, query.Page)

	page, err := uc.Orchestrator.Sync(ctx, partition)
	if err != nil {
		uc.Log.Error("appointmentUsecase.List sync failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPartitionKey, string(partition)),
			zap.Error(err),
		)
		return nil, nil, err
	}

	counts := uc.Store.Counts()
	list := &responses.AppointmentList{
		Partition:    partition,
		Appointments: uc.Store.List(partition),
		Counts: map[string]int{
			constvars.PartitionToday:  counts[models.PartitionToday],
			constvars.PartitionFuture: counts[models.PartitionFuture],
			constvars.PartitionPast:   counts[models.PartitionPast],
		},
	}

	var pagination *models.Pagination
	if page != nil {
		pagination = &page.Pagination
	}

	uc.Log.Info("appointmentUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPartitionKey, string(partition)),
		zap.Int(constvars.LoggingAppointmentCountKey, len(list.Appointments)),
	)
	return list, pagination, nil
}

func (uc *appointmentUsecase) SearchInput(ctx context.Context, partition models.Partition, input string) (*responses.SearchStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.SearchInput called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPartitionKey, string(partition)),
		zap.String(constvars.LoggingSearchTextKey, input),
	)

	if !partition.Valid() {
		return nil, exceptions.ErrUnknownPartition(nil, string(partition))
	}

	debouncer := uc.debouncers[partition]
	debouncer.Edit(input)

	committed := ""
	if value, ok := uc.committed.Load(partition); ok {
		committed = value.(string)
	}
	return &responses.SearchStatus{
		Pending:   debouncer.Pending(),
		Committed: committed,
	}, nil
}

func (uc *appointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// No optimistic insert for create: the id is server-assigned and never
	// guessed, so the entry appears only after confirmation.
	created, err := uc.ConsultationClient.Create(ctx, request)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create backend call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	scheduled, parseErr := utils.ParseCalendarDate(created.ScheduledDate)
	if parseErr != nil {
		return nil, exceptions.ErrCannotParseDate(parseErr)
	}
	partition := Classify(scheduled, time.Now())
	uc.Store.Insert(partition, *created)

	uc.Log.Info("appointmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, created.ID),
		zap.String(constvars.LoggingPartitionKey, string(partition)),
	)
	return created, nil
}

func (uc *appointmentUsecase) Update(ctx context.Context, appointmentID int64, request *requests.UpdateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	partition, applied := uc.Store.Apply(appointmentID, func(appointment *models.Appointment) {
		mergeAppointment(appointment, request)
	})
	if !applied {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	uc.Store.TrackPending(models.PendingMutation{
		AppointmentID: appointmentID,
		Kind:          models.MutationUpdate,
		From:          partition,
		To:            partition,
	})
	defer uc.Store.ResolvePending(appointmentID)

	updated, err := uc.ConsultationClient.Update(ctx, appointmentID, request)
	if err != nil {
		// The optimistic merge stays in place; the caller surfaces the
		// failure and the next sync re-converges with the backend.
		uc.Log.Error("appointmentUsecase.Update backend call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Store.Apply(appointmentID, func(appointment *models.Appointment) {
		*appointment = *updated
	})

	uc.Log.Info("appointmentUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return updated, nil
}

func (uc *appointmentUsecase) Delete(ctx context.Context, appointmentID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	partition, _, found := uc.Store.Find(appointmentID)
	if !found {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	uc.Store.Remove(appointmentID)
	uc.Store.TrackPending(models.PendingMutation{
		AppointmentID: appointmentID,
		Kind:          models.MutationDelete,
		From:          partition,
	})
	defer uc.Store.ResolvePending(appointmentID)

	if err := uc.ConsultationClient.Delete(ctx, appointmentID); err != nil {
		// The entry is not restored on failure; a later sync resolves the
		// divergence.
		uc.Log.Error("appointmentUsecase.Delete backend call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("appointmentUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) Move(ctx context.Context, appointmentID int64, request *requests.MoveAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Move called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingPartitionKey, request.To),
	)

	to := models.Partition(request.To)
	if !to.Valid() {
		return nil, exceptions.ErrUnknownPartition(nil, request.To)
	}

	from, _, found := uc.Store.Find(appointmentID)
	if !found {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	if _, ok := uc.Store.Move(appointmentID, to); !ok {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	uc.Store.TrackPending(models.PendingMutation{
		AppointmentID: appointmentID,
		Kind:          models.MutationMove,
		From:          from,
		To:            to,
	})
	defer uc.Store.ResolvePending(appointmentID)

	updated, err := uc.ConsultationClient.UpdateStatus(ctx, appointmentID, to.CanonicalStatus())
	if err != nil {
		// The local move is not reversed automatically.
		uc.Log.Error("appointmentUsecase.Move backend call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Store.Apply(appointmentID, func(appointment *models.Appointment) {
		*appointment = *updated
	})

	uc.Log.Info("appointmentUsecase.Move succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingPartitionKey, string(to)),
	)
	return updated, nil
}

func mergeAppointment(appointment *models.Appointment, request *requests.UpdateAppointment) {
	if request.PatientName != nil {
		appointment.PatientName = *request.PatientName
	}
	if request.ContactNumber != nil {
		appointment.ContactNumber = *request.ContactNumber
	}
	if request.Disease != nil {
		appointment.Disease = *request.Disease
	}
	if request.Date != nil {
		appointment.ScheduledDate = *request.Date
	}
	if request.Time != nil {
		appointment.ScheduledTime = *request.Time
	}
	if request.Status != nil {
		appointment.Status = models.Status(*request.Status)
	}
	if request.MeetingLink != nil {
		appointment.MeetingLink = *request.MeetingLink
	}
}
