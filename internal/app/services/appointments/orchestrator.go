package appointments

import (
	"clinicsync-service/internal/app/contracts"
	"clinicsync-service/internal/app/models"
	"clinicsync-service/internal/pkg/constvars"
	"clinicsync-service/internal/pkg/dto/requests"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultPageSize    = 10
	DefaultMaxPageSize = 100

	backgroundRefreshTimeout = 15 * time.Second
)

var sortFieldTranslations = map[string]string{
	"patient name":   constvars.SortFieldPatientName,
	"patient_name":   constvars.SortFieldPatientName,
	"status":         constvars.SortFieldStatus,
	"scheduled date": constvars.SortFieldScheduledDate,
	"scheduled_date": constvars.SortFieldScheduledDate,
	"date":           constvars.SortFieldScheduledDate,
}

// TranslateSortField maps an internal sort key to the backend's field-name
// vocabulary. Unrecognized keys fall back to the scheduled date.
func TranslateSortField(sortBy string) string {
	if field, ok := sortFieldTranslations[sortBy]; ok {
		return field
	}
	return constvars.SortFieldScheduledDate
}

type partitionState struct {
	query       requests.ConsultationQuery
	totalPages  int
	active      bool
	inflightKey string
}

// Orchestrator owns the query signature per partition and guarantees that a
// response belonging to a superseded signature is never applied to the read
// model. It is the only component that touches the result cache.
type Orchestrator struct {
	log         *zap.Logger
	client      contracts.ConsultationClient
	cache       contracts.ResultCache
	store       *Store
	maxPageSize int

	mu     sync.Mutex
	states map[models.Partition]*partitionState
}

func NewOrchestrator(client contracts.ConsultationClient, cache contracts.ResultCache, store *Store, maxPageSize int, logger *zap.Logger) *Orchestrator {
	if maxPageSize <= 0 {
		maxPageSize = DefaultMaxPageSize
	}
	o := &Orchestrator{
		log:         logger,
		client:      client,
		cache:       cache,
		store:       store,
		maxPageSize: maxPageSize,
		states:      make(map[models.Partition]*partitionState),
	}
	for _, partition := range []models.Partition{models.PartitionToday, models.PartitionFuture, models.PartitionPast} {
		o.states[partition] = &partitionState{
			query: requests.ConsultationQuery{
				Partition: string(partition),
				SortBy:    constvars.SortFieldScheduledDate,
				SortDir:   constvars.SortDirectionAscending,
				Page:      1,
				PageSize:  DefaultPageSize,
			},
			totalPages: 1,
		}
	}
	return o
}

func (o *Orchestrator) state(partition models.Partition) *partitionState {
	return o.states[partition]
}

// SetActive flips the caller-supplied "is this view visible" flag. Inactive
// partitions are never fetched.
func (o *Orchestrator) SetActive(partition models.Partition, active bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state(partition).active = active
}

// SetSearch installs a committed search text. A changed search always resets
// the page to 1.
func (o *Orchestrator) SetSearch(partition models.Partition, search string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	st := o.state(partition)
	if st.query.Search == search {
		return
	}
	st.query.Search = search
	st.query.Page = 1
}

// SetSort translates and installs the sort key and direction; any change
// resets the page to 1.
func (o *Orchestrator) SetSort(partition models.Partition, sortBy, sortDir string) {
	if sortDir != constvars.SortDirectionDescending {
		sortDir = constvars.SortDirectionAscending
	}
	field := TranslateSortField(sortBy)

	o.mu.Lock()
	defer o.mu.Unlock()
	st := o.state(partition)
	if st.query.SortBy == field && st.query.SortDir == sortDir {
		return
	}
	st.query.SortBy = field
	st.query.SortDir = sortDir
	st.query.Page = 1
}

// SetPage clamps the requested page into [1, max(1, totalPages)]. Callers are
// corrected, never rejected.
func (o *Orchestrator) SetPage(partition models.Partition, page int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	st := o.state(partition)
	st.query.Page = clampPage(page, st.totalPages)
}

// SetPageSize clamps the page size to the configured maximum to bound load on
// the clinic backend.
func (o *Orchestrator) SetPageSize(partition models.Partition, pageSize int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > o.maxPageSize {
		pageSize = o.maxPageSize
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	st := o.state(partition)
	if st.query.PageSize == pageSize {
		return
	}
	st.query.PageSize = pageSize
	st.query.Page = 1
}

// Query returns the current committed signature for a partition.
func (o *Orchestrator) Query(partition models.Partition) requests.ConsultationQuery {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state(partition).query
}

func clampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Sync brings the partition's read model in line with its current signature:
// a fresh cached page is served with no network call, a stale one is served
// immediately while a background refresh revalidates it, and a miss fetches
// synchronously. Inactive partitions are skipped entirely.
func (o *Orchestrator) Sync(ctx context.Context, partition models.Partition) (*models.AppointmentPage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	o.mu.Lock()
	st := o.state(partition)
	if !st.active {
		o.mu.Unlock()
		o.log.Debug("Orchestrator.Sync skipped inactive partition",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPartitionKey, string(partition)),
		)
		return nil, nil
	}
	query := st.query
	o.mu.Unlock()

	key := query.Key()
	if page, fresh, ok := o.cache.Get(ctx, key); ok {
		o.apply(partition, key, page)
		if fresh {
			o.log.Debug("Orchestrator.Sync served fresh cache entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKeyKey, key),
			)
			return page, nil
		}
		// Stale-while-revalidate: hand back the stale page now, refresh it
		// off the request path.
		o.log.Debug("Orchestrator.Sync serving stale entry, revalidating",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKeyKey, key),
		)
		go o.revalidate(partition, query)
		return page, nil
	}

	return o.fetch(ctx, partition, query)
}

func (o *Orchestrator) revalidate(partition models.Partition, query requests.ConsultationQuery) {
	ctx, cancel := context.WithTimeout(context.Background(), backgroundRefreshTimeout)
	defer cancel()
	if _, err := o.fetch(ctx, partition, query); err != nil {
		o.log.Warn("Orchestrator.revalidate background refresh failed",
			zap.String(constvars.LoggingPartitionKey, string(partition)),
			zap.Error(err),
		)
	}
}

// fetch issues exactly one request per signature. A second caller for the
// same in-flight signature is a no-op and reads whatever local state exists.
func (o *Orchestrator) fetch(ctx context.Context, partition models.Partition, query requests.ConsultationQuery) (*models.AppointmentPage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	key := query.Key()

	o.mu.Lock()
	st := o.state(partition)
	if st.inflightKey == key {
		o.mu.Unlock()
		o.log.Debug("Orchestrator.fetch duplicate in-flight signature, skipping",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKeyKey, key),
		)
		return nil, nil
	}
	st.inflightKey = key
	o.mu.Unlock()

	page, err := o.client.List(ctx, &query)

	o.mu.Lock()
	if st.inflightKey == key {
		st.inflightKey = ""
	}
	o.mu.Unlock()

	if err != nil {
		// The previous cached/local state stays intact on failure.
		o.log.Error("Orchestrator.fetch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKeyKey, key),
			zap.Error(err),
		)
		return nil, err
	}

	// Cache under the originating signature regardless of staleness, for
	// possible reuse.
	o.cache.Set(ctx, key, page)
	o.apply(partition, key, page)
	return page, nil
}

// apply installs a fetched page into the read model, but only while its
// signature is still the partition's committed one. Superseded responses are
// silently discarded; that is not an error.
func (o *Orchestrator) apply(partition models.Partition, key string, page *models.AppointmentPage) {
	o.mu.Lock()
	st := o.state(partition)
	if st.query.Key() != key {
		o.mu.Unlock()
		o.log.Debug("Orchestrator.apply discarding superseded response",
			zap.String(constvars.LoggingPartitionKey, string(partition)),
			zap.String(constvars.LoggingCacheKeyKey, key),
		)
		return
	}
	st.totalPages = page.Pagination.TotalPages
	if st.totalPages < 1 {
		st.totalPages = 1
	}
	o.mu.Unlock()

	o.store.Replace(partition, page.Appointments)
}
