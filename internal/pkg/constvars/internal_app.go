package constvars

type ContextKey string

const (
	ResourceAppointment   = "appointments"
	ResourceConsultations = "/admin/consultations"
)

const (
	PartitionToday  = "today"
	PartitionFuture = "future"
	PartitionPast   = "past"
)

const (
	AppointmentStatusUpcoming   = "Upcoming"
	AppointmentStatusInProgress = "InProgress"
	AppointmentStatusCompleted  = "Completed"
	AppointmentStatusCancelled  = "Cancelled"
	AppointmentStatusNoShow     = "NoShow"
)

const (
	ServerStatusScheduled  = "scheduled"
	ServerStatusInProgress = "in_progress"
	ServerStatusCompleted  = "completed"
	ServerStatusCancelled  = "cancelled"
	ServerStatusNoShow     = "no_show"
)

const (
	SortFieldPatientName   = "patient_name"
	SortFieldStatus        = "status"
	SortFieldScheduledDate = "date"

	SortDirectionAscending  = "asc"
	SortDirectionDescending = "desc"
)

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_BEARER_TOKEN_KEY ContextKey = "bearer_token"
)

const (
	REQUEST_ID_PREFIX = "CLNSYNC_SVC_"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	DateOnlyFormat = "2006-01-02"
)
