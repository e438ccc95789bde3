package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingQueryParamsKey      = "query_params"
	LoggingSignatureKey        = "signature"
	LoggingPartitionKey        = "partition"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingResponseLengthKey   = "response_length"
	LoggingBackendUrlKey       = "backend_url"
	LoggingSearchTextKey       = "search_text"
	LoggingPageKey             = "page"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingCacheKeyKey         = "cache_key"
	LoggingAttemptKey          = "attempt"
)
