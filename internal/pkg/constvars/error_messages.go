package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
	"datetime": "must be a valid date in %s format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gt":       true,
	"gte":      true,
	"lte":      true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientClinicBackendUnreachable      = "the clinic system is unreachable, please try again"
	ErrClientClinicBackendRejected         = "the clinic system could not process the request"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientUnknownPartition              = "unknown appointment view"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "Validation failed"
	ErrDevInvalidInput               = "Invalid input provided"
	ErrDevURLParamIDValidationFailed = "URL param '%s' validation failed"
	ErrDevBuildRequest               = "Failed to build request"
	ErrDevCannotParseJSON            = "Cannot parse JSON data"
	ErrDevCannotMarshalJSON          = "Cannot marshal JSON data"
	ErrDevCannotParseDate            = "Cannot parse date value"
	ErrDevCreateHTTPRequest          = "Failed to create HTTP request"
	ErrDevSendHTTPRequest            = "Failed to send HTTP request"
	ErrDevDecodeResponse             = "Failed to decode %s response"
	ErrDevBackendRejectedRequest     = "Clinic backend rejected the request with status %d"
	ErrDevServerDeadlineExceeded     = "Server deadline exceeded"
	ErrDevMissingRequestID           = "Request ID not found in request context"
	ErrDevAuthTokenMissing           = "Bearer token missing from request"
	ErrDevAppointmentNotFound        = "Appointment not found in any partition"
	ErrDevUnknownPartition           = "Partition '%s' is not one of today, future, past"
	ErrDevRedisSetFailed             = "Failed to store value to Redis"
	ErrDevRedisGetFailed             = "Failed to get value with key '%s' from Redis"
	ErrDevRedisDeleteFailed          = "Failed to delete value from Redis"
)
