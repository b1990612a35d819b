package constvars

// Validation messages, keyed by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"email":           "must be a valid email",
	"min":             "must be at least %s characters long",
	"max":             "maximum at %s characters long",
	"oneof":           "must be one of [%s]",
	"gt":              "must be greater than %s",
	"gte":             "must be greater than or equal to %s",
	"lte":             "must be less than or equal to %s",
	"datetime":        "must be a valid date",
	"notblank":        "must not be blank",
	"clearable_email": "must be a valid email",
	"date_only":       "must be a date in YYYY-MM-DD format",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientAPIConfigurationMissing       = "API configuration missing"
	ErrClientUnauthorizedNoSession         = "Unauthorized - No valid session"
	ErrClientUnauthorizedInvalidSession    = "Unauthorized - Invalid session"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientPractitionerNotFound          = "Practitioner not found"
	ErrClientResourceNotFound              = "%s not found"
	ErrClientPatientIDRequired             = "Patient ID is required"
	ErrClientFailedToValidateParticipants  = "Failed to validate patient or practitioner"
	ErrClientFailedToFetch                 = "Failed to fetch %s"
	ErrClientFailedToCreate                = "Failed to create %s"
	ErrClientFailedToUpdate                = "Failed to update %s"
	ErrClientFailedToDelete                = "Failed to delete %s"
	ErrClientInvalidJSONBody               = "Invalid JSON body"
	ErrClientInconsistentAppointmentTimes  = "End time must equal start time plus duration"
	ErrClientInvalidDateTime               = "%s must be a valid date-time"
	ErrClientFieldCannotBeCleared          = "%s cannot be empty"
	ErrClientTooManyRequests               = "Too many requests"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevVendorConfigurationMissing = "vendor base URL, prefix, API key or access token is not configured"
	ErrDevVendorNotFound             = "vendor returned 404 for %s"
	ErrDevVendorConflict             = "vendor rejected %s with a booking conflict"
	ErrDevVendorRejected             = "vendor returned status %d for %s"
	ErrDevVendorUnreachable          = "vendor request for %s failed"
	ErrDevParticipantLookupFailed    = "patient or practitioner lookup failed"
	ErrDevDecodeVendorResponse       = "failed to decode vendor %s response"
	ErrDevInconsistentAppointment    = "start, end and minutesDuration disagree"
	ErrDevInvalidDateTime            = "cannot parse %s as a date-time"
	ErrDevRequiredFieldCleared       = "%s was set to an empty string"
	ErrDevSessionMissing             = "session token missing from cookie and Authorization header"
	ErrDevSessionInvalid             = "session token verification failed"
	ErrDevSessionRevoked             = "session token was revoked"
	ErrDevSessionSigning             = "failed to sign session token"
	ErrDevInvalidCredentials         = "email or password does not match"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevRedisSet                   = "failed to set value in Redis"
	ErrDevRedisGet                   = "failed to get value from Redis"
	ErrDevAuditPublish               = "failed to publish audit event"
	ErrDevURLParamIDValidationFailed = "URL param %s validation failed"
	ErrDevQueryParamValidationFailed = "query param %s validation failed"
	ErrDevPanicRecovered             = "panic recovered while serving request"
	ErrDevRateLimited                = "request rate limit exceeded for client IP"
)
