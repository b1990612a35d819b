package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingIsClientRequestID  = "is_client_request_id"
	LoggingResponseKey        = "response"
	LoggingErrorTypeKey       = "error_type"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingVendorUrlKey       = "vendor_url"
	LoggingVendorStatusKey    = "vendor_status"
	LoggingResourceTypeKey    = "resource_type"
	LoggingResourceIDKey      = "resource_id"
	LoggingPatientIDKey       = "patient_id"
	LoggingPractitionerIDKey  = "practitioner_id"
	LoggingAppointmentIDKey   = "appointment_id"
	LoggingUserIDKey          = "user_id"
	LoggingSessionIDKey       = "session_id"
	LoggingEntryCountKey      = "entry_count"
	LoggingAuditEventKey      = "audit_event"
	LoggingCacheKey           = "cache_key"
	LoggingVendorFailureKey   = "vendor_failure"
	LoggingClinicalRecordKind = "clinical_record_kind"
	LoggingBusinessEventKey   = "business_event"
	LoggingSecurityEventKey   = "security_event"
	LoggingSeverityKey        = "severity"
)
