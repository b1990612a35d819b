package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_CREDENTIALS_KEY          ContextKey = "vendor_credentials"
)

const (
	REQUEST_ID_PREFIX = "EHR_BFF_"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

// Cookie names read from and written to the browser.
const (
	CookieVendorAPIKey      = "api_key"
	CookieVendorAccessToken = "access_token"
	CookieSessionToken      = "ehr.session-token"
)

const (
	VendorCookieMaxAgeInSeconds = 30 * 24 * 60 * 60
)

const (
	DefaultPageSize = 10
	DefaultPage     = 1
	MaxPageSize     = 100
)

const (
	DefaultAppointmentDurationInMinutes = 30
)

const (
	AdminUserID   = "1"
	AdminUserName = "Admin User"
)

const (
	RedisRevokedSessionKeyPrefix = "session:revoked:"
)
