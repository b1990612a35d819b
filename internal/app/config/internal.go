package config

import (
	"errors"
	"strings"
)

type InternalConfig struct {
	App     App        `mapstructure:"app"`
	Vendor  AppVendor  `mapstructure:"vendor"`
	Session AppSession `mapstructure:"session"`
	Audit   AppAudit   `mapstructure:"audit"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	// RequestTimeoutInSeconds of 0 means requests carry no deadline
	RequestTimeoutInSeconds int `mapstructure:"request_timeout_in_seconds"`
	// CorsAllowedOrigins is a comma separated list
	CorsAllowedOrigins string `mapstructure:"cors_allowed_origins"`
}

// AppVendor locates the vendor FHIR API. APIKey and AccessToken are the
// process-wide defaults used when the caller has no credential cookies.
type AppVendor struct {
	BaseUrl                string `mapstructure:"base_url"`
	UrlPrefix              string `mapstructure:"url_prefix"`
	FhirPath               string `mapstructure:"fhir_path"`
	APIKey                 string `mapstructure:"api_key"`
	AccessToken            string `mapstructure:"access_token"`
	DefaultLocationID      string `mapstructure:"default_location_id"`
	DefaultLocationDisplay string `mapstructure:"default_location_display"`
	HTTPTimeoutInSeconds   int    `mapstructure:"http_timeout_in_seconds"`
}

type AppSession struct {
	Secret            string `mapstructure:"secret"`
	CookieName        string `mapstructure:"cookie_name"`
	MaxAgeInHours     int    `mapstructure:"max_age_in_hours"`
	AdminEmail        string `mapstructure:"admin_email"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
}

type AppAudit struct {
	Queue string `mapstructure:"queue"`
}

// Validate rejects configurations the service must not start with.
func (c *InternalConfig) Validate() error {
	if strings.TrimSpace(c.Session.Secret) == "" {
		return errors.New("SESSION_SECRET must be set")
	}
	return nil
}

func (c *InternalConfig) IsProduction() bool {
	return c.App.Env == "production"
}
