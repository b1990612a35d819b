package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

var internalDefaults = map[string]any{
	"app.env":                            "development",
	"app.port":                           ":8080",
	"app.version":                        "v1.0",
	"app.endpoint_prefix":                "api",
	"app.max_requests":                   100,
	"app.shutdown_timeout_in_seconds":    10,
	"app.request_body_limit_in_megabyte": 6,
	"app.request_timeout_in_seconds":     0,
	"app.cors_allowed_origins":           "http://localhost:3000",

	"vendor.base_url":                 "",
	"vendor.url_prefix":               "",
	"vendor.fhir_path":                "ema/fhir/v2",
	"vendor.api_key":                  "",
	"vendor.access_token":             "",
	"vendor.default_location_id":      "604",
	"vendor.default_location_display": "Wall Street",
	"vendor.http_timeout_in_seconds":  0,

	"session.secret":              "",
	"session.cookie_name":         "ehr.session-token",
	"session.max_age_in_hours":    720,
	"session.admin_email":         "",
	"session.admin_password_hash": "",

	"audit.queue": "ehr.audit",
}

var driverDefaults = map[string]any{
	"redis.host":     "",
	"redis.port":     "6379",
	"redis.password": "",

	"logger.level":                 "info",
	"logger.output_filename":       "logger.log",
	"logger.output_error_filename": "logger_error.log",

	"rabbitmq.host":     "",
	"rabbitmq.port":     "5672",
	"rabbitmq.username": "guest",
	"rabbitmq.password": "guest",
}

// newViper maps nested keys onto environment variables, so app.port is
// read from APP_PORT. Every key needs a default to be seen by Unmarshal.
func newViper(defaults map[string]any) *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

func NewInternalConfig() (*InternalConfig, error) {
	cfg := &InternalConfig{}
	if err := newViper(internalDefaults).Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal internal config: %w", err)
	}
	return cfg, nil
}

func NewDriverConfig() (*DriverConfig, error) {
	cfg := &DriverConfig{}
	if err := newViper(driverDefaults).Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal driver config: %w", err)
	}
	return cfg, nil
}
