package utils

import (
	"os"
)

// GetEnvString reads a raw environment variable. Structured settings go
// through the config package; this is for the few process-wide switches
// read outside of it.
func GetEnvString(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}
