package utils

import (
	"context"
	"ehr-portal-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogBusinessEvent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	LogBusinessEvent(zap.New(core), "patient_created", "req-1", zap.String(constvars.LoggingPatientIDKey, "12"))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-1", fields[constvars.LoggingRequestIDKey])
	assert.Equal(t, "patient_created", fields[constvars.LoggingBusinessEventKey])
	assert.Equal(t, "12", fields[constvars.LoggingPatientIDKey])
}

func TestLogSecurityEvent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	LogSecurityEvent(zap.New(core), "login_failed", "req-2", "medium")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "medium", entry.ContextMap()[constvars.LoggingSeverityKey])
}

func TestGetRequestID(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-3")
	assert.Equal(t, "req-3", GetRequestID(ctx))
}
