package utils

import (
	"context"

	"ehr-portal-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LogBusinessEvent records a completed domain action (patient created,
// appointment booked). Fields must carry ids only.
func LogBusinessEvent(logger *zap.Logger, event string, requestID string, fields ...zap.Field) {
	logger.Info("Business event occurred", eventFields(requestID, fields,
		zap.String(constvars.LoggingBusinessEventKey, event),
	)...)
}

func LogSecurityEvent(logger *zap.Logger, event string, requestID string, severity string, fields ...zap.Field) {
	logger.Warn("Security event detected", eventFields(requestID, fields,
		zap.String(constvars.LoggingSecurityEventKey, event),
		zap.String(constvars.LoggingSeverityKey, severity),
	)...)
}

func eventFields(requestID string, extra []zap.Field, head ...zap.Field) []zap.Field {
	fields := make([]zap.Field, 0, len(head)+len(extra)+1)
	fields = append(fields, zap.String(constvars.LoggingRequestIDKey, requestID))
	fields = append(fields, head...)
	return append(fields, extra...)
}

// GetRequestID returns "" outside a request.
func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
