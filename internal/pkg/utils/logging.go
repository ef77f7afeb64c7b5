package utils

import (
	"context"
	"time"

	"cfs-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LogOperation runs fn and records its outcome and duration against the
// request id carried by ctx.
func LogOperation(ctx context.Context, logger *zap.Logger, operation string, fn func() error) error {
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, GetRequestID(ctx)),
		zap.String(constvars.LoggingOperationKey, operation),
	}
	logger.Debug("Operation started", fields...)

	start := time.Now()
	err := fn()
	fields = append(fields,
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		zap.Bool(constvars.LoggingSuccessKey, err == nil),
	)

	if err != nil {
		logger.Error("Operation failed", append(fields, zap.Error(err))...)
		return err
	}
	logger.Info("Operation completed", fields...)
	return nil
}

func LogBusinessEvent(ctx context.Context, logger *zap.Logger, event string, fields ...zap.Field) {
	logger.Info("Business event occurred", append([]zap.Field{
		zap.String(constvars.LoggingRequestIDKey, GetRequestID(ctx)),
		zap.String("business_event", event),
	}, fields...)...)
}

func LogSecurityEvent(ctx context.Context, logger *zap.Logger, event, severity string, fields ...zap.Field) {
	logger.Warn("Security event detected", append([]zap.Field{
		zap.String(constvars.LoggingRequestIDKey, GetRequestID(ctx)),
		zap.String("security_event", event),
		zap.String("severity", severity),
	}, fields...)...)
}

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func GetSessionID(ctx context.Context) string {
	sessionID, _ := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	return sessionID
}
