package logging

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the logging level
type LogLevel zapcore.Level

const (
	DEBUG LogLevel = LogLevel(zapcore.DebugLevel)
	INFO  LogLevel = LogLevel(zapcore.InfoLevel)
	WARN  LogLevel = LogLevel(zapcore.WarnLevel)
	ERROR LogLevel = LogLevel(zapcore.ErrorLevel)
	FATAL LogLevel = LogLevel(zapcore.FatalLevel)
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	loggerKey    contextKey = "logger"
)

// Init builds the production logger and installs it as the zap global,
// so packages logging through zap.S() pick it up.
func Init(serviceName string, level LogLevel) *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.Level(level))
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	logger = logger.With(zap.String("service", serviceName))
	zap.ReplaceGlobals(logger)
	return logger
}

// WithRequestID adds request_id to context, generating one if empty.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

func getRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey).(string); ok {
		return reqID
	}
	return "no-request-id"
}

// FromContext retrieves or creates a request-scoped sugared logger.
func FromContext(ctx context.Context) (*zap.SugaredLogger, context.Context) {
	if logger, ok := ctx.Value(loggerKey).(*zap.SugaredLogger); ok {
		return logger, ctx
	}

	logger := zap.S().With("request_id", getRequestID(ctx))
	ctx = context.WithValue(ctx, loggerKey, logger)
	return logger, ctx
}
