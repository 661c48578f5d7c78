package observability

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zatekoja/physiodesk/backend/pkg/config"
	"go.opentelemetry.io/otel/trace"
)

// NewLogger builds the service logger for app. Development gets a human readable console
// writer; every other environment writes JSON lines with timestamp and caller.
func NewLogger(app config.AppConfig, out io.Writer) zerolog.Logger {
	var ctx zerolog.Context
	if app.IsDevelopment() {
		ctx = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}).With().Timestamp()
	} else {
		ctx = zerolog.New(out).With().Timestamp().Caller()
	}

	return ctx.
		Str("service", app.Name).
		Str("env", app.Env).
		Logger().
		Level(parseLevel(app.LogLevel))
}

// InitLogger installs the service logger for app as the global zerolog logger
func InitLogger(app config.AppConfig) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = NewLogger(app, os.Stdout)
}

func parseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

// LoggerFromContext returns a logger with trace context
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	logger := log.With().Logger()

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		logger = logger.With().
			Str("trace_id", span.SpanContext().TraceID().String()).
			Str("span_id", span.SpanContext().SpanID().String()).
			Logger()
	}

	return &logger
}
