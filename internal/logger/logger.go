package logger

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with application-specific methods
type Logger struct {
	zerolog.Logger
}

// New creates a new Logger instance writing to stdout
func New(level string, format string) *Logger {
	return NewWithWriter(os.Stdout, level, format)
}

// NewWithWriter creates a Logger writing to out
func NewWithWriter(out io.Writer, level string, format string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	if format == "text" || format == "console" {
		// Human-readable output for development
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(out).Level(lvl).With().Timestamp().Caller().Logger()
	return &Logger{Logger: logger}
}

// Nop returns a Logger that discards everything
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// WithRequestID returns a new logger with the request ID attached
func (l *Logger) WithRequestID(requestID string) *Logger {
	if requestID == "" {
		return l
	}
	return &Logger{
		Logger: l.With().Str("request_id", requestID).Logger(),
	}
}

// WithComponent returns a new logger with the component name attached
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.With().Str("component", component).Logger(),
	}
}

// RequestLog is one access log entry.
type RequestLog struct {
	Method       string
	Path         string
	Status       int
	Bytes        int
	RemoteStatus int // zero when the remote API was not reached
	Duration     time.Duration
	ClientIP     string
}

// HTTPRequest logs an HTTP request. 5xx responses are logged at warn level.
func (l *Logger) HTTPRequest(req RequestLog) {
	event := l.Info()
	if req.Status >= http.StatusInternalServerError {
		event = l.Warn()
	}

	event.
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", req.Status).
		Int("bytes", req.Bytes).
		Dur("duration", req.Duration).
		Str("client_ip", req.ClientIP)

	if req.RemoteStatus != 0 {
		event.Int("remote_status", req.RemoteStatus)
	}

	event.Msg("HTTP request")
}

// RequestFailed logs a facade request that ended in an error
func (l *Logger) RequestFailed(operation string, statusCode int, err error) {
	event := l.Error().
		Err(err).
		Str("operation", operation)

	if statusCode != 0 {
		event.Int("remote_status", statusCode)
	}

	event.Msg("email request failed")
}
