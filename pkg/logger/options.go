package logger

import (
	"io"
	"log/slog"
)

// Option adjusts a Config before the logger is built.
type Option func(*Config)

// WithLevel sets the minimum level written.
func WithLevel(level slog.Level) Option {
	return func(c *Config) { c.Level = level }
}

// WithLevelName is WithLevel for a configuration value such as "debug".
func WithLevelName(name string) Option {
	return WithLevel(ParseLevel(name))
}

// WithOutput redirects the records to output.
func WithOutput(output io.Writer) Option {
	return func(c *Config) { c.Output = output }
}

// WithFormat selects "json" or "text". Anything else is treated as json.
func WithFormat(format string) Option {
	return func(c *Config) { c.Format = format }
}

// WithRequestID toggles the request_id attribute.
func WithRequestID(enabled bool) Option {
	return func(c *Config) { c.RequestID = enabled }
}
