// Package logging provides the exporter's logger: a small interface so the
// pipeline packages stay independent of the logging library.
package logging

// Logger defines the logging methods used across the exporter.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	// WithField returns a logger that appends key=value to every line.
	WithField(key string, value interface{}) Logger
}
