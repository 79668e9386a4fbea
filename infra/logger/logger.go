// Package logger provides component-scoped structured logging for the
// service. The output format follows the APP_ENV environment variable:
// "dev" selects a console writer, anything else emits JSON.
package logger

// Logger is the logging interface used across the repository.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// New returns a Logger for the given component.
func New(component string) Logger {
	return NewZerologLogger(component)
}
