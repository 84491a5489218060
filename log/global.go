package log

import (
	"sync"

	"github.com/rs/zerolog"
)

var (
	// G is the global logger instance. It is created lazily on first use so
	// importing this package has no side effect.
	G *Logger

	globalOnce sync.Once
)

func global() *Logger {
	globalOnce.Do(func() {
		if G == nil {
			G = New()
		}
	})
	return G
}

// SetGlobalLogger replaces the global logger instance.
func SetGlobalLogger(logger *Logger) {
	globalOnce.Do(func() {})
	G = logger
}

// SetGlobalLevel sets the level of the global logger.
func SetGlobalLevel(level zerolog.Level) {
	l := global()
	l.Logger = l.Logger.Level(level)
}

// Debug returns a debug-level log event.
func Debug() *zerolog.Event {
	return global().Debug()
}

// Info returns an info-level log event.
func Info() *zerolog.Event {
	return global().Info()
}

// Warn returns a warn-level log event.
func Warn() *zerolog.Event {
	return global().Warn()
}

// Error returns an error-level log event with stack.
func Error() *zerolog.Event {
	return global().Error().Stack()
}

// Fatal returns a fatal-level log event with stack.
func Fatal() *zerolog.Event {
	return global().Fatal().Stack()
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...any) {
	global().Debug().Msgf(format, args...)
}

// Infof logs a formatted info message.
func Infof(format string, args ...any) {
	global().Info().Msgf(format, args...)
}

// Warnf logs a formatted warn message.
func Warnf(format string, args ...any) {
	global().Warn().Msgf(format, args...)
}

// Errorf logs a formatted error message with stack.
func Errorf(format string, args ...any) {
	global().Error().Stack().Msgf(format, args...)
}

// Fatalf logs a formatted fatal message with stack.
func Fatalf(format string, args ...any) {
	global().Fatal().Stack().Msgf(format, args...)
}
