package log

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/kochabx/ripe/log/writer"
)

// Logger wraps a zerolog.Logger together with its output writer.
type Logger struct {
	zerolog.Logger
	writer io.Writer
	closer io.Closer
}

// Close releases the logger's file resources, if any.
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

var initOnce sync.Once

// Init configures the process-wide zerolog settings (timestamp format and
// stack marshaling). It is safe to call from multiple goroutines and has an
// effect only on the first call. Library consumers that never call Init get
// the same defaults lazily on first logger construction; nothing happens at
// package load time.
func Init() {
	initOnce.Do(func() {
		zerolog.TimeFieldFormat = time.DateTime
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	})
}

// SetZerologGlobalLevel sets the global zerolog level.
func SetZerologGlobalLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

func newLogger(w io.Writer, opts ...Option) *Logger {
	Init()

	logger := &Logger{
		writer: w,
		Logger: zerolog.New(w).With().Timestamp().Logger(),
	}

	for _, opt := range opts {
		opt(logger)
	}

	return logger
}

// New creates a Logger writing to the console.
func New(opts ...Option) *Logger {
	return newLogger(writer.Console(), opts...)
}

// NewWriter creates a Logger writing to an arbitrary io.Writer. Mainly useful
// for tests.
func NewWriter(w io.Writer, opts ...Option) *Logger {
	return newLogger(w, opts...)
}

// NewFile creates a Logger writing to a rotating file.
func NewFile(c FileConfig, opts ...Option) (*Logger, error) {
	c.applyDefaults()

	w, err := writer.File(c.toWriterConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create file writer: %w", err)
	}

	logger := newLogger(w, opts...)

	if closer, ok := w.(io.Closer); ok {
		logger.closer = closer
	}

	return logger, nil
}

// NewMulti creates a Logger writing to both a rotating file and the console.
func NewMulti(c FileConfig, opts ...Option) (*Logger, error) {
	c.applyDefaults()

	fw, err := writer.File(c.toWriterConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create file writer: %w", err)
	}

	multi := zerolog.MultiLevelWriter(fw, writer.Console())
	logger := newLogger(multi, opts...)

	if closer, ok := fw.(io.Closer); ok {
		logger.closer = closer
	}

	return logger, nil
}
