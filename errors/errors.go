package errors

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

const (
	separator      = ", "
	metadataPrefix = "metadata={"
	metadataSuffix = "}"
	causePrefix    = "cause="
)

// Kind classifies a failure so callers can branch on the category of error
// without matching message strings.
type Kind int

const (
	// KindUnknown is the zero Kind, used for errors produced outside this package.
	KindUnknown Kind = iota
	// KindKey marks invalid, unparsable or failed-validation key material.
	KindKey
	// KindFormat marks input that cannot be tokenized into the expected fields.
	KindFormat
	// KindDecode marks a Base64 or Hex decoding failure.
	KindDecode
	// KindCrypto marks a failed cipher operation: bad padding, corrupt
	// ciphertext, or ciphertext that does not correspond to the key.
	KindCrypto
	// KindCompression marks a compression stream initialization or processing failure.
	KindCompression
	// KindArgument marks an invalid argument such as a bad key length or an
	// empty required field.
	KindArgument
)

// String returns the kind's stable name.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindFormat:
		return "format"
	case KindDecode:
		return "decode"
	case KindCrypto:
		return "crypto"
	case KindCompression:
		return "compression"
	case KindArgument:
		return "argument"
	default:
		return "unknown"
	}
}

// Error is a structured error carrying a Kind, a message, optional metadata
// and an optional cause chain.
type Error struct {
	Kind     Kind              `json:"kind"`
	Message  string            `json:"message,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
	cause    error
}

// Error returns a human-readable message including the kind and, when
// present, the metadata and cause.
func (e *Error) Error() string {
	var msg strings.Builder

	msg.WriteString("kind=")
	msg.WriteString(e.Kind.String())
	msg.WriteString(separator)
	msg.WriteString("message=")
	msg.WriteString(e.Message)

	if len(e.Metadata) > 0 {
		msg.WriteString(separator)
		msg.WriteString(metadataPrefix)
		first := true
		for k, v := range e.Metadata {
			if !first {
				msg.WriteString(", ")
			}
			msg.WriteString(k)
			msg.WriteByte('=')
			msg.WriteString(v)
			first = false
		}
		msg.WriteString(metadataSuffix)
	}

	if e.cause != nil {
		msg.WriteString(separator)
		msg.WriteString(causePrefix)
		msg.WriteString(e.cause.Error())
	}

	return msg.String()
}

// Unwrap returns the cause of the error.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithMetadata adds metadata to the error. Returns a new error instance to
// maintain immutability.
func (e *Error) WithMetadata(m map[string]string) *Error {
	if len(m) == 0 {
		return e
	}

	err := e.clone()
	if err.Metadata == nil {
		err.Metadata = make(map[string]string, len(m))
	}

	maps.Copy(err.Metadata, m)
	return err
}

// WithCause adds a cause to the error. Returns a new error instance to
// maintain immutability.
func (e *Error) WithCause(cause error) *Error {
	if cause == nil {
		return e
	}

	err := e.clone()
	err.cause = cause
	return err
}

func (e *Error) clone() *Error {
	var metadata map[string]string
	if len(e.Metadata) > 0 {
		metadata = make(map[string]string, len(e.Metadata))
		maps.Copy(metadata, e.Metadata)
	}

	return &Error{
		Kind:     e.Kind,
		Message:  e.Message,
		Metadata: metadata,
		cause:    e.cause,
	}
}

// Is reports whether err is an *Error of the same kind. Two errors of the
// same kind compare equal regardless of message, so callers can test against
// a bare sentinel like errors.Is(err, ripeerrors.Crypto("")).
func (e *Error) Is(err error) bool {
	var re *Error
	if errors.As(err, &re) {
		return e.Kind == re.Kind
	}
	return false
}

// GetCause returns the underlying cause of the error.
func (e *Error) GetCause() error {
	return e.cause
}

// New creates a new error with the given kind and formatted message.
func New(kind Kind, format string, args ...any) *Error {
	var message string
	if len(args) == 0 {
		message = format
	} else {
		message = fmt.Sprintf(format, args...)
	}

	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// FromError converts a generic error to *Error. Errors that did not originate
// in this package come back with KindUnknown.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	if re, ok := err.(*Error); ok {
		return re
	}

	return New(KindUnknown, "%v", err)
}

// Wrap wraps an error under the given kind while preserving the original
// error chain. Returns nil if the input error is nil.
func Wrap(err error, kind Kind, format string, args ...any) *Error {
	if err == nil {
		return nil
	}

	newErr := New(kind, format, args...)
	return newErr.WithCause(err)
}

// KindOf extracts the Kind from an error chain. It returns KindUnknown for
// nil errors and for errors produced outside this package.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}
