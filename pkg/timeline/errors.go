package timeline

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ParseError.
type ErrorKind string

const (
	// KindNotFound means the marker assignment is absent from the document.
	KindNotFound ErrorKind = "not_found"
	// KindMalformed means the marker's block never closes.
	KindMalformed ErrorKind = "malformed"
)

var (
	ErrNotFound  = errors.New("timeline block not found")
	ErrMalformed = errors.New("timeline block malformed")

	// errMissingField is returned by DecodeEvent when a fragment has no date or definition.
	errMissingField = errors.New("missing required field")
)

// ParseError is returned by Parse and ExtractBlock when no block can be
// extracted. It matches ErrNotFound or ErrMalformed with errors.Is.
type ParseError struct {
	Kind   ErrorKind
	Marker string
	Offset int // byte offset of the opening brace, Malformed only
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s: no %q assignment in document", ErrNotFound, e.Marker)
	case KindMalformed:
		return fmt.Sprintf("%s: %q block opened at offset %d is never closed", ErrMalformed, e.Marker, e.Offset)
	default:
		return "timeline parse error"
	}
}

func (e *ParseError) Is(target error) bool {
	switch e.Kind {
	case KindNotFound:
		return target == ErrNotFound
	case KindMalformed:
		return target == ErrMalformed
	}
	return false
}
