package net

import (
	"errors"
	"fmt"
	"io"
)

// Error classes. Every decode or encode failure wraps exactly one of these.
var (
	ErrIO        = errors.New("i/o failure")
	ErrMalformed = errors.New("malformed data")
	ErrEncoding  = errors.New("encoding constraint")
)

var (
	ErrStringTooLong = fmt.Errorf("%w: string longer than %d bytes", ErrEncoding, MaxStringLen)
	ErrInvalidText   = fmt.Errorf("%w: string is not valid UTF-8", ErrMalformed)
)

// Kind is the coarse class of a codec error.
type Kind int

const (
	KindUnknown Kind = iota
	KindIO
	KindMalformed
	KindEncoding
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindMalformed:
		return "malformed"
	case KindEncoding:
		return "encoding"
	default:
		return "unknown"
	}
}

// Classify reports which class err belongs to.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrMalformed):
		return KindMalformed
	case errors.Is(err, ErrEncoding):
		return KindEncoding
	case errors.Is(err, ErrIO), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return KindIO
	default:
		return KindUnknown
	}
}

// IOError marks err as a stream failure. The original error stays reachable
// through errors.Is, so callers can still test for io.EOF.
func IOError(err error) error {
	if err == nil || errors.Is(err, ErrIO) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrIO, err)
}

// Malformed builds an ErrMalformed error with a formatted reason.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
