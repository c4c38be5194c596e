package client

import (
	"errors"
	"fmt"
)

// Kind classifies engine failures.
type Kind int

const (
	// KindTransport covers connect, TLS, send and receive failures.
	KindTransport Kind = iota + 1

	// KindFraming covers malformed status lines and missing header/body
	// boundaries.
	KindFraming

	// KindDecode covers charset and decompression failures. Decoding always
	// recovers with a best-effort fallback, so this kind only appears in logs.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindFraming:
		return "framing"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the engine's error type. Callers distinguish failure classes
// structurally instead of inspecting body text.
type Error struct {
	Kind Kind
	Op   string
	URL  string
	Err  error
}

func (e *Error) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("%s error: %s %s: %v", e.Kind, e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newTransportError(op, url string, err error) *Error {
	return &Error{Kind: KindTransport, Op: op, URL: url, Err: err}
}

func newFramingError(op, url string, err error) *Error {
	return &Error{Kind: KindFraming, Op: op, URL: url, Err: err}
}

// IsKind reports whether err is an engine Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
