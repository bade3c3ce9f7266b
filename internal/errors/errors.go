// Package errors provides the structured error type shared by the TinyPal
// transport and its collaborators. An error carries the operation that failed,
// a coarse kind used for classification, and the HTTP status when one exists.
package errors

import (
	"errors"
	"fmt"
)

// Op names an operation, usually "package.Function".
type Op string

// Kind categorizes an error for user-facing classification.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalid
	KindNetwork
	KindTimeout
	KindServer
	KindDecode
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNetwork:
		return "network error"
	case KindTimeout:
		return "timeout"
	case KindServer:
		return "server error"
	case KindDecode:
		return "decode error"
	case KindConfig:
		return "configuration error"
	default:
		return "unknown error"
	}
}

// Status is an HTTP status code attached to server errors.
type Status int

// Error is the structured error type.
type Error struct {
	Op      Op
	Kind    Kind
	Status  int
	Err     error
	Context string
}

func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Context != "" {
		msg = e.Context + ": " + msg
	}
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an *Error from any mix of Op, Kind, Status, string context and an
// underlying error. When no error is supplied the context becomes the message.
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case Status:
			e.Status = int(a)
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether any *Error in err's chain has the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}

// GetKind returns the kind of the outermost *Error in err's chain.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusOf returns the HTTP status recorded on err, or 0.
func StatusOf(err error) int {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return 0
		}
		if e.Status != 0 {
			return e.Status
		}
		err = e.Err
	}
	return 0
}

// New and As mirror the standard library so callers need a single import.
func New(text string) error { return errors.New(text) }

func As(err error, target any) bool { return errors.As(err, target) }
