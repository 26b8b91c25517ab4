package llm

import (
	"context"
	"errors"
	"fmt"
)

// Kind tags why a gateway call failed.
type Kind string

const (
	KindNoCredential Kind = "no_credential"
	KindAuth         Kind = "auth"
	KindRateLimit    Kind = "rate_limit"
	KindUpstream     Kind = "upstream"
	KindTransport    Kind = "transport"
	KindTimeout      Kind = "timeout"
	KindCanceled     Kind = "canceled"
	KindEmptyReply   Kind = "empty_reply"
	KindUnknown      Kind = "unknown"
)

// Error is the failure half of a gateway result.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError wraps err with a kind, using err's message as detail.
func NewError(kind Kind, err error) *Error {
	e := &Error{Kind: kind, Err: err}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

// Errorf builds an Error without an underlying cause.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of err. Nil yields "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// ContextKind maps context cancellation to a kind; ok is false for other errors.
func ContextKind(err error) (Kind, bool) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout, true
	case errors.Is(err, context.Canceled):
		return KindCanceled, true
	}
	return "", false
}

// StatusKind maps an upstream HTTP status code to a kind.
func StatusKind(code int) Kind {
	switch {
	case code == 401 || code == 403:
		return KindAuth
	case code == 429:
		return KindRateLimit
	case code >= 400:
		return KindUpstream
	}
	return KindTransport
}
