package rag

import "fmt"

type ErrorCode string

const (
	// ErrorInvalidInput marks caller mistakes: empty conversation, blank
	// message. The HTTP layer maps it to a client error.
	ErrorInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrorUpstream marks embedding, search or completion failures. The
	// distinction between them stays in logs; the caller sees one generic
	// server error.
	ErrorUpstream ErrorCode = "UPSTREAM_ERROR"
)

type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("rag: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("rag: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}
