// Package tderr implements the error taxonomy of the TDLib client.
package tderr

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Error kinds. Every error returned by the client can be classified with KindOf.
var (
	// ErrIO is a transport failure.
	ErrIO = errors.New("i/o error")
	// ErrJSON is a JSON (de)serialization failure.
	ErrJSON = errors.New("json error")
	// ErrTDLib is an error reported by TDLib, see Error.
	ErrTDLib = errors.New("tdlib error")
	// ErrInternal is an internal invariant violation.
	ErrInternal = errors.New("internal error")
	// ErrBadRequest is a request that can't be sent.
	ErrBadRequest = errors.New("bad request")
)

// Channel failures, both are internal errors.
var (
	ErrTimeout = &markedError{err: errors.New("channel send timeout"), kind: ErrInternal}
	ErrClosed  = &markedError{err: errors.New("channel closed"), kind: ErrInternal}
)

type markedError struct {
	err  error
	kind error
}

func (m *markedError) Error() string {
	return m.err.Error()
}

func (m *markedError) Unwrap() []error {
	return []error{m.err, m.kind}
}

// Mark attaches kind to err, keeping err as the cause. Returns nil if err is nil.
func Mark(err, kind error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, kind) {
		return err
	}
	return &markedError{err: err, kind: kind}
}

// KindOf returns the kind sentinel of err, or nil if err is not classified.
func KindOf(err error) error {
	// Error is checked first, TDLib errors with code 400 also match ErrBadRequest.
	if _, ok := As(err); ok {
		return ErrTDLib
	}
	for _, kind := range []error{ErrIO, ErrJSON, ErrInternal, ErrBadRequest} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Error represents an error object sent by TDLib.
type Error struct {
	Code     int    // 400
	Message  string // PHONE_CODE_INVALID
	Type     string // PHONE_CODE_INVALID
	Argument int    // 30 for FLOOD_WAIT_30
}

var (
	typeRe  = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
	retryRe = regexp.MustCompile(`retry after (\d+)`)
)

// New creates a new Error from code and message, parsing type and argument.
func New(code int, msg string) *Error {
	e := &Error{Code: code, Message: msg}
	e.parse()
	return e
}

func (e *Error) parse() {
	if m := retryRe.FindStringSubmatch(e.Message); m != nil {
		e.Type = "FLOOD_WAIT"
		e.Argument, _ = strconv.Atoi(m[1])
		return
	}
	if !typeRe.MatchString(e.Message) {
		return
	}
	e.Type = e.Message
	if idx := strings.LastIndexByte(e.Message, '_'); idx > 0 {
		if arg, err := strconv.Atoi(e.Message[idx+1:]); err == nil {
			e.Type = e.Message[:idx]
			e.Argument = arg
		}
	}
}

// Error implements error.
func (e *Error) Error() string {
	if e.Type != "" && e.Type != e.Message {
		return fmt.Sprintf("tdlib error %d: %s (%s)", e.Code, e.Message, e.Type)
	}
	return fmt.Sprintf("tdlib error %d: %s", e.Code, e.Message)
}

// Is reports whether target is a kind that e belongs to.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTDLib:
		return true
	case ErrBadRequest:
		return e.Code == 400
	}
	if t, ok := target.(*Error); ok {
		return t.Code == e.Code && t.Message == e.Message
	}
	return false
}

// IsType reports whether e has given type.
func (e *Error) IsType(t string) bool {
	return e.Type == t
}

// IsCode reports whether e has given code.
func (e *Error) IsCode(code int) bool {
	return e.Code == code
}

// IsOneOf reports whether e has one of given types.
func (e *Error) IsOneOf(types ...string) bool {
	for _, t := range types {
		if e.IsType(t) {
			return true
		}
	}
	return false
}

// As extracts *Error from err.
func As(err error) (rpcErr *Error, ok bool) {
	return rpcErr, errors.As(err, &rpcErr)
}

// Is reports whether err is a TDLib error with one of given types.
func Is(err error, types ...string) bool {
	if rpcErr, ok := As(err); ok {
		return rpcErr.IsOneOf(types...)
	}
	return false
}

// IsCode reports whether err is a TDLib error with one of given codes.
func IsCode(err error, codes ...int) bool {
	rpcErr, ok := As(err)
	if !ok {
		return false
	}
	for _, code := range codes {
		if rpcErr.IsCode(code) {
			return true
		}
	}
	return false
}

// FloodWait returns the number of seconds TDLib asked to wait before retrying.
func FloodWait(err error) (int, bool) {
	if rpcErr, ok := As(err); ok && rpcErr.IsType("FLOOD_WAIT") {
		return rpcErr.Argument, true
	}
	return 0, false
}
