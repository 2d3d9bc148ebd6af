// Package apierr defines the closed set of error kinds the remote coworking
// API is reduced to. Every error leaving the transport layer is one of these.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	// Transport covers network failures, auth rejections and any response
	// the client could not interpret.
	Transport Kind = iota
	NotFound
	Conflict
	Validation
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case Validation:
		return "validation"
	default:
		return "transport"
	}
}

type Error struct {
	Kind    Kind
	Status  int // HTTP status, 0 when the request never got a response
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// FromStatus maps an HTTP status code to an error of the matching kind.
// 401/403 are transport errors: the session is unusable, not the resource.
func FromStatus(status int, message string) *Error {
	var kind Kind

	switch status {
	case http.StatusNotFound:
		kind = NotFound
	case http.StatusConflict:
		kind = Conflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = Validation
	default:
		kind = Transport
	}

	return &Error{Kind: kind, Status: status, Message: message}
}

// KindOf reports the kind of err if it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}

func IsNotFound(err error) bool   { return isKind(err, NotFound) }
func IsConflict(err error) bool   { return isKind(err, Conflict) }
func IsValidation(err error) bool { return isKind(err, Validation) }
func IsTransport(err error) bool  { return isKind(err, Transport) }

func isKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
