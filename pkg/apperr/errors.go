package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	Internal Kind = iota
	BadRequest
	AuthRequired
	Forbidden
	NotFound
	Conflict
	SchemaValidation
	TooManyRequests
)

// InternalMessage is the only text a client ever sees for an Internal error.
const InternalMessage = "На сервере произошла ошибка"

var kindNames = map[Kind]string{
	Internal:         "internal",
	BadRequest:       "bad_request",
	AuthRequired:     "auth_required",
	Forbidden:        "forbidden",
	NotFound:         "not_found",
	Conflict:         "conflict",
	SchemaValidation: "schema_validation",
	TooManyRequests:  "too_many_requests",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k Kind) StatusCode() int {
	switch k {
	case BadRequest, SchemaValidation:
		return http.StatusBadRequest
	case AuthRequired:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case TooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error is an error tagged with its Kind. Message is shown to the client
// for every kind except Internal; Err is the cause and is only logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// From classifies any error. Errors that carry no *Error become Internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(Internal, InternalMessage, err)
}
