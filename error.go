package models

import (
	"fmt"
	"net/http"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrNotFound Err = iota
	ErrBadParameter
	ErrUnexpectedResponse
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

// ResponseError is returned when the API answers with any status other
// than 200. Body holds the response body exactly as received.
type ResponseError struct {
	StatusCode int
	Body       []byte
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrNotFound:
		return "not found"
	case ErrBadParameter:
		return "bad parameter"
	case ErrUnexpectedResponse:
		return "unexpected response"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

func (e *ResponseError) Error() string {
	if text := http.StatusText(e.StatusCode); text != "" {
		return fmt.Sprintf("%v: %d %s", ErrUnexpectedResponse, e.StatusCode, text)
	}
	return fmt.Sprintf("%v: %d", ErrUnexpectedResponse, e.StatusCode)
}

// Is reports whether the target is ErrUnexpectedResponse
func (e *ResponseError) Is(target error) bool {
	return target == ErrUnexpectedResponse
}
