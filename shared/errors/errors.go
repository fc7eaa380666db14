package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFound is wrapped by every lookup that found nothing.
var NotFound = errors.New("not found")

// StatusCoder is implemented by errors that map to a specific HTTP status.
// Anything else is reported as an internal server error.
type StatusCoder interface {
	HTTPStatus() int
}

// ErrorWithStatusCode is a client-facing error with an explicit status.
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func (e *ErrorWithStatusCode) HTTPStatus() int {
	return e.StatusCode
}

// ValidationError names the first field of a creation form that broke a rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// MissingDataError is returned when a multipart body has no payload part.
type MissingDataError struct {
	Part string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("missing %q part", e.Part)
}

func (e *MissingDataError) HTTPStatus() int {
	return http.StatusBadRequest
}

// ParseError carries the failure to decode a request body or one of its parts.
type ParseError struct {
	Part string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q: %v", e.Part, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) HTTPStatus() int {
	var tooLarge *http.MaxBytesError
	if errors.As(e.Err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// UnknownMediaTypeError is returned when sniffing the upload matched no
// supported binary format.
type UnknownMediaTypeError struct {
	Detected string
}

func (e *UnknownMediaTypeError) Error() string {
	return fmt.Sprintf("unsupported media type %s", e.Detected)
}

func (e *UnknownMediaTypeError) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ThumbnailError is returned when the upload could not be decoded as an image.
type ThumbnailError struct {
	Err error
}

func (e *ThumbnailError) Error() string {
	return fmt.Sprintf("failed to create thumbnail: %v", e.Err)
}

func (e *ThumbnailError) Unwrap() error {
	return e.Err
}

func (e *ThumbnailError) HTTPStatus() int {
	return http.StatusUnprocessableEntity
}

// StoreError is a content store failure. It is never retried internally and
// its details are never shown to clients.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// Status resolves the HTTP status for any error.
func Status(err error) int {
	if errors.Is(err, NotFound) {
		return http.StatusNotFound
	}
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.HTTPStatus()
	}
	return http.StatusInternalServerError
}
