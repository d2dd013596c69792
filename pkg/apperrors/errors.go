package apperrors

import (
	"errors"
	"net/http"
)

// AppError is the closed error taxonomy every handler maps from.
// Exactly one of these five kinds reaches the response layer; anything
// that is not an AppError is treated as internal.
type AppError interface {
	error
	HTTPStatus() int
	Unwrap() error
}

// ValidationError covers bad input shapes and values (400), including
// business-level rejections like a duplicate email or an unknown category.
type ValidationError struct {
	Msg     string
	Details map[string]string // field -> issue, optional
}

func (e *ValidationError) Error() string   { return e.Msg }
func (e *ValidationError) HTTPStatus() int { return http.StatusBadRequest }
func (e *ValidationError) Unwrap() error   { return nil }

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

func NewValidationDetails(msg string, details map[string]string) *ValidationError {
	return &ValidationError{Msg: msg, Details: details}
}

// UnauthorizedError covers missing, malformed, invalid or expired credentials (401).
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string   { return e.Msg }
func (e *UnauthorizedError) HTTPStatus() int { return http.StatusUnauthorized }
func (e *UnauthorizedError) Unwrap() error   { return nil }

func NewUnauthorized(msg string) *UnauthorizedError {
	return &UnauthorizedError{Msg: msg}
}

// ForbiddenError covers authenticated-but-not-permitted (403).
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string   { return e.Msg }
func (e *ForbiddenError) HTTPStatus() int { return http.StatusForbidden }
func (e *ForbiddenError) Unwrap() error   { return nil }

func NewForbidden(msg string) *ForbiddenError {
	return &ForbiddenError{Msg: msg}
}

// NotFoundError covers absent referenced entities (404).
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string   { return e.Msg }
func (e *NotFoundError) HTTPStatus() int { return http.StatusNotFound }
func (e *NotFoundError) Unwrap() error   { return nil }

func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{Msg: msg}
}

// InternalError covers storage, hashing and signing infrastructure
// failures (500). The underlying error is kept for logs, never for clients.
type InternalError struct {
	Msg string
	Err error
}

func (e *InternalError) Error() string   { return e.Msg }
func (e *InternalError) HTTPStatus() int { return http.StatusInternalServerError }
func (e *InternalError) Unwrap() error   { return e.Err }

func NewInternal(msg string, err error) *InternalError {
	return &InternalError{Msg: msg, Err: err}
}

// Status resolves any error to an HTTP status. Untyped errors are internal.
func Status(err error) int {
	var app AppError
	if errors.As(err, &app) {
		return app.HTTPStatus()
	}
	return http.StatusInternalServerError
}
