// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the error type that crosses the HTTP boundary.

Every failure a client can observe is an [AppError]: a stable code, a safe
message and the HTTP status to answer with. Storage failures arrive here
through dberr, request shape failures through validate; respond.Error is
the only place that turns them into a response.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable error codes sent to clients.
const (
	CodeNotFound    = "NOT_FOUND"
	CodeValidation  = "VALIDATION_ERROR"
	CodeRateLimited = "RATE_LIMITED"
	CodeInternal    = "INTERNAL_ERROR"
)

// AppError is the canonical error type for the API.
//
// Cause is logged server-side and never serialized.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError is a single rejected query parameter.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap exposes the cause to [errors.Is] and [errors.As].
func (e *AppError) Unwrap() error { return e.Cause }

func newError(status int, code, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// # Client Errors (4xx)

// NotFound creates a 404 for a named resource, e.g. NotFound("Route").
func NotFound(resource string) *AppError {
	return newError(http.StatusNotFound, CodeNotFound, resource+" not found")
}

// ValidationError creates a 400 carrying per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	appErr := newError(http.StatusBadRequest, CodeValidation, msg)
	appErr.Details = details
	return appErr
}

// RateLimited creates a 429.
func RateLimited(retryAfterSeconds int) *AppError {
	return newError(http.StatusTooManyRequests, CodeRateLimited,
		fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds))
}

// # Server Errors (5xx)

// Internal creates a 500 that hides cause from the client.
func Internal(cause error) *AppError {
	appErr := newError(http.StatusInternalServerError, CodeInternal, "An unexpected error occurred")
	appErr.Cause = cause
	return appErr
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
