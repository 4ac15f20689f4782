// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides request shape validation that ends in a single
// [apperr.AppError] carrying per-field details.
//
// # Architecture
//
// Two layers are offered:
//
//   - [Validator]: a chainable collector used while raw query strings are
//     converted into typed values (e.g. "abc" for an integer parameter).
//   - [Struct]: declarative rules on the typed request struct, backed by
//     go-playground/validator and its `validate` tags.
//
// Both produce the same VALIDATION_ERROR envelope so handlers never need to
// care which layer rejected the input.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/creatorhub/internal/platform/apperr"
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("perPage", perPage > pagination.MaxPerPage, "Must be at most 100")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// OptionalInt parses raw as a base-10 integer.
//
// An empty raw value means "not provided" and yields nil without error.
// A malformed value is recorded as a field error and also yields nil.
func (v *Validator) OptionalInt(field, raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		v.add(field, "Must be an integer")
		return nil
	}
	return &n
}

// OptionalInt64 is the 64-bit variant of [Validator.OptionalInt].
func (v *Validator) OptionalInt64(field, raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		v.add(field, "Must be an integer")
		return nil
	}
	return &n
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method. Call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// # Declarative Rules

var (
	engine     *validator.Validate
	engineOnce sync.Once
)

// Engine returns the shared go-playground validator.
//
// Field names in reported errors come from the `query` struct tag, then the
// `json` tag, falling back to the Go field name.
func Engine() *validator.Validate {
	engineOnce.Do(func() {
		engine = validator.New(validator.WithRequiredStructEnabled())
		engine.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"query", "json"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return field.Name
		})
	})
	return engine
}

// Struct validates target against its `validate` tags.
func Struct(target any) error {
	err := Engine().Struct(target)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperr.Internal(fmt.Errorf("validate: %w", err))
	}

	details := make([]apperr.FieldError, len(fieldErrs))
	for i, fieldErr := range fieldErrs {
		details[i] = apperr.FieldError{
			Field:   fieldErr.Field(),
			Message: translate(fieldErr),
		}
	}
	return apperr.ValidationError("Validation failed", details...)
}

// translate converts a [validator.FieldError] into a client-facing message.
func translate(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "required_with":
		return fmt.Sprintf("This field is required when %s is set", lowerFirst(fieldErr.Param()))
	case "min", "gte":
		return fmt.Sprintf("Must be at least %s", fieldErr.Param())
	case "max", "lte":
		return fmt.Sprintf("Must be at most %s", fieldErr.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fieldErr.Param())
	default:
		return fmt.Sprintf("Failed the %q rule", fieldErr.Tag())
	}
}

// lowerFirst turns a Go field name used as a rule parameter into its query form.
func lowerFirst(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
