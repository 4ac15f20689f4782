// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/creatorhub/internal/platform/apperr"
)

/*
TestConstructors maps each constructor to its status and code.
*/
func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		status int
		code   string
	}{
		{"not_found", apperr.NotFound("Route"), http.StatusNotFound, apperr.CodeNotFound},
		{"validation", apperr.ValidationError("Validation failed"), http.StatusBadRequest, apperr.CodeValidation},
		{"rate_limited", apperr.RateLimited(1), http.StatusTooManyRequests, apperr.CodeRateLimited},
		{"internal", apperr.Internal(nil), http.StatusInternalServerError, apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

/*
TestAs finds an AppError through wrapping and keeps the cause reachable.
*/
func TestAs(t *testing.T) {
	cause := errors.New("connection reset")
	wrapped := fmt.Errorf("list countries: %w", apperr.Internal(cause))

	appErr := apperr.As(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.CodeInternal, appErr.Code)
	assert.ErrorIs(t, wrapped, cause)

	assert.Nil(t, apperr.As(cause))
}
