// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/creatorhub/internal/platform/apperr"
	"github.com/taibuivan/creatorhub/internal/platform/respond"
	"github.com/taibuivan/creatorhub/pkg/pagination"
)

/*
TestPaginated checks the data/meta envelope and content type.
*/
func TestPaginated(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.Paginated(recorder, []string{"a", "b"}, pagination.NewMeta(1, 10, 2))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"data":["a","b"],"meta":{"page":1,"perPage":10,"total":2,"totalPages":1}}`,
		recorder.Body.String(),
	)
}

/*
TestError_AppError maps a validation error to 400 with field details.
*/
func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(recorder, request, apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: "perPage", Message: "This field is required"},
	))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "perPage", body.Details[0].Field)
}

/*
TestError_Unknown hides unexpected errors behind a generic 500.
*/
func TestError_Unknown(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(recorder, request, errors.New("pq: relation core.creator does not exist"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "core.creator")
	assert.Contains(t, recorder.Body.String(), "INTERNAL_ERROR")
}
