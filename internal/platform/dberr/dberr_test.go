// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/creatorhub/internal/platform/apperr"
	"github.com/taibuivan/creatorhub/internal/platform/dberr"
)

/*
TestWrap covers the nil, not-found and generic failure branches.
*/
func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))

	assert.Equal(t, dberr.ErrNotFound, dberr.Wrap(pgx.ErrNoRows, "find_creator"))

	err := dberr.Wrap(context.DeadlineExceeded, "search_creators")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INTERNAL_ERROR", ae.Code)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)

	// The original cause stays reachable for logging.
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Contains(t, ae.Cause.Error(), "search_creators")
}

/*
TestWrap_PgError records the SQLSTATE in the server-side cause.
*/
func TestWrap_PgError(t *testing.T) {
	err := dberr.Wrap(&pgconn.PgError{Code: "42P01", Message: `relation "core.creator" does not exist`}, "list_countries")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeInternal, ae.Code)
	assert.Contains(t, ae.Cause.Error(), "list_countries: sqlstate 42P01")
	assert.NotContains(t, ae.Error(), "core.creator")
}
