// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr turns pgx errors into [apperr.AppError] values.
//
// The creator store never retries and never classifies failures further: a
// missing row is a 404, everything else is a generic downstream 500 whose
// cause (operation name, SQLSTATE) is kept for the server log only.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/creatorhub/internal/platform/apperr"
)

// ErrNotFound is returned when a queried row doesn't exist.
var ErrNotFound = apperr.NotFound("Resource")

// Wrap converts err from the operation named action (e.g. "search_creators").
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperr.Internal(fmt.Errorf("%s: sqlstate %s: %w", action, pgErr.Code, err))
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
