// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines the typed context keys shared by middleware and
// handlers for per-request values.
package ctxkey

// key is unexported so no other package can build a colliding key.
type key string

const (
	// KeyRequestID holds the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyLogger holds the request-scoped [*log/slog.Logger].
	KeyLogger key = "logger"
)
