// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered identifiers.
//
// Request correlation IDs use it so that log lines sort by arrival when
// grouped by request.
package uuidv7

import "github.com/google/uuid"

// New generates a UUIDv7 string.
//
// If the v7 generator fails (clock or entropy read error) a random v4 is
// returned instead, so callers always get a usable identifier.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
