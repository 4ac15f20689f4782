// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how a page window is turned into LIMIT/OFFSET values and how
// the resulting metadata is delivered in the API response envelope.
package pagination

const (
	// DefaultPerPage is the number of items per page if not specified.
	DefaultPerPage = 10
	// MaxPerPage is the upper bound for items per page to prevent system abuse.
	MaxPerPage = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params is a resolved page window.
type Params struct {
	Page    int
	PerPage int
}

// Default returns the window used when a caller asks for no pagination at all.
func Default() Params {
	return Params{Page: DefaultPage, PerPage: DefaultPerPage}
}

// Limit returns the SQL LIMIT value.
func (p Params) Limit() int {
	return p.PerPage
}

// Offset returns the SQL OFFSET value derived from [Page] and [PerPage].
// A page of zero or one skips nothing.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewMeta constructs pagination metadata for a response.
//
// It automatically calculates the TotalPages based on the total count and perPage.
func NewMeta(page, perPage, total int) Meta {
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}

	return Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
