// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away query string access so that handlers can tell an absent
parameter apart from an empty one without repeating the same trimming logic.
*/
package requestutil

import (
	"net/http"
	"strings"
)

/*
Query returns the trimmed value of a query string parameter.

Returns an empty string when the parameter is missing.
*/
func Query(request *http.Request, key string) string {
	return strings.TrimSpace(request.URL.Query().Get(key))
}

/*
OptionalQuery returns a pointer to the trimmed value of a query parameter.

Parameters:
  - request: *http.Request
  - key: string (query parameter name)

Returns:
  - *string: nil when the parameter is missing or blank
*/
func OptionalQuery(request *http.Request, key string) *string {
	value := Query(request, key)
	if value == "" {
		return nil
	}
	return &value
}
