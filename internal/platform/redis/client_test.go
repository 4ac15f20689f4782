// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestTune keeps the URL address and applies fail-fast settings.
*/
func TestTune(t *testing.T) {
	options, err := redis.ParseURL("redis://cache:6379/2")
	require.NoError(t, err)

	tune(options)

	assert.Equal(t, "cache:6379", options.Addr)
	assert.Equal(t, 2, options.DB)
	assert.Equal(t, -1, options.MaxRetries)
	assert.Equal(t, readTimeout, options.ReadTimeout)
}

/*
TestNewClient_InvalidURL fails before dialing.
*/
func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient(context.Background(), "http://not-redis", slog.New(slog.NewJSONHandler(io.Discard, nil)))
	assert.ErrorContains(t, err, "invalid URL")
}
