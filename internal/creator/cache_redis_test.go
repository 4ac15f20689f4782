// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package creator

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableCache(t *testing.T) *RedisFacetCache {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisFacetCache(client, time.Minute, discardLogger())
}

/*
TestRedisFacetCache_BreakerOpens stops calling Redis after repeated failures.
*/
func TestRedisFacetCache_BreakerOpens(t *testing.T) {
	cache := unreachableCache(t)
	ctx := context.Background()

	for range breakerFailureThreshold {
		_, found, err := cache.Get(ctx)
		require.Error(t, err)
		assert.False(t, found)
	}

	_, _, err := cache.Get(ctx)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)

	err = cache.Set(ctx, FacetSet{FollowersCount: FollowerBands()})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

/*
TestService_Facets_UnreachableCache still answers from the store.
*/
func TestService_Facets_UnreachableCache(t *testing.T) {
	repo := catalogRepository()
	service := NewService(repo, unreachableCache(t), discardLogger())

	facets, err := service.Facets(context.Background())
	require.NoError(t, err)

	assert.Len(t, facets.Country, 2)
	assert.Equal(t, 1, repo.facetReads)
}

/*
TestRedisFacetCache_CanceledCallerKeepsBreakerClosed ignores clients that
disconnect mid-request.
*/
func TestRedisFacetCache_CanceledCallerKeepsBreakerClosed(t *testing.T) {
	cache := unreachableCache(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for range breakerFailureThreshold + 2 {
		_, found, err := cache.Get(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, gobreaker.ErrOpenState)
		assert.False(t, found)
	}

	assert.Equal(t, gobreaker.StateClosed, cache.breaker.State())
}

/*
TestBreakerSuccessful separates Redis failures from canceled callers.
*/
func TestBreakerSuccessful(t *testing.T) {
	assert.True(t, breakerSuccessful(nil))
	assert.True(t, breakerSuccessful(context.Canceled))
	assert.True(t, breakerSuccessful(fmt.Errorf("dial: %w", context.Canceled)))
	assert.False(t, breakerSuccessful(context.DeadlineExceeded))
	assert.False(t, breakerSuccessful(errors.New("connection refused")))
}
