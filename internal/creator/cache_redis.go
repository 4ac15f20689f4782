// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package creator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"

	"github.com/taibuivan/creatorhub/internal/platform/constants"
	"github.com/taibuivan/creatorhub/internal/platform/metrics"
)

// # Facet Cache

// FacetCache stores the last computed [FacetSet].
type FacetCache interface {
	// Get reports false without an error on a miss.
	Get(context context.Context) (FacetSet, bool, error)
	Set(context context.Context, facets FacetSet) error
}

const (
	facetCacheName = "facet_cache"

	breakerMaxRequests      = 1
	breakerInterval         = time.Minute
	breakerOpenTimeout      = 30 * time.Second
	breakerFailureThreshold = 5
)

// RedisFacetCache keeps the facet set in Redis as JSON.
//
// Every Redis call goes through a circuit breaker: after repeated failures the
// cache is skipped outright until the breaker half-opens again.
type RedisFacetCache struct {
	client  *redis.Client
	ttl     time.Duration
	breaker *gobreaker.CircuitBreaker[[]byte]
}

// NewRedisFacetCache constructs a facet cache with the given entry lifetime.
func NewRedisFacetCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisFacetCache {
	settings := gobreaker.Settings{
		Name:        facetCacheName,
		MaxRequests: breakerMaxRequests,
		Interval:    breakerInterval,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		IsSuccessful: breakerSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
			logger.Warn("circuit_breaker_state_changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	metrics.CircuitBreakerState.WithLabelValues(facetCacheName).Set(float64(gobreaker.StateClosed))

	return &RedisFacetCache{
		client:  client,
		ttl:     ttl,
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

// Get loads the cached facet set.
func (cache *RedisFacetCache) Get(context context.Context) (FacetSet, bool, error) {
	payload, err := cache.breaker.Execute(func() ([]byte, error) {
		payload, err := cache.client.Get(context, constants.RedisKeyCreatorFacets).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return payload, err
	})
	if err != nil {
		metrics.CacheRequests.WithLabelValues(facetCacheName, "error").Inc()
		return FacetSet{}, false, fmt.Errorf("redis: get facets: %w", err)
	}

	if payload == nil {
		metrics.CacheRequests.WithLabelValues(facetCacheName, "miss").Inc()
		return FacetSet{}, false, nil
	}

	var facets FacetSet
	if err := json.Unmarshal(payload, &facets); err != nil {
		metrics.CacheRequests.WithLabelValues(facetCacheName, "error").Inc()
		return FacetSet{}, false, fmt.Errorf("redis: decode facets: %w", err)
	}

	metrics.CacheRequests.WithLabelValues(facetCacheName, "hit").Inc()
	return facets, true, nil
}

// Set stores the facet set for the configured TTL.
func (cache *RedisFacetCache) Set(context context.Context, facets FacetSet) error {
	payload, err := json.Marshal(facets)
	if err != nil {
		return fmt.Errorf("redis: encode facets: %w", err)
	}

	_, err = cache.breaker.Execute(func() ([]byte, error) {
		return nil, cache.client.Set(context, constants.RedisKeyCreatorFacets, payload, cache.ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("redis: set facets: %w", err)
	}
	return nil
}

// breakerSuccessful does not count a caller that went away against Redis.
func breakerSuccessful(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}
