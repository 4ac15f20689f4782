// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package creator

import (
	"context"
	"log/slog"

	"github.com/taibuivan/creatorhub/internal/platform/ctxutil"
	"github.com/taibuivan/creatorhub/pkg/pagination"
)

// # Service Layer

// SearchResult is one enriched page plus its pagination metadata.
type SearchResult struct {
	Items []EnrichedCreator
	Meta  pagination.Meta
}

// Service orchestrates creator search and facet discovery.
type Service struct {
	repo   Repository
	cache  FacetCache
	logger *slog.Logger
}

// NewService constructs a [Service]. cache may be nil, in which case facets
// are always read from the store.
func NewService(repo Repository, cache FacetCache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

/*
SearchCreators runs a filtered search and enriches every returned row.

Description: Store failures are returned unchanged; nothing is retried and
no partial page is produced. The metadata echoes the resolved window
(page 1 and perPage 10 when no pagination was requested).

Parameters:
  - context: context.Context
  - criteria: Criteria (already shape-validated)

Returns:
  - SearchResult: Enriched items and pagination metadata
  - error: Data access failures
*/
func (service *Service) SearchCreators(context context.Context, criteria Criteria) (SearchResult, error) {
	creators, total, err := service.repo.Search(context, criteria)
	if err != nil {
		return SearchResult{}, err
	}

	window := searchWindow(criteria)
	page := window.Page
	if page < pagination.DefaultPage {
		page = pagination.DefaultPage
	}

	service.log(context).DebugContext(context, "creator_search_completed",
		slog.Int("returned", len(creators)),
		slog.Int("total", total),
		slog.Int("page", page),
		slog.Int("per_page", window.PerPage),
	)

	return SearchResult{
		Items: EnrichAll(creators),
		Meta:  pagination.NewMeta(page, window.PerPage, total),
	}, nil
}

/*
Facets returns the filter values currently in use.

Description: When a cache is configured it is consulted first. A cache
failure is logged and the facets are computed from the store instead; it
never fails the request. Freshly computed facets are written back.

Returns:
  - FacetSet: Countries, industries and follower bands
  - error: Store failures
*/
func (service *Service) Facets(context context.Context) (FacetSet, error) {
	logger := service.log(context)

	if service.cache != nil {
		cached, found, err := service.cache.Get(context)
		switch {
		case err != nil:
			logger.WarnContext(context, "facet_cache_read_failed", slog.String("error", err.Error()))
		case found:
			return cached, nil
		}
	}

	facets, err := AggregateFacets(context, service.repo)
	if err != nil {
		return FacetSet{}, err
	}

	if service.cache != nil {
		if err := service.cache.Set(context, facets); err != nil {
			logger.WarnContext(context, "facet_cache_write_failed", slog.String("error", err.Error()))
		}
	}

	return facets, nil
}

func (service *Service) log(context context.Context) *slog.Logger {
	return ctxutil.LoggerOr(context, service.logger)
}
