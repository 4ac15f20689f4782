// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package creator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/creatorhub/pkg/pointer"
)

// # Fakes

type fakeRepository struct {
	creators  []*Creator
	total     int
	countries []Facet
	usage     []IndustryUsage
	err       error

	searched   []Criteria
	facetReads int
}

func (repo *fakeRepository) Search(_ context.Context, criteria Criteria) ([]*Creator, int, error) {
	repo.searched = append(repo.searched, criteria)
	if repo.err != nil {
		return nil, 0, repo.err
	}
	return repo.creators, repo.total, nil
}

func (repo *fakeRepository) ListCountries(context.Context) ([]Facet, error) {
	repo.facetReads++
	if repo.err != nil {
		return nil, repo.err
	}
	return repo.countries, nil
}

func (repo *fakeRepository) ListIndustryUsage(context.Context) ([]IndustryUsage, error) {
	if repo.err != nil {
		return nil, repo.err
	}
	return repo.usage, nil
}

type fakeCache struct {
	stored   *FacetSet
	getErr   error
	setErr   error
	setCalls int
}

func (cache *fakeCache) Get(context.Context) (FacetSet, bool, error) {
	if cache.getErr != nil {
		return FacetSet{}, false, cache.getErr
	}
	if cache.stored == nil {
		return FacetSet{}, false, nil
	}
	return *cache.stored, true, nil
}

func (cache *fakeCache) Set(_ context.Context, facets FacetSet) error {
	cache.setCalls++
	if cache.setErr != nil {
		return cache.setErr
	}
	cache.stored = &facets
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func catalogRepository() *fakeRepository {
	return &fakeRepository{
		creators: []*Creator{
			{ID: "big", FollowerCount: 900, ViewCount: pointer.To("200"), LikeCount: pointer.To("10"), CommentCount: pointer.To("5"), ShareCount: pointer.To("5")},
			{ID: "small", FollowerCount: 100},
		},
		total:     23,
		countries: []Facet{{ID: "US", Value: "United States"}, {ID: "VN", Value: "Vietnam"}},
		usage: []IndustryUsage{
			{Industry: Industry{ID: "beauty", Value: "Beauty"}, CreatorCount: 4},
			{Industry: Industry{ID: "cars", Value: "Cars"}, CreatorCount: 0},
			{Industry: Industry{ID: "games", Value: "Games"}, CreatorCount: 1},
		},
	}
}

// # Search

/*
TestService_SearchCreators enriches rows and reports the resolved window.
*/
func TestService_SearchCreators(t *testing.T) {
	repo := catalogRepository()
	service := NewService(repo, nil, discardLogger())

	tests := []struct {
		name     string
		criteria Criteria
		page     int
		perPage  int
		pages    int
	}{
		{"defaults", Criteria{}, 1, 10, 3},
		{"per_page_only", Criteria{Pagination: &Pagination{PerPage: 5}}, 1, 5, 5},
		{"explicit_page", Criteria{Pagination: &Pagination{Page: pointer.To(2), PerPage: 20}}, 2, 20, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.SearchCreators(context.Background(), tt.criteria)
			require.NoError(t, err)

			require.Len(t, result.Items, 2)
			assert.InDelta(t, 10.0, result.Items[0].EngagementRate, 1e-9)
			assert.Zero(t, result.Items[1].EngagementRate)

			assert.Equal(t, tt.page, result.Meta.Page)
			assert.Equal(t, tt.perPage, result.Meta.PerPage)
			assert.Equal(t, 23, result.Meta.Total)
			assert.Equal(t, tt.pages, result.Meta.TotalPages)
		})
	}
}

/*
TestService_SearchCreators_StoreFailure propagates the error without a partial page.
*/
func TestService_SearchCreators_StoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	service := NewService(&fakeRepository{err: storeErr}, nil, discardLogger())

	result, err := service.SearchCreators(context.Background(), Criteria{})

	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, result.Items)
}

// # Facets

/*
TestAggregateFacets drops unused industries and appends the follower bands.
*/
func TestAggregateFacets(t *testing.T) {
	facets, err := AggregateFacets(context.Background(), catalogRepository())
	require.NoError(t, err)

	assert.Equal(t, []Facet{{ID: "US", Value: "United States"}, {ID: "VN", Value: "Vietnam"}}, facets.Country)
	assert.Equal(t, []Facet{{ID: "beauty", Value: "Beauty"}, {ID: "games", Value: "Games"}}, facets.Industry)
	assert.Equal(t, FollowerBands(), facets.FollowersCount)
}

/*
TestAggregateFacets_EmptyStore returns empty lists, never nil.
*/
func TestAggregateFacets_EmptyStore(t *testing.T) {
	facets, err := AggregateFacets(context.Background(), &fakeRepository{
		usage: []IndustryUsage{{Industry: Industry{ID: "cars", Value: "Cars"}}},
	})
	require.NoError(t, err)

	assert.NotNil(t, facets.Country)
	assert.Empty(t, facets.Country)
	assert.NotNil(t, facets.Industry)
	assert.Empty(t, facets.Industry)
	assert.Len(t, facets.FollowersCount, 6)
}

/*
TestAggregateFacets_Idempotent yields identical output on an unchanged store.
*/
func TestAggregateFacets_Idempotent(t *testing.T) {
	repo := catalogRepository()

	first, err := AggregateFacets(context.Background(), repo)
	require.NoError(t, err)
	second, err := AggregateFacets(context.Background(), repo)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

/*
TestFollowerBands returns the fixed catalogue as an independent copy.
*/
func TestFollowerBands(t *testing.T) {
	bands := FollowerBands()

	require.Len(t, bands, 6)
	assert.Equal(t, FollowerBand{ID: 1000, Value: "> 1k"}, bands[0])
	assert.Equal(t, FollowerBand{ID: 1000000, Value: "> 1M"}, bands[3])
	assert.Equal(t, FollowerBand{ID: 100000000, Value: "> 100M"}, bands[5])

	bands[0].Value = "changed"
	assert.Equal(t, "> 1k", FollowerBands()[0].Value)
}

/*
TestService_Facets exercises the read-through cache paths.
*/
func TestService_Facets(t *testing.T) {
	t.Run("miss_then_hit", func(t *testing.T) {
		repo := catalogRepository()
		cache := &fakeCache{}
		service := NewService(repo, cache, discardLogger())

		first, err := service.Facets(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, repo.facetReads)
		assert.Equal(t, 1, cache.setCalls)

		second, err := service.Facets(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, repo.facetReads)
		assert.Equal(t, first, second)
	})

	t.Run("cache_read_error_falls_back", func(t *testing.T) {
		repo := catalogRepository()
		cache := &fakeCache{getErr: errors.New("breaker open")}
		service := NewService(repo, cache, discardLogger())

		facets, err := service.Facets(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, repo.facetReads)
		assert.Len(t, facets.Industry, 2)
	})

	t.Run("cache_write_error_ignored", func(t *testing.T) {
		cache := &fakeCache{setErr: errors.New("timeout")}
		service := NewService(catalogRepository(), cache, discardLogger())

		_, err := service.Facets(context.Background())
		assert.NoError(t, err)
	})

	t.Run("no_cache", func(t *testing.T) {
		repo := catalogRepository()
		service := NewService(repo, nil, discardLogger())

		_, err := service.Facets(context.Background())
		require.NoError(t, err)
		_, err = service.Facets(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, repo.facetReads)
	})

	t.Run("store_error", func(t *testing.T) {
		storeErr := errors.New("store down")
		cache := &fakeCache{}
		service := NewService(&fakeRepository{err: storeErr}, cache, discardLogger())

		_, err := service.Facets(context.Background())
		assert.ErrorIs(t, err, storeErr)
		assert.Zero(t, cache.setCalls)
	})
}
