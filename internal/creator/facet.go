// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package creator

import (
	"context"
	"fmt"

	"github.com/taibuivan/creatorhub/pkg/slice"
)

// # Follower Bands

var followerBands = []FollowerBand{
	{ID: 1000, Value: "> 1k"},
	{ID: 10000, Value: "> 10k"},
	{ID: 100000, Value: "> 100k"},
	{ID: 1000000, Value: "> 1M"},
	{ID: 10000000, Value: "> 10M"},
	{ID: 100000000, Value: "> 100M"},
}

// FollowerBands returns the fixed follower-count thresholds in ascending order.
// Each call returns a fresh copy.
func FollowerBands() []FollowerBand {
	bands := make([]FollowerBand, len(followerBands))
	copy(bands, followerBands)
	return bands
}

// # Aggregation

/*
AggregateFacets builds the facet set from the store.

Description: Countries and industries come from two independent reads that
are not run in a transaction. Industries without a visible creator are
dropped. The follower bands never depend on the data.

Parameters:
  - context: context.Context
  - repo: Repository

Returns:
  - FacetSet: Lists are never nil
  - error: The first store failure, wrapped
*/
func AggregateFacets(context context.Context, repo Repository) (FacetSet, error) {
	countries, err := repo.ListCountries(context)
	if err != nil {
		return FacetSet{}, fmt.Errorf("list countries: %w", err)
	}

	usage, err := repo.ListIndustryUsage(context)
	if err != nil {
		return FacetSet{}, fmt.Errorf("list industries: %w", err)
	}

	if countries == nil {
		countries = make([]Facet, 0)
	}

	return FacetSet{
		Country:        countries,
		Industry:       industriesInUse(usage),
		FollowersCount: FollowerBands(),
	}, nil
}

func industriesInUse(usage []IndustryUsage) []Facet {
	inUse := slice.Filter(usage, func(item IndustryUsage) bool { return item.CreatorCount > 0 })

	facets := slice.Map(inUse, func(item IndustryUsage) Facet {
		return Facet{ID: item.ID, Value: item.Value}
	})
	if facets == nil {
		return make([]Facet, 0)
	}
	return facets
}
