// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package creator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/creatorhub/pkg/pagination"
	"github.com/taibuivan/creatorhub/pkg/pointer"
)

/*
TestSearchClauses checks which predicates each filter contributes.
*/
func TestSearchClauses(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		where    string
		args     []any
	}{
		{
			name:     "visibility_only",
			criteria: Criteria{},
			where:    "(c.visibility = TRUE)",
		},
		{
			name:     "country",
			criteria: Criteria{Country: pointer.To("US")},
			where:    "(c.visibility = TRUE) AND (c.countryid = $1)",
			args:     []any{"US"},
		},
		{
			name:     "industry_uses_exists",
			criteria: Criteria{Industry: pointer.To("fashion")},
			where:    "(c.visibility = TRUE) AND (EXISTS (SELECT 1 FROM core.creatorindustry ci WHERE ci.creatorid = c.id AND ci.industryid = $1))",
			args:     []any{"fashion"},
		},
		{
			name:     "followers_inclusive",
			criteria: Criteria{Followers: &FollowerRange{From: 1000, To: 5000}},
			where:    "(c.visibility = TRUE) AND (c.followercount >= $1 AND c.followercount <= $2)",
			args:     []any{int64(1000), int64(5000)},
		},
		{
			name: "all_filters",
			criteria: Criteria{
				Country:   pointer.To("VN"),
				Industry:  pointer.To("gaming"),
				Followers: &FollowerRange{From: 10, To: 20},
			},
			where: "(c.visibility = TRUE) AND (c.countryid = $1) AND " +
				"(EXISTS (SELECT 1 FROM core.creatorindustry ci WHERE ci.creatorid = c.id AND ci.industryid = $2)) AND " +
				"(c.followercount >= $3 AND c.followercount <= $4)",
			args: []any{"VN", "gaming", int64(10), int64(20)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args, next := joinClauses(searchClauses(tt.criteria), 1)

			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.args, args)
			assert.Equal(t, len(tt.args)+1, next)
		})
	}
}

/*
TestSearchClauses_DegenerateRange keeps from > to as given rather than rejecting it.
*/
func TestSearchClauses_DegenerateRange(t *testing.T) {
	clauses := searchClauses(Criteria{Followers: &FollowerRange{From: 500, To: 100}})

	require.Len(t, clauses, 2)
	assert.Equal(t, []any{int64(500), int64(100)}, clauses[1].args)
}

/*
TestSearchWindow resolves LIMIT and OFFSET.
*/
func TestSearchWindow(t *testing.T) {
	tests := []struct {
		name   string
		input  *Pagination
		limit  int
		offset int
	}{
		{"absent_defaults_to_first_ten", nil, 10, 0},
		{"per_page_without_page", &Pagination{PerPage: 25}, 25, 0},
		{"first_page", &Pagination{Page: pointer.To(1), PerPage: 5}, 5, 0},
		{"third_page", &Pagination{Page: pointer.To(3), PerPage: 20}, 20, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := searchWindow(Criteria{Pagination: tt.input})

			assert.Equal(t, tt.limit, window.Limit())
			assert.Equal(t, tt.offset, window.Offset())
		})
	}

	assert.Equal(t, pagination.DefaultPage, searchWindow(Criteria{Pagination: &Pagination{PerPage: 5}}).Page)
}

/*
TestBuildSearchQuery checks the statement shape and argument order.
*/
func TestBuildSearchQuery(t *testing.T) {
	query, args := buildSearchQuery(Criteria{
		Pagination: &Pagination{Page: pointer.To(2), PerPage: 15},
		Country:    pointer.To("US"),
	})

	assert.Equal(t, []any{"US", 15, 15}, args)
	assert.Contains(t, query, "WHERE (c.visibility = TRUE) AND (c.countryid = $1)")
	assert.Contains(t, query, "ORDER BY followercount DESC, id ASC")
	assert.Contains(t, query, "LIMIT $2 OFFSET $3")
	assert.Contains(t, query, "(SELECT COUNT(*) FROM filtered) AS total_count")
	assert.Contains(t, query, "LEFT JOIN paged p ON TRUE")
	assert.Contains(t, query, "LEFT JOIN core.country co ON co.id = p.countryid")
	assert.NotContains(t, query, "JOIN core.creatorindustry ci ON ci.creatorid = c.id")
}

/*
TestBuildSearchQuery_Default applies the ten row window when no pagination is given.
*/
func TestBuildSearchQuery_Default(t *testing.T) {
	query, args := buildSearchQuery(Criteria{})

	assert.Equal(t, []any{10, 0}, args)
	assert.Contains(t, query, "LIMIT $1 OFFSET $2")
}

/*
TestFacetQueries restricts both facet reads to visible creators.
*/
func TestFacetQueries(t *testing.T) {
	countries := countriesQuery()
	assert.Contains(t, countries, "JOIN core.creator c ON c.countryid = co.id")
	assert.Contains(t, countries, "WHERE c.visibility = TRUE")
	assert.Contains(t, countries, "GROUP BY co.id, co.value")

	industries := industryUsageQuery()
	assert.Contains(t, industries, "COUNT(c.id) AS creator_count")
	assert.Contains(t, industries, "LEFT JOIN core.creator c ON c.id = ci.creatorid AND c.visibility = TRUE")
}
