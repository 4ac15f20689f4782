// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package creator

import (
	"fmt"
	"strings"

	"github.com/taibuivan/creatorhub/internal/platform/database/schema"
	"github.com/taibuivan/creatorhub/pkg/pagination"
	"github.com/taibuivan/creatorhub/pkg/slice"
)

// # Predicate Clauses

// clause is one AND-ed predicate. Every %s in format stands for the matching
// entry in args and is rewritten to a positional $n placeholder on join.
type clause struct {
	format string
	args   []any
}

/*
searchClauses lists the predicates implied by criteria.

Description: The visibility predicate always comes first and cannot be
removed. Each optional filter contributes exactly one clause when present
and nothing when absent.

Parameters:
  - criteria: Criteria

Returns:
  - []clause: Predicates in a stable order (visibility, country, industry, followers)
*/
func searchClauses(criteria Criteria) []clause {
	clauses := []clause{
		{format: fmt.Sprintf("c.%s = TRUE", schema.CoreCreator.Visibility)},
	}

	if criteria.Country != nil {
		clauses = append(clauses, clause{
			format: fmt.Sprintf("c.%s = %%s", schema.CoreCreator.CountryID),
			args:   []any{*criteria.Country},
		})
	}

	// EXISTS keeps one row per creator whatever the number of linked industries
	if criteria.Industry != nil {
		clauses = append(clauses, clause{
			format: fmt.Sprintf("EXISTS (SELECT 1 FROM %s ci WHERE ci.%s = c.%s AND ci.%s = %%s)",
				schema.CreatorIndustry.Table, schema.CreatorIndustry.CreatorID,
				schema.CoreCreator.ID, schema.CreatorIndustry.IndustryID),
			args: []any{*criteria.Industry},
		})
	}

	if criteria.Followers != nil {
		clauses = append(clauses, clause{
			format: fmt.Sprintf("c.%s >= %%s AND c.%s <= %%s",
				schema.CoreCreator.FollowerCount, schema.CoreCreator.FollowerCount),
			args: []any{criteria.Followers.From, criteria.Followers.To},
		})
	}

	return clauses
}

// joinClauses ANDs clauses together, numbering placeholders from firstArg.
// It returns the predicate, its arguments and the next free placeholder.
func joinClauses(clauses []clause, firstArg int) (string, []any, int) {
	var (
		parts = make([]string, 0, len(clauses))
		args  []any
		argID = firstArg
	)

	for _, current := range clauses {
		placeholders := make([]any, len(current.args))
		for i := range current.args {
			placeholders[i] = fmt.Sprintf("$%d", argID)
			argID++
		}
		parts = append(parts, "("+fmt.Sprintf(current.format, placeholders...)+")")
		args = append(args, current.args...)
	}

	return strings.Join(parts, " AND "), args, argID
}

// # Page Window

// searchWindow resolves the LIMIT/OFFSET window of a search.
// Without pagination the first [pagination.DefaultPerPage] rows are returned.
func searchWindow(criteria Criteria) pagination.Params {
	if criteria.Pagination == nil {
		return pagination.Default()
	}

	page := pagination.DefaultPage
	if criteria.Pagination.Page != nil {
		page = *criteria.Pagination.Page
	}

	return pagination.Params{Page: page, PerPage: criteria.Pagination.PerPage}
}

// # Statement

/*
buildSearchQuery renders the full search statement for criteria.

Description: A single statement filters, counts and pages the catalogue:
  - filtered: every visible creator matching the predicates.
  - paged: the requested window, ordered by follower count then id.
  - The outer select hangs the page off a one-row anchor so the total is
    still reported when the window lies past the last match.

Country and industries are hydrated in the same round trip (LEFT JOIN and a
json_agg sub-select respectively).

Returns:
  - string: SQL text with $n placeholders
  - []any: Positional arguments (predicates, then LIMIT and OFFSET)
*/
func buildSearchQuery(criteria Criteria) (string, []any) {
	where, args, argID := joinClauses(searchClauses(criteria), 1)
	window := searchWindow(criteria)
	args = append(args, window.Limit(), window.Offset())

	columns := schema.CoreCreator.Columns()
	filteredColumns := strings.Join(slice.Map(columns, func(column string) string { return "c." + column }), ", ")
	pagedColumns := strings.Join(slice.Map(columns, func(column string) string { return "p." + column }), ", ")

	var queryBuilder strings.Builder

	queryBuilder.WriteString(fmt.Sprintf(`
		WITH filtered AS (
			SELECT %s
			FROM %s c
			WHERE %s
		),
		paged AS (
			SELECT * FROM filtered
			ORDER BY %s DESC, %s ASC
			LIMIT $%d OFFSET $%d
		)`,
		filteredColumns, schema.CoreCreator.Table, where,
		schema.CoreCreator.FollowerCount, schema.CoreCreator.ID,
		argID, argID+1,
	))

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT
			(SELECT COUNT(*) FROM filtered) AS total_count,
			%s,
			co.%s, co.%s,
			COALESCE((
				SELECT json_agg(json_build_object('id', i.%s, 'value', i.%s) ORDER BY i.%s)
				FROM %s i
				JOIN %s ci ON ci.%s = i.%s
				WHERE ci.%s = p.%s
			), '[]') AS industries
		FROM (SELECT 1) AS anchor
		LEFT JOIN paged p ON TRUE
		LEFT JOIN %s co ON co.%s = p.%s
		ORDER BY p.%s DESC, p.%s ASC`,
		pagedColumns,
		schema.RefCountry.ID, schema.RefCountry.Value,
		schema.RefIndustry.ID, schema.RefIndustry.Value, schema.RefIndustry.ID,
		schema.RefIndustry.Table,
		schema.CreatorIndustry.Table, schema.CreatorIndustry.IndustryID, schema.RefIndustry.ID,
		schema.CreatorIndustry.CreatorID, schema.CoreCreator.ID,
		schema.RefCountry.Table, schema.RefCountry.ID, schema.CoreCreator.CountryID,
		schema.CoreCreator.FollowerCount, schema.CoreCreator.ID,
	))

	return queryBuilder.String(), args
}

// # Facet Statements

// countriesQuery selects countries in use by visible creators.
func countriesQuery() string {
	return fmt.Sprintf(`
		SELECT co.%s, co.%s
		FROM %s co
		JOIN %s c ON c.%s = co.%s
		WHERE c.%s = TRUE
		GROUP BY co.%s, co.%s
		ORDER BY co.%s ASC`,
		schema.RefCountry.ID, schema.RefCountry.Value,
		schema.RefCountry.Table,
		schema.CoreCreator.Table, schema.CoreCreator.CountryID, schema.RefCountry.ID,
		schema.CoreCreator.Visibility,
		schema.RefCountry.ID, schema.RefCountry.Value,
		schema.RefCountry.ID,
	)
}

// industryUsageQuery selects every industry with its visible creator count.
func industryUsageQuery() string {
	return fmt.Sprintf(`
		SELECT i.%s, i.%s, COUNT(c.%s) AS creator_count
		FROM %s i
		LEFT JOIN %s ci ON ci.%s = i.%s
		LEFT JOIN %s c ON c.%s = ci.%s AND c.%s = TRUE
		GROUP BY i.%s, i.%s
		ORDER BY i.%s ASC`,
		schema.RefIndustry.ID, schema.RefIndustry.Value, schema.CoreCreator.ID,
		schema.RefIndustry.Table,
		schema.CreatorIndustry.Table, schema.CreatorIndustry.IndustryID, schema.RefIndustry.ID,
		schema.CoreCreator.Table, schema.CoreCreator.ID, schema.CreatorIndustry.CreatorID, schema.CoreCreator.Visibility,
		schema.RefIndustry.ID, schema.RefIndustry.Value,
		schema.RefIndustry.ID,
	)
}
