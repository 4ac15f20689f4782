// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package creator

import "context"

// # Creator Data Access

// Repository defines the read contract for the creator catalogue.
type Repository interface {

	/*
		Search returns one page of visible creators matching criteria.

		Parameters:
		  - context: context.Context
		  - criteria: Criteria (optional country, industry, followers, window)

		Returns:
		  - []*Creator: Page ordered by follower count, country and industries hydrated
		  - int: Number of matching creators across all pages
		  - error: Data access failures
	*/
	Search(context context.Context, criteria Criteria) ([]*Creator, int, error)

	// ListCountries returns the countries referenced by at least one visible creator.
	ListCountries(context context.Context) ([]Facet, error)

	// ListIndustryUsage returns every industry with its visible creator count.
	ListIndustryUsage(context context.Context) ([]IndustryUsage, error)
}
