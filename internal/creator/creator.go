// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package creator implements discovery over the creator catalogue.

It answers two read-only questions: which visible creators match a set of
optional filters (ranked by follower count, with a derived engagement rate),
and which filter values are currently worth offering to a caller.

# Layout

  - query.go: turns [Criteria] into a single SQL statement.
  - store_postgres.go: executes searches and facet reads through pgx.
  - engagement.go: derives the engagement rate of a result row.
  - facet.go: assembles the [FacetSet] from store reads and static bands.
  - cache_redis.go: read-through facet cache behind a circuit breaker.
  - service.go / http.go: orchestration and the HTTP surface.
*/
package creator

import "time"

// # Domain Entities

// Country is a reference value a creator may be attached to.
type Country struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// Industry is a reference value linked to creators many-to-many.
type Industry struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// Creator is a social-media profile as stored in the catalogue.
//
// Engagement counters are kept as text exactly as ingested. They may be nil.
type Creator struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Nickname      string     `json:"nickname"`
	AvatarURL     *string    `json:"avatarUrl"`
	Visibility    bool       `json:"visibility"`
	FollowerCount int64      `json:"followerCount"`
	ViewCount     *string    `json:"viewCount"`
	LikeCount     *string    `json:"likeCount"`
	CommentCount  *string    `json:"commentCount"`
	ShareCount    *string    `json:"shareCount"`
	Country       *Country   `json:"country"`
	Industries    []Industry `json:"industries"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// EnrichedCreator is a search result row with its derived metrics.
type EnrichedCreator struct {
	Creator
	EngagementRate float64 `json:"engagementRate"`
}

// # Search Criteria

// Pagination selects a page window. PerPage is mandatory once a window is given.
type Pagination struct {
	Page    *int
	PerPage int
}

// FollowerRange is an inclusive bound on follower count.
type FollowerRange struct {
	From int64
	To   int64
}

// Criteria holds the optional search filters. A nil field imposes no constraint.
type Criteria struct {
	Pagination *Pagination
	Country    *string
	Industry   *string
	Followers  *FollowerRange
}

// # Facets

// Facet is a selectable filter value.
type Facet struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// FollowerBand is a coarse follower-count threshold.
type FollowerBand struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

// FacetSet lists every filter value a caller can currently use.
type FacetSet struct {
	Country        []Facet        `json:"country"`
	Industry       []Facet        `json:"industry"`
	FollowersCount []FollowerBand `json:"followersCount"`
}

// IndustryUsage pairs an industry with the number of visible creators in it.
type IndustryUsage struct {
	Industry
	CreatorCount int
}
