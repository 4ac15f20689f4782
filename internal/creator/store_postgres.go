// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package creator

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/creatorhub/internal/platform/dberr"
	"github.com/taibuivan/creatorhub/internal/platform/metrics"
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed creator store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// searchRow mirrors one row of the search statement. Creator columns are
// nullable because an empty page still yields a single anchor row.
type searchRow struct {
	total         int
	id            *string
	username      *string
	nickname      *string
	avatarURL     *string
	countryID     *string
	visibility    *bool
	followerCount *int64
	viewCount     *string
	likeCount     *string
	commentCount  *string
	shareCount    *string
	createdAt     *time.Time
	updatedAt     *time.Time
	countryRefID  *string
	countryValue  *string
	industries    []byte
}

// creator converts a hydrated row. It reports false for the empty anchor row.
func (row *searchRow) creator() (*Creator, bool, error) {
	if row.id == nil {
		return nil, false, nil
	}

	creator := &Creator{
		ID:           *row.id,
		AvatarURL:    row.avatarURL,
		ViewCount:    row.viewCount,
		LikeCount:    row.likeCount,
		CommentCount: row.commentCount,
		ShareCount:   row.shareCount,
		Industries:   make([]Industry, 0),
	}
	if row.username != nil {
		creator.Username = *row.username
	}
	if row.nickname != nil {
		creator.Nickname = *row.nickname
	}
	if row.visibility != nil {
		creator.Visibility = *row.visibility
	}
	if row.followerCount != nil {
		creator.FollowerCount = *row.followerCount
	}
	if row.createdAt != nil {
		creator.CreatedAt = *row.createdAt
	}
	if row.updatedAt != nil {
		creator.UpdatedAt = *row.updatedAt
	}
	if row.countryRefID != nil {
		creator.Country = &Country{ID: *row.countryRefID}
		if row.countryValue != nil {
			creator.Country.Value = *row.countryValue
		}
	}

	if err := json.Unmarshal(row.industries, &creator.Industries); err != nil {
		return nil, false, fmt.Errorf("decode industries of creator %s: %w", creator.ID, err)
	}

	return creator, true, nil
}

/*
Search returns a filtered page of visible creators and the total match count.

Description: Runs the statement produced by [buildSearchQuery]. The total is
taken from the first row, which always exists thanks to the anchor join.

Parameters:
  - context: context.Context
  - criteria: Criteria

Returns:
  - []*Creator: Page of hydrated creators (never nil)
  - int: Total matches ignoring the window
  - error: Wrapped data access failures
*/
func (repository *PostgresRepository) Search(context context.Context, criteria Criteria) (creators []*Creator, total int, err error) {
	defer func(start time.Time) { metrics.ObserveQuery("search", start, err) }(time.Now())

	query, args := buildSearchQuery(criteria)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "search_creators")
	}
	defer rows.Close()

	creators = make([]*Creator, 0)
	for rows.Next() {
		row := searchRow{}
		if err = rows.Scan(
			&row.total,
			&row.id, &row.username, &row.nickname, &row.avatarURL, &row.countryID,
			&row.visibility, &row.followerCount,
			&row.viewCount, &row.likeCount, &row.commentCount, &row.shareCount,
			&row.createdAt, &row.updatedAt,
			&row.countryRefID, &row.countryValue,
			&row.industries,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_creator")
		}

		total = row.total

		creator, ok, decodeErr := row.creator()
		if decodeErr != nil {
			return nil, 0, dberr.Wrap(decodeErr, "decode_creator")
		}
		if ok {
			creators = append(creators, creator)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_creators")
	}

	return creators, total, nil
}

// ListCountries returns the countries used by at least one visible creator, ordered by id.
func (repository *PostgresRepository) ListCountries(context context.Context) (countries []Facet, err error) {
	defer func(start time.Time) { metrics.ObserveQuery("list_countries", start, err) }(time.Now())

	rows, err := repository.pool.Query(context, countriesQuery())
	if err != nil {
		return nil, dberr.Wrap(err, "list_countries")
	}
	defer rows.Close()

	countries = make([]Facet, 0)
	for rows.Next() {
		country := Facet{}
		if err = rows.Scan(&country.ID, &country.Value); err != nil {
			return nil, dberr.Wrap(err, "scan_country")
		}
		countries = append(countries, country)
	}

	if err = rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_countries")
	}

	return countries, nil
}

// ListIndustryUsage returns every industry with its number of visible creators, ordered by id.
func (repository *PostgresRepository) ListIndustryUsage(context context.Context) (usage []IndustryUsage, err error) {
	defer func(start time.Time) { metrics.ObserveQuery("list_industry_usage", start, err) }(time.Now())

	rows, err := repository.pool.Query(context, industryUsageQuery())
	if err != nil {
		return nil, dberr.Wrap(err, "list_industry_usage")
	}
	defer rows.Close()

	usage = make([]IndustryUsage, 0)
	for rows.Next() {
		item := IndustryUsage{}
		if err = rows.Scan(&item.ID, &item.Value, &item.CreatorCount); err != nil {
			return nil, dberr.Wrap(err, "scan_industry_usage")
		}
		usage = append(usage, item)
	}

	if err = rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_industry_usage")
	}

	return usage, nil
}
