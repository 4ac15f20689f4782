// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package creator

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/creatorhub/internal/platform/request"
	"github.com/taibuivan/creatorhub/internal/platform/respond"
	"github.com/taibuivan/creatorhub/internal/platform/validate"
	"github.com/taibuivan/creatorhub/pkg/pagination"
)

// # Handler Implementation

// Handler exposes creator discovery over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new creator [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the public discovery endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.searchCreators)
	router.Get("/filters", handler.listFilters)

	return router
}

// # Request Payloads

// searchRequest is the typed form of the search query string.
type searchRequest struct {
	Page          *int    `query:"page"          validate:"omitempty,min=1"`
	PerPage       *int    `query:"perPage"       validate:"required_with=Page,omitempty,min=1"`
	Country       *string `query:"country"`
	Industry      *string `query:"industry"`
	FollowersFrom *int64  `query:"followersFrom" validate:"required_with=FollowersTo,omitempty,min=0"`
	FollowersTo   *int64  `query:"followersTo"   validate:"required_with=FollowersFrom,omitempty,min=0"`
}

// parseSearchRequest reads and validates the query string.
func parseSearchRequest(request *http.Request) (searchRequest, error) {
	v := &validate.Validator{}

	input := searchRequest{
		Page:          v.OptionalInt("page", requestutil.Query(request, "page")),
		PerPage:       v.OptionalInt("perPage", requestutil.Query(request, "perPage")),
		Country:       requestutil.OptionalQuery(request, "country"),
		Industry:      requestutil.OptionalQuery(request, "industry"),
		FollowersFrom: v.OptionalInt64("followersFrom", requestutil.Query(request, "followersFrom")),
		FollowersTo:   v.OptionalInt64("followersTo", requestutil.Query(request, "followersTo")),
	}
	if input.PerPage != nil {
		v.Custom("perPage", *input.PerPage > pagination.MaxPerPage,
			fmt.Sprintf("Must be at most %d", pagination.MaxPerPage))
	}
	if err := v.Err(); err != nil {
		return searchRequest{}, err
	}

	if err := validate.Struct(input); err != nil {
		return searchRequest{}, err
	}
	return input, nil
}

// criteria converts a validated request. Absent parameters stay nil.
func (input searchRequest) criteria() Criteria {
	criteria := Criteria{
		Country:  input.Country,
		Industry: input.Industry,
	}

	if input.PerPage != nil {
		criteria.Pagination = &Pagination{Page: input.Page, PerPage: *input.PerPage}
	}

	if input.FollowersFrom != nil && input.FollowersTo != nil {
		criteria.Followers = &FollowerRange{From: *input.FollowersFrom, To: *input.FollowersTo}
	}

	return criteria
}

// # Discovery Endpoints

/*
GET /api/v1/creators.

Description: Lists visible creators ranked by follower count, each with its
engagement rate. A followersFrom greater than followersTo is accepted and
simply matches nothing.

Request:
  - page: int (>= 1, requires perPage)
  - perPage: int (1..100)
  - country: string (country id)
  - industry: string (industry id)
  - followersFrom: int64 (>= 0, requires followersTo)
  - followersTo: int64 (>= 0, requires followersFrom)

Response:
  - 200: []EnrichedCreator: Paginated list with meta
  - 400: ErrValidation: Malformed or incomplete parameters
*/
func (handler *Handler) searchCreators(writer http.ResponseWriter, request *http.Request) {
	input, err := parseSearchRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.SearchCreators(request.Context(), input.criteria())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, result.Items, result.Meta)
}

/*
GET /api/v1/creators/filters.

Description: Returns the filter values worth offering: countries and
industries used by visible creators, plus the fixed follower bands.

Response:
  - 200: FacetSet
*/
func (handler *Handler) listFilters(writer http.ResponseWriter, request *http.Request) {
	facets, err := handler.service.Facets(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, facets)
}
