package service

import (
	"math"

	"Foodgram/config"
	"Foodgram/pkg/errs"
	"Foodgram/types"
)

// normalizePage applies defaults and caps. Negative values and pages whose
// offset does not fit in an int are rejected.
func normalizePage(q types.PageQuery, limits config.Limits) (types.PageQuery, error) {
	if q.Page < 0 {
		return q, errs.InvalidField("page", errs.CodeInvalidPagination, "page must be a positive number")
	}
	if q.Limit < 0 {
		return q, errs.InvalidField("limit", errs.CodeInvalidPagination, "limit must be a positive number")
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = limits.DefaultPageSize
	}
	if q.Limit > limits.MaxPageSize {
		q.Limit = limits.MaxPageSize
	}
	if q.Page > math.MaxInt/q.Limit {
		return q, errs.InvalidField("page", errs.CodeInvalidPagination, "page is out of range")
	}
	return q, nil
}

// recipesLimit converts the optional preview cap; -1 means unbounded.
func recipesLimit(limit *int) (int, error) {
	if limit == nil {
		return -1, nil
	}
	if *limit < 0 {
		return 0, errs.InvalidField("recipes_limit", errs.CodeInvalidRecipesLimit, "recipes_limit must not be negative")
	}
	return *limit, nil
}
