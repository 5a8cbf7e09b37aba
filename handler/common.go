package handler

import (
	"net/url"
	"strconv"

	"Foodgram/pkg/errs"
	"Foodgram/pkg/response"
	"Foodgram/types"

	"github.com/gin-gonic/gin"
)

// pathID parses a numeric path parameter.
func pathID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.InvalidField(name, errs.CodeInvalidField, name+" must be a positive integer")
	}
	return id, nil
}

func bindQuery(c *gin.Context, obj any) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		return errs.Invalid(errs.CodeInvalidField, "invalid query: "+err.Error())
	}
	return nil
}

func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return errs.Invalid(errs.CodeInvalidField, "invalid body: "+err.Error())
	}
	return nil
}

// pageOf wraps a service page in the list envelope with absolute
// next/previous links.
func pageOf[T any](c *gin.Context, p *types.Page[T]) response.Page[T] {
	out := response.Page[T]{Count: p.Total, Results: p.Items}
	if out.Results == nil {
		out.Results = []T{}
	}
	if p.HasNext() {
		link := pageLink(c, p.Page+1, p.Limit)
		out.Next = &link
	}
	if p.HasPrevious() {
		link := pageLink(c, p.Page-1, p.Limit)
		out.Previous = &link
	}
	return out
}

func pageLink(c *gin.Context, page, limit int) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	q := c.Request.URL.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	u := url.URL{Scheme: scheme, Host: c.Request.Host, Path: c.Request.URL.Path, RawQuery: q.Encode()}
	return u.String()
}
