package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// QueryParams are the common paging/search parameters parsed from a request.
type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func FromContext(c echo.Context) QueryParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.QueryParam("page_size"))
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return QueryParams{
		PageNumber: page,
		PageSize:   size,
		Search:     c.QueryParam("search"),
	}
}

func (p QueryParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}
