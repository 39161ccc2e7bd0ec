package apihelpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type PaginatedQuery struct {
	Page  int64
	Limit int64
}

// ParsePaginatedQueryFromCtx reads page and limit query parameters for
// listing endpoints.
func ParsePaginatedQueryFromCtx(c *gin.Context) (*PaginatedQuery, error) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil {
		return nil, err
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil {
		return nil, err
	}

	return &PaginatedQuery{
		Page:  page,
		Limit: limit,
	}, nil
}
